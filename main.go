package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"flightly/internal/auth"
	"flightly/internal/auth/auth_api"
	"flightly/internal/banners"
	"flightly/internal/banners/banner_api"
	banner_db "flightly/internal/banners/db"
	"flightly/internal/bookings"
	"flightly/internal/bookings/booking_api"
	booking_db "flightly/internal/bookings/db"
	"flightly/internal/companies"
	"flightly/internal/companies/company_api"
	company_db "flightly/internal/companies/db"
	"flightly/internal/config"
	"flightly/internal/database/migrations"
	"flightly/internal/flights"
	flight_db "flightly/internal/flights/db"
	"flightly/internal/flights/flight_api"
	"flightly/internal/gallery"
	gallery_db "flightly/internal/gallery/db"
	"flightly/internal/gallery/gallery_api"
	"flightly/internal/kafka"
	"flightly/internal/logger"
	"flightly/internal/models"
	"flightly/internal/stats"
	"flightly/internal/stats/stats_api"
	"flightly/internal/users"
	user_db "flightly/internal/users/db"
	"flightly/internal/users/user_api"
)

func verifyConnections(ctx context.Context, cfg *config.Config, log *logger.Logger) (*bun.DB, *redis.Client) {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", "✅ PostgreSQL connection successful")

	bunDB := bun.NewDB(sqldb, pgdialect.New())

	if !cfg.Redis.Enabled {
		log.Warn("DATABASE", "Redis disabled, flight search cache is off")
		return bunDB, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Redis connection error: %v", err))
	}
	log.Info("DATABASE", fmt.Sprintf("✅ Redis connection successful to %s", cfg.Redis.Addr))

	return bunDB, redisClient
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.LogAPI(r.Method, r.URL.Path, fmt.Sprintf("%d", rec.status), time.Since(start).String())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func main() {
	migrateOnly := flag.Bool("migrate", false, "run migrations and exit")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Flightly service initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	log.Info("APP", "Verifying database connections")
	bunDB, redisClient := verifyConnections(ctx, cfg, log)
	defer bunDB.Close()
	if redisClient != nil {
		defer redisClient.Close()
	}

	migrationRunner := migrations.NewRunner(bunDB, migrations.DefaultOptions())
	if err := migrationRunner.RunMigrations(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to run migrations: %v", err))
	}
	log.Info("DATABASE", "✅ Schema migrations applied")
	if *migrateOnly {
		log.Info("APP", "Migrate-only mode, exiting")
		return
	}

	kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.MockMode || !cfg.Kafka.Enabled)
	defer kafkaProducer.Close()
	if cfg.Kafka.Enabled && !cfg.Kafka.MockMode {
		requiredTopics := []string{
			cfg.Kafka.Topics.BookingConfirmed,
			cfg.Kafka.Topics.BookingCancelled,
			cfg.Kafka.Topics.BookingRefunded,
		}
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, requiredTopics); err != nil {
			log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		} else {
			log.Info("KAFKA", "Required topics ensured successfully")
		}
	} else {
		log.Warn("KAFKA", "Kafka running in mock mode, booking events are logged only")
	}

	searchCache := flights.NewRedisSearchCache(redisClient, cfg.Cache.SearchTTL)

	flightService := flights.NewFlightService(&flight_db.DB{Bun: bunDB}, searchCache)
	bookingService := bookings.NewBookingService(
		&booking_db.DB{Bun: bunDB},
		bookings.NewKafkaEvents(kafkaProducer, cfg.Kafka.Topics),
	)
	companyService := companies.NewCompanyService(&company_db.DB{Bun: bunDB})
	userService := users.NewUserService(&user_db.DB{Bun: bunDB})
	bannerService := banners.NewBannerService(&banner_db.DB{Bun: bunDB})
	galleryService := gallery.NewGalleryService(&gallery_db.DB{Bun: bunDB})
	statsService := stats.NewService(bunDB)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewAuthService(userService, tokens, cfg.Auth.SessionOnRegister)

	flightHandler := flight_api.NewHandler(flightService, log)
	bookingHandler := booking_api.NewHandler(bookingService, log)
	companyHandler := company_api.NewHandler(companyService, log)
	userHandler := user_api.NewHandler(userService, log)
	bannerHandler := banner_api.NewHandler(bannerService, log)
	galleryHandler := gallery_api.NewHandler(galleryService, log)
	statsHandler := stats_api.NewHandler(statsService, log)
	authHandler := auth_api.NewHandler(authService, userService, log)

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(requestLogger(log))

	// --- Public Routes ---
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/register", authHandler.Register)

		r.Get("/flights", flightHandler.ListFlights)
		r.Get("/flights/{flightId}", flightHandler.GetFlight)

		r.Get("/banners/active", bannerHandler.ListActiveBanners)
		r.Get("/gallery/active", galleryHandler.ListActiveItems)
		r.Get("/companies", companyHandler.ListCompanies)
		r.Get("/companies/{companyId}", companyHandler.GetCompany)

		r.Get("/bookings/confirmation/{confirmationId}", bookingHandler.GetBookingByConfirmation)
	})
	log.Info("ROUTER", "Public routes registered under /api")

	// --- Protected Routes ---
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(tokens, log))
		log.Info("AUTH", "JWT middleware applied to protected API routes")

		r.Route("/api/auth/profile", func(r chi.Router) {
			r.Get("/", authHandler.Profile)
		})

		r.Route("/api/bookings", func(r chi.Router) {
			r.Post("/", bookingHandler.CreateBooking)
			r.Get("/{bookingId}", bookingHandler.GetBooking)
			r.Get("/user/{userId}", bookingHandler.ListBookingsByUser)
			r.Post("/{bookingId}/cancel", bookingHandler.CancelBooking)
			r.Put("/{bookingId}", bookingHandler.UpdateBooking)
		})
		log.Info("ROUTER", "Booking routes registered under /api/bookings")

		// --- Admin Routes ---
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(models.RoleAdmin, log))

			r.Route("/api/admin", func(r chi.Router) {
				r.Get("/bookings", bookingHandler.ListBookings)
				r.Delete("/bookings/{bookingId}", bookingHandler.DeleteBooking)

				r.Route("/flights", func(r chi.Router) {
					r.Post("/", flightHandler.CreateFlight)
					r.Put("/{flightId}", flightHandler.UpdateFlight)
					r.Delete("/{flightId}", flightHandler.DeleteFlight)
				})

				r.Route("/companies", func(r chi.Router) {
					r.Post("/", companyHandler.CreateCompany)
					r.Put("/{companyId}", companyHandler.UpdateCompany)
					r.Delete("/{companyId}", companyHandler.DeleteCompany)
					r.Get("/{companyId}/stats", statsHandler.GetCompanyStats)
				})

				r.Route("/users", func(r chi.Router) {
					r.Post("/", userHandler.CreateUser)
					r.Get("/", userHandler.ListUsers)
					r.Get("/{userId}", userHandler.GetUser)
					r.Put("/{userId}", userHandler.UpdateUser)
					r.Delete("/{userId}", userHandler.DeleteUser)
				})

				r.Route("/banners", func(r chi.Router) {
					r.Post("/", bannerHandler.CreateBanner)
					r.Get("/", bannerHandler.ListBanners)
					r.Get("/{bannerId}", bannerHandler.GetBanner)
					r.Put("/{bannerId}", bannerHandler.UpdateBanner)
					r.Delete("/{bannerId}", bannerHandler.DeleteBanner)
				})

				r.Route("/gallery", func(r chi.Router) {
					r.Post("/", galleryHandler.CreateItem)
					r.Get("/", galleryHandler.ListItems)
					r.Get("/{itemId}", galleryHandler.GetItem)
					r.Put("/{itemId}", galleryHandler.UpdateItem)
					r.Delete("/{itemId}", galleryHandler.DeleteItem)
				})
			})
			log.Info("ROUTER", "Admin routes registered under /api/admin")
		})
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Flightly service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		log.Info("HTTP", "✅ Flightly service shutdown complete")
	}
}
