package users

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"flightly/internal/errs"
	"flightly/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type DBLayer interface {
	CreateUser(user models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(user models.User) error
	DeleteUser(id string) error
	EmailExists(email string) (bool, error)
}

type UserService struct {
	DB DBLayer
}

func NewUserService(db DBLayer) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Create(req models.CreateUserRequest) (*models.User, error) {
	if req.Email == "" {
		return nil, errs.Validation("email is required and cannot be empty")
	}
	if req.Password == "" {
		return nil, errs.Validation("password is required and cannot be empty")
	}
	if req.Name == "" {
		return nil, errs.Validation("name is required and cannot be empty")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, errs.Validation("Invalid email address: %s", req.Email)
	}
	if len(req.Password) < 8 {
		return nil, errs.Validation("Password must be at least 8 characters")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, errs.Validation("Invalid role: %s", role)
	}

	taken, err := s.DB.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, errs.Conflict("User with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Password:  string(hash),
		Name:      req.Name,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.DB.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	users, err := s.DB.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.DB.GetUserByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "User with ID %s not found", id)
	}
	return user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	user, err := s.DB.GetUserByEmail(email)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "User with email %s not found", email)
	}
	return user, nil
}

func (s *UserService) Update(id string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.DB.GetUserByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "User with ID %s not found", id)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.Validation("name is required and cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			return nil, errs.Validation("Password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, errs.Validation("Invalid role: %s", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.DB.UpdateUser(*user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return user, nil
}

func (s *UserService) Delete(id string) error {
	if _, err := s.DB.GetUserByID(id); err != nil {
		return errs.Wrap(errs.KindNotFound, err, "User with ID %s not found", id)
	}
	if err := s.DB.DeleteUser(id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}
