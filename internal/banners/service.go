package banners

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"flightly/internal/errs"
	"flightly/internal/models"
)

var urlPattern = regexp.MustCompile(`^https?://`)

type DBLayer interface {
	CreateBanner(banner models.Banner) error
	GetBannerByID(id string) (*models.Banner, error)
	ListBanners() ([]models.Banner, error)
	ListActiveBanners() ([]models.Banner, error)
	UpdateBanner(banner models.Banner) error
	DeleteBanner(id string) error
}

type BannerService struct {
	DB DBLayer
}

func NewBannerService(db DBLayer) *BannerService {
	return &BannerService{DB: db}
}

func (s *BannerService) Create(req models.CreateBannerRequest) (*models.Banner, error) {
	if req.Title == "" {
		return nil, errs.Validation("title is required and cannot be empty")
	}
	if req.Description == "" {
		return nil, errs.Validation("description is required and cannot be empty")
	}
	if req.ImageURL == "" {
		return nil, errs.Validation("imageUrl is required and cannot be empty")
	}
	if len(req.Title) < 2 || len(req.Title) > 100 {
		return nil, errs.Validation("Title must be between 2 and 100 characters")
	}
	if len(req.Description) < 5 || len(req.Description) > 500 {
		return nil, errs.Validation("Description must be between 5 and 500 characters")
	}
	if !urlPattern.MatchString(req.ImageURL) {
		return nil, errs.Validation("imageUrl must be a valid http(s) URL")
	}
	if req.Link != "" && !urlPattern.MatchString(req.Link) {
		return nil, errs.Validation("link must be a valid http(s) URL")
	}
	if req.Duration < 1 {
		return nil, errs.Validation("Duration must be a positive number")
	}
	if !req.Type.Valid() {
		return nil, errs.Validation("Invalid banner type: %s", req.Type)
	}

	now := time.Now()
	banner := models.Banner{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		Duration:    req.Duration,
		Active:      true,
		Type:        req.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.DB.CreateBanner(banner); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}
	return &banner, nil
}

func (s *BannerService) List() ([]models.Banner, error) {
	banners, err := s.DB.ListBanners()
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// ListActive returns only banners currently eligible for display.
func (s *BannerService) ListActive() ([]models.Banner, error) {
	banners, err := s.DB.ListActiveBanners()
	if err != nil {
		return nil, fmt.Errorf("failed to list active banners: %w", err)
	}
	return banners, nil
}

func (s *BannerService) Get(id string) (*models.Banner, error) {
	banner, err := s.DB.GetBannerByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Banner with ID %s not found", id)
	}
	return banner, nil
}

func (s *BannerService) Update(id string, req models.UpdateBannerRequest) (*models.Banner, error) {
	banner, err := s.DB.GetBannerByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Banner with ID %s not found", id)
	}

	if req.Title != nil {
		if len(*req.Title) < 2 || len(*req.Title) > 100 {
			return nil, errs.Validation("Title must be between 2 and 100 characters")
		}
		banner.Title = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) < 5 || len(*req.Description) > 500 {
			return nil, errs.Validation("Description must be between 5 and 500 characters")
		}
		banner.Description = *req.Description
	}
	if req.ImageURL != nil {
		if !urlPattern.MatchString(*req.ImageURL) {
			return nil, errs.Validation("imageUrl must be a valid http(s) URL")
		}
		banner.ImageURL = *req.ImageURL
	}
	if req.Link != nil {
		if *req.Link != "" && !urlPattern.MatchString(*req.Link) {
			return nil, errs.Validation("link must be a valid http(s) URL")
		}
		banner.Link = *req.Link
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			return nil, errs.Validation("Duration must be a positive number")
		}
		banner.Duration = *req.Duration
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, errs.Validation("Invalid banner type: %s", *req.Type)
		}
		banner.Type = *req.Type
	}
	banner.UpdatedAt = time.Now()

	if err := s.DB.UpdateBanner(*banner); err != nil {
		return nil, fmt.Errorf("failed to update banner %s: %w", id, err)
	}
	return banner, nil
}

func (s *BannerService) Delete(id string) error {
	if _, err := s.DB.GetBannerByID(id); err != nil {
		return errs.Wrap(errs.KindNotFound, err, "Banner with ID %s not found", id)
	}
	if err := s.DB.DeleteBanner(id); err != nil {
		return fmt.Errorf("failed to delete banner %s: %w", id, err)
	}
	return nil
}
