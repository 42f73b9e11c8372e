package gallery

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
	CreateItem(item models.GalleryItem) error
	GetItemByID(id string) (*models.GalleryItem, error)
	ListItems() ([]models.GalleryItem, error)
	ListActiveItems() ([]models.GalleryItem, error)
	UpdateItem(item models.GalleryItem) error
	DeleteItem(id string) error
}

type GalleryService struct {
	DB DBLayer
}

func NewGalleryService(db DBLayer) *GalleryService {
	return &GalleryService{DB: db}
}

func (s *GalleryService) Create(req models.CreateGalleryRequest) (*models.GalleryItem, error) {
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
	if !req.Category.Valid() {
		return nil, errs.Validation("Invalid gallery category: %s", req.Category)
	}

	now := time.Now()
	item := models.GalleryItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      true,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.DB.CreateItem(item); err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}
	return &item, nil
}

func (s *GalleryService) List() ([]models.GalleryItem, error) {
	items, err := s.DB.ListItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	return items, nil
}

func (s *GalleryService) ListActive() ([]models.GalleryItem, error) {
	items, err := s.DB.ListActiveItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list active gallery items: %w", err)
	}
	return items, nil
}

func (s *GalleryService) Get(id string) (*models.GalleryItem, error) {
	item, err := s.DB.GetItemByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Gallery item with ID %s not found", id)
	}
	return item, nil
}

func (s *GalleryService) Update(id string, req models.UpdateGalleryRequest) (*models.GalleryItem, error) {
	item, err := s.DB.GetItemByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Gallery item with ID %s not found", id)
	}

	if req.Title != nil {
		if len(*req.Title) < 2 || len(*req.Title) > 100 {
			return nil, errs.Validation("Title must be between 2 and 100 characters")
		}
		item.Title = *req.Title
	}
	if req.Description != nil {
		if len(*req.Description) < 5 || len(*req.Description) > 500 {
			return nil, errs.Validation("Description must be between 5 and 500 characters")
		}
		item.Description = *req.Description
	}
	if req.ImageURL != nil {
		if !urlPattern.MatchString(*req.ImageURL) {
			return nil, errs.Validation("imageUrl must be a valid http(s) URL")
		}
		item.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, errs.Validation("Invalid gallery category: %s", *req.Category)
		}
		item.Category = *req.Category
	}
	item.UpdatedAt = time.Now()

	if err := s.DB.UpdateItem(*item); err != nil {
		return nil, fmt.Errorf("failed to update gallery item %s: %w", id, err)
	}
	return item, nil
}

func (s *GalleryService) Delete(id string) error {
	if _, err := s.DB.GetItemByID(id); err != nil {
		return errs.Wrap(errs.KindNotFound, err, "Gallery item with ID %s not found", id)
	}
	if err := s.DB.DeleteItem(id); err != nil {
		return fmt.Errorf("failed to delete gallery item %s: %w", id, err)
	}
	return nil
}
