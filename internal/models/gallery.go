package models

import (
	"time"

	"github.com/uptrace/bun"
)

type GalleryCategory string

const (
	GalleryAircraft    GalleryCategory = "aircraft"
	GalleryDestination GalleryCategory = "destination"
	GalleryService     GalleryCategory = "service"
	GalleryEvent       GalleryCategory = "event"
)

func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryAircraft, GalleryDestination, GalleryService, GalleryEvent:
		return true
	}
	return false
}

type GalleryItem struct {
	bun.BaseModel `bun:"table:gallery_items"`

	ID          string          `bun:"id,pk" json:"id"`
	Title       string          `bun:"title,notnull" json:"title"`
	Description string          `bun:"description,notnull" json:"description"`
	ImageURL    string          `bun:"image_url,notnull" json:"imageUrl"`
	Active      bool            `bun:"active" json:"active"`
	Category    GalleryCategory `bun:"category,notnull" json:"category"`
	CreatedAt   time.Time       `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt   time.Time       `bun:"updated_at,notnull" json:"updatedAt"`
}

type CreateGalleryRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Category    GalleryCategory `json:"category"`
}

type UpdateGalleryRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	Active      *bool            `json:"active,omitempty"`
	Category    *GalleryCategory `json:"category,omitempty"`
}
