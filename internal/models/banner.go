package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BannerType string

const (
	BannerPromotion     BannerType = "promotion"
	BannerAdvertisement BannerType = "advertisement"
)

func (t BannerType) Valid() bool {
	return t == BannerPromotion || t == BannerAdvertisement
}

type Banner struct {
	bun.BaseModel `bun:"table:banners"`

	ID          string     `bun:"id,pk" json:"id"`
	Title       string     `bun:"title,notnull" json:"title"`
	Description string     `bun:"description,notnull" json:"description"`
	ImageURL    string     `bun:"image_url,notnull" json:"imageUrl"`
	Link        string     `bun:"link" json:"link,omitempty"`
	Duration    int        `bun:"duration,notnull" json:"duration"` // seconds on screen
	Active      bool       `bun:"active" json:"active"`
	Type        BannerType `bun:"type,notnull" json:"type"`
	CreatedAt   time.Time  `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull" json:"updatedAt"`
}

type CreateBannerRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Link        string     `json:"link"`
	Duration    int        `json:"duration"`
	Type        BannerType `json:"type"`
}

type UpdateBannerRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	Link        *string     `json:"link,omitempty"`
	Duration    *int        `json:"duration,omitempty"`
	Active      *bool       `json:"active,omitempty"`
	Type        *BannerType `json:"type,omitempty"`
}
