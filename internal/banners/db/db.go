package db

import (
	"context"

	"github.com/uptrace/bun"

	"flightly/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateBanner(banner models.Banner) error {
	_, err := d.Bun.NewInsert().Model(&banner).Exec(context.Background())
	return err
}

func (d *DB) GetBannerByID(id string) (*models.Banner, error) {
	var banner models.Banner
	err := d.Bun.NewSelect().
		Model(&banner).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &banner, nil
}

func (d *DB) ListBanners() ([]models.Banner, error) {
	var banners []models.Banner
	err := d.Bun.NewSelect().
		Model(&banners).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (d *DB) ListActiveBanners() ([]models.Banner, error) {
	var banners []models.Banner
	err := d.Bun.NewSelect().
		Model(&banners).
		Where("active = ?", true).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (d *DB) UpdateBanner(banner models.Banner) error {
	_, err := d.Bun.NewUpdate().
		Model(&banner).
		Column("title", "description", "image_url", "link", "duration", "active", "type", "updated_at").
		Where("id = ?", banner.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteBanner(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Banner)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
