package db

import (
	"context"

	"github.com/uptrace/bun"

	"flightly/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateItem(item models.GalleryItem) error {
	_, err := d.Bun.NewInsert().Model(&item).Exec(context.Background())
	return err
}

func (d *DB) GetItemByID(id string) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := d.Bun.NewSelect().
		Model(&item).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *DB) ListItems() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := d.Bun.NewSelect().
		Model(&items).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (d *DB) ListActiveItems() ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := d.Bun.NewSelect().
		Model(&items).
		Where("active = ?", true).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (d *DB) UpdateItem(item models.GalleryItem) error {
	_, err := d.Bun.NewUpdate().
		Model(&item).
		Column("title", "description", "image_url", "active", "category", "updated_at").
		Where("id = ?", item.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteItem(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.GalleryItem)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
