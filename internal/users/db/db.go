package db

import (
	"context"

	"github.com/uptrace/bun"

	"flightly/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateUser(user models.User) error {
	_, err := d.Bun.NewInsert().Model(&user).Exec(context.Background())
	return err
}

func (d *DB) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("email = ?", email).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) ListUsers() ([]models.User, error) {
	var users []models.User
	err := d.Bun.NewSelect().
		Model(&users).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (d *DB) UpdateUser(user models.User) error {
	_, err := d.Bun.NewUpdate().
		Model(&user).
		Column("name", "password", "role", "is_active", "updated_at").
		Where("id = ?", user.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteUser(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.User)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

func (d *DB) EmailExists(email string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.User)(nil)).
		Where("email = ?", email).
		Exists(context.Background())
}
