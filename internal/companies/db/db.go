package db

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"flightly/internal/models"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) CreateCompany(company models.Company) error {
	_, err := d.Bun.NewInsert().Model(&company).Exec(context.Background())
	return err
}

func (d *DB) GetCompanyByID(id string) (*models.Company, error) {
	var company models.Company
	err := d.Bun.NewSelect().
		Model(&company).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (d *DB) ListCompanies() ([]models.Company, error) {
	var companies []models.Company
	err := d.Bun.NewSelect().
		Model(&companies).
		Order("name ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (d *DB) UpdateCompany(company models.Company) error {
	_, err := d.Bun.NewUpdate().
		Model(&company).
		Column("name", "code", "manager_id", "is_active", "updated_at").
		Where("id = ?", company.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteCompany(id string) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Company)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

func (d *DB) CompanyNameExists(name string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Company)(nil)).
		Where("lower(name) = ?", strings.ToLower(name)).
		Exists(context.Background())
}

func (d *DB) CompanyCodeExists(code string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Company)(nil)).
		Where("lower(code) = ?", strings.ToLower(code)).
		Exists(context.Background())
}
