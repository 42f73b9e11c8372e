package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Company struct {
	bun.BaseModel `bun:"table:companies"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Code      string    `bun:"code,notnull" json:"code"`
	ManagerID string    `bun:"manager_id,notnull" json:"managerId"`
	IsActive  bool      `bun:"is_active" json:"isActive"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

type CreateCompanyRequest struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	ManagerID string `json:"managerId"`
}

type UpdateCompanyRequest struct {
	Name      *string `json:"name,omitempty"`
	Code      *string `json:"code,omitempty"`
	ManagerID *string `json:"managerId,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}
