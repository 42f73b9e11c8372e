package companies

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"flightly/internal/errs"
	"flightly/internal/models"
)

// Company codes are 2-3 uppercase letters, e.g. TJ or TJA.
var codePattern = regexp.MustCompile(`^[A-Z]{2,3}$`)

type DBLayer interface {
	CreateCompany(company models.Company) error
	GetCompanyByID(id string) (*models.Company, error)
	ListCompanies() ([]models.Company, error)
	UpdateCompany(company models.Company) error
	DeleteCompany(id string) error
	CompanyNameExists(name string) (bool, error)
	CompanyCodeExists(code string) (bool, error)
}

type CompanyService struct {
	DB DBLayer
}

func NewCompanyService(db DBLayer) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Create(req models.CreateCompanyRequest) (*models.Company, error) {
	if req.Name == "" {
		return nil, errs.Validation("name is required and cannot be empty")
	}
	if req.Code == "" {
		return nil, errs.Validation("code is required and cannot be empty")
	}
	if req.ManagerID == "" {
		return nil, errs.Validation("managerId is required and cannot be empty")
	}
	if !codePattern.MatchString(req.Code) {
		return nil, errs.Validation("Company code must be 2-3 uppercase letters (e.g., TJ, TJA)")
	}
	if len(req.Name) < 2 || len(req.Name) > 100 {
		return nil, errs.Validation("Company name must be between 2 and 100 characters")
	}

	// Both uniqueness checks are case-insensitive.
	nameTaken, err := s.DB.CompanyNameExists(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check company name: %w", err)
	}
	if nameTaken {
		return nil, errs.Conflict("Company with name %q already exists", req.Name)
	}
	codeTaken, err := s.DB.CompanyCodeExists(req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check company code: %w", err)
	}
	if codeTaken {
		return nil, errs.Conflict("Company with code %q already exists", req.Code)
	}

	now := time.Now()
	company := models.Company{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Code:      req.Code,
		ManagerID: req.ManagerID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.DB.CreateCompany(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &company, nil
}

func (s *CompanyService) List() ([]models.Company, error) {
	companies, err := s.DB.ListCompanies()
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *CompanyService) Get(id string) (*models.Company, error) {
	company, err := s.DB.GetCompanyByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Company with ID %s not found", id)
	}
	return company, nil
}

func (s *CompanyService) Update(id string, req models.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.DB.GetCompanyByID(id)
	if err != nil {
		return nil, errs.Wrap(errs.KindNotFound, err, "Company with ID %s not found", id)
	}

	if req.Name != nil {
		if len(*req.Name) < 2 || len(*req.Name) > 100 {
			return nil, errs.Validation("Company name must be between 2 and 100 characters")
		}
		if *req.Name != company.Name {
			taken, err := s.DB.CompanyNameExists(*req.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to check company name: %w", err)
			}
			if taken {
				return nil, errs.Conflict("Company with name %q already exists", *req.Name)
			}
		}
		company.Name = *req.Name
	}
	if req.Code != nil {
		if !codePattern.MatchString(*req.Code) {
			return nil, errs.Validation("Company code must be 2-3 uppercase letters (e.g., TJ, TJA)")
		}
		if *req.Code != company.Code {
			taken, err := s.DB.CompanyCodeExists(*req.Code)
			if err != nil {
				return nil, fmt.Errorf("failed to check company code: %w", err)
			}
			if taken {
				return nil, errs.Conflict("Company with code %q already exists", *req.Code)
			}
		}
		company.Code = *req.Code
	}
	if req.ManagerID != nil {
		if *req.ManagerID == "" {
			return nil, errs.Validation("managerId is required and cannot be empty")
		}
		company.ManagerID = *req.ManagerID
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}
	company.UpdatedAt = time.Now()

	if err := s.DB.UpdateCompany(*company); err != nil {
		return nil, fmt.Errorf("failed to update company %s: %w", id, err)
	}
	return company, nil
}

func (s *CompanyService) Delete(id string) error {
	if _, err := s.DB.GetCompanyByID(id); err != nil {
		return errs.Wrap(errs.KindNotFound, err, "Company with ID %s not found", id)
	}
	if err := s.DB.DeleteCompany(id); err != nil {
		return fmt.Errorf("failed to delete company %s: %w", id, err)
	}
	return nil
}
