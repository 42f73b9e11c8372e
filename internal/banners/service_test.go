package banners_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"flightly/internal/banners"
	"flightly/internal/errs"
	"flightly/internal/models"
)

// Mock implementations
type MockBannerDB struct {
	mock.Mock
}

func (m *MockBannerDB) CreateBanner(banner models.Banner) error {
	args := m.Called(banner)
	return args.Error(0)
}

func (m *MockBannerDB) GetBannerByID(id string) (*models.Banner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockBannerDB) ListBanners() ([]models.Banner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Banner), args.Error(1)
}

func (m *MockBannerDB) ListActiveBanners() ([]models.Banner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Banner), args.Error(1)
}

func (m *MockBannerDB) UpdateBanner(banner models.Banner) error {
	args := m.Called(banner)
	return args.Error(0)
}

func (m *MockBannerDB) DeleteBanner(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func validBannerRequest() models.CreateBannerRequest {
	return models.CreateBannerRequest{
		Title:       "Summer Sale",
		Description: "Up to 30% off on all Istanbul flights this summer.",
		ImageURL:    "https://cdn.example.com/banners/summer.png",
		Link:        "https://example.com/sale",
		Duration:    15,
		Type:        models.BannerPromotion,
	}
}

// Tests start here
func TestCreateBanner(t *testing.T) {
	mockDB := new(MockBannerDB)
	service := banners.NewBannerService(mockDB)

	mockDB.On("CreateBanner", mock.MatchedBy(func(b models.Banner) bool {
		return b.Title == "Summer Sale" && b.Active
	})).Return(nil)

	banner, err := service.Create(validBannerRequest())

	assert.NoError(t, err)
	assert.True(t, banner.Active)
	mockDB.AssertExpectations(t)
}

func TestCreateBannerValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.CreateBannerRequest)
		message string
	}{
		{
			"missing title",
			func(r *models.CreateBannerRequest) { r.Title = "" },
			"title is required",
		},
		{
			"image url without scheme",
			func(r *models.CreateBannerRequest) { r.ImageURL = "cdn.example.com/banner.png" },
			"imageUrl must be a valid http(s) URL",
		},
		{
			"bad optional link",
			func(r *models.CreateBannerRequest) { r.Link = "ftp://example.com" },
			"link must be a valid http(s) URL",
		},
		{
			"short description",
			func(r *models.CreateBannerRequest) { r.Description = "Hey" },
			"between 5 and 500 characters",
		},
		{
			"zero duration",
			func(r *models.CreateBannerRequest) { r.Duration = 0 },
			"Duration must be a positive number",
		},
		{
			"unknown type",
			func(r *models.CreateBannerRequest) { r.Type = "popup" },
			"Invalid banner type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(MockBannerDB)
			service := banners.NewBannerService(mockDB)

			req := validBannerRequest()
			tc.mutate(&req)

			_, err := service.Create(req)

			assert.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindValidation), "expected validation kind, got %v", err)
			assert.Contains(t, err.Error(), tc.message)
			mockDB.AssertNotCalled(t, "CreateBanner", mock.Anything)
		})
	}
}

func TestCreateBannerEmptyLinkAllowed(t *testing.T) {
	mockDB := new(MockBannerDB)
	service := banners.NewBannerService(mockDB)

	mockDB.On("CreateBanner", mock.Anything).Return(nil)

	req := validBannerRequest()
	req.Link = ""
	_, err := service.Create(req)

	assert.NoError(t, err, "empty link should be accepted")
}

func TestListActiveBanners(t *testing.T) {
	mockDB := new(MockBannerDB)
	service := banners.NewBannerService(mockDB)

	mockDB.On("ListActiveBanners").Return([]models.Banner{
		{ID: "b1", Title: "Summer Sale", Active: true},
	}, nil)

	active, err := service.ListActive()

	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "b1", active[0].ID)
	mockDB.AssertExpectations(t)
}

func TestUpdateBannerPartialValidation(t *testing.T) {
	mockDB := new(MockBannerDB)
	service := banners.NewBannerService(mockDB)

	existing := &models.Banner{
		ID:          "b1",
		Title:       "Summer Sale",
		Description: "Up to 30% off on all Istanbul flights this summer.",
		ImageURL:    "https://cdn.example.com/banners/summer.png",
		Duration:    15,
		Active:      true,
		Type:        models.BannerPromotion,
	}
	mockDB.On("GetBannerByID", "b1").Return(existing, nil)

	badURL := "not-a-url"
	_, err := service.Update("b1", models.UpdateBannerRequest{ImageURL: &badURL})

	assert.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation), "expected validation kind, got %v", err)
	// The stored record must be untouched after the failed patch.
	mockDB.AssertNotCalled(t, "UpdateBanner", mock.Anything)
	assert.Equal(t, "https://cdn.example.com/banners/summer.png", existing.ImageURL)
}
