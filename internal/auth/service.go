package auth

import (
	"golang.org/x/crypto/bcrypt"

	"flightly/internal/errs"
	"flightly/internal/models"
	"flightly/internal/users"
)

type AuthService struct {
	Users             *users.UserService
	Tokens            *TokenIssuer
	SessionOnRegister bool
}

func NewAuthService(userService *users.UserService, tokens *TokenIssuer, sessionOnRegister bool) *AuthService {
	return &AuthService{
		Users:             userService,
		Tokens:            tokens,
		SessionOnRegister: sessionOnRegister,
	}
}

// Login validates credentials and returns a fresh session.
func (s *AuthService) Login(req models.LoginRequest) (*models.SessionResponse, error) {
	if req.Email == "" {
		return nil, errs.Validation("email is required and cannot be empty")
	}
	if req.Password == "" {
		return nil, errs.Validation("password is required and cannot be empty")
	}

	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		return nil, errs.Auth("Invalid email or password")
	}
	if !user.IsActive {
		return nil, errs.Auth("Account has been blocked. Please contact support.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errs.Auth("Invalid email or password")
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &models.SessionResponse{AccessToken: token, User: user.Public()}, nil
}

// Register creates a user account with the default role. Whether the
// response carries a session token is controlled by configuration.
func (s *AuthService) Register(req models.RegisterRequest) (*models.SessionResponse, error) {
	user, err := s.Users.Create(models.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	resp := &models.SessionResponse{User: user.Public()}
	if s.SessionOnRegister {
		token, err := s.Tokens.Issue(user)
		if err != nil {
			return nil, err
		}
		resp.AccessToken = token
	}
	return resp, nil
}
