package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type SessionResponse struct {
	AccessToken string     `json:"access_token,omitempty"`
	User        PublicUser `json:"user"`
}
