package models

// Credentials is the body of /auth/login and /auth/register.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by both auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}
