package client

import (
	"context"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
)

// Client is the backend REST surface consumed by the services.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, creds models.Credentials) (string, error)

	ListUsers(ctx context.Context, page int) (*models.Page, error)
	ListNearbyUsers(ctx context.Context, latitude, longitude float64, page int) (*models.Page, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, form models.UserForm) (*models.User, error)
	UpdateUser(ctx context.Context, id string, form models.UserForm) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}
