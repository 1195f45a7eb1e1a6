package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
)

// fakeClient implements client.Client and records every call it receives.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	token    string
	tokenErr error

	page    *models.Page
	pageErr error

	user    *models.User
	userErr error

	deleteErr error

	lastForm models.UserForm
	lastID   string
	lastLat  float64
	lastLon  float64
	lastPage int
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Login(_ context.Context, _ models.Credentials) (string, error) {
	f.record("Login")
	return f.token, f.tokenErr
}

func (f *fakeClient) Register(_ context.Context, _ models.Credentials) (string, error) {
	f.record("Register")
	return f.token, f.tokenErr
}

func (f *fakeClient) ListUsers(_ context.Context, page int) (*models.Page, error) {
	f.record("ListUsers")
	f.lastPage = page
	return f.page, f.pageErr
}

func (f *fakeClient) ListNearbyUsers(_ context.Context, lat, lon float64, page int) (*models.Page, error) {
	f.record("ListNearbyUsers")
	f.lastLat, f.lastLon, f.lastPage = lat, lon, page
	return f.page, f.pageErr
}

func (f *fakeClient) GetUser(_ context.Context, id string) (*models.User, error) {
	f.record("GetUser")
	f.lastID = id
	return f.user, f.userErr
}

func (f *fakeClient) CreateUser(_ context.Context, form models.UserForm) (*models.User, error) {
	f.record("CreateUser")
	f.lastForm = form
	return f.user, f.userErr
}

func (f *fakeClient) UpdateUser(_ context.Context, id string, form models.UserForm) (*models.User, error) {
	f.record("UpdateUser")
	f.lastID, f.lastForm = id, form
	return f.user, f.userErr
}

func (f *fakeClient) DeleteUser(_ context.Context, id string) error {
	f.record("DeleteUser")
	f.lastID = id
	return f.deleteErr
}
