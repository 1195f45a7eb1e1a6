package services

import (
	"context"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/client"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/store"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/validation"
	"github.com/dmitrijs2005/emergencyhelp/internal/logging"
)

// DirectoryService issues the directory requests and records each one in the
// directory store as pending, then fulfilled or rejected.
//
// Responses are applied in arrival order; a superseded request is not
// cancelled. Create and UpdateByID validate the form first and return
// validation.Errors without dispatching anything.
type DirectoryService interface {
	List(ctx context.Context, page int) error
	ListNearby(ctx context.Context, latitude, longitude float64, page int) error
	GetByID(ctx context.Context, id string) error
	Create(ctx context.Context, form models.UserForm) (*models.User, error)
	UpdateByID(ctx context.Context, id string, form models.UserForm) error
	DeleteByID(ctx context.Context, id string) error
	ClearSelected()
}

type directoryService struct {
	client client.Client
	store  *store.DirectoryStore
	logger logging.Logger
}

func NewDirectoryService(c client.Client, s *store.DirectoryStore, logger logging.Logger) DirectoryService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &directoryService{client: c, store: s, logger: logger}
}

// run wraps call in the pending/fulfilled/rejected contract.
func (d *directoryService) run(ctx context.Context, op store.Operation, call func(ctx context.Context) (store.DirectoryAction, error)) error {
	d.store.Dispatch(store.Pending{Op: op})

	action, err := call(ctx)
	if err != nil {
		d.store.Dispatch(store.Rejected{Op: op, Message: err.Error()})
		d.logger.Warn(ctx, "directory request failed", "op", string(op), "error", err)
		return err
	}

	d.store.Dispatch(action)
	return nil
}

func (d *directoryService) List(ctx context.Context, page int) error {
	return d.run(ctx, store.OpList, func(ctx context.Context) (store.DirectoryAction, error) {
		p, err := d.client.ListUsers(ctx, page)
		if err != nil {
			return nil, err
		}
		return store.ListFulfilled{Page: *p}, nil
	})
}

func (d *directoryService) ListNearby(ctx context.Context, latitude, longitude float64, page int) error {
	return d.run(ctx, store.OpListNearby, func(ctx context.Context) (store.DirectoryAction, error) {
		p, err := d.client.ListNearbyUsers(ctx, latitude, longitude, page)
		if err != nil {
			return nil, err
		}
		return store.NearbyFulfilled{Page: *p}, nil
	})
}

func (d *directoryService) GetByID(ctx context.Context, id string) error {
	return d.run(ctx, store.OpGetByID, func(ctx context.Context) (store.DirectoryAction, error) {
		u, err := d.client.GetUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return store.GetByIDFulfilled{User: *u}, nil
	})
}

func (d *directoryService) Create(ctx context.Context, form models.UserForm) (*models.User, error) {
	if err := validation.UserForm(form); err != nil {
		return nil, err
	}

	var created *models.User
	err := d.run(ctx, store.OpCreate, func(ctx context.Context) (store.DirectoryAction, error) {
		u, err := d.client.CreateUser(ctx, form)
		if err != nil {
			return nil, err
		}
		created = u
		return store.CreateFulfilled{User: *u}, nil
	})
	return created, err
}

func (d *directoryService) UpdateByID(ctx context.Context, id string, form models.UserForm) error {
	if err := validation.UserForm(form); err != nil {
		return err
	}

	return d.run(ctx, store.OpUpdateByID, func(ctx context.Context) (store.DirectoryAction, error) {
		u, err := d.client.UpdateUser(ctx, id, form)
		if err != nil {
			return nil, err
		}
		return store.UpdateFulfilled{ID: id, User: *u}, nil
	})
}

func (d *directoryService) DeleteByID(ctx context.Context, id string) error {
	return d.run(ctx, store.OpDeleteByID, func(ctx context.Context) (store.DirectoryAction, error) {
		if err := d.client.DeleteUser(ctx, id); err != nil {
			return nil, err
		}
		return store.DeleteFulfilled{ID: id}, nil
	})
}

func (d *directoryService) ClearSelected() {
	d.store.ClearSelected()
}
