package store

import "github.com/dmitrijs2005/emergencyhelp/internal/client/models"

// Operation names one asynchronous directory request.
type Operation string

const (
	OpList       Operation = "list"
	OpListNearby Operation = "listNearby"
	OpGetByID    Operation = "getById"
	OpCreate     Operation = "create"
	OpUpdateByID Operation = "updateById"
	OpDeleteByID Operation = "deleteById"
)

var defaultMessages = map[Operation]string{
	OpList:       "Failed to load users",
	OpListNearby: "Failed to load nearby users",
	OpGetByID:    "Failed to load user by ID",
	OpCreate:     "Failed to load users",
	OpUpdateByID: "Failed to update user",
	OpDeleteByID: "Failed to delete user",
}

// DefaultMessage is used when a request fails without a message of its own.
func DefaultMessage(op Operation) string {
	if msg, ok := defaultMessages[op]; ok {
		return msg
	}
	return "Request failed"
}

// DirectoryState owns both paginated collections and the edit target.
// Loading is true while InFlight > 0.
type DirectoryState struct {
	AllUsers     models.Page
	NearbyUsers  models.Page
	SelectedUser *models.User
	Loading      bool
	InFlight     int
	Error        string
}

type DirectoryAction interface{ directoryAction() }

type Pending struct{ Op Operation }

type Rejected struct {
	Op      Operation
	Message string
}

type ListFulfilled struct{ Page models.Page }

type NearbyFulfilled struct{ Page models.Page }

type GetByIDFulfilled struct{ User models.User }

// CreateFulfilled leaves AllUsers untouched; callers re-list to see the record.
type CreateFulfilled struct{ User models.User }

type UpdateFulfilled struct {
	ID   string
	User models.User
}

type DeleteFulfilled struct{ ID string }

type ClearSelected struct{}

func (Pending) directoryAction()          {}
func (Rejected) directoryAction()         {}
func (ListFulfilled) directoryAction()    {}
func (NearbyFulfilled) directoryAction()  {}
func (GetByIDFulfilled) directoryAction() {}
func (CreateFulfilled) directoryAction()  {}
func (UpdateFulfilled) directoryAction()  {}
func (DeleteFulfilled) directoryAction()  {}
func (ClearSelected) directoryAction()    {}

func ReduceDirectory(state DirectoryState, action DirectoryAction) DirectoryState {
	switch a := action.(type) {
	case Pending:
		state.InFlight++
		state.Error = ""
	case Rejected:
		state = settle(state)
		state.Error = a.Message
		if state.Error == "" {
			state.Error = DefaultMessage(a.Op)
		}
	case ListFulfilled:
		state = settle(state)
		state.AllUsers = a.Page.Clone()
	case NearbyFulfilled:
		state = settle(state)
		state.NearbyUsers = a.Page.Clone()
	case GetByIDFulfilled:
		state = settle(state)
		u := a.User
		state.SelectedUser = &u
	case CreateFulfilled:
		state = settle(state)
	case UpdateFulfilled:
		state = settle(state)
		id := a.ID
		if id == "" {
			id = a.User.ID
		}
		if i := indexByID(state.AllUsers.Users, id); i >= 0 {
			state.AllUsers = state.AllUsers.Clone()
			state.AllUsers.Users[i] = a.User
		}
	case DeleteFulfilled:
		state = settle(state)
		if i := indexByID(state.AllUsers.Users, a.ID); i >= 0 {
			users := make([]models.User, 0, len(state.AllUsers.Users)-1)
			users = append(users, state.AllUsers.Users[:i]...)
			users = append(users, state.AllUsers.Users[i+1:]...)
			state.AllUsers.Users = users
		}
	case ClearSelected:
		state.SelectedUser = nil
		return state
	default:
		return state
	}
	state.Loading = state.InFlight > 0
	return state
}

func settle(state DirectoryState) DirectoryState {
	if state.InFlight > 0 {
		state.InFlight--
	}
	return state
}

func indexByID(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

// DirectoryStore is the user directory store.
type DirectoryStore struct {
	*Store[DirectoryState, DirectoryAction]
}

func NewDirectoryStore() *DirectoryStore {
	return &DirectoryStore{Store: New[DirectoryState, DirectoryAction](DirectoryState{}, ReduceDirectory)}
}

// ClearSelected drops the edit target before a create flow.
func (s *DirectoryStore) ClearSelected() {
	s.Dispatch(ClearSelected{})
}
