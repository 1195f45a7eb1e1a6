package store

import (
	"testing"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func john() models.User {
	return models.User{
		ID:          "1",
		Username:    "John",
		Title:       "User",
		Description: "Test",
		PhoneNumber: "12345",
		Role:        "Admin",
		Location:    models.NewLocation(20, 10),
	}
}

func loaded(users ...models.User) DirectoryState {
	return DirectoryState{AllUsers: models.Page{Users: users, TotalPages: 1, CurrentPage: 1}}
}

func TestReduceDirectory_PendingAndRejected(t *testing.T) {
	s := ReduceDirectory(DirectoryState{Error: "old"}, Pending{Op: OpList})
	assert.True(t, s.Loading)
	assert.Equal(t, "", s.Error)

	s = ReduceDirectory(s, Rejected{Op: OpList, Message: "Network Error"})
	assert.False(t, s.Loading)
	assert.Equal(t, "Network Error", s.Error)
}

func TestReduceDirectory_RejectedDefaults(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpList, "Failed to load users"},
		{OpListNearby, "Failed to load nearby users"},
		{OpGetByID, "Failed to load user by ID"},
		{OpCreate, "Failed to load users"},
		{OpUpdateByID, "Failed to update user"},
		{OpDeleteByID, "Failed to delete user"},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			s := ReduceDirectory(DirectoryState{}, Pending{Op: tt.op})
			s = ReduceDirectory(s, Rejected{Op: tt.op})
			assert.Equal(t, tt.want, s.Error)
		})
	}
}

func TestReduceDirectory_LoadingTracksInFlight(t *testing.T) {
	s := ReduceDirectory(DirectoryState{}, Pending{Op: OpList})
	s = ReduceDirectory(s, Pending{Op: OpListNearby})

	s = ReduceDirectory(s, ListFulfilled{Page: models.Page{CurrentPage: 1, TotalPages: 1}})
	assert.True(t, s.Loading)

	s = ReduceDirectory(s, NearbyFulfilled{})
	assert.False(t, s.Loading)
	assert.Equal(t, 0, s.InFlight)
}

func TestReduceDirectory_ListReplacesWholesale(t *testing.T) {
	for page := 1; page <= 3; page++ {
		returned := []models.User{{ID: "b"}, {ID: "a"}, {ID: "c"}}
		s := ReduceDirectory(loaded(john()), Pending{Op: OpList})
		s = ReduceDirectory(s, ListFulfilled{Page: models.Page{Users: returned, TotalPages: 3, CurrentPage: page}})

		assert.Equal(t, page, s.AllUsers.CurrentPage)
		assert.Equal(t, returned, s.AllUsers.Users)
	}
}

func TestReduceDirectory_ListScenario(t *testing.T) {
	s := ReduceDirectory(DirectoryState{}, Pending{Op: OpList})
	s = ReduceDirectory(s, ListFulfilled{Page: models.Page{Users: []models.User{john()}, TotalPages: 2, CurrentPage: 1}})

	assert.Equal(t, 2, s.AllUsers.TotalPages)
	require.Len(t, s.AllUsers.Users, 1)
	assert.Equal(t, "1", s.AllUsers.Users[0].ID)
	assert.Equal(t, models.Page{}, s.NearbyUsers)
}

func TestReduceDirectory_LastArrivingWins(t *testing.T) {
	s := ReduceDirectory(DirectoryState{}, Pending{Op: OpList})
	s = ReduceDirectory(s, Pending{Op: OpList})

	s = ReduceDirectory(s, ListFulfilled{Page: models.Page{CurrentPage: 2, TotalPages: 2}})
	s = ReduceDirectory(s, ListFulfilled{Page: models.Page{CurrentPage: 1, TotalPages: 2}})

	assert.Equal(t, 1, s.AllUsers.CurrentPage)
}

func TestReduceDirectory_NearbyIndependent(t *testing.T) {
	s := ReduceDirectory(loaded(john()), NearbyFulfilled{Page: models.Page{Users: []models.User{{ID: "n"}}, TotalPages: 1, CurrentPage: 1}})

	assert.Equal(t, "n", s.NearbyUsers.Users[0].ID)
	assert.Equal(t, "1", s.AllUsers.Users[0].ID)
}

func TestReduceDirectory_GetByIDAndClearSelected(t *testing.T) {
	u := john()
	s := ReduceDirectory(DirectoryState{}, GetByIDFulfilled{User: u})
	require.NotNil(t, s.SelectedUser)
	assert.Equal(t, u, *s.SelectedUser)

	s = ReduceDirectory(s, ClearSelected{})
	assert.Nil(t, s.SelectedUser)

	s = ReduceDirectory(s, ClearSelected{})
	assert.Nil(t, s.SelectedUser)
}

func TestReduceDirectory_CreateDoesNotMerge(t *testing.T) {
	before := loaded(john())
	s := ReduceDirectory(before, Pending{Op: OpCreate})
	s = ReduceDirectory(s, CreateFulfilled{User: models.User{ID: "2"}})

	assert.Equal(t, before.AllUsers, s.AllUsers)
}

func TestReduceDirectory_UpdateScenario(t *testing.T) {
	other := models.User{ID: "0", Username: "Zed"}
	before := loaded(other, john())

	updated := john()
	updated.Username = "John Updated"
	s := ReduceDirectory(before, UpdateFulfilled{ID: "1", User: updated})

	require.Len(t, s.AllUsers.Users, 2)
	assert.Equal(t, other, s.AllUsers.Users[0])
	assert.Equal(t, updated, s.AllUsers.Users[1])
	assert.Equal(t, "John", before.AllUsers.Users[1].Username, "previous state must not be mutated")
}

func TestReduceDirectory_UpdateIdempotent(t *testing.T) {
	updated := john()
	updated.Username = "John Updated"
	action := UpdateFulfilled{ID: "1", User: updated}

	once := ReduceDirectory(loaded(john()), action)
	twice := ReduceDirectory(once, action)

	assert.Equal(t, once.AllUsers, twice.AllUsers)
}

func TestReduceDirectory_UpdateMissingIsNoop(t *testing.T) {
	before := loaded(john())
	s := ReduceDirectory(before, UpdateFulfilled{ID: "404", User: models.User{ID: "404"}})
	assert.Equal(t, before.AllUsers, s.AllUsers)
}

func TestReduceDirectory_UpdateFallsBackToResponseID(t *testing.T) {
	updated := john()
	updated.Title = "Nurse"
	s := ReduceDirectory(loaded(john()), UpdateFulfilled{User: updated})
	assert.Equal(t, "Nurse", s.AllUsers.Users[0].Title)
}

func TestReduceDirectory_Delete(t *testing.T) {
	before := loaded(models.User{ID: "0"}, john(), models.User{ID: "2"})
	s := ReduceDirectory(before, DeleteFulfilled{ID: "1"})

	ids := []string{}
	for _, u := range s.AllUsers.Users {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"0", "2"}, ids)
	assert.Len(t, before.AllUsers.Users, 3)
}

func TestReduceDirectory_DeleteMissingIsNoop(t *testing.T) {
	before := loaded(john())
	s := ReduceDirectory(before, DeleteFulfilled{ID: "404"})
	assert.Equal(t, before.AllUsers.Users, s.AllUsers.Users)
	assert.Equal(t, "", s.Error)
}

func TestDirectoryStore_ClearSelected(t *testing.T) {
	s := NewDirectoryStore()
	u := john()
	s.Dispatch(GetByIDFulfilled{User: u})

	var notified bool
	s.Subscribe(func(st DirectoryState) { notified = st.SelectedUser == nil })

	s.ClearSelected()
	assert.Nil(t, s.State().SelectedUser)
	assert.True(t, notified)
}
