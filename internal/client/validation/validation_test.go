package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() models.UserForm {
	return models.UserForm{
		Title:       "Paramedic",
		Username:    "jane",
		Description: "First aid",
		PhoneNumber: "12345",
		Role:        "user",
	}
}

func TestUserForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UserForm)
		want   Errors
	}{
		{name: "valid", mutate: func(*models.UserForm) {}},
		{name: "missing title", mutate: func(f *models.UserForm) { f.Title = "" }, want: Errors{FieldTitle: "Title is required"}},
		{name: "blank username", mutate: func(f *models.UserForm) { f.Username = "   " }, want: Errors{FieldName: "Name is required"}},
		{name: "missing description", mutate: func(f *models.UserForm) { f.Description = "" }, want: Errors{FieldDescription: "Description is required"}},
		{name: "missing phone", mutate: func(f *models.UserForm) { f.PhoneNumber = "" }, want: Errors{FieldPhone: "Phone is required"}},
		{name: "missing role", mutate: func(f *models.UserForm) { f.Role = "" }, want: Errors{FieldRole: "Role is required"}},
		{
			name:   "everything missing",
			mutate: func(f *models.UserForm) { *f = models.UserForm{} },
			want: Errors{
				FieldTitle:       "Title is required",
				FieldName:        "Name is required",
				FieldDescription: "Description is required",
				FieldPhone:       "Phone is required",
				FieldRole:        "Role is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := UserForm(form)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}

			got, ok := AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestErrors_Error(t *testing.T) {
	e := Errors{FieldRole: "Role is required", FieldName: "Name is required"}
	assert.Equal(t, "Name is required; Role is required", e.Error())
}

func TestAsErrors_Wrapped(t *testing.T) {
	err := fmt.Errorf("submit: %w", Errors{FieldTitle: "Title is required"})
	got, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Title is required", got[FieldTitle])

	_, ok = AsErrors(errors.New("other"))
	assert.False(t, ok)
}
