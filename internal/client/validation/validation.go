// Package validation performs the client-side presence checks that run before
// a user form is submitted. It never talks to the network.
package validation

import (
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// Form field keys, as reported in Errors.
const (
	FieldTitle       = "title"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPhone       = "phone"
	FieldRole        = "role"
)

// fields maps struct field names of models.UserForm to error keys and messages.
var fields = map[string]struct{ key, msg string }{
	"Title":       {FieldTitle, "Title is required"},
	"Username":    {FieldName, "Name is required"},
	"Description": {FieldDescription, "Description is required"},
	"PhoneNumber": {FieldPhone, "Phone is required"},
	"Role":        {FieldRole, "Role is required"},
}

// Errors maps a field key to its message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e[k])
	}
	return strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// UserForm returns nil when every field is present, otherwise Errors.
// Whitespace-only values count as missing.
func UserForm(form models.UserForm) error {
	trimmed := models.UserForm{
		Title:       strings.TrimSpace(form.Title),
		Username:    strings.TrimSpace(form.Username),
		Description: strings.TrimSpace(form.Description),
		PhoneNumber: strings.TrimSpace(form.PhoneNumber),
		Role:        strings.TrimSpace(form.Role),
	}

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := Errors{}
	for _, fe := range verrs {
		if f, ok := fields[fe.StructField()]; ok {
			out[f.key] = f.msg
		}
	}
	return out
}

// AsErrors extracts field errors from err.
func AsErrors(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
