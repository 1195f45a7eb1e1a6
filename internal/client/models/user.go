// Package models defines the client-side view of directory users and the
// payloads exchanged with the backend.
package models

// PointType is the only GeoJSON geometry the backend returns for users.
const PointType = "Point"

// Location is a GeoJSON point. Coordinates are ordered [longitude, latitude].
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewLocation builds a point from latitude and longitude.
func NewLocation(latitude, longitude float64) Location {
	return Location{Type: PointType, Coordinates: [2]float64{longitude, latitude}}
}

func (l Location) Longitude() float64 { return l.Coordinates[0] }
func (l Location) Latitude() float64  { return l.Coordinates[1] }

// User is one directory entry. Address is derived on the client from Location
// and is never sent to the backend.
type User struct {
	ID          string   `json:"_id"`
	Username    string   `json:"username"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PhoneNumber string   `json:"phoneNumber"`
	Role        string   `json:"role"`
	Location    Location `json:"location"`
	Address     string   `json:"-"`
}

// Page is one page of a paginated user collection. The zero value is the
// uninitialized collection.
type Page struct {
	Users       []User `json:"users"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

// Clone returns a copy whose Users slice does not alias p's.
func (p Page) Clone() Page {
	out := p
	if p.Users != nil {
		out.Users = append([]User(nil), p.Users...)
	}
	return out
}

// UserForm is the editable subset of a user submitted by create and update.
type UserForm struct {
	Title       string `json:"title" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Description string `json:"description" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

// FormFromUser pre-fills a form from an existing record.
func FormFromUser(u *User) UserForm {
	if u == nil {
		return UserForm{}
	}
	return UserForm{
		Title:       u.Title,
		Username:    u.Username,
		Description: u.Description,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}
