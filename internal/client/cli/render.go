package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/emergencyhelp/internal/client/models"
	"github.com/dmitrijs2005/emergencyhelp/internal/client/validation"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	errorColor   = color.New(color.FgHiRed, color.Bold)
	successColor = color.New(color.FgHiGreen)
	statusColor  = color.New(color.FgHiYellow)
)

func printError(w io.Writer, msg string) {
	errorColor.Fprintln(w, "Error: "+msg)
}

func printSuccess(w io.Writer, msg string) {
	successColor.Fprintln(w, msg)
}

func printStatus(w io.Writer, msg string) {
	statusColor.Fprintln(w, msg)
}

// printValidation lists field messages in a stable order.
func printValidation(w io.Writer, errs validation.Errors) {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		errorColor.Fprintf(w, "  %s: %s\n", k, errs[k])
	}
}

func address(u models.User) string {
	if u.Address == "" {
		return "unknown"
	}
	return u.Address
}

// renderDirectory prints the admin user table.
func renderDirectory(w io.Writer, users []models.User, page models.Page) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Title", "Phone", "Role", "Location")
	for _, u := range users {
		if err := table.Append([]string{u.ID, u.Username, u.Title, u.PhoneNumber, u.Role, address(u)}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	renderPager(w, page)
	return nil
}

// renderNearby prints users around the current position.
func renderNearby(w io.Writer, users []models.User, page models.Page) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "No nearby users found")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Name", "Title", "Description", "Phone", "Address")
	for _, u := range users {
		if err := table.Append([]string{u.Username, u.Title, u.Description, u.PhoneNumber, address(u)}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	renderPager(w, page)
	return nil
}

func renderUser(w io.Writer, u models.User) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")
	rows := [][]string{
		{"ID", u.ID},
		{"Name", u.Username},
		{"Title", u.Title},
		{"Description", u.Description},
		{"Phone", u.PhoneNumber},
		{"Role", u.Role},
		{"Coordinates", fmt.Sprintf("%g, %g", u.Location.Latitude(), u.Location.Longitude())},
		{"Address", address(u)},
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderPager(w io.Writer, page models.Page) {
	if page.TotalPages > 0 {
		fmt.Fprintf(w, "Page %d of %d\n", page.CurrentPage, page.TotalPages)
	}
}
