package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
)

// Profile re-fetches and renders the customer's profile and addresses.
func (a *App) Profile(ctx context.Context) error {
	customer, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}
	renderCustomer(customer)
	return nil
}

// UpdateProfile walks an edit form over the current profile; Enter keeps the
// existing value of a field. The server's answer is rendered afterwards.
func (a *App) UpdateProfile(ctx context.Context) error {
	current, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}

	firstName, err := getOptionalText(a.reader, "First name", current.FirstName, os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getOptionalText(a.reader, "Last name", current.LastName, os.Stdout)
	if err != nil {
		return err
	}
	email, err := getOptionalText(a.reader, "Email", current.Email, os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getOptionalText(a.reader, "Phone", current.Phone, os.Stdout)
	if err != nil {
		return err
	}
	haitiAddress, err := getOptionalText(a.reader, "Haiti address", current.AddressLine1, os.Stdout)
	if err != nil {
		return err
	}
	haitiCity, err := getOptionalText(a.reader, "City", current.City, os.Stdout)
	if err != nil {
		return err
	}
	haitiDepartment, err := getOptionalText(a.reader, "Department", current.AddressLine2, os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.profile.Update(ctx, models.UpdateProfileRequest{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Phone:           phone,
		HaitiAddress:    haitiAddress,
		HaitiCity:       haitiCity,
		HaitiDepartment: haitiDepartment,
	})
	if err != nil {
		return err
	}

	printlnFn("Profile updated.")
	renderCustomer(updated)
	return nil
}

func renderCustomer(c *models.Customer) {
	printlnFn(fmt.Sprintf("%s %s <%s> %s", c.FirstName, c.LastName, c.Email, c.Phone))
	printlnFn("")
	printlnFn("USA forwarding address:")
	printlnFn(c.USAAddress())
	if c.AddressLine1 != "" {
		printlnFn("")
		printlnFn("Haiti delivery address:")
		printlnFn(fmt.Sprintf("%s, %s %s", c.AddressLine1, c.City, c.AddressLine2))
	}
}
