// Package models defines the typed records exchanged with the Yeng backend.
// Payloads are decoded into these structs at the API client boundary; nothing
// untyped travels past it.
package models

import "fmt"

// Customer is the authenticated customer's profile as returned by the
// backend. CustomAddress is the short mailing-address code used as part of
// the USA forwarding address; FullUSAAddress is the complete derived address.
// The address-line fields hold the optional Haiti delivery address.
type Customer struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	CustomAddress  string `json:"customAddress"`
	FullUSAAddress string `json:"fullUSAAddress"`
	AddressLine1   string `json:"addressLine1,omitempty"`
	AddressLine2   string `json:"addressLine2,omitempty"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
}

// Warehouse address lines appended after the customer's mailing-address code.
const (
	WarehouseStreet  = "7829 NW 72nd Ave"
	WarehouseCity    = "Miami, FL 33166"
	WarehouseCountry = "USA"
)

// USAAddress returns the customer's complete USA forwarding address.
// When the backend did not supply a derived address, it is composed from the
// mailing-address code and the fixed warehouse address.
func (c *Customer) USAAddress() string {
	if c.FullUSAAddress != "" {
		return c.FullUSAAddress
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", c.CustomAddress, WarehouseStreet, WarehouseCity, WarehouseCountry)
}
