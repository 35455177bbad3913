package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jcsoftlabs/Yeng-client/internal/client/services"
	"github.com/jcsoftlabs/Yeng-client/internal/common"
)

// Register walks the two-step account creation: identity first, then the
// Haiti delivery address. Each step is validated locally before moving on.
// A mailing-address code is derived from the name and shown for confirmation;
// the user can reroll it until they like the suffix. On success the new
// customer is logged in automatically.
func (a *App) Register(ctx context.Context) error {
	identity, err := a.askIdentity()
	if err != nil {
		return err
	}
	if err := a.registration.ValidateIdentity(identity); err != nil {
		return err
	}

	address, err := a.askAddress()
	if err != nil {
		return err
	}
	if err := a.registration.ValidateAddress(address); err != nil {
		return err
	}

	code, err := a.askAddressCode(identity)
	if err != nil {
		return err
	}

	if err := a.registration.Register(ctx, identity, address, code); err != nil {
		return err
	}

	snap := a.session.Snapshot()
	printlnFn(fmt.Sprintf("Account created. Bonjou %s!", snap.Customer.FirstName))
	printlnFn("Your USA forwarding address:")
	printlnFn(snap.Customer.USAAddress())
	return nil
}

func (a *App) askIdentity() (services.IdentityForm, error) {
	var zero services.IdentityForm

	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return zero, err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return zero, err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return zero, err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return zero, err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return zero, err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return zero, err
	}
	defer common.WipeByteArray(confirm)

	return services.IdentityForm{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Phone:           phone,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}, nil
}

func (a *App) askAddress() (services.AddressForm, error) {
	var zero services.AddressForm

	address, err := getSimpleText(a.reader, "Haiti address", os.Stdout)
	if err != nil {
		return zero, err
	}
	city, err := getSimpleText(a.reader, "City", os.Stdout)
	if err != nil {
		return zero, err
	}
	department, err := getSimpleText(a.reader, "Department", os.Stdout)
	if err != nil {
		return zero, err
	}

	return services.AddressForm{
		HaitiAddress:    address,
		HaitiCity:       city,
		HaitiDepartment: department,
	}, nil
}

// askAddressCode derives a code proposal and lets the user reroll the random
// suffix. The backend still owns the final say on the code.
func (a *App) askAddressCode(identity services.IdentityForm) (string, error) {
	for {
		code := services.GenerateAddressCode(identity.FirstName, identity.LastName)
		printlnFn("Proposed mailing-address code:", code)

		answer, err := getSimpleText(a.reader, "Accept? (y/n)", os.Stdout)
		if err != nil {
			return "", err
		}
		if strings.EqualFold(answer, "y") || answer == "" {
			return code, nil
		}
	}
}
