package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jcsoftlabs/Yeng-client/internal/common"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session store.
// Empty credentials are rejected locally; backend rejections (for example
// "Invalid credentials") surface as returned errors. The password byte slice
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	snap := a.session.Snapshot()
	printlnFn(fmt.Sprintf("Bonjou %s!", snap.Customer.FirstName))
	return nil
}

// Logout clears the session everywhere: memory, API client, durable storage.
// It never fails from the user's perspective.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// ResetPassword redeems the token from the reset email against a new
// password, prompted twice without echo. Both copies are wiped before
// returning. An expired or invalid token surfaces as the backend's error.
func (a *App) ResetPassword(ctx context.Context, token string) error {
	password, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.registration.ResetPassword(ctx, token, string(password), string(confirm)); err != nil {
		return err
	}

	printlnFn("Password updated. You can now log in.")
	return nil
}

// ForgotPassword requests a reset email. The confirmation is printed
// regardless of whether the address exists; the backend answers the same
// either way.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.registration.ForgotPassword(ctx, email); err != nil {
		return err
	}

	printlnFn("If the address exists, a reset email is on its way.")
	return nil
}
