package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, token string) error
	Dashboard(ctx context.Context) error
	Parcels(ctx context.Context, args []string) error
	Parcel(ctx context.Context, id string) error
	Track(ctx context.Context, trackingNumber string) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Invoices(ctx context.Context) error
	Invoice(ctx context.Context, id string) error
	DownloadInvoice(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the portal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that need an authenticated session are gated here; when the user
// is not logged in they are answered with a login hint instead of reaching
// the backend.
//
// Any errors returned by command handlers are printed and swallowed. This
// keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("yeng %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, parcels [term] [status], parcel <id>, track <number>, profile, update, invoices, invoice <id>, pdf <id>, logout, exit")
				printlnFn("Statuses: " + services.FilterAll + ", " + strings.Join(models.Statuses(), ", "))
			} else {
				printlnFn("Available commands: register, login, forgot, reset <token>, track <number>, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "forgot":
			report(a.ForgotPassword(ctx))

		case "reset":
			if len(args) == 0 {
				printlnFn("Usage: reset <token>")
				continue
			}
			report(a.ResetPassword(ctx, args[0]))

		case "track":
			if len(args) == 0 {
				printlnFn("Usage: track <number>")
				continue
			}
			report(a.Track(ctx, args[0]))

		case "dashboard":
			if !requireLogin(a) {
				continue
			}
			report(a.Dashboard(ctx))

		case "parcels":
			if !requireLogin(a) {
				continue
			}
			report(a.Parcels(ctx, args))

		case "parcel":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: parcel <id>")
				continue
			}
			report(a.Parcel(ctx, args[0]))

		case "profile":
			if !requireLogin(a) {
				continue
			}
			report(a.Profile(ctx))

		case "update":
			if !requireLogin(a) {
				continue
			}
			report(a.UpdateProfile(ctx))

		case "invoices":
			if !requireLogin(a) {
				continue
			}
			report(a.Invoices(ctx))

		case "invoice":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: invoice <id>")
				continue
			}
			report(a.Invoice(ctx, args[0]))

		case "pdf":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: pdf <id>")
				continue
			}
			report(a.DownloadInvoice(ctx, args[0]))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Orevwa!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// requireLogin gates authenticated commands: instead of failing deeper in the
// stack the user is pointed at the login prompt.
func requireLogin(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please log in first (type 'login' or 'register')")
	return false
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}
