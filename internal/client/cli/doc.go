// Package cli is the terminal front end of the Yeng customer portal.
//
// The app starts by hydrating the persisted session; until that finishes no
// command that needs an authorization decision runs. After hydration the user
// lands either at the authenticated prompt or at the login/register prompt.
//
// Commands
//
//	Not logged in:
//	  - help                      — show available commands
//	  - register                  — two-step account creation
//	  - login                     — authenticate
//	  - forgot                    — request a password reset email
//	  - reset <token>             — set a new password with the emailed token
//	  - track <number>            — public parcel tracking
//	  - exit | quit               — leave the program
//
//	Logged in, additionally:
//	  - dashboard                 — counters, USA address, recent parcels
//	  - parcels [term] [status]   — parcel list with client-side filters
//	  - parcel <id>               — parcel detail with timeline
//	  - profile                   — show the profile and USA address
//	  - update                    — edit the profile
//	  - invoices                  — list invoices
//	  - invoice <id>              — invoice detail
//	  - pdf <id>                  — download an invoice PDF
//	  - logout                    — clear the session
package cli
