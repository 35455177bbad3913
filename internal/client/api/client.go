// Package api is the single point of contact with the Yeng backend. It wraps
// net/http with bearer-token lifecycle management, decodes every payload into
// typed records, and raises a uniform *RequestError on non-success statuses.
package api

import (
	"context"

	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
)

// Client defines the backend operations the portal consumes.
//
// All methods honor context cancellation/timeouts. Login stores the returned
// bearer token as a side effect; every subsequent request carries it as
// "Authorization: Bearer <token>" until ClearToken is called.
type Client interface {
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	Token() string

	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Customer, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error

	GetProfile(ctx context.Context) (*models.Customer, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.Customer, error)

	GetParcels(ctx context.Context) ([]models.Parcel, error)
	GetParcel(ctx context.Context, id string) (*models.Parcel, error)
	TrackParcel(ctx context.Context, trackingNumber string) (*models.Parcel, error)

	GetInvoices(ctx context.Context) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
	DownloadInvoicePDF(ctx context.Context, id string) ([]byte, error)
}

// TokenStore mirrors the bearer token into durable client storage so a
// restarted client can resume its session.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
