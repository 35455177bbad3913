// Package services contains the page view-models of the portal: each service
// re-fetches on entry, derives display-only aggregates, and holds no
// authoritative state of its own.
package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jcsoftlabs/Yeng-client/internal/client/api"
	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/session"
)

// FilterAll selects every status in the parcels-list filter.
const FilterAll = "ALL"

// recentParcelLimit caps the dashboard's recent-parcels strip.
const recentParcelLimit = 5

// DashboardStats are the dashboard counters derived from the parcel list.
// The inTransit and delivered literals are the portal's historical truth
// table and are matched exactly.
type DashboardStats struct {
	TotalParcels   int
	InTransit      int
	Delivered      int
	PendingPayment int
}

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	Stats    DashboardStats
	Recent   []models.Parcel
	Customer *models.Customer
}

// ParcelService drives the dashboard, parcels list/detail, and public
// tracking pages.
type ParcelService interface {
	Dashboard(ctx context.Context) (*DashboardData, error)
	List(ctx context.Context) ([]models.Parcel, error)
	Get(ctx context.Context, id string) (*models.Parcel, error)
	Track(ctx context.Context, trackingNumber string) (*models.Parcel, error)
}

type parcelService struct {
	client  api.Client
	session *session.Store
}

func NewParcelService(client api.Client, sess *session.Store) ParcelService {
	return &parcelService{client: client, session: sess}
}

// Dashboard fetches the parcel list and the profile concurrently and joins
// them; the two requests target disjoint state, so no ordering is assumed.
// The fresher profile is pushed back into the session store.
func (s *parcelService) Dashboard(ctx context.Context) (*DashboardData, error) {
	g, ctx := errgroup.WithContext(ctx)

	var parcels []models.Parcel
	var profile *models.Customer

	g.Go(func() error {
		var err error
		parcels, err = s.client.GetParcels(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.client.GetProfile(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if profile != nil {
		s.session.SetCustomer(ctx, profile)
	}

	recent := parcels
	if len(recent) > recentParcelLimit {
		recent = recent[:recentParcelLimit]
	}

	return &DashboardData{
		Stats:    ComputeStats(parcels),
		Recent:   recent,
		Customer: profile,
	}, nil
}

func (s *parcelService) List(ctx context.Context) ([]models.Parcel, error) {
	return s.client.GetParcels(ctx)
}

func (s *parcelService) Get(ctx context.Context, id string) (*models.Parcel, error) {
	return s.client.GetParcel(ctx, id)
}

func (s *parcelService) Track(ctx context.Context, trackingNumber string) (*models.Parcel, error) {
	return s.client.TrackParcel(ctx, trackingNumber)
}

// ComputeStats derives the dashboard counters from a parcel list.
func ComputeStats(parcels []models.Parcel) DashboardStats {
	stats := DashboardStats{TotalParcels: len(parcels)}
	for _, p := range parcels {
		if p.Status == "IN_TRANSIT" {
			stats.InTransit++
		}
		if p.Status == "DELIVERED" {
			stats.Delivered++
		}
		if p.PaymentStatus == models.PaymentPending {
			stats.PendingPayment++
		}
	}
	return stats
}

// FilterParcels applies the parcels-list page filters client-side: a
// case-insensitive free-text match over tracking number and description, and
// an exact status match unless status is FilterAll.
func FilterParcels(parcels []models.Parcel, term, status string) []models.Parcel {
	term = strings.ToLower(strings.TrimSpace(term))

	filtered := make([]models.Parcel, 0, len(parcels))
	for _, p := range parcels {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.TrackingNumber), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		matchesStatus := status == FilterAll || p.Status == status

		if matchesSearch && matchesStatus {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
