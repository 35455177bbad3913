package services

import (
	"context"

	"github.com/jcsoftlabs/Yeng-client/internal/client/api"
	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/session"
)

// ProfileService drives the profile page: read, edit, re-fetch.
type ProfileService interface {
	Get(ctx context.Context) (*models.Customer, error)
	Update(ctx context.Context, req models.UpdateProfileRequest) (*models.Customer, error)
}

type profileService struct {
	client  api.Client
	session *session.Store
}

func NewProfileService(client api.Client, sess *session.Store) ProfileService {
	return &profileService{client: client, session: sess}
}

func (s *profileService) Get(ctx context.Context) (*models.Customer, error) {
	return s.client.GetProfile(ctx)
}

// Update sends the edit and replaces the stored profile with the server's
// authoritative answer.
func (s *profileService) Update(ctx context.Context, req models.UpdateProfileRequest) (*models.Customer, error) {
	customer, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	s.session.SetCustomer(ctx, customer)
	return customer, nil
}
