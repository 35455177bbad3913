package state

import (
	"context"

	"github.com/jcsoftlabs/Yeng-client/internal/common"
)

// TokenStore adapts the key/value repository to the API client's token
// mirror, persisting the bearer token under its fixed key.
type TokenStore struct {
	repo Repository
}

func NewTokenStore(repo Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenStateKey, []byte(token))
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStateKey)
}

// Load returns the persisted token, empty when none is stored.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, common.TokenStateKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
