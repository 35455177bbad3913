// Package session is the single source of truth for "who is logged in".
//
// The store moves through three phases: Hydrating until the persisted session
// has been restored from durable storage, then Unauthenticated or
// Authenticated for the rest of the process lifetime. Consumers must not make
// authorization decisions before hydration completes; they can poll Snapshot
// or register an observer with Subscribe.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jcsoftlabs/Yeng-client/internal/client/api"
	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/repositories/state"
	"github.com/jcsoftlabs/Yeng-client/internal/common"
	"github.com/jcsoftlabs/Yeng-client/internal/dbx"
	"github.com/jcsoftlabs/Yeng-client/internal/logging"
)

// Phase is the store's position in its lifecycle.
type Phase int

const (
	PhaseHydrating Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseHydrating:
		return "hydrating"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session handed to observers.
// IsAuthenticated is true iff both Customer and Token are present.
type Snapshot struct {
	Customer        *models.Customer
	Token           string
	IsAuthenticated bool
	HasHydrated     bool
}

// persistedState is the JSON blob written to durable storage under the
// "customer-auth" key. No schema versioning.
type persistedState struct {
	Customer        *models.Customer `json:"customer"`
	Token           string           `json:"token"`
	IsAuthenticated bool             `json:"isAuthenticated"`
}

// Store holds the authenticated customer profile and bearer token, persists
// every change, and notifies subscribers. It is safe for concurrent use; the
// store is the only writer of its durable keys.
type Store struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	mu       sync.RWMutex
	customer *models.Customer
	token    string
	hydrated bool

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

func NewStore(client api.Client, db *sql.DB, log logging.Logger) *Store {
	return &Store{
		client: client,
		db:     db,
		log:    log,
		subs:   make(map[int]func(Snapshot)),
	}
}

func (s *Store) stateRepo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// Snapshot returns the current session view.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Customer:        s.customer,
		Token:           s.token,
		IsAuthenticated: s.customer != nil && s.token != "",
		HasHydrated:     s.hydrated,
	}
}

// Phase derives the lifecycle phase from the current state.
func (s *Store) Phase() Phase {
	snap := s.Snapshot()
	switch {
	case !snap.HasHydrated:
		return PhaseHydrating
	case snap.IsAuthenticated:
		return PhaseAuthenticated
	default:
		return PhaseUnauthenticated
	}
}

// Subscribe registers fn to be called with a snapshot after every state
// change. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Hydrate restores the persisted session from durable storage. It must be
// called once at startup, before any consumer asks the store for an
// authorization decision. A missing, corrupt, or expired session lands in
// Unauthenticated; only then is HasHydrated flipped and observers notified.
func (s *Store) Hydrate(ctx context.Context) error {
	blob, err := s.stateRepo().Get(ctx, common.SessionStateKey)
	if err != nil {
		return fmt.Errorf("read persisted session: %w", err)
	}

	var restored *persistedState
	if blob != nil {
		var ps persistedState
		if err := json.Unmarshal(blob, &ps); err != nil {
			s.log.Warn(ctx, "discarding corrupt persisted session", "error", err)
		} else {
			restored = &ps
		}
	}

	valid := restored != nil && restored.Customer != nil && restored.Token != ""
	if valid {
		if err := tokenUsable(restored.Token); err != nil {
			s.log.Info(ctx, "persisted session rejected", "reason", err)
			valid = false
		}
	}

	if valid {
		if err := s.client.SetToken(ctx, restored.Token); err != nil {
			return fmt.Errorf("restore token: %w", err)
		}
		s.mu.Lock()
		s.customer = restored.Customer
		s.token = restored.Token
		s.hydrated = true
		s.mu.Unlock()
	} else {
		if blob != nil {
			// Stale or unusable leftovers; wipe both keys together.
			if err := s.clearPersisted(ctx); err != nil {
				return err
			}
		} else {
			// No session blob, but a mirrored token may have survived a
			// crash mid-logout. A token without a customer must not exist.
			mirrored, err := state.NewTokenStore(s.stateRepo()).Load(ctx)
			if err != nil {
				return fmt.Errorf("read token mirror: %w", err)
			}
			if mirrored != "" {
				s.log.Warn(ctx, "discarding orphaned token mirror")
				if err := s.clearPersisted(ctx); err != nil {
					return err
				}
			}
		}
		s.mu.Lock()
		s.customer = nil
		s.token = ""
		s.hydrated = true
		s.mu.Unlock()
	}

	s.notify()
	return nil
}

// Login authenticates via the API client. On success both customer and token
// are set before the call returns; on failure the prior state is untouched
// and the client's error propagates.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return common.ErrEmptyCredentials
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if resp.User == nil || resp.AccessToken == "" {
		return errors.New("malformed login response")
	}

	s.mu.Lock()
	s.customer = resp.User
	s.token = resp.AccessToken
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.notify()
	return nil
}

// Logout clears the token (via the API client), the in-memory state, and the
// persisted blob. It always succeeds from the caller's perspective and is
// idempotent; storage errors are logged, not returned.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.customer = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.client.ClearToken(ctx); err != nil {
		s.log.Warn(ctx, "clear token", "error", err)
	}
	if err := s.clearPersisted(ctx); err != nil {
		s.log.Warn(ctx, "clear persisted session", "error", err)
	}

	s.notify()
}

// SetCustomer replaces the stored profile wholesale, used after fetching
// fresher server data. Callers supply a complete record; no validation.
func (s *Store) SetCustomer(ctx context.Context, customer *models.Customer) {
	s.mu.Lock()
	s.customer = customer
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		s.log.Warn(ctx, "persist session", "error", err)
	}

	s.notify()
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.RLock()
	ps := persistedState{
		Customer:        s.customer,
		Token:           s.token,
		IsAuthenticated: s.customer != nil && s.token != "",
	}
	s.mu.RUnlock()

	blob, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.stateRepo().Set(ctx, common.SessionStateKey, blob); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// clearPersisted removes the session blob and the mirrored token in a single
// transaction so a crash cannot leave a token without a session or vice versa.
func (s *Store) clearPersisted(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.SessionStateKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.TokenStateKey)
	})
}
