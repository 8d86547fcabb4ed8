package session

import (
	"slices"
	"sync"
	"time"

	"github.com/dserranox/blschool-intranet/internal/common"
)

// AdminRole is the role name granting administrative capability.
const AdminRole = "ADMIN"

// displayNamePrefix is the fixed courtesy prefix applied to the profile's
// given name when building the display name.
const displayNamePrefix = "Miss "

// LoginResult is the raw login response handed to Persist.
type LoginResult struct {
	Token       string   `json:"token"`
	ExpiresAt   int64    `json:"expiresAt"` // epoch milliseconds
	TokenType   string   `json:"tokenType"`
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}

// Perfil is the extended profile fetched after login.
type Perfil struct {
	PersonaID int64    `json:"personaId"`
	Nombres   string   `json:"nombres"`
	Apellidos string   `json:"apellidos"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
}

// Snapshot is an immutable view of the observable session fields.
type Snapshot struct {
	Authenticated bool
	Username      string
	DisplayName   string
	Roles         []string
	PersonaID     int64
}

func emptySnapshot() Snapshot {
	return Snapshot{Roles: []string{}}
}

// State is the observable session state. It mirrors the persistent Store,
// owns the auto-logout Scheduler, and notifies subscribers synchronously on
// each of its three mutation points: Persist, Enrich and Clear.
//
// All methods are safe for concurrent use. Initial values are read once
// from the store at construction.
type State struct {
	mu    sync.Mutex
	store *Store
	sched *Scheduler
	cur   Snapshot
	subs  []func(Snapshot)

	onForcedLogout func()
}

// StateOption customizes a State at construction.
type StateOption func(*State)

// WithForcedLogout sets the side effect run after a scheduler-forced logout
// has cleared the session (typically: navigate to the login route).
func WithForcedLogout(fn func()) StateOption {
	return func(s *State) { s.onForcedLogout = fn }
}

// WithMaxTimerDelay overrides the scheduler's single-timer delay ceiling.
func WithMaxTimerDelay(d time.Duration) StateOption {
	return func(s *State) { s.sched.maxDelay = d }
}

// WithClock overrides the scheduler's clock.
func WithClock(now func() time.Time) StateOption {
	return func(s *State) { s.sched.now = now }
}

// NewState builds a State initialized from the persistent store. The session
// counts as authenticated iff a token is present.
func NewState(store *Store, opts ...StateOption) *State {
	s := &State{store: store}
	s.sched = NewScheduler(s.expire)
	for _, opt := range opts {
		opt(s)
	}

	token := store.Token()
	s.cur = Snapshot{
		Authenticated: token != "",
		Username:      store.User().Username,
		DisplayName:   store.DisplayName(),
		Roles:         store.Roles(),
		PersonaID:     store.PersonaID(),
	}
	return s
}

// Subscribe registers fn to be called synchronously with a snapshot on every
// mutation. The current snapshot is not replayed; read it via Current.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Current returns a copy of the observable fields.
func (s *State) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Authenticated reports whether a session is active.
func (s *State) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Authenticated
}

// IsAdmin reports whether the current role set contains AdminRole.
func (s *State) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.cur.Roles, AdminRole)
}

// Token returns the persisted bearer token, or "" when logged out. The
// request layer uses it to attach authorization headers.
func (s *State) Token() string {
	return s.store.Token()
}

// Persist stores a successful login and flips the session to authenticated.
//
// A login response without a token is a broken server contract: Persist
// returns common.ErrInvalidLoginResponse and writes nothing. Otherwise the
// token and user record are stored atomically, the observable fields flip
// (username falls back to fallbackUsername when the server omitted it, and
// the display name defaults to the username until the profile arrives), and
// the auto-logout scheduler is armed on the response's expiry.
func (s *State) Persist(res LoginResult, fallbackUsername string) error {
	if res.Token == "" {
		return common.ErrInvalidLoginResponse
	}

	username := res.Username
	if username == "" {
		username = fallbackUsername
	}
	permissions := res.Authorities
	if permissions == nil {
		permissions = []string{}
	}

	if err := s.store.SaveLogin(res.Token, StoredUser{Username: username, Permissions: permissions}); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur.Authenticated = true
	s.cur.Username = username
	s.cur.DisplayName = username
	snap, subs := s.snapshotLocked(), slices.Clone(s.subs)
	s.mu.Unlock()
	notify(subs, snap)

	s.sched.Arm(time.UnixMilli(res.ExpiresAt))
	return nil
}

// Enrich merges the extended profile into the store and the observable
// state: display name ("Miss " + given name, or the known username when the
// given name is absent), roles and persona id. Callers treat any failure as
// non-fatal; the session stays valid either way.
func (s *State) Enrich(p Perfil) error {
	s.mu.Lock()
	name := s.cur.Username
	s.mu.Unlock()
	if p.Nombres != "" {
		name = displayNamePrefix + p.Nombres
	}

	roles := p.Roles
	if roles == nil {
		roles = []string{}
	}

	if err := s.store.SavePerfil(name, roles, p.PersonaID); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur.DisplayName = name
	s.cur.Roles = roles
	if p.PersonaID > 0 {
		s.cur.PersonaID = p.PersonaID
	}
	snap, subs := s.snapshotLocked(), slices.Clone(s.subs)
	s.mu.Unlock()
	notify(subs, snap)
	return nil
}

// Clear cancels any pending auto-logout timer, removes every persisted
// session key and resets the observable fields to their unauthenticated
// defaults. Idempotent; subscribers never see a partially cleared session.
func (s *State) Clear() error {
	s.sched.Cancel()

	err := s.store.Clear()

	s.mu.Lock()
	s.cur = emptySnapshot()
	snap, subs := s.snapshotLocked(), slices.Clone(s.subs)
	s.mu.Unlock()
	notify(subs, snap)
	return err
}

// expire is the scheduler's fire handler: forced logout.
func (s *State) expire() {
	_ = s.Clear()
	if s.onForcedLogout != nil {
		s.onForcedLogout()
	}
}

func (s *State) snapshotLocked() Snapshot {
	snap := s.cur
	snap.Roles = slices.Clone(s.cur.Roles)
	return snap
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
