// Package session holds the authenticated-identity state of the intranet
// client: a persistent store that survives restarts, an observable in-memory
// state mirroring it, an auto-logout scheduler keyed on the token expiry, and
// the navigation guards consulted by the terminal UI.
package session

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"
)

// Persistent store keys. The set is fixed: Clear removes exactly these.
const (
	keyToken       = "token"
	keyUser        = "user"
	keyDisplayName = "displayName"
	keyRoles       = "roles"
	keyPersonaID   = "personaId"
)

var sessionBucket = []byte("session")

// StoredUser is the JSON value kept under the "user" key.
type StoredUser struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// Store is a bbolt-backed key/value store for the current session. Reads are
// individually tolerant of corrupted values: an unparsable field degrades to
// its zero value so startup never fails on stale or damaged data.
type Store struct {
	db *bbolt.DB
}

// NewStore wraps an already-open bbolt database.
func NewStore(db *bbolt.DB) (*Store, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("session bucket init: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenStore opens (or creates) the session database at path.
func OpenStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	return NewStore(db)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) []byte {
	var value []byte
	_ = s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(sessionBucket).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	return value
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *Store) Token() string {
	return string(s.get(keyToken))
}

// User returns the persisted user record. A missing or unparsable value
// yields the zero StoredUser.
func (s *Store) User() StoredUser {
	var u StoredUser
	raw := s.get(keyUser)
	if raw == nil {
		return u
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		return StoredUser{}
	}
	return u
}

// DisplayName returns the persisted display name, or "".
func (s *Store) DisplayName() string {
	return string(s.get(keyDisplayName))
}

// Roles returns the persisted role list. Missing or unparsable → empty.
func (s *Store) Roles() []string {
	raw := s.get(keyRoles)
	if raw == nil {
		return []string{}
	}
	var roles []string
	if err := json.Unmarshal(raw, &roles); err != nil || roles == nil {
		return []string{}
	}
	return roles
}

// PersonaID returns the persisted person identifier, or 0 when absent
// or unparsable.
func (s *Store) PersonaID() int64 {
	raw := s.get(keyPersonaID)
	if raw == nil {
		return 0
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// SaveLogin writes the token and user record in a single transaction.
func (s *Store) SaveLogin(token string, user StoredUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if err := b.Put([]byte(keyToken), []byte(token)); err != nil {
			return err
		}
		return b.Put([]byte(keyUser), data)
	})
}

// SavePerfil writes the enrichment fields in a single transaction.
// A personaID of 0 leaves the persisted identifier untouched.
func (s *Store) SavePerfil(displayName string, roles []string, personaID int64) error {
	if roles == nil {
		roles = []string{}
	}
	data, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		if err := b.Put([]byte(keyDisplayName), []byte(displayName)); err != nil {
			return err
		}
		if err := b.Put([]byte(keyRoles), data); err != nil {
			return err
		}
		if personaID > 0 {
			return b.Put([]byte(keyPersonaID), []byte(strconv.FormatInt(personaID, 10)))
		}
		return nil
	})
}

// Clear removes all session keys in a single transaction. Clearing an
// already-empty store is a no-op.
func (s *Store) Clear() error {
	keys := []string{keyToken, keyUser, keyDisplayName, keyRoles, keyPersonaID}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sessionBucket)
		for _, k := range keys {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}
