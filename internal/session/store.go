package session

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"studydesk/internal/core/model"
)

// Record is the persisted part of a session: who is signed in and the
// cookies that prove it.
type Record struct {
	User    *model.User
	Cookies []*http.Cookie
}

// Persister saves and restores a Record. A missing record loads as empty.
type Persister interface {
	LoadSession() (Record, error)
	SaveSession(Record) error
	ClearSession() error
}

// Store holds the signed-in user. Every action writes through to the Persister.
type Store struct {
	mu        sync.Mutex
	record    Record
	persister Persister
	listeners []func(*model.User)
	logger    *slog.Logger
}

// NewStore loads the persisted session. A nil persister keeps the session
// in memory only.
func NewStore(persister Persister, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store := &Store{persister: persister, logger: logger}
	if persister == nil {
		return store, nil
	}

	record, err := persister.LoadSession()
	if err != nil {
		return store, fmt.Errorf("load session: %w", err)
	}
	store.record = record
	return store, nil
}

// User returns a copy of the signed-in user, or nil.
func (store *Store) User() *model.User {
	store.mu.Lock()
	defer store.mu.Unlock()
	return copyUser(store.record.User)
}

// LoggedIn reports whether a user is set.
func (store *Store) LoggedIn() bool {
	return store.User() != nil
}

// Cookies returns the stored session cookies.
func (store *Store) Cookies() []*http.Cookie {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]*http.Cookie(nil), store.record.Cookies...)
}

// SetUser records a sign-in.
func (store *Store) SetUser(user model.User, cookies []*http.Cookie) error {
	store.mu.Lock()
	store.record = Record{User: copyUser(&user), Cookies: append([]*http.Cookie(nil), cookies...)}
	record := store.record
	listeners := slices.Clone(store.listeners)
	store.mu.Unlock()

	store.logger.Debug("session user set", "user", user.Email)
	err := store.save(record)
	notify(listeners, record.User)
	return err
}

// UpdateCookies refreshes the cookies of the current session. It is a
// no-op when nobody is signed in.
func (store *Store) UpdateCookies(cookies []*http.Cookie) error {
	store.mu.Lock()
	if store.record.User == nil {
		store.mu.Unlock()
		return nil
	}
	store.record.Cookies = append([]*http.Cookie(nil), cookies...)
	record := store.record
	store.mu.Unlock()
	return store.save(record)
}

// ClearUser records a sign-out.
func (store *Store) ClearUser() error {
	store.mu.Lock()
	store.record = Record{}
	listeners := slices.Clone(store.listeners)
	store.mu.Unlock()

	store.logger.Debug("session user cleared")
	var err error
	if store.persister != nil {
		if clearErr := store.persister.ClearSession(); clearErr != nil {
			err = fmt.Errorf("clear session: %w", clearErr)
		}
	}
	notify(listeners, nil)
	return err
}

// OnChange registers a listener called after every action with the new user.
func (store *Store) OnChange(listener func(*model.User)) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.listeners = append(store.listeners, listener)
}

func (store *Store) save(record Record) error {
	if store.persister == nil {
		return nil
	}
	if err := store.persister.SaveSession(record); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func notify(listeners []func(*model.User), user *model.User) {
	for _, listener := range listeners {
		listener(copyUser(user))
	}
}

func copyUser(user *model.User) *model.User {
	if user == nil {
		return nil
	}
	copied := *user
	return &copied
}
