// Package testutils holds in-memory stand-ins for the Mongo repositories and the
// Redis blacklist so handler and usecase tests run without external services.
package testutils

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"stickynotes/model"
	"stickynotes/repository"
	"stickynotes/services"
)

// FixedTime returns a clock that always reports t.
func FixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SetupTestEnvironment points config at test settings for the duration of t.
func SetupTestEnvironment(t *testing.T) {
	t.Helper()
	t.Setenv("GO_ENV", "test")
	t.Setenv("JWT_SECRET_KEY", "test_secret_key")
	t.Setenv("MONGO_DB", "stickynotes_test")
}

// NoteStore keeps notes in a map keyed by id.
type NoteStore struct {
	mu    sync.Mutex
	seq   int64
	notes map[int64]*model.Note

	// Err, when set, is returned by every call.
	Err error
}

func NewNoteStore(notes ...*model.Note) *NoteStore {
	s := &NoteStore{notes: make(map[int64]*model.Note)}
	for _, n := range notes {
		cp := *n
		s.notes[n.ID] = &cp
		if n.ID > s.seq {
			s.seq = n.ID
		}
	}
	return s
}

func (s *NoteStore) NextID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.seq++
	return s.seq, nil
}

func (s *NoteStore) Insert(ctx context.Context, note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.notes[note.ID]; ok {
		return repository.ErrDuplicate
	}
	cp := *note
	s.notes[note.ID] = &cp
	return nil
}

func (s *NoteStore) FindByID(ctx context.Context, id int64) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	n, ok := s.notes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (s *NoteStore) FindByAuthor(ctx context.Context, author string) ([]*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	notes := make([]*model.Note, 0)
	for _, n := range s.notes {
		if n.Author == author {
			cp := *n
			notes = append(notes, &cp)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

func (s *NoteStore) Update(ctx context.Context, note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.notes[note.ID]
	if !ok || existing.Author != note.Author {
		return repository.ErrNotFound
	}
	existing.Title = note.Title
	existing.Content = note.Content
	existing.Category = note.Category
	existing.Color = note.Color
	existing.UpdatedAt = note.UpdatedAt
	return nil
}

func (s *NoteStore) Delete(ctx context.Context, id int64, author string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	existing, ok := s.notes[id]
	if !ok || existing.Author != author {
		return repository.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

// Len reports how many notes are stored.
func (s *NoteStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// UserStore keeps users keyed by username.
type UserStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func NewUserStore(users ...*model.User) *UserStore {
	s := &UserStore{users: make(map[string]*model.User)}
	for _, u := range users {
		cp := *u
		s.users[u.Username] = &cp
	}
	return s
}

func (s *UserStore) AddUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return repository.ErrDuplicate
	}
	cp := *user
	s.users[user.Username] = &cp
	return nil
}

func (s *UserStore) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *UserStore) FindUser(ctx context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Blacklist is an in-process services.TokenBlacklist.
type Blacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func NewBlacklist() *Blacklist {
	return &Blacklist{revoked: make(map[string]bool)}
}

func (b *Blacklist) Revoke(ctx context.Context, claims *services.Claims) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[claims.ID] = true
	return nil
}

func (b *Blacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[tokenID], nil
}

// NewUser builds a stored user whose password is already hashed.
func NewUser(t *testing.T, userID, username, password string) *model.User {
	t.Helper()
	hashed, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &model.User{
		UserID:    userID,
		Username:  username,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
}

// TestUser is a user to seed before a test, with a plain-text password.
type TestUser struct {
	ID       string
	Username string
	Password string
}
