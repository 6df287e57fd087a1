// Package apitest runs the full HTTP API on an httptest server backed by the
// in-memory stores, for tests of code that talks to the API over the wire.
package apitest

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"stickynotes/config"
	"stickynotes/handler"
	"stickynotes/services"
	"stickynotes/testutils"
	"stickynotes/usecase"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var validatorOnce sync.Once

type Server struct {
	*httptest.Server

	Notes     *testutils.NoteStore
	Users     *testutils.UserStore
	Tokens    *services.TokenService
	Blacklist *testutils.Blacklist
}

// NewServer starts an API with the given users registered. It is closed when
// the test ends.
func NewServer(t *testing.T, users ...*testutils.TestUser) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validatorOnce.Do(func() {
		if err := utils.InitValidator(); err != nil {
			t.Fatalf("init validator: %v", err)
		}
	})

	s := &Server{
		Notes:     testutils.NewNoteStore(),
		Users:     testutils.NewUserStore(),
		Tokens:    services.NewTokenService("test_secret_key", 5*time.Minute, time.Hour),
		Blacklist: testutils.NewBlacklist(),
	}
	for _, u := range users {
		if err := s.Users.AddUser(context.Background(), testutils.NewUser(t, u.ID, u.Username, u.Password)); err != nil {
			t.Fatalf("add user %s: %v", u.Username, err)
		}
	}

	router := handler.SetupRouter(handler.Dependencies{
		Config: &config.Config{
			CORS:         config.CORSConfig{AllowedOrigins: []string{"*"}},
			MaxBodyBytes: 1 << 20,
		},
		Logger:    zap.NewNop(),
		Notes:     usecase.NewNotesService(s.Notes),
		Users:     usecase.NewUserService(s.Users),
		Tokens:    s.Tokens,
		Blacklist: s.Blacklist,
		Ping:      func(ctx context.Context) error { return nil },
	})
	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// Login issues a token pair for userID without going through the API.
func (s *Server) Login(t *testing.T, userID string) (access, refresh string) {
	t.Helper()
	pair, err := s.Tokens.IssuePair(userID)
	if err != nil {
		t.Fatalf("issue tokens: %v", err)
	}
	return pair.Access, pair.Refresh
}
