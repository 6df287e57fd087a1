package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stickynotes/dto"
	"stickynotes/model"
	"stickynotes/testutils"
	"stickynotes/testutils/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct {
	access  string
	refresh string
	saved   int
}

func (m *memTokens) AccessToken() string  { return m.access }
func (m *memTokens) RefreshToken() string { return m.refresh }
func (m *memTokens) SetAccessToken(access string) error {
	m.access = access
	m.saved++
	return nil
}

var alice = &testutils.TestUser{ID: "alice-id", Username: "alice", Password: "s3cret!"}

func loggedIn(t *testing.T, srv *apitest.Server, userID string) (*Client, *memTokens) {
	t.Helper()
	access, refresh := srv.Login(t, userID)
	tokens := &memTokens{access: access, refresh: refresh}
	return New(srv.URL, WithTokenSource(tokens)), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	srv := apitest.NewServer(t)
	c := New(srv.URL + "/")
	ctx := context.Background()

	user, err := c.Register(ctx, "carol", "p4ss-word")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
	assert.NotEmpty(t, user.ID)

	_, err = c.Register(ctx, "carol", "p4ss-word")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "username: A user with that username already exists.", apiErr.Message)

	pair, err := c.Login(ctx, "carol", "p4ss-word")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	_, err = c.Login(ctx, "carol", "wrong")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "No active account found with the given credentials", apiErr.Message)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	srv := apitest.NewServer(t)
	_, err := New(srv.URL).Register(context.Background(), "dave", "abc")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "password: ")
}

func TestNoteLifecycle(t *testing.T) {
	srv := apitest.NewServer(t, alice)
	c, _ := loggedIn(t, srv, alice.ID)
	ctx := context.Background()

	notes, err := c.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	created, err := c.CreateNote(ctx, dto.NoteRequest{Title: "Groceries", Content: "milk", Category: model.CategoryBudget, Color: model.ColorPink})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Groceries", created.Title)

	got, err := c.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "milk", got.Content)
	assert.Equal(t, model.CategoryBudget, got.Category)

	updated, err := c.UpdateNote(ctx, created.ID, dto.NoteRequest{Title: "Groceries", Content: "milk and eggs", Color: model.ColorBlue})
	require.NoError(t, err)
	assert.Equal(t, "milk and eggs", updated.Content)
	assert.Equal(t, model.ColorBlue, updated.Color)
	assert.Empty(t, updated.Category)

	notes, err = c.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, c.DeleteNote(ctx, created.ID))

	_, err = c.GetNote(ctx, created.ID)
	assert.True(t, IsStatus(err, http.StatusNotFound))

	err = c.DeleteNote(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Failed to delete note", apiErr.Message)
}

func TestCreateNoteValidation(t *testing.T) {
	srv := apitest.NewServer(t, alice)
	c, _ := loggedIn(t, srv, alice.ID)

	_, err := c.CreateNote(context.Background(), dto.NoteRequest{Title: "x", Content: "y", Color: "orange"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "color: ")
}

func TestOtherUsersNoteIsForbidden(t *testing.T) {
	bob := &testutils.TestUser{ID: "bob-id", Username: "bob", Password: "hunter2!"}
	srv := apitest.NewServer(t, alice, bob)
	require.NoError(t, srv.Notes.Insert(context.Background(), &model.Note{ID: 9, Title: "Bob's", Content: "private", Author: bob.ID}))

	c, _ := loggedIn(t, srv, alice.ID)
	_, err := c.GetNote(context.Background(), 9)
	assert.True(t, IsStatus(err, http.StatusForbidden))
}

func TestProtectedCallWithoutLogin(t *testing.T) {
	srv := apitest.NewServer(t)

	_, err := New(srv.URL).ListNotes(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = New(srv.URL, WithTokenSource(&memTokens{})).ListNotes(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.True(t, IsUnauthorized(err))
}

func TestRefreshesOnceOnUnauthorized(t *testing.T) {
	srv := apitest.NewServer(t, alice)
	_, refresh := srv.Login(t, alice.ID)
	tokens := &memTokens{access: "stale", refresh: refresh}
	c := New(srv.URL, WithTokenSource(tokens))

	notes, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, 1, tokens.saved)
	assert.NotEqual(t, "stale", tokens.access)
}

func TestRefreshFailureKeepsOriginalError(t *testing.T) {
	srv := apitest.NewServer(t, alice)
	tokens := &memTokens{access: "stale", refresh: "also-stale"}
	c := New(srv.URL, WithTokenSource(tokens))

	_, err := c.ListNotes(context.Background())
	assert.True(t, IsUnauthorized(err))
	assert.Zero(t, tokens.saved)
}

func TestNoRetryOnOtherErrors(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"A server error occurred."}`))
	}))
	defer ts.Close()

	c := New(ts.URL, WithTokenSource(&memTokens{access: "a", refresh: "r"}))
	_, err := c.ListNotes(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "A server error occurred.", apiErr.Message)
	assert.Equal(t, 1, calls)
}

func TestDeleteRequiresNoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/delete/4/", r.URL.Path)
		assert.Equal(t, "Bearer a", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := New(ts.URL, WithTokenSource(&memTokens{access: "a"}))
	err := c.DeleteNote(context.Background(), 4)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, "Failed to delete note", apiErr.Message)
}

func TestLogoutRevokesTokens(t *testing.T) {
	srv := apitest.NewServer(t, alice)
	c, tokens := loggedIn(t, srv, alice.ID)
	ctx := context.Background()

	require.NoError(t, c.Logout(ctx, tokens.refresh))

	_, err := c.Refresh(ctx, tokens.refresh)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	tokens.refresh = ""
	_, err = c.ListNotes(ctx)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := New(url, WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, err := c.Login(context.Background(), "a", "b")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "error field", status: 400, body: `{"error":"bad thing","detail":"other"}`, want: "bad thing"},
		{name: "detail field", status: 404, body: `{"detail":"Not found."}`, want: "Not found."},
		{name: "field errors sorted", status: 400, body: `{"title":["Title is required"],"content":["Content is required"]}`, want: "content: Content is required"},
		{name: "plain string field", status: 400, body: `{"username":"taken"}`, want: "username: taken"},
		{name: "empty body", status: 502, body: ``, want: "Bad Gateway"},
		{name: "not json", status: 500, body: `<html>oops</html>`, want: "Internal Server Error"},
		{name: "unknown status", status: 599, body: `{}`, want: "Unexpected response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.status, []byte(tt.body)))
		})
	}
}
