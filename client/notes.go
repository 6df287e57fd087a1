package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"stickynotes/dto"
	"stickynotes/model"
)

// ListNotes returns every note of the logged-in user.
func (c *Client) ListNotes(ctx context.Context) ([]*model.Note, error) {
	var notes []*model.Note
	if err := c.protected(ctx, http.MethodGet, "/api/notes/", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	var note model.Note
	if err := c.protected(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%d/", id), nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *Client) CreateNote(ctx context.Context, req dto.NoteRequest) (*model.Note, error) {
	var note model.Note
	if err := c.protected(ctx, http.MethodPost, "/api/notes/", req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces the editable fields of a note.
func (c *Client) UpdateNote(ctx context.Context, id int64, req dto.NoteRequest) (*model.Note, error) {
	var note model.Note
	if err := c.protected(ctx, http.MethodPut, fmt.Sprintf("/api/notes/%d/edit/", id), req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote succeeds only on 204 No Content.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	err := c.protected(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/delete/%d/", id), nil, nil, http.StatusNoContent)
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{StatusCode: apiErr.StatusCode, Message: "Failed to delete note"}
	}
	return err
}
