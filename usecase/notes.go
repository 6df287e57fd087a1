package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"stickynotes/dto"
	"stickynotes/model"
	"stickynotes/repository"
	"stickynotes/utils"
)

const (
	MaxTitleLength   = 100
	MaxContentLength = 50000
)

// NoteStore is the persistence the notes service needs; *repository.NotesRepo
// satisfies it.
type NoteStore interface {
	NextID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, id int64) (*model.Note, error)
	FindByAuthor(ctx context.Context, author string) ([]*model.Note, error)
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id int64, author string) error
}

type NotesService struct {
	NotesRepo NoteStore
	now       func() time.Time
}

func NewNotesService(repo NoteStore) *NotesService {
	return &NotesService{NotesRepo: repo, now: time.Now}
}

func (svc *NotesService) clock() time.Time {
	if svc.now == nil {
		return time.Now().UTC()
	}
	return svc.now().UTC()
}

// validateNote normalizes req in place and checks it against the note rules.
func validateNote(req *dto.NoteRequest) error {
	req.Normalize()

	if req.Title == "" {
		return invalid("title", "This field may not be blank.")
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLength {
		return invalid("title", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxTitleLength))
	}

	if strings.TrimSpace(req.Content) == "" {
		return invalid("content", "This field may not be blank.")
	}
	if utf8.RuneCountInString(req.Content) > MaxContentLength {
		return invalid("content", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxContentLength))
	}

	if req.Category != "" && !model.IsCategory(req.Category) {
		return invalid("category", fmt.Sprintf("%q is not a valid choice.", req.Category))
	}
	if req.Color != "" && !model.IsColor(req.Color) {
		return invalid("color", fmt.Sprintf("%q is not a valid choice.", req.Color))
	}
	return nil
}

// List returns the user's notes oldest first.
func (svc *NotesService) List(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	notes, err := svc.NotesRepo.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Get loads a note and checks that userID owns it.
func (svc *NotesService) Get(ctx context.Context, id int64, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	if note.Author != userID {
		return nil, ErrForbidden
	}
	return note, nil
}

func (svc *NotesService) Create(ctx context.Context, userID string, req dto.NoteRequest) (*model.Note, error) {
	if err := validateNote(&req); err != nil {
		return nil, err
	}

	id, err := svc.NotesRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := svc.clock()
	note := &model.Note{
		ID:        id,
		Author:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.ApplyTo(note)

	if err := svc.NotesRepo.Insert(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// Update replaces every editable field of an owned note.
func (svc *NotesService) Update(ctx context.Context, id int64, userID string, req dto.NoteRequest) (*model.Note, error) {
	existing, err := svc.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return svc.save(ctx, existing, req)
}

// Patch changes only the fields present in patch.
func (svc *NotesService) Patch(ctx context.Context, id int64, userID string, patch dto.NotePatch) (*model.Note, error) {
	existing, err := svc.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return svc.save(ctx, existing, patch.Merge(existing))
}

func (svc *NotesService) save(ctx context.Context, existing *model.Note, req dto.NoteRequest) (*model.Note, error) {
	if err := validateNote(&req); err != nil {
		return nil, err
	}

	updated := *existing
	req.ApplyTo(&updated)
	updated.UpdatedAt = svc.clock()

	err := svc.NotesRepo.Update(ctx, &updated)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	utils.TrackNoteOperation("update")
	return &updated, nil
}

// Delete removes a note owned by userID. Notes of other users look missing.
func (svc *NotesService) Delete(ctx context.Context, id int64, userID string) error {
	err := svc.NotesRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	utils.TrackNoteOperation("delete")
	return nil
}
