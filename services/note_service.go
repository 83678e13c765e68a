package services

import (
	"context"
	"daily-journal/models"
	"time"

	"github.com/google/uuid"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo  NoteRepository
	now   Clock
	newID IDGenerator
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Get retrieves the note for date. A missing note is (nil, nil).
func (ns *NoteService) Get(ctx context.Context, date string) (*models.Note, error) {
	note, err := ns.repo.GetNote(ctx, date)
	if err != nil {
		return nil, storageFailure("get note", err)
	}
	return note, nil
}

// Save creates the note for date or overwrites its content. The id and
// created_at of an existing note are preserved by the storage upsert.
func (ns *NoteService) Save(ctx context.Context, date, content string) (*models.Note, error) {
	candidate := models.NewNote(ns.newID(), date, content, ns.now())

	note, err := ns.repo.UpsertNote(ctx, candidate)
	if err != nil {
		return nil, storageFailure("save note", err)
	}
	return note, nil
}

// Delete removes the note for date. Missing notes are not an error.
func (ns *NoteService) Delete(ctx context.Context, date string) error {
	if err := ns.repo.DeleteNote(ctx, date); err != nil {
		return storageFailure("delete note", err)
	}
	return nil
}

// List returns metadata for all notes, most recent date first.
func (ns *NoteService) List(ctx context.Context) ([]models.NoteMetadata, error) {
	notes, err := ns.repo.ListNotes(ctx)
	if err != nil {
		return nil, storageFailure("list notes", err)
	}
	return notes, nil
}

// Search returns metadata for notes whose content contains query, using LIKE
// matching. Wildcards in query are not escaped.
func (ns *NoteService) Search(ctx context.Context, query string) ([]models.NoteMetadata, error) {
	notes, err := ns.repo.SearchNotes(ctx, query)
	if err != nil {
		return nil, storageFailure("search notes", err)
	}
	return notes, nil
}

// Stats computes text statistics for the note on date. A missing note has zero stats.
func (ns *NoteService) Stats(ctx context.Context, date string) (models.TextStats, error) {
	note, err := ns.Get(ctx, date)
	if err != nil {
		return models.TextStats{}, err
	}
	if note == nil {
		return models.TextStats{}, nil
	}
	return models.ComputeStats(note.Content), nil
}
