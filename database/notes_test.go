package database

import (
	"context"
	"daily-journal/models"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNote(date, content string, now time.Time) *models.Note {
	return models.NewNote(uuid.New().String(), date, content, now)
}

// countNotes reports how many rows exist for date.
func countNotes(t *testing.T, repo *Repository, date string) int {
	t.Helper()

	var n int
	err := repo.db.QueryRow(`SELECT COUNT(*) FROM notes WHERE date = ?`, date).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestUpsertNote(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	t.Run("Insert new note", func(t *testing.T) {
		note := newNote("2024-01-01", "hello world", t0)

		saved, err := repo.UpsertNote(ctx, note)
		require.NoError(t, err)

		assert.Equal(t, note.ID, saved.ID)
		assert.Equal(t, 2, saved.WordCount)
		assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	})

	t.Run("Second save keeps id and created_at", func(t *testing.T) {
		first, err := repo.GetNote(ctx, "2024-01-01")
		require.NoError(t, err)
		require.NotNil(t, first)

		saved, err := repo.UpsertNote(ctx, newNote("2024-01-01", "hello", t1))
		require.NoError(t, err)

		assert.Equal(t, first.ID, saved.ID)
		assert.Equal(t, first.CreatedAt, saved.CreatedAt)
		assert.Equal(t, models.Timestamp(t1), saved.UpdatedAt)
		assert.Equal(t, "hello", saved.Content)
		assert.Equal(t, 1, saved.WordCount)

		assert.Equal(t, 1, countNotes(t, repo, "2024-01-01"))
	})
}

func TestUpsertNote_ConcurrentSameDate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpsertNote(ctx, newNote("2024-02-02", fmt.Sprintf("writer %d", i), now))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, 1, countNotes(t, repo, "2024-02-02"))

	note, err := repo.GetNote(ctx, "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, models.WordCount(note.Content), note.WordCount)
}

func TestGetNote_Missing(t *testing.T) {
	repo := setupTestRepo(t)

	note, err := repo.GetNote(context.Background(), "1999-12-31")

	assert.NoError(t, err)
	assert.Nil(t, note)
}

func TestDeleteNote(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertNote(ctx, newNote("2024-03-03", "to be removed", time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteNote(ctx, "2024-03-03"))

	note, err := repo.GetNote(ctx, "2024-03-03")
	assert.NoError(t, err)
	assert.Nil(t, note)

	// Deleting again is a no-op
	assert.NoError(t, repo.DeleteNote(ctx, "2024-03-03"))
}

func TestListNotes_OrderedByDateDesc(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	empty, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, date := range []string{"2024-01-15", "2023-12-31", "2024-02-01", "2024-01-01"} {
		_, err := repo.UpsertNote(ctx, newNote(date, "entry for "+date, time.Now()))
		require.NoError(t, err)
	}

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 4)

	var dates []string
	for _, n := range notes {
		dates = append(dates, n.Date)
	}
	assert.Equal(t, []string{"2024-02-01", "2024-01-15", "2024-01-01", "2023-12-31"}, dates)
	assert.Equal(t, "entry for 2024-02-01", notes[0].Preview)
	assert.Equal(t, 3, notes[0].WordCount)
}

func TestSearchNotes(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	fixtures := map[string]string{
		"2024-01-01": "went for a run in the park",
		"2024-01-02": "100% done with the report",
		"2024-01-03": "read a book",
		"2024-01-04": "snake_case or camelCase",
	}
	for date, content := range fixtures {
		_, err := repo.UpsertNote(ctx, newNote(date, content, time.Now()))
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"Substring match", "park", []string{"2024-01-01"}},
		{"Shared substring ordered desc", "re", []string{"2024-01-03", "2024-01-02"}},
		{"No match", "nothing here", []string{}},
		{"Empty query matches all", "", []string{"2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01"}},
		{"Percent is a wildcard", "a%k", []string{"2024-01-04", "2024-01-03", "2024-01-01"}},
		{"ASCII case is folded", "READ", []string{"2024-01-03"}},
		{"Underscore is a wildcard", "e_c", []string{"2024-01-04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes, err := repo.SearchNotes(ctx, tt.query)
			require.NoError(t, err)

			dates := make([]string, 0, len(notes))
			for _, n := range notes {
				dates = append(dates, n.Date)
			}
			assert.Equal(t, tt.want, dates)
		})
	}
}
