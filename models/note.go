package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TimestampLayout is RFC 3339 with nanoseconds and an explicit numeric offset.
const TimestampLayout = "2006-01-02T15:04:05.000000000-07:00"

// PreviewLength is the number of characters kept in a note preview.
const PreviewLength = 100

const previewEllipsis = "..."

type Note struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Content   string `json:"content"`
	WordCount int    `json:"wordCount"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NoteMetadata is the list view of a note. It never carries the full content.
type NoteMetadata struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	WordCount int    `json:"wordCount"`
	Preview   string `json:"preview"`
	UpdatedAt string `json:"updatedAt"`
}

type SaveNoteRequest struct {
	Content string `json:"content"`
}

// Timestamp formats t in TimestampLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// NewNote builds a fresh note with a new id. createdAt and updatedAt are both now.
func NewNote(id, date, content string, now time.Time) *Note {
	ts := Timestamp(now)
	return &Note{
		ID:        id,
		Date:      date,
		Content:   content,
		WordCount: WordCount(content),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// Metadata projects the note into its list view.
func (n *Note) Metadata() NoteMetadata {
	return NoteMetadata{
		ID:        n.ID,
		Date:      n.Date,
		WordCount: n.WordCount,
		Preview:   Preview(n.Content),
		UpdatedAt: n.UpdatedAt,
	}
}

// WordCount counts whitespace-delimited tokens.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Preview replaces line breaks with single spaces, trims the result and keeps the first
// PreviewLength characters, appending "..." when anything was cut.
func Preview(content string) string {
	cleaned := strings.TrimSpace(lineBreaks.Replace(content))
	if utf8.RuneCountInString(cleaned) <= PreviewLength {
		return cleaned
	}

	cut, n := 0, 0
	for i := range cleaned {
		if n == PreviewLength {
			cut = i
			break
		}
		n++
	}
	return cleaned[:cut] + previewEllipsis
}
