package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores when an id does not resolve to a book.
var ErrNotFound = errors.New("book not found")

// Book is a persisted catalog record. Only stores hand these out.
type Book struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Author    string    `db:"author" json:"author"`
	Genre     string    `db:"genre" json:"genre"`
	Year      string    `db:"year" json:"year"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Draft is submitted form data that has not been persisted.
// TargetID is the book an edit form posts back to; 0 for a new book.
type Draft struct {
	TargetID int64  `json:"-"`
	Title    string `json:"title" validate:"required,max=200"`
	Author   string `json:"author" validate:"required,max=120"`
	Genre    string `json:"genre" validate:"max=80"`
	Year     string `json:"year" validate:"omitempty,numeric,max=4"`
}

// DraftOf copies a persisted book into an editable draft.
func DraftOf(b Book) Draft {
	return Draft{
		TargetID: b.ID,
		Title:    b.Title,
		Author:   b.Author,
		Genre:    b.Genre,
		Year:     b.Year,
	}
}

// ListQuery selects one page of books, optionally filtered by a search term.
type ListQuery struct {
	Term   string
	Limit  int
	Offset int
}
