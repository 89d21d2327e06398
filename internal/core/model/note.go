package model

import (
	"fmt"
	"strings"
	"time"
)

// SummaryLength selects how long the AI summary should be.
type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

// Valid reports whether the length is known. Empty is valid and means the
// backend default.
func (length SummaryLength) Valid() bool {
	switch length {
	case "", SummaryShort, SummaryMedium, SummaryLong:
		return true
	}
	return false
}

// Note is an uploaded or typed note with its AI summary.
type Note struct {
	ID             string        `json:"_id"`
	UserID         string        `json:"userId"`
	Title          string        `json:"title"`
	Text           string        `json:"text"`
	OriginalNote   string        `json:"originalNote"`
	SummarizedNote string        `json:"summarizedNote"`
	SummaryLength  SummaryLength `json:"summaryLength"`
	FileType       string        `json:"fileType"`
	DownloadedPDF  bool          `json:"downloadedPdf"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// NoteInput creates or replaces a note. FilePath, when set, is uploaded as
// the original note.
type NoteInput struct {
	Title         string
	Text          string
	FilePath      string
	SummaryLength SummaryLength
}

// Validate checks the note form.
func (input NoteInput) Validate() error {
	if strings.TrimSpace(input.Title) == "" {
		return invalid("title is required")
	}
	if strings.TrimSpace(input.Text) == "" && input.FilePath == "" {
		return invalid("text or file is required")
	}
	if !input.SummaryLength.Valid() {
		return invalid(fmt.Sprintf("summary length must be short, medium or long, got %q", input.SummaryLength))
	}
	return nil
}
