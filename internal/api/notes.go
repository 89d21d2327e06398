package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"studydesk/internal/core/model"
)

// CreateNote uploads a note for summarization.
func (client *Client) CreateNote(ctx context.Context, input model.NoteInput) (*model.Note, error) {
	var note model.Note
	if err := client.sendNote(ctx, http.MethodPost, "/notes", input, &note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return &note, nil
}

// ListNotes returns the user's notes.
func (client *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := client.getJSON(ctx, TagNote, "/notes", &notes); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// UpdateNote replaces a note's content and re-summarizes it.
func (client *Client) UpdateNote(ctx context.Context, id string, input model.NoteInput) (*model.Note, error) {
	if id == "" {
		return nil, fmt.Errorf("update note: %w", errEmptyID)
	}
	var note model.Note
	if err := client.sendNote(ctx, http.MethodPatch, "/notes/"+url.PathEscape(id), input, &note); err != nil {
		return nil, fmt.Errorf("update note %s: %w", id, err)
	}
	return &note, nil
}

// DeleteNote removes a note.
func (client *Client) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete note: %w", errEmptyID)
	}
	if err := client.sendJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, nil, TagNote, TagUser); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

func (client *Client) sendNote(ctx context.Context, method, path string, input model.NoteInput, out any) error {
	if err := input.Validate(); err != nil {
		return err
	}
	body, contentType, err := encodeNoteForm(input)
	if err != nil {
		return err
	}
	return client.do(ctx, request{
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
		invalidates: []Tag{TagNote, TagUser},
	}, out)
}

// encodeNoteForm builds the multipart body: title, text, originalNote and
// summaryLength, omitting empty optional parts.
func encodeNoteForm(input model.NoteInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("title", input.Title); err != nil {
		return nil, "", fmt.Errorf("write form: %w", err)
	}
	if input.Text != "" {
		if err := writer.WriteField("text", input.Text); err != nil {
			return nil, "", fmt.Errorf("write form: %w", err)
		}
	}
	if input.FilePath != "" {
		if err := attachFile(writer, "originalNote", input.FilePath); err != nil {
			return nil, "", err
		}
	}
	if input.SummaryLength != "" {
		if err := writer.WriteField("summaryLength", string(input.SummaryLength)); err != nil {
			return nil, "", fmt.Errorf("write form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func attachFile(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open note file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("write form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy note file: %w", err)
	}
	return nil
}
