package remotedb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/dkimathi/darasa/core/collab"
)

// Backend is the remote-mode collab.Backend: a thin REST client for the
// four collection endpoints. The server applies the canonical sort and
// assigns identifiers (wire field "_id"). No client-side retry.
type Backend struct {
	baseURL string
	client  *http.Client
}

var _ collab.Backend = (*Backend)(nil)

func NewBackend(baseURL string) *Backend {
	return &Backend{baseURL: baseURL, client: http.DefaultClient}
}

func (b *Backend) Mode() collab.Mode { return collab.ModeRemote }
func (b *Backend) Close() error      { return nil }

func (b *Backend) Messages() collab.Store[collab.Message] {
	return messageStore{b}
}

func (b *Backend) Assignments() collab.Store[collab.Assignment] {
	return assignmentStore{b}
}

func (b *Backend) Notes() collab.Store[collab.Note] {
	return noteStore{b}
}

func (b *Backend) Announcements() collab.Store[collab.Announcement] {
	return announcementStore{b}
}

func (b *Backend) do(ctx context.Context, method, path string, payload interface{}, wantCode int, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "%s %s: encoding payload", method, path)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := b.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != wantCode {
		return errors.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "%s %s: decoding response", method, path)
		}
	}
	return nil
}

func list[T any](ctx context.Context, b *Backend, path string) ([]T, error) {
	var items []T
	if err := b.do(ctx, http.MethodGet, path, nil, http.StatusOK, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func create[T any](ctx context.Context, b *Backend, path string, payload interface{}) (T, error) {
	var stored T
	err := b.do(ctx, http.MethodPost, path, payload, http.StatusCreated, &stored)
	return stored, err
}

func remove(ctx context.Context, b *Backend, path string) error {
	return b.do(ctx, http.MethodDelete, path, nil, http.StatusOK, nil)
}

type messageStore struct{ b *Backend }

func (s messageStore) List(ctx context.Context) ([]collab.Message, error) {
	return list[collab.Message](ctx, s.b, "/api/messages")
}

func (s messageStore) Create(ctx context.Context, msg collab.Message) (collab.Message, error) {
	payload := collab.NewMessage{User: msg.User, Text: msg.Text}
	return create[collab.Message](ctx, s.b, "/api/messages", payload)
}

func (s messageStore) Delete(context.Context, string) error {
	return collab.ErrOperationNotSupported
}

type assignmentStore struct{ b *Backend }

func (s assignmentStore) List(ctx context.Context) ([]collab.Assignment, error) {
	return list[collab.Assignment](ctx, s.b, "/api/assignments")
}

func (s assignmentStore) Create(ctx context.Context, a collab.Assignment) (collab.Assignment, error) {
	payload := collab.NewAssignment{
		Title:       a.Title,
		Subject:     a.Subject,
		Deadline:    a.Deadline,
		Description: a.Description,
		PostedBy:    a.PostedBy,
	}
	return create[collab.Assignment](ctx, s.b, "/api/assignments", payload)
}

func (s assignmentStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.b, "/api/assignments/"+id)
}

type noteStore struct{ b *Backend }

func (s noteStore) List(ctx context.Context) ([]collab.Note, error) {
	return list[collab.Note](ctx, s.b, "/api/notes")
}

func (s noteStore) Create(ctx context.Context, n collab.Note) (collab.Note, error) {
	payload := collab.NewNote{
		Title:       n.Title,
		Subject:     n.Subject,
		Description: n.Description,
		UploadedBy:  n.UploadedBy,
	}
	return create[collab.Note](ctx, s.b, "/api/notes", payload)
}

func (s noteStore) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.b, "/api/notes/"+id)
}

type announcementStore struct{ b *Backend }

func (s announcementStore) List(ctx context.Context) ([]collab.Announcement, error) {
	return list[collab.Announcement](ctx, s.b, "/api/announcements")
}

func (s announcementStore) Create(ctx context.Context, a collab.Announcement) (collab.Announcement, error) {
	payload := collab.NewAnnouncement{Title: a.Title, Content: a.Content, PostedBy: a.PostedBy}
	return create[collab.Announcement](ctx, s.b, "/api/announcements", payload)
}

func (s announcementStore) Delete(context.Context, string) error {
	return collab.ErrOperationNotSupported
}
