package localdb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/dkimathi/darasa/core/collab"
)

// Fixed keys; each holds one JSON-encoded array of the whole collection.
const (
	messagesKey      = "messages"
	assignmentsKey   = "assignments"
	notesKey         = "notes"
	announcementsKey = "announcements"
)

// Backend is the local-mode collab.Backend: four collections serialized
// under fixed keys, identifier field named "id" (the remote wire uses
// "_id"). Every mutation re-serializes and rewrites the whole array.
type Backend struct {
	store *Store
}

var _ collab.Backend = (*Backend)(nil)

// OpenBackend opens the badger store at dir and wraps it as a Backend.
func OpenBackend(dir string) (*Backend, error) {
	store, err := Open(dir)
	if err != nil {
		return nil, err
	}
	return &Backend{store: store}, nil
}

// NewBackend wraps an already-open Store.
func NewBackend(store *Store) *Backend {
	return &Backend{store: store}
}

func (b *Backend) Mode() collab.Mode { return collab.ModeLocal }
func (b *Backend) Close() error      { return b.store.Close() }

func (b *Backend) Messages() collab.Store[collab.Message] {
	return messageStore{b.store}
}

func (b *Backend) Assignments() collab.Store[collab.Assignment] {
	return assignmentStore{b.store}
}

func (b *Backend) Notes() collab.Store[collab.Note] {
	return noteStore{b.store}
}

func (b *Backend) Announcements() collab.Store[collab.Announcement] {
	return announcementStore{b.store}
}

// Local serializations; only the identifier field name differs from the
// remote wire format.

type localMessage struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type localAssignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Deadline    string    `json:"deadline"`
	Description string    `json:"description"`
	PostedBy    string    `json:"postedBy"`
	PostedAt    time.Time `json:"postedAt"`
}

type localNote struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

type localAnnouncement struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	PostedBy string    `json:"postedBy"`
	PostedAt time.Time `json:"postedAt"`
}

// readAll decodes the whole collection under key; an absent key is an
// empty collection.
func readAll[W any](st *Store, key string) ([]W, error) {
	raw, ok, err := st.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []W
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(err, "decoding %q", key)
	}
	return items, nil
}

// writeAll re-serializes and rewrites the whole collection under key.
func writeAll[W any](st *Store, key string, items []W) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	return st.Set(key, string(raw))
}

type messageStore struct{ st *Store }

func (s messageStore) List(context.Context) ([]collab.Message, error) {
	wire, err := readAll[localMessage](s.st, messagesKey)
	if err != nil {
		return nil, err
	}
	msgs := make([]collab.Message, 0, len(wire))
	for _, w := range wire {
		msgs = append(msgs, collab.Message(w))
	}
	return msgs, nil
}

func (s messageStore) Create(ctx context.Context, msg collab.Message) (collab.Message, error) {
	wire, err := readAll[localMessage](s.st, messagesKey)
	if err != nil {
		return msg, err
	}
	// message log is oldest-first: append
	wire = append(wire, localMessage(msg))
	return msg, writeAll(s.st, messagesKey, wire)
}

func (s messageStore) Delete(context.Context, string) error {
	return collab.ErrOperationNotSupported
}

type assignmentStore struct{ st *Store }

func (s assignmentStore) List(context.Context) ([]collab.Assignment, error) {
	wire, err := readAll[localAssignment](s.st, assignmentsKey)
	if err != nil {
		return nil, err
	}
	items := make([]collab.Assignment, 0, len(wire))
	for _, w := range wire {
		items = append(items, collab.Assignment(w))
	}
	return items, nil
}

func (s assignmentStore) Create(ctx context.Context, a collab.Assignment) (collab.Assignment, error) {
	wire, err := readAll[localAssignment](s.st, assignmentsKey)
	if err != nil {
		return a, err
	}
	// newest-first: prepend
	wire = append([]localAssignment{localAssignment(a)}, wire...)
	return a, writeAll(s.st, assignmentsKey, wire)
}

func (s assignmentStore) Delete(ctx context.Context, id string) error {
	wire, err := readAll[localAssignment](s.st, assignmentsKey)
	if err != nil {
		return err
	}
	kept := wire[:0]
	for _, w := range wire {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	return writeAll(s.st, assignmentsKey, kept)
}

type noteStore struct{ st *Store }

func (s noteStore) List(context.Context) ([]collab.Note, error) {
	wire, err := readAll[localNote](s.st, notesKey)
	if err != nil {
		return nil, err
	}
	items := make([]collab.Note, 0, len(wire))
	for _, w := range wire {
		items = append(items, collab.Note(w))
	}
	return items, nil
}

func (s noteStore) Create(ctx context.Context, n collab.Note) (collab.Note, error) {
	wire, err := readAll[localNote](s.st, notesKey)
	if err != nil {
		return n, err
	}
	wire = append([]localNote{localNote(n)}, wire...)
	return n, writeAll(s.st, notesKey, wire)
}

func (s noteStore) Delete(ctx context.Context, id string) error {
	wire, err := readAll[localNote](s.st, notesKey)
	if err != nil {
		return err
	}
	kept := wire[:0]
	for _, w := range wire {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	return writeAll(s.st, notesKey, kept)
}

type announcementStore struct{ st *Store }

func (s announcementStore) List(context.Context) ([]collab.Announcement, error) {
	wire, err := readAll[localAnnouncement](s.st, announcementsKey)
	if err != nil {
		return nil, err
	}
	items := make([]collab.Announcement, 0, len(wire))
	for _, w := range wire {
		items = append(items, collab.Announcement(w))
	}
	return items, nil
}

func (s announcementStore) Create(ctx context.Context, a collab.Announcement) (collab.Announcement, error) {
	wire, err := readAll[localAnnouncement](s.st, announcementsKey)
	if err != nil {
		return a, err
	}
	wire = append([]localAnnouncement{localAnnouncement(a)}, wire...)
	return a, writeAll(s.st, announcementsKey, wire)
}

func (s announcementStore) Delete(context.Context, string) error {
	return collab.ErrOperationNotSupported
}
