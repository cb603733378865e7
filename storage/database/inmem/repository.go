package inmemdb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dkimathi/darasa/core/collab"
)

type repository struct {
	db *DB
}

var _ collab.Repository = (*repository)(nil) // interface compliance check

func NewRepository(db *DB) collab.Repository {
	return &repository{db: db}
}

func (repo *repository) QueryMessages(context.Context) ([]collab.Message, error) {
	repo.db.messages.RLock()
	defer repo.db.messages.RUnlock()

	msgs := make([]collab.Message, 0, len(repo.db.messages.table))
	for _, m := range repo.db.messages.table {
		msgs = append(msgs, *m)
	}
	// ascending creation time
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	return msgs, nil
}

func (repo *repository) CreateMessage(_ context.Context, msg collab.Message) (collab.Message, error) {
	repo.db.messages.Lock()
	defer repo.db.messages.Unlock()

	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()
	repo.db.messages.table[msg.ID] = &msg
	return msg, nil
}

func (repo *repository) QueryAssignments(context.Context) ([]collab.Assignment, error) {
	repo.db.assignments.RLock()
	defer repo.db.assignments.RUnlock()

	items := make([]collab.Assignment, 0, len(repo.db.assignments.table))
	for _, a := range repo.db.assignments.table {
		items = append(items, *a)
	}
	// descending posting time
	sort.Slice(items, func(i, j int) bool { return items[i].PostedAt.After(items[j].PostedAt) })
	return items, nil
}

func (repo *repository) CreateAssignment(_ context.Context, a collab.Assignment) (collab.Assignment, error) {
	repo.db.assignments.Lock()
	defer repo.db.assignments.Unlock()

	a.ID = uuid.NewString()
	a.PostedAt = time.Now().UTC()
	repo.db.assignments.table[a.ID] = &a
	return a, nil
}

func (repo *repository) DeleteAssignment(_ context.Context, id string) error {
	repo.db.assignments.Lock()
	defer repo.db.assignments.Unlock()

	if _, ok := repo.db.assignments.table[id]; !ok {
		return collab.ErrNotFound
	}
	delete(repo.db.assignments.table, id)
	return nil
}

func (repo *repository) QueryNotes(context.Context) ([]collab.Note, error) {
	repo.db.notes.RLock()
	defer repo.db.notes.RUnlock()

	items := make([]collab.Note, 0, len(repo.db.notes.table))
	for _, n := range repo.db.notes.table {
		items = append(items, *n)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UploadedAt.After(items[j].UploadedAt) })
	return items, nil
}

func (repo *repository) CreateNote(_ context.Context, n collab.Note) (collab.Note, error) {
	repo.db.notes.Lock()
	defer repo.db.notes.Unlock()

	n.ID = uuid.NewString()
	n.UploadedAt = time.Now().UTC()
	repo.db.notes.table[n.ID] = &n
	return n, nil
}

func (repo *repository) DeleteNote(_ context.Context, id string) error {
	repo.db.notes.Lock()
	defer repo.db.notes.Unlock()

	if _, ok := repo.db.notes.table[id]; !ok {
		return collab.ErrNotFound
	}
	delete(repo.db.notes.table, id)
	return nil
}

func (repo *repository) QueryAnnouncements(context.Context) ([]collab.Announcement, error) {
	repo.db.announcements.RLock()
	defer repo.db.announcements.RUnlock()

	items := make([]collab.Announcement, 0, len(repo.db.announcements.table))
	for _, a := range repo.db.announcements.table {
		items = append(items, *a)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PostedAt.After(items[j].PostedAt) })
	return items, nil
}

func (repo *repository) CreateAnnouncement(_ context.Context, a collab.Announcement) (collab.Announcement, error) {
	repo.db.announcements.Lock()
	defer repo.db.announcements.Unlock()

	a.ID = uuid.NewString()
	a.PostedAt = time.Now().UTC()
	repo.db.announcements.table[a.ID] = &a
	return a, nil
}
