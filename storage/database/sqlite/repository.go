package sqlitedb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/dkimathi/darasa/core"
	"github.com/dkimathi/darasa/core/collab"
)

type repository struct {
	db *sqlx.DB
}

var _ collab.Repository = (*repository)(nil) // interface compliance check

func NewRepository(db *sqlx.DB) collab.Repository {
	return &repository{db: db}
}

var (
	msgOrdering          = core.DBOrdering{Field: "created_at", Ascending: true}
	assignmentOrdering   = core.DBOrdering{Field: "posted_at"}
	noteOrdering         = core.DBOrdering{Field: "uploaded_at"}
	announcementOrdering = core.DBOrdering{Field: "posted_at"}
)

func (repo *repository) QueryMessages(ctx context.Context) ([]collab.Message, error) {
	msgs := make([]collab.Message, 0)
	q := "SELECT id, user, text, created_at FROM message ORDER BY " + msgOrdering.String()
	if err := repo.db.SelectContext(ctx, &msgs, q); err != nil {
		return nil, errors.Wrap(err, "querying messages")
	}
	return msgs, nil
}

func (repo *repository) CreateMessage(ctx context.Context, msg collab.Message) (collab.Message, error) {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()
	q := "INSERT INTO message (id, user, text, created_at) VALUES (:id, :user, :text, :created_at)"
	if _, err := repo.db.NamedExecContext(ctx, q, msg); err != nil {
		return collab.Message{}, errors.Wrap(err, "creating message")
	}
	return msg, nil
}

func (repo *repository) QueryAssignments(ctx context.Context) ([]collab.Assignment, error) {
	items := make([]collab.Assignment, 0)
	q := "SELECT id, title, subject, deadline, description, posted_by, posted_at FROM assignment ORDER BY " + assignmentOrdering.String()
	if err := repo.db.SelectContext(ctx, &items, q); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	return items, nil
}

func (repo *repository) CreateAssignment(ctx context.Context, a collab.Assignment) (collab.Assignment, error) {
	a.ID = uuid.NewString()
	a.PostedAt = time.Now().UTC()
	q := `INSERT INTO assignment (id, title, subject, deadline, description, posted_by, posted_at)
	      VALUES (:id, :title, :subject, :deadline, :description, :posted_by, :posted_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, a); err != nil {
		return collab.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	return a, nil
}

func (repo *repository) DeleteAssignment(ctx context.Context, id string) error {
	return repo.deleteByID(ctx, "assignment", id)
}

func (repo *repository) QueryNotes(ctx context.Context) ([]collab.Note, error) {
	items := make([]collab.Note, 0)
	q := "SELECT id, title, subject, description, uploaded_by, uploaded_at FROM note ORDER BY " + noteOrdering.String()
	if err := repo.db.SelectContext(ctx, &items, q); err != nil {
		return nil, errors.Wrap(err, "querying notes")
	}
	return items, nil
}

func (repo *repository) CreateNote(ctx context.Context, n collab.Note) (collab.Note, error) {
	n.ID = uuid.NewString()
	n.UploadedAt = time.Now().UTC()
	q := `INSERT INTO note (id, title, subject, description, uploaded_by, uploaded_at)
	      VALUES (:id, :title, :subject, :description, :uploaded_by, :uploaded_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, n); err != nil {
		return collab.Note{}, errors.Wrap(err, "creating note")
	}
	return n, nil
}

func (repo *repository) DeleteNote(ctx context.Context, id string) error {
	return repo.deleteByID(ctx, "note", id)
}

func (repo *repository) QueryAnnouncements(ctx context.Context) ([]collab.Announcement, error) {
	items := make([]collab.Announcement, 0)
	q := "SELECT id, title, content, posted_by, posted_at FROM announcement ORDER BY " + announcementOrdering.String()
	if err := repo.db.SelectContext(ctx, &items, q); err != nil {
		return nil, errors.Wrap(err, "querying announcements")
	}
	return items, nil
}

func (repo *repository) CreateAnnouncement(ctx context.Context, a collab.Announcement) (collab.Announcement, error) {
	a.ID = uuid.NewString()
	a.PostedAt = time.Now().UTC()
	q := `INSERT INTO announcement (id, title, content, posted_by, posted_at)
	      VALUES (:id, :title, :content, :posted_by, :posted_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, a); err != nil {
		return collab.Announcement{}, errors.Wrap(err, "creating announcement")
	}
	return a, nil
}

func (repo *repository) deleteByID(ctx context.Context, table, id string) error {
	res, err := repo.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return errors.Wrapf(err, "deleting from %s", table)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "deleting from %s", table)
	}
	if n == 0 {
		return collab.ErrNotFound
	}
	return nil
}
