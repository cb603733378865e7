package collab

import (
	"time"

	"github.com/dkimathi/darasa/core"
)

// Message is a chat message. Immutable once created; messages are never
// deleted and always render oldest-first.
type Message struct {
	ID        string    `json:"_id" db:"id"`
	User      string    `json:"user" db:"user"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // UTC
}

// Assignment renders newest-first. Delete-only mutation, class rep only.
type Assignment struct {
	ID          string    `json:"_id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subject     string    `json:"subject" db:"subject"`
	Deadline    string    `json:"deadline" db:"deadline"` // YYYY-MM-DD
	Description string    `json:"description" db:"description"`
	PostedBy    string    `json:"postedBy" db:"posted_by"`
	PostedAt    time.Time `json:"postedAt" db:"posted_at"` // UTC
}

// Note renders newest-first. Deletable by its uploader or a class rep.
type Note struct {
	ID          string    `json:"_id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subject     string    `json:"subject" db:"subject"`
	Description string    `json:"description" db:"description"`
	UploadedBy  string    `json:"uploadedBy" db:"uploaded_by"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"` // UTC
}

// Announcement renders newest-first. Class rep only; no delete.
type Announcement struct {
	ID       string    `json:"_id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Content  string    `json:"content" db:"content"`
	PostedBy string    `json:"postedBy" db:"posted_by"`
	PostedAt time.Time `json:"postedAt" db:"posted_at"` // UTC
}

// NewMessage contains information needed to create a new Message.
// It doubles as the POST /api/messages payload.
type NewMessage struct {
	User string `json:"user" validate:"required,notblank"`
	Text string `json:"text" validate:"required,notblank"`
}

func (nm *NewMessage) Validate() error {
	nm.User = core.CleanString(nm.User)
	nm.Text = core.CleanString(nm.Text)
	return core.Validate.Struct(nm)
}

func (nm *NewMessage) Record() Message {
	return Message{User: nm.User, Text: nm.Text}
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title       string `json:"title" validate:"required,notblank"`
	Subject     string `json:"subject" validate:"required,notblank"`
	Deadline    string `json:"deadline" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required,notblank"`
	PostedBy    string `json:"postedBy" validate:"required,notblank"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Subject = core.CleanString(na.Subject)
	na.Deadline = core.CleanString(na.Deadline)
	na.Description = core.CleanString(na.Description)
	na.PostedBy = core.CleanString(na.PostedBy)
	return core.Validate.Struct(na)
}

func (na *NewAssignment) Record() Assignment {
	return Assignment{
		Title:       na.Title,
		Subject:     na.Subject,
		Deadline:    na.Deadline,
		Description: na.Description,
		PostedBy:    na.PostedBy,
	}
}

// NewNote contains information needed to create a new Note.
type NewNote struct {
	Title       string `json:"title" validate:"required,notblank"`
	Subject     string `json:"subject" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	UploadedBy  string `json:"uploadedBy" validate:"required,notblank"`
}

func (nn *NewNote) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Subject = core.CleanString(nn.Subject)
	nn.Description = core.CleanString(nn.Description)
	nn.UploadedBy = core.CleanString(nn.UploadedBy)
	return core.Validate.Struct(nn)
}

func (nn *NewNote) Record() Note {
	return Note{
		Title:       nn.Title,
		Subject:     nn.Subject,
		Description: nn.Description,
		UploadedBy:  nn.UploadedBy,
	}
}

// NewAnnouncement contains information needed to create a new Announcement.
type NewAnnouncement struct {
	Title    string `json:"title" validate:"required,notblank"`
	Content  string `json:"content" validate:"required,notblank"`
	PostedBy string `json:"postedBy" validate:"required,notblank"`
}

func (na *NewAnnouncement) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	na.PostedBy = core.CleanString(na.PostedBy)
	return core.Validate.Struct(na)
}

func (na *NewAnnouncement) Record() Announcement {
	return Announcement{Title: na.Title, Content: na.Content, PostedBy: na.PostedBy}
}
