package collab

import "context"

// Repository is the server-side storage contract behind the collection
// API. Query methods apply the canonical sort: messages ascending by
// creation time, the rest descending. Create methods assign the record's
// identifier and timestamp. Delete methods return ErrNotFound for an
// unknown identifier.
type Repository interface {
	QueryMessages(ctx context.Context) ([]Message, error)
	CreateMessage(ctx context.Context, msg Message) (Message, error)

	QueryAssignments(ctx context.Context) ([]Assignment, error)
	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error

	QueryNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, n Note) (Note, error)
	DeleteNote(ctx context.Context, id string) error

	QueryAnnouncements(ctx context.Context) ([]Announcement, error)
	CreateAnnouncement(ctx context.Context, a Announcement) (Announcement, error)
}
