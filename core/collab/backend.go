package collab

import (
	"context"
	"errors"
)

var (
	// errors
	ErrNotFound              = errors.New("record not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrOperationNotSupported = errors.New("operation not supported on this collection")
)

type (
	// Store is the capability a backend exposes for one collection.
	// List returns records in the collection's canonical order (messages
	// ascending by creation time, everything else descending). Create
	// returns the stored record with its assigned identifier. Delete is
	// only supported for assignments and notes; the other stores return
	// ErrOperationNotSupported.
	Store[T any] interface {
		List(ctx context.Context) ([]T, error)
		Create(ctx context.Context, item T) (T, error)
		Delete(ctx context.Context, id string) error
	}

	// Backend bundles the four collection stores behind one storage mode.
	// The local and remote implementations are interchangeable; the
	// Service never branches on anything but Mode().
	Backend interface {
		Mode() Mode
		Messages() Store[Message]
		Assignments() Store[Assignment]
		Notes() Store[Note]
		Announcements() Store[Announcement]
		Close() error
	}
)
