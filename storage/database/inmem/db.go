package inmemdb

import (
	"sync"

	"github.com/dkimathi/darasa/core/collab"
)

// DB holds one table per collection. Each table carries its own lock;
// there is no cross-table transaction, matching the API's contract of
// four independent collections.
type (
	DB struct {
		messages      *messageTable
		assignments   *assignmentTable
		notes         *noteTable
		announcements *announcementTable
	}

	messageTable struct {
		sync.RWMutex
		table map[string]*collab.Message
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*collab.Assignment
	}

	noteTable struct {
		sync.RWMutex
		table map[string]*collab.Note
	}

	announcementTable struct {
		sync.RWMutex
		table map[string]*collab.Announcement
	}
)

func Open() (*DB, error) {
	db := &DB{
		messages:      &messageTable{table: make(map[string]*collab.Message)},
		assignments:   &assignmentTable{table: make(map[string]*collab.Assignment)},
		notes:         &noteTable{table: make(map[string]*collab.Note)},
		announcements: &announcementTable{table: make(map[string]*collab.Announcement)},
	}
	return db, nil
}
