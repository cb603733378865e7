package collab

import (
	"context"
	"sync"
	"time"

	"github.com/dkimathi/darasa/core"
)

// Service bridges a session's reads and writes to whichever backend the
// session selected, and keeps the four in-memory snapshots reasonably
// fresh. In remote mode freshness comes from polling; in local mode the
// snapshots are mutated optimistically and never go stale.
type Service struct {
	sess    *Session
	backend Backend
	log     core.Logger

	pollInterval time.Duration

	messages      *Collection[Message]
	assignments   *Collection[Assignment]
	notes         *Collection[Note]
	announcements *Collection[Announcement]

	pollMu     sync.Mutex
	pollCancel context.CancelFunc
	pollDone   chan struct{}
}

func NewService(sess *Session, backend Backend, log core.Logger, conf *core.Config) *Service {
	return &Service{
		sess:         sess,
		backend:      backend,
		log:          log,
		pollInterval: conf.API.PollInterval,

		messages:      newCollection("messages", backend.Messages(), log),
		assignments:   newCollection("assignments", backend.Assignments(), log),
		notes:         newCollection("notes", backend.Notes(), log),
		announcements: newCollection("announcements", backend.Announcements(), log),
	}
}

func (svc *Service) Session() *Session { return svc.sess }
func (svc *Service) Mode() Mode        { return svc.backend.Mode() }

// Snapshot accessors. Messages are oldest-first; the rest newest-first.

func (svc *Service) Messages() []Message           { return svc.messages.Snapshot() }
func (svc *Service) Assignments() []Assignment     { return svc.assignments.Snapshot() }
func (svc *Service) Notes() []Note                 { return svc.notes.Snapshot() }
func (svc *Service) Announcements() []Announcement { return svc.announcements.Snapshot() }

// LoadAll fetches all four collections concurrently. Individual failures
// leave that collection's previous (or empty) snapshot in place.
func (svc *Service) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); svc.messages.Load(ctx) }()
	go func() { defer wg.Done(); svc.assignments.Load(ctx) }()
	go func() { defer wg.Done(); svc.notes.Load(ctx) }()
	go func() { defer wg.Done(); svc.announcements.Load(ctx) }()
	wg.Wait()
}

// StartPolling begins the remote-mode refresh loop: a full four-collection
// reload every poll interval. This is the sole mechanism by which one
// client observes another client's writes. It is a no-op in local mode.
func (svc *Service) StartPolling(ctx context.Context) {
	if svc.backend.Mode() != ModeRemote {
		return
	}

	svc.pollMu.Lock()
	defer svc.pollMu.Unlock()
	if svc.pollCancel != nil {
		return // already polling
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	svc.pollCancel = cancel
	svc.pollDone = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(svc.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.LoadAll(ctx)
			}
		}
	}()
}

// Stop cancels the refresh loop and waits for it to exit. Called at
// logout; safe to call when polling never started.
func (svc *Service) Stop() {
	svc.pollMu.Lock()
	cancel, done := svc.pollCancel, svc.pollDone
	svc.pollCancel, svc.pollDone = nil, nil
	svc.pollMu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// SendMessage posts a chat message authored by the session user.
func (svc *Service) SendMessage(ctx context.Context, text string) error {
	nm := NewMessage{User: svc.sess.Username, Text: text}
	if err := nm.Validate(); err != nil {
		return err
	}
	return create(ctx, svc, svc.messages, nm.Record(), false, func(m *Message, id string, now time.Time) {
		m.ID, m.CreatedAt = id, now
	})
}

// PostAssignment publishes an assignment; class reps only.
func (svc *Service) PostAssignment(ctx context.Context, na NewAssignment) error {
	if !svc.sess.IsClassRep() {
		return ErrPermissionDenied
	}
	na.PostedBy = svc.sess.Username
	if err := na.Validate(); err != nil {
		return err
	}
	return create(ctx, svc, svc.assignments, na.Record(), true, func(a *Assignment, id string, now time.Time) {
		a.ID, a.PostedAt = id, now
	})
}

// UploadNote shares a note authored by the session user.
func (svc *Service) UploadNote(ctx context.Context, nn NewNote) error {
	nn.UploadedBy = svc.sess.Username
	if err := nn.Validate(); err != nil {
		return err
	}
	return create(ctx, svc, svc.notes, nn.Record(), true, func(n *Note, id string, now time.Time) {
		n.ID, n.UploadedAt = id, now
	})
}

// PostAnnouncement publishes an announcement; class reps only.
func (svc *Service) PostAnnouncement(ctx context.Context, na NewAnnouncement) error {
	if !svc.sess.IsClassRep() {
		return ErrPermissionDenied
	}
	na.PostedBy = svc.sess.Username
	if err := na.Validate(); err != nil {
		return err
	}
	return create(ctx, svc, svc.announcements, na.Record(), true, func(a *Announcement, id string, now time.Time) {
		a.ID, a.PostedAt = id, now
	})
}

// DeleteAssignment removes an assignment; class reps only. A denied check
// issues no backend call.
func (svc *Service) DeleteAssignment(ctx context.Context, id string) error {
	if !svc.sess.IsClassRep() {
		return ErrPermissionDenied
	}
	return remove(ctx, svc, svc.assignments, id, func(a Assignment) string { return a.ID })
}

// DeleteNote removes a note; allowed for its uploader or a class rep.
func (svc *Service) DeleteNote(ctx context.Context, id string) error {
	note, ok := svc.notes.find(func(n Note) bool { return n.ID == id })
	if !ok {
		return ErrNotFound
	}
	if !svc.sess.IsClassRep() && note.UploadedBy != svc.sess.Username {
		return ErrPermissionDenied
	}
	return remove(ctx, svc, svc.notes, id, func(n Note) string { return n.ID })
}

// create runs one write through the active backend.
//
// Local mode synthesizes the identifier and timestamp up front, inserts
// into the snapshot immediately and persists the result; a persistence
// failure is logged, the optimistic insert stays (the next full reload
// reconciles). Remote mode sends the draft and
// leaves the snapshot alone: the next poll is what reveals the record.
func create[T any](ctx context.Context, svc *Service, c *Collection[T], rec T, newestFirst bool, stamp func(*T, string, time.Time)) error {
	if svc.backend.Mode() == ModeLocal {
		stamp(&rec, localID(), time.Now().UTC())
		c.insert(rec, newestFirst)
		if _, err := c.store.Create(ctx, rec); err != nil {
			svc.log.Error("persisting "+c.name, err)
		}
		return nil
	}

	if _, err := c.store.Create(ctx, rec); err != nil {
		svc.log.Error("creating "+c.name, err)
		return err
	}
	return nil
}

// remove runs one delete through the active backend. Local mode filters
// the snapshot synchronously and rewrites the store; remote mode leaves
// the snapshot to the next poll. Backend failures are logged only.
func remove[T any](ctx context.Context, svc *Service, c *Collection[T], id string, idOf func(T) string) error {
	if svc.backend.Mode() == ModeLocal {
		c.remove(func(item T) bool { return idOf(item) == id })
	}
	if err := c.store.Delete(ctx, id); err != nil {
		svc.log.Error("deleting from "+c.name, err)
	}
	return nil
}
