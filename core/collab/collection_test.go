package collab

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkimathi/darasa/core"
)

func TestCollectionLoadReplacesSnapshot(t *testing.T) {
	store := &fakeStore[Message]{items: []Message{{ID: "m1"}, {ID: "m2"}}}
	c := newCollection[Message]("messages", store, core.NopLogger{})

	c.Load(context.Background())
	require.Equal(t, 2, c.Len())

	store.mu.Lock()
	store.items = store.items[:1]
	store.mu.Unlock()
	c.Load(context.Background())
	assert.Equal(t, 1, c.Len())
}

func TestCollectionLoadFailureKeepsItems(t *testing.T) {
	store := &fakeStore[Message]{items: []Message{{ID: "m1"}}}
	c := newCollection[Message]("messages", store, core.NopLogger{})

	c.Load(context.Background())
	require.Equal(t, 1, c.Len())

	store.mu.Lock()
	store.listErr = errors.New("down")
	store.mu.Unlock()
	c.Load(context.Background())
	assert.Equal(t, 1, c.Len())
}

func TestCollectionSnapshotIsACopy(t *testing.T) {
	store := &fakeStore[Message]{items: []Message{{ID: "m1", Text: "hi"}}}
	c := newCollection[Message]("messages", store, core.NopLogger{})
	c.Load(context.Background())

	snap := c.Snapshot()
	snap[0].Text = "mutated"

	assert.Equal(t, "hi", c.Snapshot()[0].Text)
}

func TestCollectionInsertOrder(t *testing.T) {
	c := newCollection[Message]("messages", &fakeStore[Message]{}, core.NopLogger{})
	c.insert(Message{ID: "m1"}, false)
	c.insert(Message{ID: "m2"}, false)
	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "m1", snap[0].ID, "append keeps oldest first")

	a := newCollection[Assignment]("assignments", &fakeStore[Assignment]{}, core.NopLogger{})
	a.insert(Assignment{ID: "a1"}, true)
	a.insert(Assignment{ID: "a2"}, true)
	asnap := a.Snapshot()
	require.Len(t, asnap, 2)
	assert.Equal(t, "a2", asnap[0].ID, "prepend keeps newest first")
}

func TestCollectionRemove(t *testing.T) {
	c := newCollection[Note]("notes", &fakeStore[Note]{}, core.NopLogger{})
	c.insert(Note{ID: "n1"}, true)
	c.insert(Note{ID: "n2"}, true)
	c.insert(Note{ID: "n3"}, true)

	c.remove(func(n Note) bool { return n.ID == "n2" })

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "n3", snap[0].ID)
	assert.Equal(t, "n1", snap[1].ID)
}
