package remotedb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/dkimathi/darasa/apps/api/echo"
	"github.com/dkimathi/darasa/core"
	"github.com/dkimathi/darasa/core/collab"
	inmemdb "github.com/dkimathi/darasa/storage/database/inmem"
)

// startTestAPI runs the real collection API over an in-memory repository.
func startTestAPI(t *testing.T) (*Backend, collab.Repository) {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	repo := inmemdb.NewRepository(db)

	app := echoapi.NewServer(&echoapi.Options{
		DisableReqLogs: true,
		AppConf:        &core.Config{TestMode: true, AppName: "Darasa"},
		Repo:           repo,
	})
	srv := httptest.NewServer(app)
	t.Cleanup(srv.Close)
	return NewBackend(srv.URL), repo
}

func TestProbeSelectsRemoteWhenHealthy(t *testing.T) {
	be, _ := startTestAPI(t)
	mode := Probe(context.Background(), be.baseURL, time.Second, core.NopLogger{})
	assert.Equal(t, collab.ModeRemote, mode)
}

func TestProbeFallsBackOnConnectionError(t *testing.T) {
	// nothing listens here
	mode := Probe(context.Background(), "http://127.0.0.1:1", time.Second, core.NopLogger{})
	assert.Equal(t, collab.ModeLocal, mode)
}

func TestProbeFallsBackOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	mode := Probe(context.Background(), srv.URL, time.Second, core.NopLogger{})
	assert.Equal(t, collab.ModeLocal, mode)
}

func TestProbeFallsBackOnTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	start := time.Now()
	mode := Probe(context.Background(), srv.URL, 50*time.Millisecond, core.NopLogger{})
	assert.Equal(t, collab.ModeLocal, mode)
	assert.Less(t, time.Since(start), time.Second, "the probe is bounded by its timeout")
}

func TestMessageRoundTrip(t *testing.T) {
	be, _ := startTestAPI(t)
	ctx := context.Background()
	store := be.Messages()

	msgs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	stored, err := store.Create(ctx, collab.Message{User: "Asha", Text: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID, "the server assigns the identifier")
	assert.False(t, stored.CreatedAt.IsZero(), "the server assigns the timestamp")
	assert.Equal(t, "Asha", stored.User)

	msgs, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, stored.ID, msgs[0].ID)
	assert.Equal(t, "hello", msgs[0].Text)
}

func TestMessagesListAscending(t *testing.T) {
	be, _ := startTestAPI(t)
	ctx := context.Background()
	store := be.Messages()

	_, err := store.Create(ctx, collab.Message{User: "Asha", Text: "first"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = store.Create(ctx, collab.Message{User: "Ravi", Text: "second"})
	require.NoError(t, err)

	msgs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Text)
	assert.False(t, msgs[1].CreatedAt.Before(msgs[0].CreatedAt))
}

func TestAssignmentCreateAndDelete(t *testing.T) {
	be, _ := startTestAPI(t)
	ctx := context.Background()
	store := be.Assignments()

	stored, err := store.Create(ctx, collab.Assignment{
		Title:       "HW1",
		Subject:     "Math",
		Deadline:    "2024-05-01",
		Description: "Ch.3",
		PostedBy:    "Ravi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "2024-05-01", stored.Deadline)

	require.NoError(t, store.Delete(ctx, stored.ID))

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteUnknownIDFails(t *testing.T) {
	be, _ := startTestAPI(t)
	err := be.Assignments().Delete(context.Background(), "nope")
	require.Error(t, err, "a non-2xx delete response is an error")
}

func TestAssignmentsListDescending(t *testing.T) {
	be, repo := startTestAPI(t)
	ctx := context.Background()

	_, err := repo.CreateAssignment(ctx, collab.Assignment{Title: "HW1", Subject: "Math", Deadline: "2024-05-01", Description: "a", PostedBy: "Ravi"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = repo.CreateAssignment(ctx, collab.Assignment{Title: "HW2", Subject: "Math", Deadline: "2024-05-08", Description: "b", PostedBy: "Ravi"})
	require.NoError(t, err)

	items, err := be.Assignments().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "HW2", items[0].Title, "server applies the newest-first sort")
}

func TestCreateValidationFailureIsAnError(t *testing.T) {
	be, _ := startTestAPI(t)
	_, err := be.Messages().Create(context.Background(), collab.Message{User: "Asha"})
	require.Error(t, err, "the server rejects a blank text with a non-201")
}

func TestNoteLifecycleAgainstAPI(t *testing.T) {
	be, _ := startTestAPI(t)
	ctx := context.Background()

	stored, err := be.Notes().Create(ctx, collab.Note{Title: "Trig", Subject: "Math", Description: "sheet", UploadedBy: "Asha"})
	require.NoError(t, err)

	items, err := be.Notes().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, be.Notes().Delete(ctx, stored.ID))
	items, err = be.Notes().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAnnouncementCreate(t *testing.T) {
	be, _ := startTestAPI(t)
	ctx := context.Background()

	stored, err := be.Announcements().Create(ctx, collab.Announcement{Title: "Exams", Content: "Next week", PostedBy: "Ravi"})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)

	assert.ErrorIs(t, be.Announcements().Delete(ctx, stored.ID), collab.ErrOperationNotSupported)
	assert.ErrorIs(t, be.Messages().Delete(ctx, "x"), collab.ErrOperationNotSupported)
}
