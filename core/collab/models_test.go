package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    NewMessage
		wantErr bool
	}{
		{"ok", NewMessage{User: "Asha", Text: "hello"}, false},
		{"trims whitespace", NewMessage{User: " Asha ", Text: " hello "}, false},
		{"missing user", NewMessage{Text: "hello"}, true},
		{"blank text", NewMessage{User: "Asha", Text: "   "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Asha", tt.data.User)
			assert.Equal(t, "hello", tt.data.Text)
		})
	}
}

func TestNewAssignmentValidate(t *testing.T) {
	valid := NewAssignment{
		Title:       "HW1",
		Subject:     "Math",
		Deadline:    "2024-05-01",
		Description: "Ch.3",
		PostedBy:    "Ravi",
	}

	tests := []struct {
		name    string
		mutate  func(*NewAssignment)
		wantErr bool
	}{
		{"ok", func(*NewAssignment) {}, false},
		{"missing title", func(na *NewAssignment) { na.Title = "" }, true},
		{"blank subject", func(na *NewAssignment) { na.Subject = "  " }, true},
		{"bad deadline", func(na *NewAssignment) { na.Deadline = "next friday" }, true},
		{"missing description", func(na *NewAssignment) { na.Description = "" }, true},
		{"missing author", func(na *NewAssignment) { na.PostedBy = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid
			tt.mutate(&data)
			err := data.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewNoteValidate(t *testing.T) {
	data := NewNote{Title: "Trig", Subject: "Math", Description: "sheet", UploadedBy: "Asha"}
	require.NoError(t, data.Validate())

	data.UploadedBy = ""
	assert.Error(t, data.Validate())
}

func TestNewAnnouncementValidate(t *testing.T) {
	data := NewAnnouncement{Title: "Exams", Content: "Next week", PostedBy: "Ravi"}
	require.NoError(t, data.Validate())

	data.Content = "  "
	assert.Error(t, data.Validate())
}

func TestRecordCarriesAllFields(t *testing.T) {
	na := NewAssignment{Title: "HW1", Subject: "Math", Deadline: "2024-05-01", Description: "Ch.3", PostedBy: "Ravi"}
	a := na.Record()
	assert.Equal(t, "HW1", a.Title)
	assert.Equal(t, "Math", a.Subject)
	assert.Equal(t, "2024-05-01", a.Deadline)
	assert.Equal(t, "Ch.3", a.Description)
	assert.Equal(t, "Ravi", a.PostedBy)
	assert.Empty(t, a.ID, "identifiers are backend-assigned")
}
