package collab

import (
	"strings"
	"time"

	"github.com/dkimathi/darasa/core"
)

// Mode is the storage backend selected for a session. It is chosen exactly
// once, at login, and never re-evaluated for the lifetime of the session.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

// Login contains information needed to open a new Session.
type Login struct {
	Username string   `json:"username" validate:"required,notblank"`
	Roles    []string `json:"roles" validate:"required,min=1,allroles"`
}

func (l *Login) Validate() error {
	l.Username = core.CleanString(l.Username)
	return core.Validate.Struct(l)
}

// Session carries the logged-in identity and the backend mode selected for
// it. It is created at login, passed explicitly to every component that
// needs it, and discarded at logout; there is no ambient session state.
type Session struct {
	Username  string
	Roles     []string
	Mode      Mode
	StartedAt time.Time // UTC
}

func NewSession(l Login, mode Mode) (*Session, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		Username:  l.Username,
		Roles:     l.Roles,
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}, nil
}

func (s *Session) RoleStartsWith(prefix string) bool {
	for _, role := range s.Roles {
		if strings.HasPrefix(role, prefix) {
			return true
		}
	}
	return false
}

// IsClassRep reports whether the session holds the privileged role.
func (s *Session) IsClassRep() bool {
	return s.RoleStartsWith(RoleClassRep)
}

func (s *Session) IsStudent() bool {
	return s.RoleStartsWith(RoleStudent)
}
