// Package upstream talks to the public demo API the inbox is rendered
// from. The endpoints are read-only and unreliable: they may fail, omit
// fields, or disagree on field names, so every call returns RawRecord
// values and a typed error that hides the transport details.
package upstream

import (
	"context"
	"fmt"

	"github.com/boxpad/boxpad-api/models"
)

// go generate: mockery --name Source

// Source contains the read operations the inbox needs from the remote
// demo API. Implementations never retry; re-invocation is a caller
// decision.
type Source interface {
	Users(ctx context.Context) ([]models.RawRecord, error)
	UserByID(ctx context.Context, id int) (models.RawRecord, error)
	Posts(ctx context.Context) ([]models.RawRecord, error)
	Comments(ctx context.Context) ([]models.RawRecord, error)
	CommentsByPost(ctx context.Context, postID int) ([]models.RawRecord, error)
	UsersPage(ctx context.Context, key string, limit int) ([]models.RawRecord, error)
}

// Kind classifies an upstream failure.
type Kind int

// The failure kinds. Status failures mean a response arrived with a
// non-2xx code; transport failures never produced a response; timeouts
// hit the configured deadline; malformed means the body parsed as JSON
// but had the wrong shape.
const (
	KindTransport Kind = iota
	KindTimeout
	KindStatus
	KindMalformed
)

// Error is the only error type this package returns. Its message is
// stable per operation and kind, it never echoes raw status text or
// transport internals.
type Error struct {
	Kind   Kind
	Op     string // e.g. "fetch users"
	Status int    // http status, only set for KindStatus
	Err    error  // underlying cause, nil for KindStatus
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("failed to %s: upstream unreachable", e.Op)
	case KindTimeout:
		return fmt.Sprintf("failed to %s: request timed out", e.Op)
	case KindMalformed:
		return fmt.Sprintf("failed to %s: unexpected response shape", e.Op)
	default:
		return fmt.Sprintf("failed to %s", e.Op)
	}
}

func (e *Error) Unwrap() error { return e.Err }
