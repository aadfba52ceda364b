// internals/sessions/store.go
package sessions

import "time"

// Session is the lightweight per-login record kept alongside the JWT so
// /me can answer even when the user row is slow to fetch.
type Session struct {
	UserID    string            `json:"user_id"`
	Role      string            `json:"role"`
	FullName  string            `json:"full_name"`
	Data      map[string]string `json:"data,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// Store is the swap point: the in-memory implementation below is the
// default; a shared external cache can be dropped in behind the same
// three calls without touching callers.
type Store interface {
	Get(key string) (Session, bool)
	Set(key string, s Session)
	Remove(key string)
}
