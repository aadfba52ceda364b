package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGetRemove(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("tok-1", Session{UserID: "u1", Role: "staff"})
	got, ok := store.Get("tok-1")
	require.True(t, ok)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "staff", got.Role)

	store.Remove("tok-1")
	_, ok = store.Get("tok-1")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	store.Set("tok-exp", Session{UserID: "u2", ExpiresAt: time.Now().Add(-time.Minute)})

	_, ok := store.Get("tok-exp")
	assert.False(t, ok, "expired session must not be returned")

	// expired entries are dropped on read
	store.mu.RLock()
	_, still := store.sessions["tok-exp"]
	store.mu.RUnlock()
	assert.False(t, still)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			store.Set("tok", Session{UserID: "u"})
		}
		close(done)
	}()
	for i := 0; i < 500; i++ {
		store.Get("tok")
	}
	<-done
}
