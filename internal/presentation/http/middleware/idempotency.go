package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a recorded response is replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyStore keeps submission state in memory, keyed per session so two
// operators reusing the same key never collide. A key is reserved the moment
// its first request starts, so overlapping duplicates are blocked while the
// original is still in flight, not just after it responds.
type IdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]*idempotencyEntry
}

type idempotencyEntry struct {
	pending   bool
	code      int
	body      []byte
	expiresAt time.Time
}

// outcome of reserving a key
const (
	idemStarted = iota
	idemInFlight
	idemReplay
)

// NewIdempotencyStore creates an empty store
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{entries: make(map[string]*idempotencyEntry)}
}

// begin reserves the key for the calling request. idemStarted means the
// caller owns the key and must finalize or release it; idemInFlight means
// another request holds it right now; idemReplay returns the recorded
// response.
func (s *IdempotencyStore) begin(key string) (state, code int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		if !entry.pending && time.Now().After(entry.expiresAt) {
			delete(s.entries, key)
		} else if entry.pending {
			return idemInFlight, 0, nil
		} else {
			return idemReplay, entry.code, entry.body
		}
	}

	s.entries[key] = &idempotencyEntry{pending: true}
	return idemStarted, 0, nil
}

// finalize records the response for later replay
func (s *IdempotencyStore) finalize(key string, code int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &idempotencyEntry{
		code:      code,
		body:      body,
		expiresAt: time.Now().Add(IdempotencyKeyTTL),
	}
}

// release frees the key without recording anything, so the client can retry
func (s *IdempotencyStore) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency is the double-submit guard for the wizard's save buttons. The
// key is reserved before the handler runs: a duplicate arriving while the
// first submit is still talking to the backend is rejected with 409 instead
// of executing again, and once the first completes successfully its response
// is replayed. Failures are not recorded, so a retry with the same key goes
// through to the backend again.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		key := GetSessionID(c) + "|" + c.Request.Method + " " + c.FullPath() + "|" + idempotencyKey

		switch state, code, body := store.begin(key); state {
		case idemInFlight:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "A submission with this key is already being processed.",
			})
			return
		case idemReplay:
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(code, "application/json", body)
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		// a panicking handler must not leave the key reserved forever
		finished := false
		defer func() {
			if !finished {
				store.release(key)
			}
		}()

		c.Next()

		if c.Writer.Status() < 300 {
			store.finalize(key, c.Writer.Status(), blw.body.Bytes())
		} else {
			store.release(key)
		}
		finished = true
	}
}
