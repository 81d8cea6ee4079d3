package slogx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	callIDOnce sync.Once
	callIDGen  *callIDGenerator
)

// callIDGenerator hands out ULIDs from a monotonic source so ids minted in
// the same millisecond still sort in creation order.
type callIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *callIDGenerator) at(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

// NewCallID returns a lexicographically sortable id for one outbound call.
func NewCallID() string {
	return NewCallIDAt(time.Now().UTC())
}

// NewCallIDAt is NewCallID at a fixed time.
func NewCallIDAt(t time.Time) string {
	callIDOnce.Do(func() {
		callIDGen = &callIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
	})
	return callIDGen.at(t)
}

// CallIDTime extracts the timestamp embedded in a call id, or the zero time
// if id is not a valid ULID.
func CallIDTime(id string) time.Time {
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
