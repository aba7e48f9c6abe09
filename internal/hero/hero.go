// Package hero serves the landing page's rotating headline and the social
// tag counter.
package hero

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultInterval is how long each rotator word stays up.
const DefaultInterval = 2500 * time.Millisecond

// DefaultWords is the headline rotation, in display order.
var DefaultWords = []string{"Birth", "Day One", "No Cosign", "24/7", "Las Vegas", "______"}

// Rotator cycles through a fixed word list. The word on display is derived
// from the clock, so every replica and every client poll agree on it.
type Rotator struct {
	words    []string
	interval time.Duration
}

// NewRotator falls back to DefaultWords for an empty list and to
// DefaultInterval for anything shorter than a millisecond.
func NewRotator(words []string, interval time.Duration) *Rotator {
	if len(words) == 0 {
		words = DefaultWords
	}
	if interval < time.Millisecond {
		interval = DefaultInterval
	}
	w := make([]string, len(words))
	copy(w, words)
	return &Rotator{words: w, interval: interval}
}

func (r *Rotator) Words() []string {
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

func (r *Rotator) Interval() time.Duration { return r.interval }

// At returns the index and word on display at t. The rotation advances one
// word per interval counted from the Unix epoch and wraps after the last.
func (r *Rotator) At(t time.Time) (int, string) {
	ticks := t.UnixMilli() / r.interval.Milliseconds()
	idx := int(ticks % int64(len(r.words)))
	if idx < 0 {
		idx += len(r.words)
	}
	return idx, r.words[idx]
}

// Intn matches (*rand.Rand).Intn so tests can pin the counter.
type Intn func(n int) int

const (
	tagBase   = 12000
	tagSpread = 1000
	tagBump   = 50
)

// TagCounter is the "#FamousSince" post count: a base of 12000 plus up to
// 999, bumped once by up to 49 shortly after the page loads.
type TagCounter struct {
	mu     sync.Mutex
	value  int
	bumped bool
	intn   Intn
}

// NewTagCounter seeds the counter. A nil intn uses a time-seeded source.
func NewTagCounter(intn Intn) *TagCounter {
	if intn == nil {
		intn = rand.New(rand.NewSource(time.Now().UnixNano())).Intn
	}
	return &TagCounter{value: tagBase + intn(tagSpread), intn: intn}
}

// Bump applies the one-time increment. Later calls return the value
// unchanged.
func (c *TagCounter) Bump() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bumped {
		c.value += c.intn(tagBump)
		c.bumped = true
	}
	return c.value
}
