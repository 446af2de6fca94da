package quote

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"bess_quoting/pkg/core/baseline"
)

// OverrideLookup is the configuration-store read the session wraps.
type OverrideLookup interface {
	Get(ctx context.Context, industryKey string) (*baseline.ConfigOverride, error)
}

// DefaultOverrideTimeout bounds a configuration-store read. On expiry
// the quote proceeds on template coefficients; it never blocks.
const DefaultOverrideTimeout = 2 * time.Second

type overrideEntry struct {
	done     chan struct{}
	override *baseline.ConfigOverride
	err      error
}

// Session owns the override lookups of one quote-in-progress. Reads
// are memoized per industry key and concurrent reads for the same key
// share one in-flight call. Sessions are independent; there is no
// process-global request-deduplication state.
type Session struct {
	lookup  OverrideLookup
	timeout time.Duration
	log     *logrus.Entry

	mu      sync.Mutex
	entries map[string]*overrideEntry
}

// NewSession creates a session over a lookup. A nil lookup produces a
// session that always answers "no override", for setups without a
// configuration store.
func NewSession(lookup OverrideLookup, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		lookup:  lookup,
		timeout: DefaultOverrideTimeout,
		log:     log.WithField("component", "session"),
		entries: make(map[string]*overrideEntry),
	}
}

// Override resolves the config override for an industry, degrading to
// nil on timeout or store failure. Failures are not memoized, so a
// later recompute retries the store.
func (s *Session) Override(ctx context.Context, industryKey string) *baseline.ConfigOverride {
	if s == nil || s.lookup == nil {
		return nil
	}

	s.mu.Lock()
	entry, ok := s.entries[industryKey]
	if !ok {
		entry = &overrideEntry{done: make(chan struct{})}
		s.entries[industryKey] = entry
		go s.fetch(industryKey, entry)
	}
	s.mu.Unlock()

	select {
	case <-entry.done:
	case <-ctx.Done():
		s.log.WithField("industry", industryKey).Warn("override lookup cancelled, using template defaults")
		return nil
	}

	if entry.err != nil {
		s.log.WithFields(logrus.Fields{
			"industry": industryKey,
			"error":    entry.err,
		}).Warn("override lookup failed, using template defaults")
		return nil
	}
	return entry.override
}

func (s *Session) fetch(industryKey string, entry *overrideEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	entry.override, entry.err = s.lookup.Get(ctx, industryKey)
	if entry.err != nil {
		// drop the entry so the next read retries
		s.mu.Lock()
		delete(s.entries, industryKey)
		s.mu.Unlock()
	}
	close(entry.done)
}
