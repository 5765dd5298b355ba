// Package eventlog implements a minimal append-only event log that
// stamps every entry through a chronoberry.Source. It demonstrates
// instant arithmetic, ordering, and both serialization forms
// (cramberry binary and JSON text).
package eventlog

import (
	"context"
	"fmt"
	"sync"

	"github.com/blockberries/chronoberry"
	"github.com/blockberries/chronoberry/types"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// Entry is a single stamped log record.
type Entry struct {
	Seq     uint64        `cramberry:"1" json:"seq"`
	At      types.Instant `cramberry:"2" json:"at"`
	Message string        `cramberry:"3" json:"message"`
}

// snapshot is the binary wire form of a whole log.
type snapshot struct {
	Entries []Entry `cramberry:"1"`
}

// Log is an append-only event log. Entries are stamped at append
// time and held in append order, which is also time order as long as
// the source's clock does not step backward.
type Log struct {
	mu      sync.RWMutex
	src     chronoberry.Source
	entries []Entry
}

// New creates an empty log stamping through the given source.
func New(src chronoberry.Source) *Log {
	return &Log{src: src}
}

// Append stamps and stores a new entry.
func (l *Log) Append(ctx context.Context, message string) (Entry, error) {
	at, err := l.src.Now(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("eventlog: stamp entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	e := Entry{
		Seq:     uint64(len(l.entries) + 1),
		At:      at,
		Message: message,
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// Since returns all entries stamped at or after the given instant.
func (l *Log) Since(i types.Instant) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Entry
	for _, e := range l.entries {
		if !e.At.Before(i) {
			out = append(out, e)
		}
	}
	return out
}

// Age returns how far in the past the entry with the given sequence
// number lies, relative to the source's current instant.
func (l *Log) Age(ctx context.Context, seq uint64) (types.Duration, error) {
	now, err := l.src.Now(ctx)
	if err != nil {
		return types.Duration{}, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if seq == 0 || seq > uint64(len(l.entries)) {
		return types.Duration{}, fmt.Errorf("eventlog: no entry with seq %d", seq)
	}
	return now.Diff(l.entries[seq-1].At), nil
}

// Snapshot serializes the whole log deterministically.
func (l *Log) Snapshot() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cramberry.Marshal(snapshot{Entries: l.entries})
}

// Restore rebuilds a log from a snapshot, stamping future entries
// through the given source.
func Restore(src chronoberry.Source, data []byte) (*Log, error) {
	var snap snapshot
	if err := cramberry.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("eventlog: restore: %w", err)
	}
	return &Log{src: src, entries: snap.Entries}, nil
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
