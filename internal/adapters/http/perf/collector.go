// Package perf keeps a bounded in-memory trail of request and query timings
// and aggregates it on demand for the dashboard's performance panel.
package perf

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the timing ring.
const DefaultRingSize = 10000

// EntryKind distinguishes request timings from query timings.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is one timing sample.
type Entry struct {
	Kind       EntryKind
	Path       string // "METHOD /path" for requests, the driver call for queries
	StatusCode int    // 0 for queries
	DurationMs float64
	Timestamp  time.Time
}

// Collector holds the most recent timing samples in a fixed ring. Record is
// cheap and never blocks on aggregation; all the work happens in Snapshot,
// which only the perf panel calls.
type Collector struct {
	mu    sync.Mutex
	ring  []Entry
	next  int
	total atomic.Int64
}

// NewCollector returns a collector whose ring holds size samples. A size of
// zero or less falls back to DefaultRingSize.
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{ring: make([]Entry, size)}
}

// Record stores one sample, overwriting the oldest when the ring is full.
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.ring[c.next] = e
	c.next = (c.next + 1) % len(c.ring)
	c.mu.Unlock()
	c.total.Add(1)
}

// TotalRecorded reports how many samples have ever been recorded, including
// ones the ring has since dropped.
func (c *Collector) TotalRecorded() int64 {
	return c.total.Load()
}

// Snapshot is the aggregated view the perf panel renders.
type Snapshot struct {
	TotalRequests  int64
	RequestP50Ms   float64
	RequestP95Ms   float64
	RequestP99Ms   float64
	SlowestPaths   []PathStat
	SlowestQueries []PathStat
}

// PathStat aggregates the samples sharing one path.
type PathStat struct {
	Path    string
	AvgMs   float64
	MaxMs   float64
	Count   int
	TotalMs float64
}

// statSet accumulates per-path aggregates during a snapshot pass.
type statSet map[string]*PathStat

func (s statSet) observe(path string, ms float64) {
	st, ok := s[path]
	if !ok {
		st = &PathStat{Path: path}
		s[path] = st
	}
	st.Count++
	st.TotalMs += ms
	if ms > st.MaxMs {
		st.MaxMs = ms
	}
}

// top finishes the averages and returns the n slowest paths by average.
func (s statSet) top(n int) []PathStat {
	out := make([]PathStat, 0, len(s))
	for _, st := range s {
		st.AvgMs = st.TotalMs / float64(st.Count)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AvgMs > out[j].AvgMs })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Snapshot aggregates every sample recorded at or after since. It copies the
// ring under the lock and does the sorting outside it, so a slow panel render
// never stalls Record.
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	samples := make([]Entry, len(c.ring))
	copy(samples, c.ring)
	c.mu.Unlock()

	requests := statSet{}
	queries := statSet{}
	var durations []float64

	for _, e := range samples {
		if e.Timestamp.IsZero() || e.Timestamp.Before(since) {
			continue
		}
		switch e.Kind {
		case KindRequest:
			durations = append(durations, e.DurationMs)
			requests.observe(e.Path, e.DurationMs)
		case KindQuery:
			queries.observe(e.Path, e.DurationMs)
		}
	}

	snap := Snapshot{
		TotalRequests:  c.TotalRecorded(),
		SlowestPaths:   requests.top(topN),
		SlowestQueries: queries.top(topN),
	}
	if len(durations) > 0 {
		sort.Float64s(durations)
		snap.RequestP50Ms = percentile(durations, 50)
		snap.RequestP95Ms = percentile(durations, 95)
		snap.RequestP99Ms = percentile(durations, 99)
	}
	return snap
}

// percentile returns the nearest-rank p-th percentile of a sorted slice.
func percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100 // ceil(p*n/100)
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
