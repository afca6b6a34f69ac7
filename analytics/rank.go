// Package analytics groups raw interaction events into typed report buckets.
// Every function is pure: callers fetch the event set for (owner, window) and
// the package never touches a store.
package analytics

import (
	"cmp"
	"strings"
	"time"
)

type actorSet map[string]struct{}

func (s actorSet) add(id string) { s[id] = struct{}{} }

func (s actorSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// percentage is count's share of total. The base is always the full result
// set, never a truncated one.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// byActivity orders buckets by count desc, then most recent activity, then key.
func byActivity(countA, countB int, lastA, lastB time.Time, keyA, keyB string) int {
	if c := cmp.Compare(countB, countA); c != 0 {
		return c
	}
	if c := lastB.Compare(lastA); c != 0 {
		return c
	}
	return strings.Compare(keyA, keyB)
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
