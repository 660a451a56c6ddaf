package timeline

import (
	"sort"
	"time"
)

// SortByDue orders items by ascending date as returned by dateOf (an ISO
// string). Items whose date does not parse sort last; ties keep input order.
// Ordering only affects row sequence, never layout.
func SortByDue[T any](items []T, dateOf func(T) string) {
	type keyed struct {
		item T
		at   time.Time
		ok   bool
	}
	keys := make([]keyed, len(items))
	for i, it := range items {
		t, err := time.Parse(dateLayout, dateOf(it))
		keys[i] = keyed{item: it, at: t, ok: err == nil}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.ok != b.ok {
			return a.ok // parsed before unparsed
		}
		if !a.ok {
			return false
		}
		return a.at.Before(b.at)
	})

	for i := range keys {
		items[i] = keys[i].item
	}
}
