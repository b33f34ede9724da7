package SessionCapture

import (
	"sort"
	"sync"

	"EnasClinic/Models"
)

// SessionSubscriber is the subscribe half of the external session store.
// Every delivery carries the full current collection for the client, not
// deltas, starting with the snapshot at subscribe time.
type SessionSubscriber interface {
	Subscribe(clientID uint, deliver func([]Models.SessionRecord)) func()
}

// Feed holds the live grouping of one client's session records by region.
// Each snapshot replaces the previous grouping wholesale. Close releases the
// subscription; once closed the feed never updates again, even if the store
// delivers another snapshot.
type Feed struct {
	mu          sync.Mutex
	groups      map[string][]Models.SessionRecord
	unsubscribe func()
	closed      bool
}

func OpenFeed(store SessionSubscriber, clientID uint) *Feed {
	feed := &Feed{groups: make(map[string][]Models.SessionRecord)}
	feed.unsubscribe = store.Subscribe(clientID, feed.apply)
	return feed
}

func (f *Feed) apply(records []Models.SessionRecord) {
	groups := GroupRecords(records)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.groups = groups
}

// GroupRecords groups well-formed records by region key, keeping delivery
// order within each region. Entries missing a region key or a date are
// dropped; an all-malformed snapshot yields an empty grouping, not an error.
func GroupRecords(records []Models.SessionRecord) map[string][]Models.SessionRecord {
	groups := make(map[string][]Models.SessionRecord)
	for _, record := range records {
		if record.Region == "" || record.Date == "" {
			continue
		}
		groups[record.Region] = append(groups[record.Region], record)
	}
	return groups
}

func (f *Feed) Groups() map[string][]Models.SessionRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	groups := make(map[string][]Models.SessionRecord, len(f.groups))
	for region, records := range f.groups {
		groups[region] = records
	}
	return groups
}

// Recent flattens every region's history and sorts it by descending date for
// the recent-sessions display. A limit <= 0 returns everything (the manual
// expand action).
func (f *Feed) Recent(limit int) []Models.SessionRecord {
	f.mu.Lock()
	var flattened []Models.SessionRecord
	for _, records := range f.groups {
		flattened = append(flattened, records...)
	}
	f.mu.Unlock()

	sort.SliceStable(flattened, func(i, j int) bool {
		if flattened[i].Date != flattened[j].Date {
			return flattened[i].Date > flattened[j].Date
		}
		return flattened[i].CreatedAt.After(flattened[j].CreatedAt)
	})

	if limit > 0 && len(flattened) > limit {
		flattened = flattened[:limit]
	}
	return flattened
}

// Close releases the subscription. Safe to call more than once.
func (f *Feed) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	unsubscribe := f.unsubscribe
	f.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
