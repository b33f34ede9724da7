package SessionCapture_test

import (
	"testing"
	"time"

	"EnasClinic/Models"
	"EnasClinic/SessionCapture"
	"EnasClinic/Stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// leakyStore keeps delivering snapshots even after unsubscribe, to prove the
// feed itself guards against a misbehaving store.
type leakyStore struct {
	deliver func([]Models.SessionRecord)
}

func (s *leakyStore) Subscribe(clientID uint, deliver func([]Models.SessionRecord)) func() {
	s.deliver = deliver
	deliver(nil)
	return func() {}
}

func record(region, date string) Models.SessionRecord {
	return Models.SessionRecord{Region: region, Date: date}
}

func TestFeedGroupsByRegion(t *testing.T) {
	store := Stores.NewMemoryStore()
	feed := SessionCapture.OpenFeed(store, 7)
	defer feed.Close()

	for _, region := range []string{"neck", "left_arm", "neck"} {
		_, err := store.WriteUnique(7, record(region, "2025-03-10"))
		require.NoError(t, err)
	}

	groups := feed.Groups()
	assert.Len(t, groups, 2)
	assert.Len(t, groups["neck"], 2)
	assert.Len(t, groups["left_arm"], 1)
}

func TestFeedDropsMalformedEntries(t *testing.T) {
	store := Stores.NewMemoryStore()
	feed := SessionCapture.OpenFeed(store, 7)
	defer feed.Close()

	store.Deliver(7, []Models.SessionRecord{
		record("neck", "2025-03-10"),
		record("", "2025-03-10"),
		record("left_arm", ""),
	})

	groups := feed.Groups()
	assert.Len(t, groups, 1)
	assert.Len(t, groups["neck"], 1)
}

func TestFeedAllMalformedYieldsEmptyGrouping(t *testing.T) {
	store := Stores.NewMemoryStore()
	feed := SessionCapture.OpenFeed(store, 7)
	defer feed.Close()

	store.Deliver(7, []Models.SessionRecord{
		record("", "2025-03-10"),
		record("neck", ""),
	})

	assert.Empty(t, feed.Groups())
}

func TestFeedReplacesGroupingWholesale(t *testing.T) {
	store := Stores.NewMemoryStore()
	feed := SessionCapture.OpenFeed(store, 7)
	defer feed.Close()

	store.Deliver(7, []Models.SessionRecord{record("neck", "2025-03-10")})
	store.Deliver(7, []Models.SessionRecord{record("left_arm", "2025-03-11")})

	groups := feed.Groups()
	assert.Len(t, groups, 1)
	assert.Len(t, groups["left_arm"], 1)
}

func TestFeedRecentSortsByDescendingDate(t *testing.T) {
	store := Stores.NewMemoryStore()
	feed := SessionCapture.OpenFeed(store, 7)
	defer feed.Close()

	older := record("neck", "2025-03-01")
	newer := record("left_arm", "2025-03-12")
	newest := record("neck", "2025-03-20")
	newest.Model = gorm.Model{CreatedAt: time.Now()}

	store.Deliver(7, []Models.SessionRecord{older, newer, newest})

	recent := feed.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-03-20", recent[0].Date)
	assert.Equal(t, "2025-03-12", recent[1].Date)

	// Manual expand: no truncation.
	assert.Len(t, feed.Recent(0), 3)
}

func TestFeedCloseStopsUpdates(t *testing.T) {
	store := &leakyStore{}
	feed := SessionCapture.OpenFeed(store, 7)

	store.deliver([]Models.SessionRecord{record("neck", "2025-03-10")})
	assert.Len(t, feed.Groups(), 1)

	feed.Close()
	store.deliver([]Models.SessionRecord{record("left_arm", "2025-03-11")})

	groups := feed.Groups()
	assert.Len(t, groups, 1)
	assert.Len(t, groups["neck"], 1)
}

func TestFeedUnsubscribeReleasesStoreSubscription(t *testing.T) {
	store := Stores.NewMemoryStore()
	feed := SessionCapture.OpenFeed(store, 7)

	feed.Close()
	store.Deliver(7, []Models.SessionRecord{record("neck", "2025-03-10")})

	assert.Empty(t, feed.Groups())
}
