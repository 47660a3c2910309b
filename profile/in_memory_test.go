package profile

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/tourmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsDefaults(t *testing.T) {
	store := NewInMemoryStore()

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)

	prefs := p.GetPreferences()
	assert.Equal(t, core.BudgetModerate, prefs.Budget)
	assert.Empty(t, prefs.Interests)
	assert.Zero(t, prefs.DurationDays)

	for _, category := range core.MemoryCategories {
		assert.Empty(t, p.Records(category), "category %s", category)
	}
}

func TestGetOrCreateReturnsClone(t *testing.T) {
	store := NewInMemoryStore()

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)
	p.Append(core.CategoryVisitedPlaces, core.NewMemoryRecord(map[string]any{"name": "Lekki Beach"}))

	fresh, err := store.GetOrCreate("traveler")
	require.NoError(t, err)
	assert.Empty(t, fresh.Records(core.CategoryVisitedPlaces))
}

func TestUpdatePreferencesMergesDeltas(t *testing.T) {
	store := NewInMemoryStore()

	luxury := core.BudgetLuxury
	require.NoError(t, store.UpdatePreferences("traveler", core.PreferencesDelta{Budget: &luxury}))

	days := 5
	require.NoError(t, store.UpdatePreferences("traveler", core.PreferencesDelta{
		Interests:    []string{"beach", "nightlife"},
		DurationDays: &days,
	}))

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)

	prefs := p.GetPreferences()
	assert.Equal(t, core.BudgetLuxury, prefs.Budget)
	assert.Equal(t, []string{"beach", "nightlife"}, prefs.Interests)
	assert.Equal(t, 5, prefs.DurationDays)
}

func TestAppendMemoryPreservesOrder(t *testing.T) {
	store := NewInMemoryStore()

	for i := 0; i < 3; i++ {
		rec := core.NewMemoryRecord(map[string]any{"seq": i})
		require.NoError(t, store.AppendMemory("traveler", core.CategoryBookings, rec))
	}

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)

	records := p.Records(core.CategoryBookings)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i, rec.Data["seq"])
	}
}

func TestAppendMemoryUnknownCategoryIsDropped(t *testing.T) {
	store := NewInMemoryStore()

	err := store.AppendMemory("traveler", core.MemoryCategory("wishlist"), core.NewMemoryRecord(nil))
	require.NoError(t, err)

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)
	for _, category := range core.MemoryCategories {
		assert.Empty(t, p.Records(category))
	}
}

func TestSnapshotBoundedToRecentRecords(t *testing.T) {
	store := NewInMemoryStore()

	for i := 0; i < 8; i++ {
		rec := core.NewChatRecord("user", fmt.Sprintf("message %d", i))
		require.NoError(t, store.AppendMemory("traveler", core.CategoryChatHistory, rec))
	}

	proj, err := store.Snapshot("traveler")
	require.NoError(t, err)

	recent := proj.Recent[core.CategoryChatHistory]
	require.Len(t, recent, core.ProjectionDepth)
	assert.Equal(t, "message 3", recent[0].Data["content"])
	assert.Equal(t, "message 7", recent[len(recent)-1].Data["content"])
}

func TestClearResetsProfile(t *testing.T) {
	store := NewInMemoryStore()

	luxury := core.BudgetLuxury
	require.NoError(t, store.UpdatePreferences("traveler", core.PreferencesDelta{Budget: &luxury}))
	require.NoError(t, store.AppendMemory("traveler", core.CategoryChatHistory, core.NewChatRecord("user", "hi")))

	require.NoError(t, store.Clear("traveler"))

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)
	assert.Equal(t, core.BudgetModerate, p.GetPreferences().Budget)
	assert.Empty(t, p.Records(core.CategoryChatHistory))
}

func TestConcurrentAppends(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := core.NewMemoryRecord(map[string]any{"seq": i})
			assert.NoError(t, store.AppendMemory("traveler", core.CategorySavedRestaurants, rec))
		}(i)
	}
	wg.Wait()

	p, err := store.GetOrCreate("traveler")
	require.NoError(t, err)
	assert.Len(t, p.Records(core.CategorySavedRestaurants), 20)
}
