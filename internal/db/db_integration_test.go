package db

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These run against a real Postgres (TEST_DATABASE_URL) with the seed
// migrations applied, and are skipped otherwise.

func requireTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration tests")
	}
	if TestStore == nil {
		require.NoError(t, InitTestDB("../../migrations"))
	}
}

func TestSeededCitiesHaveTimes(t *testing.T) {
	requireTestDB(t)

	cities, err := TestStore.ListCities()
	require.NoError(t, err)
	require.Len(t, cities, 5)

	for _, c := range cities {
		pt, err := TestStore.GetPrayerTimes(c.ID)
		require.NoError(t, err, "city %s", c.Name)
		assert.NotEmpty(t, pt.Fajr)
		assert.NotEmpty(t, pt.Isha)
	}
}

func TestCityLookupIsCaseInsensitive(t *testing.T) {
	requireTestDB(t)

	c, err := TestStore.GetCityByName("karachi")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Karachi", c.Name)

	missing, err := TestStore.GetCityByName("Multan")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSearchHadithsSubstring(t *testing.T) {
	requireTestDB(t)

	// بخاری appears in seeded references
	hits, err := TestStore.SearchHadiths("بخاری")
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		combined := h.Arabic + h.Urdu + h.Reference
		assert.True(t, strings.Contains(combined, "بخاری"))
	}

	none, err := TestStore.SearchHadiths("zzzz-no-such-text")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTopicAssembly(t *testing.T) {
	requireTestDB(t)

	topic, err := TestStore.GetTopicBySlug("tauheed")
	require.NoError(t, err)
	require.NotNil(t, topic)

	sections, err := TestStore.ListTopicSections(topic.ID)
	require.NoError(t, err)
	require.NotEmpty(t, sections)

	items, err := TestStore.ListSectionItems(sections[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	// verses come back in the order they were linked
	verses, err := TestStore.ListVersesForTopic(topic.ID)
	require.NoError(t, err)
	require.Len(t, verses, 3)
	assert.Equal(t, "قُلْ هُوَ اللَّهُ أَحَدٌ", verses[0].Arabic)
	assert.Equal(t, "لَا إِلَٰهَ إِلَّا أَنَا فَاعْبُدُونِ", verses[2].Arabic)
}
