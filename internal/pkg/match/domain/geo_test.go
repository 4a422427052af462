package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	delhi  = Coordinates{Lat: 28.6139, Lon: 77.2090}
	mumbai = Coordinates{Lat: 19.0760, Lon: 72.8777}
	noida  = Coordinates{Lat: 28.5355, Lon: 77.3910}
)

func TestDistanceKm(t *testing.T) {
	t.Run("known distance", func(t *testing.T) {
		// Delhi to Mumbai is roughly 1150 km great-circle.
		d := DistanceKm(delhi, mumbai)
		assert.InDelta(t, 1150, d, 20)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(delhi, mumbai), DistanceKm(mumbai, delhi), 1e-9)
	})

	t.Run("zero for identical points", func(t *testing.T) {
		assert.InDelta(t, 0, DistanceKm(delhi, delhi), 1e-9)
	})
}

func TestSuggestMode(t *testing.T) {
	t.Run("missing requester coordinates", func(t *testing.T) {
		mode, dist := SuggestMode(nil, &mumbai, 50)
		assert.Equal(t, ModeOnline, mode)
		assert.Nil(t, dist)
	})

	t.Run("missing candidate coordinates", func(t *testing.T) {
		mode, dist := SuggestMode(&delhi, nil, 50)
		assert.Equal(t, ModeOnline, mode)
		assert.Nil(t, dist)
	})

	t.Run("far apart suggests online with distance", func(t *testing.T) {
		mode, dist := SuggestMode(&delhi, &mumbai, 50)
		assert.Equal(t, ModeOnline, mode)
		require.NotNil(t, dist)
		assert.Greater(t, *dist, 1000)
	})

	t.Run("nearby suggests in-person", func(t *testing.T) {
		mode, dist := SuggestMode(&delhi, &noida, 50)
		assert.Equal(t, ModeInPerson, mode)
		require.NotNil(t, dist)
		assert.Less(t, *dist, 50)
	})

	t.Run("distance equal to threshold stays in-person", func(t *testing.T) {
		a := Coordinates{Lat: 0, Lon: 0}
		b := Coordinates{Lat: 0, Lon: 0}
		exact := DistanceKm(a, b)
		mode, _ := SuggestMode(&a, &b, exact)
		assert.Equal(t, ModeInPerson, mode)
	})
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "matches:42", CacheKey(42))
}
