package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	seoulCityHall = Point{Lat: 37.5665, Lng: 126.9780}
	gwanghwamun   = Point{Lat: 37.5700, Lng: 126.9800}
	busanStation  = Point{Lat: 35.1151, Lng: 129.0413}
)

func TestPoint_IsSet(t *testing.T) {
	assert.False(t, Point{}.IsSet())
	assert.True(t, seoulCityHall.IsSet())
	// A point on the equator or prime meridian is still a real point.
	assert.True(t, Point{Lat: 0, Lng: 126.97}.IsSet())
	assert.True(t, Point{Lat: 37.56, Lng: 0}.IsSet())
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(seoulCityHall, seoulCityHall))
	assert.Zero(t, DistanceKm(busanStation, busanStation))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	assert.Equal(t, DistanceKm(seoulCityHall, busanStation), DistanceKm(busanStation, seoulCityHall))
	assert.Equal(t, DistanceKm(seoulCityHall, gwanghwamun), DistanceKm(gwanghwamun, seoulCityHall))
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	// City Hall to Gwanghwamun is a short walk, well under a kilometer.
	d := DistanceKm(seoulCityHall, gwanghwamun)
	assert.Greater(t, d, 0.3)
	assert.Less(t, d, 0.6)

	// Seoul to Busan is roughly 325 km great-circle.
	d = DistanceKm(seoulCityHall, busanStation)
	assert.InDelta(t, 325, d, 10)
}

func TestIsWithinRadius(t *testing.T) {
	assert.True(t, IsWithinRadius(seoulCityHall, 1, gwanghwamun))
	assert.False(t, IsWithinRadius(seoulCityHall, 0.1, gwanghwamun))
	assert.False(t, IsWithinRadius(seoulCityHall, 300, busanStation))
}

func TestIsWithinRadius_BoundaryInclusive(t *testing.T) {
	d := DistanceKm(seoulCityHall, gwanghwamun)
	assert.True(t, IsWithinRadius(seoulCityHall, d, gwanghwamun))
}
