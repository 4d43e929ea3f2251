package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Point is a WGS84 latitude/longitude pair.
//
// The zero value (0,0) is the sentinel meaning "coordinates not resolved".
// It must never be treated as a real geographic point; callers check IsSet
// before using a Point for distance or display.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsSet reports whether p holds resolved coordinates.
func (p Point) IsSet() bool {
	return p.Lat != 0 || p.Lng != 0
}

// DistanceKm returns the great-circle distance between a and b in kilometers,
// computed with the haversine formula.
func DistanceKm(a, b Point) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// IsWithinRadius reports whether p lies within radiusKm of center.
// The boundary is inclusive: a point exactly radiusKm away is within.
func IsWithinRadius(center Point, radiusKm float64, p Point) bool {
	return DistanceKm(center, p) <= radiusKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
