package match

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinate pairs
// using the haversine formula. Symmetric by construction.
func DistanceKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// SuggestMode picks the session modality: online when either party lacks
// coordinates or the distance exceeds thresholdKm, otherwise in-person.
// It also returns the rounded distance when both coordinates are known.
func SuggestMode(requester, candidate *Coordinates, thresholdKm float64) (mode string, distanceKm *int) {
	if requester == nil || candidate == nil {
		return ModeOnline, nil
	}
	d := DistanceKm(*requester, *candidate)
	rounded := int(math.Round(d))
	if d > thresholdKm {
		return ModeOnline, &rounded
	}
	return ModeInPerson, &rounded
}
