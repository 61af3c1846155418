package matching

import "math"

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two points in km.
func HaversineKm(a, b GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// nearestDistanceKm returns the distance from the job point to the
// closest of the candidate's locations, and whether any point existed.
func nearestDistanceKm(job GeoPoint, points []GeoPoint) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	best := math.Inf(1)
	for _, p := range points {
		if d := HaversineKm(job, p); d < best {
			best = d
		}
	}
	return best, true
}
