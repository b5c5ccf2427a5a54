package geo

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance in kilometers between two
// points given as signed decimal degrees (haversine formula).
//
// Inputs are not range-checked: out-of-range coordinates yield a
// mathematically defined but geographically meaningless result.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for presentation.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
