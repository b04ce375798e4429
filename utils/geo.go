package utils

import (
	"math"

	"github.com/khanakart/khanakart-api/models"
)

// DefaultServiceRadiusKm is how far a kitchen will deliver.
const DefaultServiceRadiusKm = 10.0

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// coordinate pairs.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NearestKitchen picks the active kitchen closest to the given coordinates.
// Returns nil when no kitchen lies within radiusKm.
func NearestKitchen(kitchens []models.Kitchen, lat, lng, radiusKm float64) (*models.Kitchen, float64) {
	var nearest *models.Kitchen
	best := math.MaxFloat64

	for i := range kitchens {
		k := &kitchens[i]
		if !k.IsActive {
			continue
		}
		d := HaversineKm(lat, lng, k.Latitude, k.Longitude)
		if d < best {
			best = d
			nearest = k
		}
	}

	if nearest == nil || best > radiusKm {
		return nil, 0
	}
	return nearest, best
}
