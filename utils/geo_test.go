package utils

import (
	"math"
	"testing"

	"github.com/khanakart/khanakart-api/models"
)

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		d := HaversineKm(28.6139, 77.2090, 28.6139, 77.2090)
		if d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("delhi to mumbai is roughly 1150 km", func(t *testing.T) {
		d := HaversineKm(28.6139, 77.2090, 19.0760, 72.8777)
		if d < 1100 || d > 1200 {
			t.Errorf("expected ~1150 km, got %f", d)
		}
	})

	t.Run("symmetric in its arguments", func(t *testing.T) {
		a := HaversineKm(28.6139, 77.2090, 28.7041, 77.1025)
		b := HaversineKm(28.7041, 77.1025, 28.6139, 77.2090)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("expected symmetric distances, got %f and %f", a, b)
		}
	})
}

func TestNearestKitchen(t *testing.T) {
	kitchens := []models.Kitchen{
		{Name: "Connaught Place", Latitude: 28.6315, Longitude: 77.2167, IsActive: true},
		{Name: "Saket", Latitude: 28.5245, Longitude: 77.2066, IsActive: true},
		{Name: "Gurgaon", Latitude: 28.4595, Longitude: 77.0266, IsActive: true},
	}

	t.Run("picks the minimum-distance kitchen", func(t *testing.T) {
		// Near India Gate, closest to Connaught Place
		nearest, dist := NearestKitchen(kitchens, 28.6129, 77.2295, DefaultServiceRadiusKm)
		if nearest == nil {
			t.Fatal("expected a kitchen, got nil")
		}
		if nearest.Name != "Connaught Place" {
			t.Errorf("expected Connaught Place, got %s", nearest.Name)
		}
		if dist <= 0 || dist > DefaultServiceRadiusKm {
			t.Errorf("distance %f outside (0, %f]", dist, DefaultServiceRadiusKm)
		}
	})

	t.Run("rejects locations outside the radius for every kitchen", func(t *testing.T) {
		// Jaipur is a few hundred km from all three
		nearest, _ := NearestKitchen(kitchens, 26.9124, 75.7873, DefaultServiceRadiusKm)
		if nearest != nil {
			t.Errorf("expected no kitchen, got %s", nearest.Name)
		}
	})

	t.Run("skips inactive kitchens", func(t *testing.T) {
		closed := []models.Kitchen{
			{Name: "Closed", Latitude: 28.6129, Longitude: 77.2295, IsActive: false},
			{Name: "Open", Latitude: 28.6315, Longitude: 77.2167, IsActive: true},
		}
		nearest, _ := NearestKitchen(closed, 28.6129, 77.2295, DefaultServiceRadiusKm)
		if nearest == nil {
			t.Fatal("expected a kitchen, got nil")
		}
		if nearest.Name != "Open" {
			t.Errorf("expected the open kitchen, got %s", nearest.Name)
		}
	})

	t.Run("returns nil when there are no kitchens", func(t *testing.T) {
		nearest, _ := NearestKitchen(nil, 28.6129, 77.2295, DefaultServiceRadiusKm)
		if nearest != nil {
			t.Errorf("expected nil, got %s", nearest.Name)
		}
	})
}
