package community

import "shoresquad/internal/models"

// DefaultState is the data the site starts with.
func DefaultState() State {
	return State{
		Events: []models.Event{
			{
				ID:           1,
				Name:         "Bondi Beach Spring Cleanup",
				Date:         "2025-01-15",
				Location:     "📍 Bondi Beach, Sydney",
				Participants: 24,
				Description:  "Join us for a morning beach cleanup at Bondi. Bring friends and make waves!",
			},
			{
				ID:           2,
				Name:         "Manly Beach Community Drive",
				Date:         "2025-01-20",
				Location:     "📍 Manly Beach, Sydney",
				Participants: 18,
				Description:  "Help us restore Manly Beach to its natural beauty.",
			},
			{
				ID:           3,
				Name:         "Collaroy Beach Eco Day",
				Date:         "2025-01-22",
				Location:     "📍 Collaroy, Sydney",
				Participants: 32,
				Description:  "Large-scale beach restoration with workshops and activities.",
			},
		},
		Crews: []models.Crew{
			{ID: 1, Name: "Beach Warriors", Icon: "🏄", Members: 12, Cleanups: 8, Location: "Bondi, Sydney"},
			{ID: 2, Name: "Ocean Guardians", Icon: "🌊", Members: 19, Cleanups: 15, Location: "Manly, Sydney"},
			{ID: 3, Name: "Coastal Crew", Icon: "🐚", Members: 7, Cleanups: 5, Location: "Collaroy, Sydney"},
		},
	}
}
