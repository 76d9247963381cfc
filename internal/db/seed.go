package db

import (
	"context"
	"fmt"
	"log"
	"time"
)

// SeedDemoData inserts sample organizers and events for development/demo.
// Does nothing when events already exist.
func (d *DB) SeedDemoData(ctx context.Context) error {
	var count int64
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding database with sample data...")

	organizers := []struct {
		name string
		slug string
		desc string
	}{
		{"Dom Whiting", "dom-whiting", "The original DNB On Bike creator from the UK."},
		{"NH Kolektyw", "nh-kolektyw", "Polish drum and bass collective organizing bike rides."},
		{"Berlin DNB Crew", "berlin-dnb-crew", "German DNB community based in Berlin."},
	}

	orgIDs := make(map[string]int64)
	for _, o := range organizers {
		var id int64
		err := d.Pool.QueryRow(ctx, `
			INSERT INTO organizers (name, slug, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET description = EXCLUDED.description
			RETURNING id
		`, o.name, o.slug, o.desc).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed organizer %s: %w", o.slug, err)
		}
		orgIDs[o.slug] = id
	}

	domID := orgIDs["dom-whiting"]
	nhID := orgIDs["nh-kolektyw"]
	berlinID := orgIDs["berlin-dnb-crew"]

	type seedEvent struct {
		title     string
		desc      string
		organizer string
		orgID     *int64
		location  string
		country   string
		lat, lng  float64
		date      string
		status    string
		videoURL  *string
		eventLink *string
	}

	link := func(s string) *string { return &s }

	events := []seedEvent{
		// Upcoming
		{
			"London DNB On Bike - Spring Edition",
			"Join Dom Whiting for the original DNB On Bike experience through London streets!",
			"Dom Whiting", &domID, "London", "United Kingdom", 51.5074, -0.1278,
			"2026-03-15T14:00:00Z", "approved", nil,
			link("https://facebook.com/events/123456789"),
		},
		{
			"Warsaw DNB Przejazd",
			"NH Kolektyw zaprasza na przejazd rowerowy z drum and bass przez Warszawe!",
			"NH Kolektyw", &nhID, "Warszawa", "Poland", 52.2297, 21.0122,
			"2026-04-05T15:00:00Z", "approved", nil,
			link("https://facebook.com/nhkolektyw"),
		},
		{
			"Berlin Bass Fahrt",
			"Drum and Bass bike ride through Berlin!",
			"Berlin DNB Crew", &berlinID, "Berlin", "Germany", 52.5200, 13.4050,
			"2026-06-15T14:00:00Z", "pending", nil, nil,
		},
		// Past
		{
			"DnB On The Bike - LONDON NIGHT RIDE",
			"Winter night ride special through the capital.",
			"Dom Whiting", &domID, "London", "United Kingdom", 51.5074, -0.1278,
			"2025-12-05T19:00:00Z", "approved",
			link("https://www.youtube.com/watch?v=9k2CnY5rCzM"),
			link("https://www.facebook.com/domwhiting/events"),
		},
		{
			"DnB On The Bike - MADRID",
			"First major ride in the Spanish capital!",
			"Dom Whiting", &domID, "Madrid", "Spain", 40.4168, -3.7038,
			"2025-11-02T14:00:00Z", "approved",
			link("https://www.youtube.com/watch?v=ZZTMbYrKkjM"),
			link("https://www.facebook.com/domwhiting/events"),
		},
		{
			"DnB On The Bike - ADELAIDE",
			"Down under tour continues.",
			"Dom Whiting", &domID, "Adelaide", "Australia", -34.9285, 138.6007,
			"2025-03-16T14:00:00Z", "approved", nil,
			link("https://www.facebook.com/domwhiting/events"),
		},
		{
			"DnB On The Bike - BRISTOL",
			"The spiritual home of UK DnB.",
			"Dom Whiting", &domID, "Bristol", "United Kingdom", 51.4545, -2.5879,
			"2025-06-08T14:00:00Z", "approved", nil,
			link("https://www.facebook.com/domwhiting/events"),
		},
	}

	query := `
		INSERT INTO events (title, description, organizer, organizer_id, location_name, country,
			latitude, longitude, event_date, status, video_url, event_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for _, e := range events {
		date, err := time.Parse(time.RFC3339, e.date)
		if err != nil {
			return fmt.Errorf("bad seed date for %s: %w", e.title, err)
		}
		if _, err := d.Pool.Exec(ctx, query,
			e.title, e.desc, e.organizer, e.orgID, e.location, e.country,
			e.lat, e.lng, date, e.status, e.videoURL, e.eventLink,
		); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", e.title, err)
		}
	}

	log.Printf("Seeded %d organizers and %d events", len(organizers), len(events))
	return nil
}
