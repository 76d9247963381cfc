package db

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"rideboard/internal/models"
)

// eventColumns is the standard column list for event queries.
const eventColumns = `id, title, description, organizer, organizer_id, location_name, country,
	latitude, longitude, event_date, image_url, video_url, event_link, status, created_at`

// scanEvent scans a row into an Event and normalizes the stored status.
func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	var rawStatus string
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Organizer,
		&e.OrganizerID,
		&e.LocationName,
		&e.Country,
		&e.Latitude,
		&e.Longitude,
		&e.EventDate,
		&e.ImageURL,
		&e.VideoURL,
		&e.EventLink,
		&rawStatus,
		&e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Status = models.ParseStatus(rawStatus)
	return &e, nil
}

// scanEvents scans multiple rows into a slice of Events.
func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var rawStatus string
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.Organizer,
			&e.OrganizerID,
			&e.LocationName,
			&e.Country,
			&e.Latitude,
			&e.Longitude,
			&e.EventDate,
			&e.ImageURL,
			&e.VideoURL,
			&e.EventLink,
			&rawStatus,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Status = models.ParseStatus(rawStatus)
		events = append(events, e)
	}

	return events, rows.Err()
}

// CreateEvent inserts a new event. The status is always pending regardless
// of anything the caller set; the returned event is re-read from the store
// so it carries the server-assigned id, timestamp and defaults.
func (d *DB) CreateEvent(ctx context.Context, e *models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (title, description, organizer, organizer_id, location_name, country,
			latitude, longitude, event_date, image_url, video_url, event_link, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending')
		RETURNING id
	`

	var id int64
	err := d.Pool.QueryRow(ctx, query,
		e.Title,
		e.Description,
		e.Organizer,
		e.OrganizerID,
		e.LocationName,
		e.Country,
		e.Latitude,
		e.Longitude,
		e.EventDate,
		e.ImageURL,
		e.VideoURL,
		e.EventLink,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return d.GetEventByID(ctx, id)
}

// GetEventByID retrieves a single event by its ID.
func (d *DB) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(d.Pool.QueryRow(ctx, query, id))
}

// GetApprovedEvents retrieves all approved events, earliest first.
func (d *DB) GetApprovedEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = 'approved'
		ORDER BY event_date ASC
	`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// GetUpcomingEvents retrieves approved events strictly after now, earliest first.
func (d *DB) GetUpcomingEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = 'approved' AND event_date > $1
		ORDER BY event_date ASC
	`
	rows, err := d.Pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// GetPastEvents retrieves approved events at or before now, most recent first.
func (d *DB) GetPastEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = 'approved' AND event_date <= $1
		ORDER BY event_date DESC
	`
	rows, err := d.Pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// GetApprovedEventsByOrganizer retrieves approved events for an organizer,
// most recent first.
func (d *DB) GetApprovedEventsByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = 'approved' AND organizer_id = $1
		ORDER BY event_date DESC
	`
	rows, err := d.Pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// GetAllEvents retrieves every event regardless of status, most recent first.
// Admin surface only.
func (d *DB) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY event_date DESC
	`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// GetPendingEvents retrieves events awaiting review, newest submission first.
// Admin surface only.
func (d *DB) GetPendingEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = 'pending'
		ORDER BY created_at DESC
	`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// UpdateEvent applies a partial update: only fields present in the patch are
// touched. An empty string on the nullable country/URL columns stores NULL;
// description is stored verbatim. The full row is re-read afterwards so the
// caller sees actual stored state.
func (d *DB) UpdateEvent(ctx context.Context, id int64, patch *models.EventPatch) (*models.Event, error) {
	var sets []string
	var args []any
	set := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Organizer != nil {
		set("organizer", *patch.Organizer)
	}
	if patch.LocationName != nil {
		set("location_name", *patch.LocationName)
	}
	if patch.Country != nil {
		set("country", emptyToNull(*patch.Country))
	}
	if patch.Latitude != nil {
		set("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		set("longitude", *patch.Longitude)
	}
	if patch.EventDate != nil {
		set("event_date", *patch.EventDate)
	}
	if patch.ImageURL != nil {
		set("image_url", emptyToNull(*patch.ImageURL))
	}
	if patch.VideoURL != nil {
		set("video_url", emptyToNull(*patch.VideoURL))
	}
	if patch.EventLink != nil {
		set("event_link", emptyToNull(*patch.EventLink))
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}

	if len(sets) == 0 {
		return nil, ErrEmptyPatch
	}

	args = append(args, id)
	query := `UPDATE events SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args))

	result, err := d.Pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrEventNotFound
	}

	return d.GetEventByID(ctx, id)
}

// emptyToNull maps the empty-string sentinel to NULL for nullable columns.
func emptyToNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ApproveEvent marks an event approved. Unconditional and idempotent.
func (d *DB) ApproveEvent(ctx context.Context, id int64) (*models.Event, error) {
	return d.setEventStatus(ctx, id, models.StatusApproved)
}

// RejectEvent marks an event rejected. Unconditional and idempotent.
func (d *DB) RejectEvent(ctx context.Context, id int64) (*models.Event, error) {
	return d.setEventStatus(ctx, id, models.StatusRejected)
}

func (d *DB) setEventStatus(ctx context.Context, id int64, status models.EventStatus) (*models.Event, error) {
	query := `UPDATE events SET status = $1 WHERE id = $2`
	result, err := d.Pool.Exec(ctx, query, string(status), id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrEventNotFound
	}
	return d.GetEventByID(ctx, id)
}

// DeleteEvent removes an event. Hard delete; a second call reports not found.
func (d *DB) DeleteEvent(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := d.Pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// CountEventsByStatus returns the number of events per stored status value.
// Used by the metrics collector.
func (d *DB) CountEventsByStatus(ctx context.Context) (map[string]int64, error) {
	query := `SELECT status, COUNT(*) FROM events GROUP BY status`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
