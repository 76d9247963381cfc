package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"rideboard/internal/models"
)

// CreateSuggestion inserts a new pending video suggestion. The referenced
// event is deliberately not checked for existence; the read side tolerates
// orphaned suggestions.
func (d *DB) CreateSuggestion(ctx context.Context, eventID int64, videoURL string) (*models.VideoSuggestion, error) {
	query := `
		INSERT INTO video_suggestions (event_id, video_url)
		VALUES ($1, $2)
		RETURNING id, event_id, video_url, status, created_at
	`

	var s models.VideoSuggestion
	var rawStatus string
	err := d.Pool.QueryRow(ctx, query, eventID, videoURL).
		Scan(&s.ID, &s.EventID, &s.VideoURL, &rawStatus, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Status = models.ParseStatus(rawStatus)
	return &s, nil
}

// GetPendingSuggestions retrieves pending suggestions joined with their
// event's title, newest first. Suggestions whose event has been deleted get
// a placeholder title instead of being dropped.
func (d *DB) GetPendingSuggestions(ctx context.Context) ([]models.SuggestionWithEvent, error) {
	query := `
		SELECT vs.id, vs.event_id, vs.video_url, vs.status, vs.created_at,
			COALESCE(e.title, $1) AS event_title
		FROM video_suggestions vs
		LEFT JOIN events e ON vs.event_id = e.id
		WHERE vs.status = 'pending'
		ORDER BY vs.created_at DESC
	`

	rows, err := d.Pool.Query(ctx, query, models.UnknownEventTitle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []models.SuggestionWithEvent
	for rows.Next() {
		var s models.SuggestionWithEvent
		var rawStatus string
		if err := rows.Scan(&s.ID, &s.EventID, &s.VideoURL, &rawStatus, &s.CreatedAt, &s.EventTitle); err != nil {
			return nil, err
		}
		s.Status = models.ParseStatus(rawStatus)
		suggestions = append(suggestions, s)
	}

	return suggestions, rows.Err()
}

// GetSuggestionByID retrieves a single suggestion.
func (d *DB) GetSuggestionByID(ctx context.Context, id int64) (*models.VideoSuggestion, error) {
	query := `SELECT id, event_id, video_url, status, created_at FROM video_suggestions WHERE id = $1`

	var s models.VideoSuggestion
	var rawStatus string
	err := d.Pool.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.EventID, &s.VideoURL, &rawStatus, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSuggestionNotFound
	}
	if err != nil {
		return nil, err
	}
	s.Status = models.ParseStatus(rawStatus)
	return &s, nil
}

// ApproveSuggestion copies the suggestion's video URL onto its event and
// marks the suggestion approved, as a single transaction. Either both
// writes commit or neither does. A suggestion whose event no longer exists
// cannot be approved and the whole operation rolls back with
// ErrEventNotFound.
func (d *DB) ApproveSuggestion(ctx context.Context, id int64) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var eventID int64
	var videoURL string
	err = tx.QueryRow(ctx,
		`SELECT event_id, video_url FROM video_suggestions WHERE id = $1`, id).
		Scan(&eventID, &videoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrSuggestionNotFound
	}
	if err != nil {
		return err
	}

	result, err := tx.Exec(ctx,
		`UPDATE events SET video_url = $1 WHERE id = $2`, videoURL, eventID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE video_suggestions SET status = 'approved' WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RejectSuggestion marks a suggestion rejected. Single-row update,
// unconditional and idempotent.
func (d *DB) RejectSuggestion(ctx context.Context, id int64) error {
	query := `UPDATE video_suggestions SET status = 'rejected' WHERE id = $1`
	result, err := d.Pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrSuggestionNotFound
	}
	return nil
}

// CountPendingSuggestions returns the size of the review queue.
// Used by the metrics collector.
func (d *DB) CountPendingSuggestions(ctx context.Context) (int64, error) {
	var n int64
	err := d.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM video_suggestions WHERE status = 'pending'`).Scan(&n)
	return n, err
}
