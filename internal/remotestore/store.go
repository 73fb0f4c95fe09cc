// Package remotestore persists records in Postgres. It is an optional
// tier: a store constructed without a pool reports ErrNotConfigured from
// every method and callers degrade to local-only persistence.
package remotestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/calendar"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/contact"
	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/profile"
)

// ErrNotConfigured is returned when no database pool was supplied.
var ErrNotConfigured = errors.New("remotestore: not configured")

type Store struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New accepts a nil pool; the store then answers every call with
// ErrNotConfigured.
func New(pool *pgxpool.Pool, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{pool: pool, log: log.With(slog.String("component", "remotestore"))}
}

// Configured reports whether a database pool is attached.
func (s *Store) Configured() bool {
	return s != nil && s.pool != nil
}

// GetProfile returns the stored profile, or (nil, nil) when the user has
// none yet.
func (s *Store) GetProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile_data FROM user_profiles WHERE clerk_user_id = $1`,
		userID,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	var p profile.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// SaveProfile upserts the profile keyed by the external user id.
func (s *Store) SaveProfile(ctx context.Context, userID string, p profile.Profile) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO user_profiles (clerk_user_id, email, profile_data, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (clerk_user_id)
		 DO UPDATE SET email = EXCLUDED.email, profile_data = EXCLUDED.profile_data, updated_at = EXCLUDED.updated_at`,
		userID, p.Email, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetContacts returns the user's contacts, newest first. An empty result
// is not an error.
func (s *Store) GetContacts(ctx context.Context, userID string) ([]contact.Contact, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	rows, err := s.pool.Query(ctx,
		`SELECT contact_data FROM contacts WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var list []contact.Contact
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		var c contact.Contact
		if err := json.Unmarshal(data, &c); err != nil {
			s.log.Warn("skipping undecodable contact row", slog.String("user_id", userID), slog.String("error", err.Error()))
			continue
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return list, nil
}

// SaveContacts replaces the user's contact set in one transaction.
func (s *Store) SaveContacts(ctx context.Context, userID string, contacts []contact.Contact) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	return s.replaceAll(ctx, userID, "contacts", "contact_data", len(contacts), func(i int) (string, []byte, error) {
		data, err := json.Marshal(contacts[i])
		return contacts[i].ID, data, err
	})
}

// GetEvents returns the user's calendar events.
func (s *Store) GetEvents(ctx context.Context, userID string) ([]calendar.Event, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	rows, err := s.pool.Query(ctx,
		`SELECT event_data FROM calendar_events WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []calendar.Event
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		var e calendar.Event
		if err := json.Unmarshal(data, &e); err != nil {
			s.log.Warn("skipping undecodable event row", slog.String("user_id", userID), slog.String("error", err.Error()))
			continue
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// SaveEvents replaces the user's calendar in one transaction.
func (s *Store) SaveEvents(ctx context.Context, userID string, events []calendar.Event) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	return s.replaceAll(ctx, userID, "calendar_events", "event_data", len(events), func(i int) (string, []byte, error) {
		data, err := json.Marshal(events[i])
		return events[i].ID, data, err
	})
}

// replaceAll deletes the user's rows in table and batch-inserts the new
// set within a single transaction.
func (s *Store) replaceAll(ctx context.Context, userID, table, column string, n int, row func(int) (string, []byte, error)) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table), userID); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if n > 0 {
		now := time.Now().UTC()
		batch := &pgx.Batch{}
		insert := fmt.Sprintf(`INSERT INTO %s (id, user_id, %s, updated_at) VALUES ($1, $2, $3, $4)`, table, column)
		for i := 0; i < n; i++ {
			id, data, err := row(i)
			if err != nil {
				return fmt.Errorf("encode row: %w", err)
			}
			batch.Queue(insert, id, userID, data, now)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert %s: %w", table, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
