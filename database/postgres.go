package database

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// schemaSQL is embedded so the service can bootstrap the content tables it reads.
//
//go:embed schema.sql
var schemaSQL string

// ContentStore reads the owner-published content collections (pages, business
// profiles, widgets), the actors' last known location, and maintains the
// denormalized view/click counters on content rows.
type ContentStore struct {
	db *sql.DB
}

func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// OpenContentStore connects through the pgx database/sql driver and fails fast
// if the database is unreachable.
func OpenContentStore(dsn string) (*ContentStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	logger.Log.Info().Msg("Postgres connection established")
	return &ContentStore{db: db}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (s *ContentStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return err
}

func (s *ContentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ContentStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close Postgres connection: %w", err)
	}
	logger.Log.Info().Msg("Postgres connection closed")
	return nil
}

// GetPage returns the page with the given id, or nil when it does not exist
func (s *ContentStore) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	var (
		p          domain.Page
		businessID sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, slug, thumbnail, business_id
		FROM pages
		WHERE id = $1
	`, id).Scan(&p.ID, &p.OwnerID, &p.Title, &p.Slug, &p.Thumbnail, &businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError("get page", err)
	}
	p.BusinessID = businessID.String
	return &p, nil
}

// GetBusinessProfile returns the business profile with the given id, or nil
func (s *ContentStore) GetBusinessProfile(ctx context.Context, id string) (*domain.BusinessProfile, error) {
	var b domain.BusinessProfile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, slug, logo
		FROM business_profiles
		WHERE id = $1
	`, id).Scan(&b.ID, &b.OwnerID, &b.Name, &b.Slug, &b.Logo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError("get business profile", err)
	}
	return &b, nil
}

const widgetColumns = `id, owner_id, COALESCE(page_id, ''), kind, title, url, thumbnail, settings`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWidget(row rowScanner) (*domain.Widget, error) {
	var (
		w        domain.Widget
		settings []byte
	)
	if err := row.Scan(&w.ID, &w.OwnerID, &w.PageID, &w.Kind, &w.Title, &w.URL, &w.Thumbnail, &settings); err != nil {
		return nil, err
	}
	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &w.Settings); err != nil {
			return nil, fmt.Errorf("decode widget %s settings: %w", w.ID, err)
		}
	}
	return &w, nil
}

// GetWidget returns the widget with the given id, or nil
func (s *ContentStore) GetWidget(ctx context.Context, id string) (*domain.Widget, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+widgetColumns+` FROM widgets WHERE id = $1`, id)
	w, err := scanWidget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStoreError("get widget", err)
	}
	return w, nil
}

// WidgetsByIDs returns the widgets that still exist among ids, keyed by id
func (s *ContentStore) WidgetsByIDs(ctx context.Context, ids []string) (map[string]domain.Widget, error) {
	widgets := make(map[string]domain.Widget, len(ids))
	if len(ids) == 0 {
		return widgets, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+widgetColumns+` FROM widgets WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return nil, domain.NewStoreError("list widgets", err)
	}
	defer rows.Close()

	for rows.Next() {
		w, err := scanWidget(rows)
		if err != nil {
			return nil, domain.NewStoreError("list widgets", err)
		}
		widgets[w.ID] = *w
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list widgets", err)
	}
	return widgets, nil
}

// LastKnownLocation returns the actor's stored coordinates. ok is false when
// the actor is unknown or has never reported a location.
func (s *ContentStore) LastKnownLocation(ctx context.Context, actorID string) (coords domain.Coordinates, ok bool, err error) {
	var lng, lat sql.NullFloat64
	err = s.db.QueryRowContext(ctx, `
		SELECT last_longitude, last_latitude
		FROM users
		WHERE id = $1
	`, actorID).Scan(&lng, &lat)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, domain.NewStoreError("last known location", err)
	}
	if !lng.Valid || !lat.Valid {
		return domain.Coordinates{}, false, nil
	}
	return domain.Coordinates{Longitude: lng.Float64, Latitude: lat.Float64}, true, nil
}

var counterTables = map[domain.TargetKind]string{
	domain.TargetPage:            "pages",
	domain.TargetBusinessProfile: "business_profiles",
	domain.TargetCustomLink:      "widgets",
}

func counterStatement(d domain.CounterDelta) (string, error) {
	table, ok := counterTables[d.Kind]
	if !ok {
		return "", fmt.Errorf("no counters for target kind %q", d.Kind)
	}
	switch d.Field {
	case domain.CounterViews, domain.CounterClicks:
	default:
		return "", fmt.Errorf("unknown counter field %q", d.Field)
	}
	column := string(d.Field)
	return fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE id = $2", table, column, column), nil
}

// ApplyCounterDeltas increments the denormalized counters in one transaction
func (s *ContentStore) ApplyCounterDeltas(ctx context.Context, deltas []domain.CounterDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.NewStoreError("apply counters", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, d := range deltas {
		stmt, err := counterStatement(d)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, stmt, d.Delta, d.ID); err != nil {
			return domain.NewStoreError("apply counters", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewStoreError("apply counters", err)
	}
	return nil
}
