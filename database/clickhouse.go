package database

import (
	"context"
	"fmt"
	"slices"
	"time"

	"kucukaslan/interactions/config"
	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"

	"github.com/uptrace/go-clickhouse/ch"
	"github.com/uptrace/go-clickhouse/ch/chschema"
)

var clickHouseDB *ch.DB

// InitClickHouse initializes the ClickHouse database connection
func InitClickHouse(cfg *config.ClickHouseConfig) error {
	dsn := cfg.GetClickHouseDSN()

	// Connect without TLS since ClickHouse native protocol doesn't use TLS by default
	db := ch.Connect(
		ch.WithDSN(dsn),
		ch.WithInsecure(true),
	)

	ctx := context.Background()
	if err := InitInteractionsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to initialize interactions table: %w", err)
	}

	clickHouseDB = db
	logger.Log.Info().Str("database", cfg.Database).Msg("ClickHouse connection established")

	return nil
}

// CloseClickHouse closes the ClickHouse database connection
func CloseClickHouse() error {
	if clickHouseDB != nil {
		if err := clickHouseDB.Close(); err != nil {
			return fmt.Errorf("failed to close ClickHouse connection: %w", err)
		}
		logger.Log.Info().Msg("ClickHouse connection closed")
	}
	return nil
}

// InitInteractionsTable creates the interactions table if it doesn't exist.
// The sort key is the dedup identity of an interaction, so rows that slip past
// the ingestion checks collapse on merge; reads use FINAL to see merged state.
func InitInteractionsTable(ctx context.Context, db *ch.DB) error {
	_, err := db.NewCreateTable().
		Model((*InteractionRow)(nil)).
		Engine("ReplacingMergeTree(ingested_at)").
		Order("owner_id, type, target_id, actor_id, dedup_key").
		IfNotExists().
		Exec(ctx)

	return err
}

// ClickHouseHealthCheck verifies that the ClickHouse connection is alive
func ClickHouseHealthCheck(ctx context.Context) error {
	if clickHouseDB == nil {
		return fmt.Errorf("ClickHouse connection is not initialized")
	}
	return clickHouseDB.Ping(ctx)
}

// GetClickHouseDB returns the ClickHouse database instance
func GetClickHouseDB(maxScanRows int) ClickHouseDB {
	return ClickHouseDB{DB: clickHouseDB, maxScanRows: maxScanRows}
}

// InteractionRow is the interactions table structure for the ClickHouse ORM
type InteractionRow struct {
	ch.CHModel `ch:"table:interactions"`

	ID              string    `ch:"id"`
	Type            string    `ch:"type,lc"`
	TargetKind      string    `ch:"target_kind,lc"`
	TargetID        string    `ch:"target_id"`
	OwnerID         string    `ch:"owner_id"`
	ActorID         string    `ch:"actor_id"`
	BusinessID      string    `ch:"business_id"`
	DedupKey        string    `ch:"dedup_key"`
	Longitude       float64   `ch:"longitude"`
	Latitude        float64   `ch:"latitude"`
	LocationLabel   string    `ch:"location_label"`
	SessionID       string    `ch:"session_id"`
	UserAgent       string    `ch:"user_agent"`
	Referrer        string    `ch:"referrer"`
	TargetURL       string    `ch:"target_url"`
	TargetTitle     string    `ch:"target_title"`
	TargetThumbnail string    `ch:"target_thumbnail"`
	Timestamp       time.Time `ch:"timestamp,type:DateTime64(3)"`

	IngestedAt time.Time `ch:"ingested_at,default:now()"`
}

func toInteractionRow(e domain.InteractionEvent, ingestedAt time.Time) *InteractionRow {
	return &InteractionRow{
		ID:              e.ID,
		Type:            string(e.Type),
		TargetKind:      string(e.TargetKind),
		TargetID:        e.TargetID,
		OwnerID:         e.OwnerID,
		ActorID:         e.ActorID,
		BusinessID:      e.BusinessID,
		DedupKey:        e.DedupKey(),
		Longitude:       e.Coordinates.Longitude,
		Latitude:        e.Coordinates.Latitude,
		LocationLabel:   e.LocationLabel,
		SessionID:       e.SessionID,
		UserAgent:       e.UserAgent,
		Referrer:        e.Referrer,
		TargetURL:       e.TargetURL,
		TargetTitle:     e.TargetTitle,
		TargetThumbnail: e.TargetThumbnail,
		Timestamp:       e.Timestamp.UTC(),
		IngestedAt:      ingestedAt.UTC(),
	}
}

func (r InteractionRow) toDomain() domain.InteractionEvent {
	return domain.InteractionEvent{
		ID:              r.ID,
		Type:            domain.InteractionType(r.Type),
		TargetKind:      domain.TargetKind(r.TargetKind),
		TargetID:        r.TargetID,
		OwnerID:         r.OwnerID,
		ActorID:         r.ActorID,
		BusinessID:      r.BusinessID,
		Coordinates:     domain.Coordinates{Longitude: r.Longitude, Latitude: r.Latitude},
		LocationLabel:   r.LocationLabel,
		SessionID:       r.SessionID,
		UserAgent:       r.UserAgent,
		Referrer:        r.Referrer,
		TargetURL:       r.TargetURL,
		TargetTitle:     r.TargetTitle,
		TargetThumbnail: r.TargetThumbnail,
		Timestamp:       r.Timestamp.UTC(),
	}
}

// millis renders a time as a DateTime64(3) literal. The driver's own time.Time
// formatting stops at whole seconds.
type millis time.Time

func (t millis) AppendQuery(_ chschema.Formatter, b []byte) ([]byte, error) {
	b = append(b, "toDateTime64('"...)
	b = time.Time(t).UTC().AppendFormat(b, "2006-01-02 15:04:05.000")
	b = append(b, "', 3, 'UTC')"...)
	return b, nil
}

type ClickHouseDB struct {
	*ch.DB
	maxScanRows int
}

// SaveInteraction inserts a single interaction event
func (c ClickHouseDB) SaveInteraction(ctx context.Context, event domain.InteractionEvent) error {
	if c.DB == nil {
		return fmt.Errorf("database connection is nil")
	}

	_, err := c.DB.NewInsert().
		Model(toInteractionRow(event, time.Now())).
		Exec(ctx)
	if err != nil {
		return domain.NewStoreError("insert interaction", err)
	}
	return nil
}

// FindClick returns the click of actorID on targetID, or nil when there is none
func (c ClickHouseDB) FindClick(ctx context.Context, actorID, targetID string) (*domain.InteractionEvent, error) {
	return c.findOne(ctx, "find click", domain.InteractionClick, actorID, targetID, "")
}

// FindView returns the view marker of actorID on targetID for the given UTC day
// (YYYY-MM-DD), or nil when there is none
func (c ClickHouseDB) FindView(ctx context.Context, actorID, targetID, day string) (*domain.InteractionEvent, error) {
	return c.findOne(ctx, "find view", domain.InteractionView, actorID, targetID, day)
}

func (c ClickHouseDB) findOne(ctx context.Context, op string, t domain.InteractionType, actorID, targetID, dedupKey string) (*domain.InteractionEvent, error) {
	var rows []InteractionRow

	err := c.NewSelect().
		TableExpr("interactions FINAL").
		ColumnExpr("*").
		Where("type = ?", string(t)).
		Where("actor_id = ?", actorID).
		Where("target_id = ?", targetID).
		Where("dedup_key = ?", dedupKey).
		OrderExpr("timestamp ASC").
		Limit(1).
		Scan(ctx, &rows)
	if err != nil {
		return nil, domain.NewStoreError(op, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	event := rows[0].toDomain()
	return &event, nil
}

// ListInteractions returns the events matching q ordered by timestamp. The
// result is bounded by the configured scan limit; when the limit cuts the
// window, the newest events are the ones kept.
func (c ClickHouseDB) ListInteractions(ctx context.Context, q domain.EventQuery) ([]domain.InteractionEvent, error) {
	var rows []InteractionRow

	query := c.NewSelect().
		TableExpr("interactions FINAL").
		ColumnExpr("*")

	if q.OwnerID != "" {
		query = query.Where("owner_id = ?", q.OwnerID)
	}
	if q.Type != "" {
		query = query.Where("type = ?", string(q.Type))
	}
	if q.TargetKind != "" {
		query = query.Where("target_kind = ?", string(q.TargetKind))
	}
	if q.TargetID != "" {
		query = query.Where("target_id = ?", q.TargetID)
	}
	if !q.From.IsZero() {
		query = query.Where("timestamp >= ?", millis(q.From))
	}
	if !q.To.IsZero() {
		query = query.Where("timestamp <= ?", millis(q.To))
	}

	query = query.OrderExpr("timestamp DESC")
	if limit := c.scanLimit(q.Limit); limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(ctx, &rows); err != nil {
		return nil, domain.NewStoreError("list interactions", err)
	}

	return oldestFirst(rows), nil
}

// oldestFirst maps rows scanned newest first into chronological events.
func oldestFirst(rows []InteractionRow) []domain.InteractionEvent {
	events := make([]domain.InteractionEvent, len(rows))
	for i, r := range rows {
		events[i] = r.toDomain()
	}
	slices.Reverse(events)
	return events
}

type actorResult struct {
	ActorID string `ch:"actor_id"`
}

// DistinctActors returns the actors with an interaction of type t on the
// owner's content strictly before the given instant
func (c ClickHouseDB) DistinctActors(ctx context.Context, ownerID string, t domain.InteractionType, before time.Time) ([]string, error) {
	var results []actorResult

	err := c.NewSelect().
		TableExpr("interactions FINAL").
		ColumnExpr("actor_id").
		Where("owner_id = ?", ownerID).
		Where("type = ?", string(t)).
		Where("timestamp < ?", millis(before)).
		GroupExpr("actor_id").
		Scan(ctx, &results)
	if err != nil {
		return nil, domain.NewStoreError("distinct actors", err)
	}

	actors := make([]string, len(results))
	for i, r := range results {
		actors[i] = r.ActorID
	}
	return actors, nil
}

func (c ClickHouseDB) scanLimit(requested int) int {
	switch {
	case requested > 0 && (c.maxScanRows <= 0 || requested < c.maxScanRows):
		return requested
	default:
		return c.maxScanRows
	}
}
