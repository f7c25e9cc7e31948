// Package eventrepo implements the event record store using PostgreSQL.
// Like the mail table, the event table is append-only.
package eventrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/postlog-io/postlog-backend/internal/adapter/postgres"
	"github.com/postlog-io/postlog-backend/internal/domain"
)

const (
	table    = "event"
	idColumn = "event_id"
)

var columns = []string{"event_id", "creation_time", "source", "severity", "msg", "event_hash", "duration"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides event record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
	log  *slog.Logger
}

// New creates a new event repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		tx:   postgres.NewTxManager(pool),
		log:  logger.With("repo", "event"),
	}
}

// Create inserts a new event record and returns it fully populated with the
// allocated id and the server-assigned creation time. Allocation and insert
// happen inside one transaction guarded by an advisory lock, so a failed
// insert consumes no id and concurrent creates never collide.
func (r *Repo) Create(ctx context.Context, in domain.NewEvent) (domain.Event, error) {
	if !in.Severity.IsValid() {
		return domain.Event{}, domain.NewValidationError("severity", fmt.Sprintf("unknown code %d", int16(in.Severity)))
	}

	var created domain.Event

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		id, err := postgres.AllocateID(ctx, q, postgres.LockKeyEvent, table, idColumn)
		if err != nil {
			return err
		}

		now := time.Now().UnixMilli()

		query, args, err := builder.
			Insert(table).
			Columns(columns...).
			Values(id, now, in.Source, int16(in.Severity), in.Msg, in.EventHash, in.Duration).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "event", id)
		}

		created = domain.Event{
			EventID:      id,
			CreationTime: now,
			Source:       in.Source,
			Severity:     in.Severity,
			Msg:          in.Msg,
			EventHash:    in.EventHash,
			Duration:     in.Duration,
		}
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}

	return created, nil
}

// GetByID returns the event record with the given id, or domain.ErrNotFound.
// A stored severity outside the known set is a domain.ErrCorrupted, never an
// empty result.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build select: %w", err)
	}

	ev, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", id)
	}

	return ev, nil
}

// GetByHash returns the most recent (highest-id) event with the given hash,
// or domain.ErrNotFound.
func (r *Repo) GetByHash(ctx context.Context, hash string) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"event_hash": hash}).
		OrderBy(idColumn + " DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build select: %w", err)
	}

	ev, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, fmt.Errorf("event hash %q: %w", hash, domain.ErrNotFound)
		}
		return domain.Event{}, fmt.Errorf("event hash %q: %w", hash, err)
	}

	return ev, nil
}

// List returns event records matching the filter, ordered by ascending id.
// With OnlyRecent set, the scan is first reduced to the highest-id row per
// distinct event_hash. A row that fails to decode (including a corrupted
// severity) is logged and dropped rather than failing the whole scan.
func (r *Repo) List(ctx context.Context, f domain.EventFilter) ([]domain.Event, error) {
	normalize(&f)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = "e." + c
	}

	sel := builder.
		Select(qualified...).
		From(table + " e").
		OrderBy("e." + idColumn + " ASC").
		Offset(uint64(f.Offset)).
		Limit(uint64(f.Count))

	if f.OnlyRecent {
		sel = sel.Join("(SELECT MAX(event_id) AS id FROM event GROUP BY event_hash) recent ON recent.id = e.event_id")
	}

	if cond := conditions(f); len(cond) > 0 {
		sel = sel.Where(cond)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query event: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, f.Count)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.log.WarnContext(ctx, "dropping undecodable event row", slog.String("error", err.Error()))
			continue
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan event rows: %w", err)
	}

	return events, nil
}

// scanEvent decodes one row into a domain.Event, validating the severity
// code against the known set.
func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		ev   domain.Event
		code int16
	)
	if err := row.Scan(&ev.EventID, &ev.CreationTime, &ev.Source, &code, &ev.Msg, &ev.EventHash, &ev.Duration); err != nil {
		return domain.Event{}, err
	}

	sev, err := domain.ParseSeverity(code)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %d: %w", ev.EventID, err)
	}
	ev.Severity = sev

	return ev, nil
}
