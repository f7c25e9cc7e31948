// Package mailrepo implements the mail record store using PostgreSQL.
// The table is append-only: records are inserted exactly once and never
// updated or deleted.
package mailrepo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/postlog-io/postlog-backend/internal/adapter/postgres"
	"github.com/postlog-io/postlog-backend/internal/domain"
)

const (
	table    = "mail"
	idColumn = "mail_id"
)

var columns = []string{"mail_id", "request_id", "creation_time", "topic", "destination", "title", "content"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides mail record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
	log  *slog.Logger
}

// New creates a new mail repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		tx:   postgres.NewTxManager(pool),
		log:  logger.With("repo", "mail"),
	}
}

// Create inserts a new mail record and returns it fully populated with the
// allocated id and the server-assigned creation time. Allocation and insert
// happen inside one transaction guarded by an advisory lock, so a failed
// insert consumes no id and concurrent creates never collide.
func (r *Repo) Create(ctx context.Context, in domain.NewMail) (domain.Mail, error) {
	var created domain.Mail

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		id, err := postgres.AllocateID(ctx, q, postgres.LockKeyMail, table, idColumn)
		if err != nil {
			return err
		}

		now := time.Now().UnixMilli()

		query, args, err := builder.
			Insert(table).
			Columns(columns...).
			Values(id, in.RequestID, now, in.Topic, in.Destination, in.Title, in.Content).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "mail", id)
		}

		created = domain.Mail{
			MailID:       id,
			RequestID:    in.RequestID,
			CreationTime: now,
			Topic:        in.Topic,
			Destination:  in.Destination,
			Title:        in.Title,
			Content:      in.Content,
		}
		return nil
	})
	if err != nil {
		return domain.Mail{}, fmt.Errorf("create mail: %w", err)
	}

	return created, nil
}

// GetByID returns the mail record with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Mail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return domain.Mail{}, fmt.Errorf("build select: %w", err)
	}

	var m domain.Mail
	row := q.QueryRow(ctx, query, args...)
	if err := row.Scan(&m.MailID, &m.RequestID, &m.CreationTime, &m.Topic, &m.Destination, &m.Title, &m.Content); err != nil {
		return domain.Mail{}, postgres.MapError(err, "mail", id)
	}

	return m, nil
}

// List returns mail records matching the filter, ordered by ascending id.
// A row that fails to decode is logged and dropped rather than failing the
// whole scan: partial results are more useful than none on this read path.
func (r *Repo) List(ctx context.Context, f domain.MailFilter) ([]domain.Mail, error) {
	normalize(&f)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := builder.
		Select(columns...).
		From(table).
		OrderBy(idColumn + " ASC").
		Offset(uint64(f.Offset)).
		Limit(uint64(f.Count))

	if cond := conditions(f); len(cond) > 0 {
		sel = sel.Where(cond)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mail: %w", err)
	}
	defer rows.Close()

	mails := make([]domain.Mail, 0, f.Count)
	for rows.Next() {
		var m domain.Mail
		if err := rows.Scan(&m.MailID, &m.RequestID, &m.CreationTime, &m.Topic, &m.Destination, &m.Title, &m.Content); err != nil {
			r.log.WarnContext(ctx, "dropping undecodable mail row", slog.String("error", err.Error()))
			continue
		}
		mails = append(mails, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan mail rows: %w", err)
	}

	return mails, nil
}
