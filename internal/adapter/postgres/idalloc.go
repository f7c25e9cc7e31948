package postgres

import (
	"context"
	"fmt"
)

// Advisory lock keys, one per append-only table. Taking the table's key
// inside the allocating transaction serializes the read-max-then-insert
// critical section across pooled connections, so two concurrent inserts
// can never observe the same MAX and commit duplicate ids.
const (
	LockKeyMail  int64 = 0x706f73746c6f0001
	LockKeyEvent int64 = 0x706f73746c6f0002
)

// AllocateID returns max(idColumn)+1 for table, holding the advisory
// transaction lock identified by lockKey until the surrounding transaction
// ends. It must be called inside a transaction (via TxManager.RunInTx);
// outside one the lock is released immediately and the result is unsafe.
// table and idColumn are compile-time constants in the repositories, never
// caller input.
func AllocateID(ctx context.Context, q Querier, lockKey int64, table, idColumn string) (int64, error) {
	if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		return 0, fmt.Errorf("acquire advisory lock for %s: %w", table, err)
	}

	var next int64
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", idColumn, table)
	if err := q.QueryRow(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocate next %s id: %w", table, err)
	}

	return next, nil
}
