// Package sql adapts database/sql query results into asynchronous
// enumerables, so a result set can feed a fluent pipeline row by row
// without being materialized first.
package sql

import (
	"context"
	"database/sql"

	"github.com/ericsuh/fluent-iter/fluent/core"
	"github.com/ericsuh/fluent-iter/fluent/stream"
)

// Scanner converts the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query wraps the rows produced by query as a Stream. The query runs when a
// traversal starts, once per traversal, so the stream is restartable as
// long as the database is reachable. A query, scan, or iteration error
// aborts the traversal.
func Query[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) *stream.Stream[T] {
	return stream.FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T])
		go func() {
			defer close(out)
			rows, err := db.QueryContext(ctx, query, args...)
			if err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}
			defer rows.Close()

			for rows.Next() {
				value, err := scanner(rows)
				if err != nil {
					select {
					case <-ctx.Done():
					case out <- core.Err[T](err):
					}
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- core.Ok(value):
				}
			}
			if err := rows.Err(); err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
			}
		}()
		return out
	})
}

// QueryRow wraps a single-row query as a one-element Stream.
func QueryRow[T any](db *sql.DB, query string, scanner func(*sql.Row) (T, error), args ...any) *stream.Stream[T] {
	return stream.FromEmitter(func(ctx context.Context) <-chan core.Result[T] {
		out := make(chan core.Result[T], 1)
		go func() {
			defer close(out)
			value, err := scanner(db.QueryRowContext(ctx, query, args...))
			if err != nil {
				select {
				case <-ctx.Done():
				case out <- core.Err[T](err):
				}
				return
			}
			select {
			case <-ctx.Done():
			case out <- core.Ok(value):
			}
		}()
		return out
	})
}
