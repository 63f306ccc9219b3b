package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// QueryBuilder provides a fluent, type-safe API for building database
// queries on top of bun. Execution methods wrap the underlying call in
// retry logic for transient failures.
type QueryBuilder[T any] struct {
	db  *DB
	ctx context.Context

	wheres  []whereClause
	orders  []string
	limit   int
	offset  int
	hasPage bool
}

type whereClause struct {
	expr string
	args []any
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:  db,
		ctx: context.Background(),
	}
}

// Context sets the context for the query
func (q *QueryBuilder[T]) Context(ctx context.Context) *QueryBuilder[T] {
	q.ctx = ctx
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{expr: column + " = ?", args: []any{value}})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{expr: column + " " + operator + " ?", args: []any{value}})
	return q
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{expr: column + " IN (?)", args: []any{bun.In(values)}})
	return q
}

// WhereLike adds a case-insensitive pattern match
func (q *QueryBuilder[T]) WhereLike(column, pattern string) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{expr: column + " ILIKE ?", args: []any{pattern}})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, column+" "+string(direction))
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limit = limit
	q.hasPage = true
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offset = offset
	q.hasPage = true
	return q
}

func (q *QueryBuilder[T]) selectQuery(model any) *bun.SelectQuery {
	sq := q.db.NewSelect().Model(model)
	for _, w := range q.wheres {
		sq = sq.Where(w.expr, w.args...)
	}
	for _, o := range q.orders {
		sq = sq.Order(o)
	}
	if q.hasPage {
		if q.limit > 0 {
			sq = sq.Limit(q.limit)
		}
		sq = sq.Offset(q.offset)
	}
	return sq
}

// All executes the query and returns all matching rows
func (q *QueryBuilder[T]) All() ([]T, error) {
	var rows []T
	err := WithRetry(q.ctx, func() error {
		rows = rows[:0]
		return q.selectQuery(&rows).Scan(q.ctx)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// First executes the query and returns the first matching row, or nil when
// nothing matches.
func (q *QueryBuilder[T]) First() (*T, error) {
	var row T
	err := WithRetry(q.ctx, func() error {
		return q.selectQuery(&row).Limit(1).Scan(q.ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Count returns the number of rows matching the query, ignoring pagination
func (q *QueryBuilder[T]) Count() (int, error) {
	var model T
	var count int
	err := WithRetry(q.ctx, func() error {
		sq := q.db.NewSelect().Model(&model)
		for _, w := range q.wheres {
			sq = sq.Where(w.expr, w.args...)
		}
		var err error
		count, err = sq.Count(q.ctx)
		return err
	})
	return count, err
}

// Insert persists the given model
func (q *QueryBuilder[T]) Insert(model *T) error {
	return WithRetry(q.ctx, func() error {
		_, err := q.db.NewInsert().Model(model).Exec(q.ctx)
		return err
	})
}

// Update applies the builder's WHERE clauses to an UPDATE of the given
// column/value pairs. Returns the number of affected rows.
func (q *QueryBuilder[T]) Update(values map[string]any) (int, error) {
	var model T
	var affected int
	err := WithRetry(q.ctx, func() error {
		uq := q.db.NewUpdate().Model(&model)
		for col, val := range values {
			uq = uq.Set(col+" = ?", val)
		}
		for _, w := range q.wheres {
			uq = uq.Where(w.expr, w.args...)
		}
		res, err := uq.Exec(q.ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		affected = int(n)
		return err
	})
	return affected, err
}

// Delete removes rows matching the builder's WHERE clauses. Returns the
// number of affected rows.
func (q *QueryBuilder[T]) Delete() (int, error) {
	var model T
	var affected int
	err := WithRetry(q.ctx, func() error {
		dq := q.db.NewDelete().Model(&model)
		for _, w := range q.wheres {
			dq = dq.Where(w.expr, w.args...)
		}
		res, err := dq.Exec(q.ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		affected = int(n)
		return err
	})
	return affected, err
}
