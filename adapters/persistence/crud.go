package persistence

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/apperror"
	"github.com/predusk/profile-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const defaultListLimit = 100

// Store is the shared CRUD implementation every entity store is built from.
// It is parametrized by table, column list and a row-scan function; nothing
// else differs between the twelve entities.
type Store[T any] struct {
	pool    *pgxpool.Pool
	table   string
	columns []string
	scan    func(row pgx.Row) (*T, error)
	logger  logger.Logger
}

func NewStore[T any](pool *pgxpool.Pool, table string, columns []string, scan func(row pgx.Row) (*T, error), log logger.Logger) *Store[T] {
	return &Store[T]{pool: pool, table: table, columns: columns, scan: scan, logger: log}
}

// db returns the caller's transaction when one travels in ctx, else the pool.
func (s *Store[T]) db(ctx context.Context) DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return s.pool
}

func (s *Store[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	sqlStr, args, err := psql.Select(s.columns...).
		From(s.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build select query", err)
	}

	entity, err := s.scan(s.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, s.classify("scan "+s.table+" row", err)
	}
	return entity, nil
}

func (s *Store[T]) List(ctx context.Context, filters []domain.Filter, offset, limit uint64) ([]*T, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	builder := psql.Select(s.columns...).From(s.table)
	for _, f := range filters {
		if f.Contains {
			builder = builder.Where(sq.Expr("? = ANY("+f.Column+")", f.Value))
		} else {
			builder = builder.Where(sq.Eq{f.Column: f.Value})
		}
	}
	// Storage order: no ORDER BY on purpose.
	builder = builder.Offset(offset).Limit(limit)

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list query", err)
	}

	rows, err := s.db(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, s.classify("query "+s.table, err)
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		entity, err := s.scan(rows)
		if err != nil {
			return nil, s.classify("scan "+s.table+" row", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify("iterate "+s.table+" rows", err)
	}
	return entities, nil
}

func (s *Store[T]) Create(ctx context.Context, fields domain.Fields) (*T, error) {
	sqlStr, args, err := psql.Insert(s.table).
		SetMap(fields).
		Suffix("RETURNING " + strings.Join(s.columns, ", ")).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build insert query", err)
	}

	// RETURNING doubles as the refresh-after-write: the generated id and any
	// column defaults come back with the row.
	entity, err := s.scan(s.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, s.classify("insert into "+s.table, err)
	}
	return entity, nil
}

func (s *Store[T]) UpdateByID(ctx context.Context, id int64, fields domain.Fields) (*T, error) {
	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	sqlStr, args, err := psql.Update(s.table).
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(s.columns, ", ")).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build update query", err)
	}

	entity, err := s.scan(s.db(ctx).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, s.classify("update "+s.table, err)
	}
	return entity, nil
}

func (s *Store[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	sqlStr, args, err := psql.Delete(s.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, apperror.NewInternal("failed to build delete query", err)
	}

	tag, err := s.db(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, s.classify("delete from "+s.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// classify maps constraint violations onto the apperror taxonomy; everything
// else is an internal persistence fault. Nothing is retried here.
func (s *Store[T]) classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperror.NewConflict(s.table, pgErr.Detail, err)
		case "23503": // foreign_key_violation
			return apperror.NewInvalidInput("referenced row does not exist: "+pgErr.Detail, err)
		case "23502": // not_null_violation
			return apperror.NewInvalidInput("missing required field "+pgErr.ColumnName, err)
		}
	}
	return apperror.NewInternal("failed to "+op, err)
}
