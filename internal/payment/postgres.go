package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type authorizationRow struct {
	IdempotencyKey string    `db:"idempotency_key"`
	OrderID        string    `db:"order_id"`
	Authorised     bool      `db:"authorised"`
	Message        string    `db:"message"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r authorizationRow) entity() entities.Authorization {
	return entities.Authorization{
		OrderID:        r.OrderID,
		IdempotencyKey: r.IdempotencyKey,
		Payment:        entities.Payment{Authorised: r.Authorised, Message: r.Message},
		Time:           r.CreatedAt.UTC(),
	}
}

var authorizationColumns = []string{"idempotency_key", "order_id", "authorised", "message", "created_at"}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetAuthorization(ctx context.Context, idempotencyKey string) (entities.Authorization, error) {
	query, args := r.qb.Select(authorizationColumns...).
		From("authorizations").
		Where(sq.Eq{"idempotency_key": idempotencyKey}).
		MustSql()

	var row authorizationRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Authorization{}, entities.ErrAuthorizationNotFound
	}
	if err != nil {
		return entities.Authorization{}, fmt.Errorf("failed to get authorization: %w", err)
	}
	return row.entity(), nil
}

func (r *postgresRepo) SaveAuthorization(ctx context.Context, a entities.Authorization) (entities.Authorization, error) {
	query, args := r.qb.Insert("authorizations").
		Columns(authorizationColumns...).
		Values(a.IdempotencyKey, a.OrderID, a.Payment.Authorised, a.Payment.Message, a.Time).
		Suffix("ON CONFLICT (idempotency_key) DO UPDATE SET idempotency_key = EXCLUDED.idempotency_key " +
			"RETURNING idempotency_key, order_id, authorised, message, created_at").
		MustSql()

	var row authorizationRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return entities.Authorization{}, fmt.Errorf("failed to save authorization: %w", err)
	}
	return row.entity(), nil
}

func (r *postgresRepo) FindByOrder(ctx context.Context, orderID string) ([]entities.Authorization, error) {
	query, args := r.qb.Select(authorizationColumns...).
		From("authorizations").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at").
		MustSql()

	var rows []authorizationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select authorizations: %w", err)
	}

	out := make([]entities.Authorization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}
