package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

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

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	return r.getOrder(ctx, query, args...)
}

// GetOrderForUpdate reads the order and locks its row until the surrounding transaction ends.
func (r *postgresRepo) GetOrderForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	return r.getOrder(ctx, query, args...)
}

func (r *postgresRepo) getOrder(ctx context.Context, query string, args ...any) (entities.Order, error) {
	var row Order
	err := trm.Conn(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(row)
}

func (r *postgresRepo) FindByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("date_created DESC").
		MustSql()

	var rows []Order
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		o, err := OrderToEntity(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// UpsertOrder replaces the full record of o. An existing row is only replaced by
// the version directly following it; otherwise ErrVersionConflict is returned.
func (r *postgresRepo) UpsertOrder(ctx context.Context, o entities.Order) error {
	row, err := OrderFromEntity(o)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			row.OrderID, row.CustomerID, row.Customer, row.Address, row.Card, row.Items, row.Total,
			row.DateCreated, row.Status, nullJSON(row.Payment), nullJSON(row.Shipment), row.CorrelationToken, row.Version,
		).
		Suffix(`ON CONFLICT (order_id) DO UPDATE SET
			status = EXCLUDED.status,
			payment = EXCLUDED.payment,
			shipment = EXCLUDED.shipment,
			correlation_token = EXCLUDED.correlation_token,
			version = EXCLUDED.version,
			updated_at = now()
		WHERE orders.version = EXCLUDED.version - 1`).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: order %s at version %d", entities.ErrVersionConflict, o.OrderID, o.Version)
	}
	return nil
}

func (r *postgresRepo) InsertChange(ctx context.Context, c Change) error {
	query, args := r.qb.Insert("order_changes").
		Columns("order_id", "version", "correlation_token", "payload").
		Values(c.OrderID, c.Version, c.CorrelationToken, c.Payload).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order change: %w", err)
	}
	return nil
}

// PendingChanges returns unpublished changes in write order, skipping rows locked by another relay.
func (r *postgresRepo) PendingChanges(ctx context.Context, limit int) ([]Change, error) {
	query, args := r.qb.Select("id", "order_id", "version", "correlation_token", "payload").
		From("order_changes").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("id").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		MustSql()

	var changes []Change
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &changes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select pending changes: %w", err)
	}
	return changes, nil
}

func (r *postgresRepo) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args := r.qb.Update("order_changes").
		Set("published_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark changes published: %w", err)
	}
	return nil
}

func nullJSON(b []byte) any {
	if b == nil {
		return nil
	}
	return b
}
