package shipping

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

type shipmentRow struct {
	OrderID        string    `db:"order_id"`
	Carrier        string    `db:"carrier"`
	TrackingNumber string    `db:"tracking_number"`
	DeliveryDate   time.Time `db:"delivery_date"`
}

func (r shipmentRow) entity() entities.ShipmentRecord {
	return entities.ShipmentRecord{
		OrderID: r.OrderID,
		Shipment: entities.Shipment{
			Carrier:        r.Carrier,
			TrackingNumber: r.TrackingNumber,
			DeliveryDate:   r.DeliveryDate.UTC(),
		},
	}
}

var shipmentColumns = []string{"order_id", "carrier", "tracking_number", "delivery_date"}

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

func (r *postgresRepo) GetShipment(ctx context.Context, orderID string) (entities.ShipmentRecord, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var row shipmentRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ShipmentRecord{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.ShipmentRecord{}, fmt.Errorf("failed to get shipment: %w", err)
	}
	return row.entity(), nil
}

func (r *postgresRepo) SaveShipment(ctx context.Context, s entities.ShipmentRecord) (entities.ShipmentRecord, error) {
	query, args := r.qb.Insert("shipments").
		Columns(shipmentColumns...).
		Values(s.OrderID, s.Carrier, s.TrackingNumber, s.DeliveryDate).
		Suffix("ON CONFLICT (order_id) DO UPDATE SET order_id = EXCLUDED.order_id RETURNING order_id, carrier, tracking_number, delivery_date").
		MustSql()

	var row shipmentRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return entities.ShipmentRecord{}, fmt.Errorf("failed to save shipment: %w", err)
	}
	return row.entity(), nil
}
