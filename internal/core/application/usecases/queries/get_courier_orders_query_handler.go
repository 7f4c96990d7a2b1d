package queries

import (
	"context"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler reads a courier's recent orders from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order lists.
// Requires a GORM database connection for query execution.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns up to the query's limit of orders
// assigned to the courier, newest first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]GetCourierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCourierOrdersQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.street,
			o.entrance,
			o.status,
			o.price,
			o.created_at
		FROM orders o
		JOIN couriers c ON c.id = o.courier_id
		WHERE c.chat_id = ?
		ORDER BY o.created_at DESC
		LIMIT ?
	`, query.ChatID(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetCourierOrdersQueryResponse
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&row.Street,
			&row.Entrance,
			&status,
			&row.Price,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		row.Status = order.Status(status)
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
