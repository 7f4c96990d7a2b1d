package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierBalanceQueryHandler computes a courier's earnings from completed
// orders with a single aggregate query.
type GetCourierBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierBalanceQueryHandler creates a handler for balance queries.
// Requires a GORM database connection for query execution.
func NewGetCourierBalanceQueryHandler(db *gorm.DB) GetCourierBalanceQueryHandler {
	return GetCourierBalanceQueryHandler{db: db}
}

// Handle executes the query. Only orders in completed status count toward
// the balance.
func (h GetCourierBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetCourierBalanceQuery,
) (GetCourierBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	var response GetCourierBalanceQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(o.id),
			COALESCE(SUM(o.price), 0)
		FROM orders o
		JOIN couriers c ON c.id = o.courier_id
		WHERE c.chat_id = ? AND o.status = ?
	`, query.ChatID(), "completed").Row()

	if err := row.Scan(&response.CompletedOrders, &response.TotalEarned); err != nil {
		return GetCourierBalanceQueryResponse{}, err
	}

	return response, nil
}
