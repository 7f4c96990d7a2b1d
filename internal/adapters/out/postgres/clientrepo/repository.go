package clientrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/client"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client to the database.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing client to the database. Saved addresses are
// replaced wholesale; they are append-only data the aggregate never edits
// in place.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).
		Where("client_id = ?", dto.ID).
		Delete(&AddressDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a client by ID.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	orderIDs, err := r.orderIDs(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, orderIDs)
}

// GetByChatID retrieves the client registered under the external user ID.
func (r *GormClientRepository) GetByChatID(ctx context.Context, chatID int64) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).Preload("Addresses").First(&dto, "chat_id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", chatID)
		}
		return nil, err
	}

	orderIDs, err := r.orderIDs(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, orderIDs)
}

// orderIDs loads the client's order history from the orders table,
// oldest first.
func (r *GormClientRepository) orderIDs(ctx context.Context, clientID uuid.UUID) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Table("orders").
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Pluck("id", &rawIDs).Error; err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		orderID, err := kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, orderID)
	}

	return orderIDs, nil
}
