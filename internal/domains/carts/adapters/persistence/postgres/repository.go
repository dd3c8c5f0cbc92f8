package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/hungryhub/food-order-api/internal/domains/carts/domain"
	"github.com/hungryhub/food-order-api/internal/domains/carts/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists carts in PostgreSQL using GORM. Line items live
// in their own table and are replaced wholesale on every save; the cart
// row carries the optimistic version stamp.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type cartRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	UserID    string    `gorm:"column:user_id;size:64;uniqueIndex"`
	ShopID    string    `gorm:"column:shop_id;size:64"`
	Version   int64     `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (cartRecord) TableName() string { return "carts" }

type cartLineRecord struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	CartID    string         `gorm:"column:cart_id;size:64;index"`
	MenuID    string         `gorm:"column:menu_id;size:64"`
	OptionIDs pq.StringArray `gorm:"column:option_ids;type:text[]"`
	Quantity  int            `gorm:"column:quantity"`
	Position  int            `gorm:"column:position"`
}

func (cartLineRecord) TableName() string { return "cart_line_items" }

// Save inserts a new cart or updates an existing one under the version
// check. A stale version yields ports.ErrVersionConflict.
func (r *Repository) Save(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, errors.New("cart is nil")
	}

	nextVersion := cart.Version() + 1
	record := cartRecord{
		ID:      cart.ID().String(),
		UserID:  cart.UserID().String(),
		ShopID:  cart.ShopID().String(),
		Version: nextVersion,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cart.Version() == 0 {
			if err := tx.Create(&record).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ports.ErrVersionConflict
				}
				return err
			}
		} else {
			result := tx.Model(&cartRecord{}).
				Where("id = ? AND version = ?", record.ID, cart.Version()).
				Updates(map[string]any{
					"shop_id":    record.ShopID,
					"version":    nextVersion,
					"updated_at": time.Now(),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ports.ErrVersionConflict
			}
		}

		if err := tx.Delete(&cartLineRecord{}, "cart_id = ?", record.ID).Error; err != nil {
			return err
		}
		lines := toLineRecords(cart)
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		return nil, err
	}
	return restoreCart(&record, toLineRecords(cart))
}

// GetByID loads a cart aggregate.
func (r *Repository) GetByID(ctx context.Context, cartID id.CartID) (*domain.Cart, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cartRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", cartID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithLines(ctx, &record)
}

// FindByUserID loads the user's single active cart.
func (r *Repository) FindByUserID(ctx context.Context, userID id.UserID) (*domain.Cart, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cartRecord
	if err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return r.loadWithLines(ctx, &record)
}

// ExistsByID reports whether the cart is persisted.
func (r *Repository) ExistsByID(ctx context.Context, cartID id.CartID) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&cartRecord{}).Where("id = ?", cartID.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a cart and its lines.
func (r *Repository) Delete(ctx context.Context, cartID id.CartID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&cartLineRecord{}, "cart_id = ?", cartID.String()).Error; err != nil {
			return err
		}
		result := tx.Delete(&cartRecord{}, "id = ?", cartID.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) loadWithLines(ctx context.Context, record *cartRecord) (*domain.Cart, error) {
	var lines []cartLineRecord
	if err := r.db.WithContext(ctx).Where("cart_id = ?", record.ID).Order("position").Find(&lines).Error; err != nil {
		return nil, err
	}
	return restoreCart(record, lines)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres cart repository not configured")
	}
	return nil
}

func toLineRecords(cart *domain.Cart) []cartLineRecord {
	items := cart.LineItems()
	records := make([]cartLineRecord, 0, len(items))
	for i, item := range items {
		optionIDs := item.OptionIDs()
		raw := make(pq.StringArray, 0, len(optionIDs))
		for _, optID := range optionIDs {
			raw = append(raw, optID.String())
		}
		records = append(records, cartLineRecord{
			CartID:    cart.ID().String(),
			MenuID:    item.MenuID().String(),
			OptionIDs: raw,
			Quantity:  item.Quantity(),
			Position:  i,
		})
	}
	return records
}

func restoreCart(record *cartRecord, lines []cartLineRecord) (*domain.Cart, error) {
	cartID, err := id.CartIDFrom(record.ID)
	if err != nil {
		return nil, err
	}
	userID, err := id.UserIDFrom(record.UserID)
	if err != nil {
		return nil, err
	}
	var shopID id.ShopID
	if record.ShopID != "" {
		shopID, err = id.ShopIDFrom(record.ShopID)
		if err != nil {
			return nil, err
		}
	}

	items := make([]domain.LineItem, 0, len(lines))
	for _, line := range lines {
		menuID, err := id.MenuIDFrom(line.MenuID)
		if err != nil {
			return nil, err
		}
		optionIDs := make([]id.OptionID, 0, len(line.OptionIDs))
		for _, raw := range line.OptionIDs {
			optID, err := id.OptionIDFrom(raw)
			if err != nil {
				return nil, err
			}
			optionIDs = append(optionIDs, optID)
		}
		item, err := domain.NewLineItem(menuID, optionIDs, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.RestoreCart(cartID, userID, shopID, items, record.Version), nil
}
