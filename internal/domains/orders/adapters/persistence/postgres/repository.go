package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hungryhub/food-order-api/internal/domains/orders/domain"
	"github.com/hungryhub/food-order-api/internal/domains/orders/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. Orders are
// immutable snapshots: Save is insert-only and lines are never updated.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type orderRecord struct {
	ID         string    `gorm:"primaryKey;column:id;size:64"`
	UserID     string    `gorm:"column:user_id;size:64;index"`
	ShopID     string    `gorm:"column:shop_id;size:64;index"`
	OrderTime  time.Time `gorm:"column:order_time"`
	TotalPrice string    `gorm:"column:total_price;type:varchar(32)"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderLineRecord struct {
	ID        int64                  `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID   string                 `gorm:"column:order_id;size:64;index"`
	MenuID    string                 `gorm:"column:menu_id;size:64"`
	MenuName  string                 `gorm:"column:menu_name"`
	Options   []optionSnapshotRecord `gorm:"column:options;type:jsonb;serializer:json"`
	Quantity  int                    `gorm:"column:quantity"`
	LinePrice string                 `gorm:"column:line_price;type:varchar(32)"`
	Position  int                    `gorm:"column:position"`
}

func (orderLineRecord) TableName() string { return "order_line_items" }

type optionSnapshotRecord struct {
	OptionID string `json:"option_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
}

// Save inserts an order with its lines.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record, lines := toRecords(order)
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	}); err != nil {
		return nil, err
	}
	return toOrder(&record, lines)
}

// GetByID loads an order aggregate.
func (r *Repository) GetByID(ctx context.Context, orderID id.OrderID) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", orderID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var lines []orderLineRecord
	if err := r.db.WithContext(ctx).Where("order_id = ?", record.ID).Order("position").Find(&lines).Error; err != nil {
		return nil, err
	}
	return toOrder(&record, lines)
}

// ListByUserID loads the user's orders, oldest first.
func (r *Repository) ListByUserID(ctx context.Context, userID id.UserID) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID.String()).Order("order_time").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		var lines []orderLineRecord
		if err := r.db.WithContext(ctx).Where("order_id = ?", records[i].ID).Order("position").Find(&lines).Error; err != nil {
			return nil, err
		}
		order, err := toOrder(&records[i], lines)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ExistsByID reports whether the order is persisted.
func (r *Repository) ExistsByID(ctx context.Context, orderID id.OrderID) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", orderID.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes an order and its lines.
func (r *Repository) Delete(ctx context.Context, orderID id.OrderID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&orderLineRecord{}, "order_id = ?", orderID.String()).Error; err != nil {
			return err
		}
		result := tx.Delete(&orderRecord{}, "id = ?", orderID.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecords(order *domain.Order) (orderRecord, []orderLineRecord) {
	record := orderRecord{
		ID:         order.ID().String(),
		UserID:     order.UserID().String(),
		ShopID:     order.ShopID().String(),
		OrderTime:  order.OrderTime(),
		TotalPrice: order.TotalPrice().Amount().StringFixed(2),
	}
	items := order.LineItems()
	lines := make([]orderLineRecord, 0, len(items))
	for i, item := range items {
		options := item.Options()
		snapshots := make([]optionSnapshotRecord, 0, len(options))
		for _, opt := range options {
			snapshots = append(snapshots, optionSnapshotRecord{
				OptionID: opt.OptionID.String(),
				Name:     opt.Name,
				Price:    opt.Price.Amount().StringFixed(2),
			})
		}
		lines = append(lines, orderLineRecord{
			OrderID:   record.ID,
			MenuID:    item.MenuID().String(),
			MenuName:  item.MenuName(),
			Options:   snapshots,
			Quantity:  item.Quantity(),
			LinePrice: item.LinePrice().Amount().StringFixed(2),
			Position:  i,
		})
	}
	return record, lines
}

func toOrder(record *orderRecord, lines []orderLineRecord) (*domain.Order, error) {
	orderID, err := id.OrderIDFrom(record.ID)
	if err != nil {
		return nil, err
	}
	userID, err := id.UserIDFrom(record.UserID)
	if err != nil {
		return nil, err
	}
	shopID, err := id.ShopIDFrom(record.ShopID)
	if err != nil {
		return nil, err
	}
	totalPrice, err := money.Parse(record.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("order %s total price: %w", record.ID, err)
	}

	items := make([]domain.LineItem, 0, len(lines))
	for _, line := range lines {
		menuID, err := id.MenuIDFrom(line.MenuID)
		if err != nil {
			return nil, err
		}
		linePrice, err := money.Parse(line.LinePrice)
		if err != nil {
			return nil, fmt.Errorf("order line %d price: %w", line.ID, err)
		}
		snapshots := make([]domain.OptionSnapshot, 0, len(line.Options))
		for _, opt := range line.Options {
			optID, err := id.OptionIDFrom(opt.OptionID)
			if err != nil {
				return nil, err
			}
			price, err := money.Parse(opt.Price)
			if err != nil {
				return nil, fmt.Errorf("option snapshot %q price: %w", opt.Name, err)
			}
			snapshots = append(snapshots, domain.OptionSnapshot{OptionID: optID, Name: opt.Name, Price: price})
		}
		items = append(items, domain.RestoreLineItem(menuID, line.MenuName, snapshots, line.Quantity, linePrice))
	}
	return domain.RestoreOrder(orderID, userID, shopID, items, record.OrderTime, totalPrice), nil
}
