package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hungryhub/food-order-api/internal/domains/menus/domain"
	"github.com/hungryhub/food-order-api/internal/domains/menus/ports"
	"github.com/hungryhub/food-order-api/internal/shared/id"
	"github.com/hungryhub/food-order-api/internal/shared/money"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists menus in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// menuRecord maps the menu aggregate to a relational table. Option
// groups travel with the aggregate as a JSON document: they are owned
// exclusively by one menu and are never queried on their own.
type menuRecord struct {
	ID           string              `gorm:"primaryKey;column:id;size:64"`
	ShopID       string              `gorm:"column:shop_id;size:64;index"`
	Name         string              `gorm:"column:name"`
	Description  string              `gorm:"column:description"`
	BasePrice    string              `gorm:"column:base_price;type:varchar(32)"`
	Open         bool                `gorm:"column:open"`
	OptionGroups []optionGroupRecord `gorm:"column:option_groups;type:jsonb;serializer:json"`
	CreatedAt    time.Time           `gorm:"column:created_at"`
	UpdatedAt    time.Time           `gorm:"column:updated_at"`
}

func (menuRecord) TableName() string { return "menus" }

type optionGroupRecord struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Required bool           `json:"required"`
	Options  []optionRecord `json:"options"`
}

type optionRecord struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Save inserts or updates a menu.
func (r *Repository) Save(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, errors.New("menu is nil")
	}
	record := toMenuRecord(menu)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"shop_id", "name", "description", "base_price", "open", "option_groups", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return toMenu(&record)
}

// GetByID loads a menu aggregate.
func (r *Repository) GetByID(ctx context.Context, menuID id.MenuID) (*domain.Menu, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record menuRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", menuID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toMenu(&record)
}

// ExistsByID reports whether the menu is persisted.
func (r *Repository) ExistsByID(ctx context.Context, menuID id.MenuID) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&menuRecord{}).Where("id = ?", menuID.String()).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByShop loads all menus belonging to a shop.
func (r *Repository) ListByShop(ctx context.Context, shopID id.ShopID) ([]*domain.Menu, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []menuRecord
	if err := r.db.WithContext(ctx).Where("shop_id = ?", shopID.String()).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	menus := make([]*domain.Menu, 0, len(records))
	for i := range records {
		menu, err := toMenu(&records[i])
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

// Delete removes a menu.
func (r *Repository) Delete(ctx context.Context, menuID id.MenuID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&menuRecord{}, "id = ?", menuID.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres menu repository not configured")
	}
	return nil
}

func toMenuRecord(menu *domain.Menu) menuRecord {
	groups := menu.OptionGroups()
	groupRecords := make([]optionGroupRecord, 0, len(groups))
	for _, g := range groups {
		options := g.Options()
		optionRecords := make([]optionRecord, 0, len(options))
		for _, o := range options {
			optionRecords = append(optionRecords, optionRecord{
				Name:  o.Name(),
				Price: o.Price().Amount().StringFixed(2),
			})
		}
		groupRecords = append(groupRecords, optionGroupRecord{
			ID:       g.ID().String(),
			Name:     g.Name(),
			Required: g.Required(),
			Options:  optionRecords,
		})
	}
	return menuRecord{
		ID:           menu.ID().String(),
		ShopID:       menu.ShopID().String(),
		Name:         menu.Name(),
		Description:  menu.Description(),
		BasePrice:    menu.BasePrice().Amount().StringFixed(2),
		Open:         menu.IsOpen(),
		OptionGroups: groupRecords,
	}
}

func toMenu(record *menuRecord) (*domain.Menu, error) {
	menuID, err := id.MenuIDFrom(record.ID)
	if err != nil {
		return nil, err
	}
	shopID, err := id.ShopIDFrom(record.ShopID)
	if err != nil {
		return nil, err
	}
	basePrice, err := money.Parse(record.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("menu %s base price: %w", record.ID, err)
	}
	groups := make([]*domain.OptionGroup, 0, len(record.OptionGroups))
	for _, g := range record.OptionGroups {
		groupID, err := id.OptionGroupIDFrom(g.ID)
		if err != nil {
			return nil, err
		}
		options := make([]domain.Option, 0, len(g.Options))
		for _, o := range g.Options {
			price, err := money.Parse(o.Price)
			if err != nil {
				return nil, fmt.Errorf("option %q price: %w", o.Name, err)
			}
			option, err := domain.NewOption(o.Name, price)
			if err != nil {
				return nil, err
			}
			options = append(options, option)
		}
		groups = append(groups, domain.RestoreOptionGroup(groupID, g.Name, g.Required, options))
	}
	return domain.RestoreMenu(menuID, shopID, record.Name, record.Description, basePrice, record.Open, groups), nil
}
