package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&menuRecord{},
		&cartRecord{},
		&cartLineRecord{},
		&orderRecord{},
		&orderLineRecord{},
	)
}

// Menu schema mirrors the menus Postgres adapter. Option groups are
// stored as a JSON document on the menu row.
type menuRecord struct {
	ID           string    `gorm:"primaryKey;column:id;size:64"`
	ShopID       string    `gorm:"column:shop_id;size:64;index"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description"`
	BasePrice    string    `gorm:"column:base_price;type:varchar(32)"`
	Open         bool      `gorm:"column:open"`
	OptionGroups string    `gorm:"column:option_groups;type:jsonb"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (menuRecord) TableName() string { return "menus" }

// Cart schema mirrors the carts Postgres adapter. The unique index on
// user_id enforces at most one cart per user.
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

// Order schema mirrors the orders Postgres adapter. Rows are
// insert-only; placed orders never change.
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
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	OrderID   string    `gorm:"column:order_id;size:64;index"`
	MenuID    string    `gorm:"column:menu_id;size:64"`
	MenuName  string    `gorm:"column:menu_name"`
	Options   string    `gorm:"column:options;type:jsonb"`
	Quantity  int       `gorm:"column:quantity"`
	LinePrice string    `gorm:"column:line_price;type:varchar(32)"`
	Position  int       `gorm:"column:position"`
}

func (orderLineRecord) TableName() string { return "order_line_items" }
