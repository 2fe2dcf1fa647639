package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRow struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Reference     string `gorm:"index"`
	CustomerName  string `gorm:"not null"`
	CustomerEmail string
	TotalAmount   decimal.Decimal `gorm:"type:text;not null"`
	Status        string          `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
	Items         []itemRow  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderRow) TableName() string { return "orders" }

type itemRow struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index;not null"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:text;not null"`
}

func (itemRow) TableName() string { return "order_items" }

// GormRepo stores orders through gorm; the default deployment uses the
// embedded sqlite driver.
type GormRepo struct{ db *gorm.DB }

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db} }

func (r *GormRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&orderRow{}, &itemRow{})
}

func (r *GormRepo) Create(ctx context.Context, o *Order) error {
	row := orderRow{
		Reference:     o.Reference,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, it := range o.Items {
		row.Items = append(row.Items, itemRow{
			ProductName: it.ProductName, Quantity: it.Quantity, UnitPrice: it.UnitPrice,
		})
	}
	// orders and items are written in one transaction
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	o.ID = row.ID
	for i := range o.Items {
		o.Items[i].ID = row.Items[i].ID
		o.Items[i].OrderID = row.ID
	}
	return nil
}

func (r *GormRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	var row orderRow
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	o := &Order{
		ID:            row.ID,
		Reference:     row.Reference,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		TotalAmount:   row.TotalAmount,
		Status:        Status(row.Status),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	for _, it := range row.Items {
		o.Items = append(o.Items, Item{
			ID: it.ID, OrderID: it.OrderID, ProductName: it.ProductName, Quantity: it.Quantity, UnitPrice: it.UnitPrice,
		})
	}
	return o, nil
}
