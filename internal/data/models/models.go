package models

import (
	"time"
)

// Row models for the relational shape. Domain entities never carry gorm
// tags; the repositories translate between rows and entities explicitly.

type Customer struct {
	ID           string `gorm:"primaryKey;column:id"`
	Name         string `gorm:"not null;column:name"`
	Active       bool   `gorm:"not null;column:active"`
	RewardPoints int    `gorm:"not null;column:reward_points"`
	Street       string `gorm:"column:street"`
	Number       int    `gorm:"column:number"`
	Zipcode      string `gorm:"column:zipcode"`
	City         string `gorm:"column:city"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Customer) TableName() string { return "customers" }

type Product struct {
	ID    string  `gorm:"primaryKey;column:id"`
	Name  string  `gorm:"not null;column:name"`
	Price float64 `gorm:"not null;column:price"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Product) TableName() string { return "products" }

type Order struct {
	ID         string  `gorm:"primaryKey;column:id"`
	CustomerID string  `gorm:"not null;index;column:customer_id"`
	Total      float64 `gorm:"not null;column:total"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Order) TableName() string { return "orders" }

// OrderItem rows are owned by their order; every write path replaces the
// full set for an order id. Position keeps the in-memory item sequence
// stable across reloads.
type OrderItem struct {
	ID        string  `gorm:"primaryKey;column:id"`
	OrderID   string  `gorm:"not null;index;column:order_id"`
	ProductID string  `gorm:"not null;column:product_id"`
	Name      string  `gorm:"not null;column:name"`
	Price     float64 `gorm:"not null;column:price"`
	Quantity  int     `gorm:"not null;column:quantity"`
	Position  int     `gorm:"not null;column:position"`
}

func (OrderItem) TableName() string { return "order_items" }
