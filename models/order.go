package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID                    uint        `json:"id" gorm:"primaryKey"`
	CustomerID            uint        `json:"customer_id" gorm:"not null;index"`
	Customer              User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID          uint        `json:"restaurant_id" gorm:"not null;index"`
	Restaurant            Restaurant  `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	TotalAmount           float64     `json:"total_amount" gorm:"not null"`
	Status                OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	DeliveryAddress       string      `json:"delivery_address" gorm:"not null"`
	DeliveryInstructions  string      `json:"delivery_instructions"`
	EstimatedDeliveryTime *time.Time  `json:"estimated_delivery_time"`
	Items                 []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// OrderItem is an immutable snapshot taken at order-creation time;
// later menu price edits never touch it.
type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"`
	Notes      string   `json:"notes"`
}
