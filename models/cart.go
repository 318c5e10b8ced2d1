package models

import "time"

// CartItem belongs to one user and references one menu item. Items from
// different restaurants may coexist in a cart; the single-restaurant rule is
// enforced at order placement, not here.
type CartItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	MenuItemID   uint       `json:"menu_item_id" gorm:"not null"`
	MenuItem     MenuItem   `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity     int        `json:"quantity" gorm:"not null;default:1"`
	CreatedAt    time.Time  `json:"created_at"`
}
