package database

import (
	"gorm.io/gorm"
)

// InOrder sorts by order_index, falling back to id for equal positions.
func InOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC").Order("id ASC")
}

// ByID sorts by primary key.
func ByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
