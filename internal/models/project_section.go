package models

import "time"

type ProjectSection struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	ObjectID   uint64    `gorm:"not null;index" json:"object_id"`
	Code       string    `gorm:"type:varchar(16);not null" json:"code"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations, declared for the foreign key only; repositories never preload it
	Object *ProjectObject `gorm:"foreignKey:ObjectID;constraint:OnDelete:CASCADE" json:"-"`
}
