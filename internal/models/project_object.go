package models

import "time"

// ProjectObject is a top-level unit of the project (a building, the situational
// plan, the garage). Rows are created by the seeder only.
type ProjectObject struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Code      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"code"`
	ShortName string    `gorm:"type:varchar(64);not null" json:"short_name"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
