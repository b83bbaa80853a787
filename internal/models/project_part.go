package models

import (
	"time"

	"gorm.io/datatypes"
)

type PartStatus string

const (
	PartStatusPending    PartStatus = "pending"
	PartStatusInProgress PartStatus = "in_progress"
	PartStatusDone       PartStatus = "done"
	PartStatusReturned   PartStatus = "returned"
)

// PartStatuses lists the recognised statuses in display order.
var PartStatuses = []PartStatus{
	PartStatusPending,
	PartStatusInProgress,
	PartStatusDone,
	PartStatusReturned,
}

// Valid reports whether s is one of the recognised statuses.
func (s PartStatus) Valid() bool {
	for _, known := range PartStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human readable name of the status.
func (s PartStatus) Label() string {
	switch s {
	case PartStatusPending:
		return "Pending"
	case PartStatusInProgress:
		return "In progress"
	case PartStatusDone:
		return "Done"
	case PartStatusReturned:
		return "Returned for revision"
	default:
		return string(s)
	}
}

// ProjectPart is the only entity with mutable workflow state.
type ProjectPart struct {
	ID           uint64          `gorm:"primarykey" json:"id"`
	SectionID    uint64          `gorm:"not null;index" json:"section_id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	OrderIndex   int             `gorm:"not null;default:0" json:"order_index"`
	StartDate    *datatypes.Date `json:"start_date"`
	EndDate      *datatypes.Date `json:"end_date"`
	Status       PartStatus      `gorm:"type:varchar(32);not null;default:'pending'" json:"status"`
	AssigneeName *string         `gorm:"type:varchar(255)" json:"assignee_name"`
	AlbumLink    *string         `gorm:"type:varchar(1024)" json:"album_link"`
	CreatedAt    time.Time       `json:"created_at"`

	// Relations
	Section *ProjectSection `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsOverdue reports whether the part has an end date strictly before today's
// calendar date and is not done.
func (p *ProjectPart) IsOverdue(now time.Time) bool {
	if p.EndDate == nil || p.Status == PartStatusDone {
		return false
	}
	end := time.Time(*p.EndDate)
	return civilDate(end).Before(civilDate(now))
}

// civilDate drops the clock and zone, keeping the calendar date as read.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
