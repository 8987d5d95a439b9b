package models

import "time"

const NotificationTable = "chem_notifications"

// Role-channel inboxes. Lifecycle events for nobody in particular go to these
// recipients; supervisors and lab staff read their channel alongside their own.
const (
	ChannelSupervisor = "supervisor"
	ChannelLab        = "lab"
)

// Notification is an informational message queued for a recipient. Mutated
// only to flip the seen flag.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Recipient string    `gorm:"size:255;index;not null" json:"recipient"`
	Message   string    `gorm:"size:500;not null" json:"message"`
	Seen      bool      `gorm:"not null;default:false" json:"seen"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string { return NotificationTable }
