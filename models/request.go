package models

import (
	"fmt"
	"time"
)

const RequestTable = "chem_requests"

// Status is the closed set of request lifecycle states.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusIssued   Status = "Issued"
)

// transitions is the full lifecycle: Rejected and Issued are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusIssued},
}

// CanTransition reports whether the pair appears in the transition table.
func (s Status) CanTransition(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// ParseStatus rejects anything outside the four known states.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusIssued:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Request tracks one user's ask for a quantity of a chemical. The chemical is
// free text: it may name something not (yet) in the master list. Rows are
// never deleted; only SetStatus mutates them.
type Request struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:255;index;not null" json:"username"`
	Chemical    string    `gorm:"size:200;not null" json:"chemical"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Note        string    `gorm:"size:255" json:"note,omitempty"`
	Status      Status    `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	Supervisor  *string   `gorm:"size:255" json:"supervisor,omitempty"`
	LabIncharge *string   `gorm:"size:255" json:"labIncharge,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Request) TableName() string { return RequestTable }
