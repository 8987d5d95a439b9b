package models

import "time"

const IssuanceTable = "chem_issuances"

// Issuance is the append-only dispense log: exactly one row per successful
// Issued transition. Never updated or deleted.
type Issuance struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"size:255;index;not null" json:"username"`
	Chemical string    `gorm:"size:200;not null" json:"chemical"`
	Amount   float64   `gorm:"not null" json:"amount"`
	IssuedBy string    `gorm:"size:255" json:"issuedBy"`
	IssuedAt time.Time `gorm:"index;not null" json:"issuedAt"`
}

func (Issuance) TableName() string { return IssuanceTable }
