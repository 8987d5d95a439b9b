package models

import "time"

const ChemicalTable = "chem_chemicals"

// Chemical is one master-list row. The list is replaced wholesale by a
// spreadsheet upload and mutated incrementally by issuance.
// Remaining and Issued are complementary: remaining + issued == total.
type Chemical struct {
	SerialNo  int       `gorm:"not null;default:0" json:"serialNo"`
	Name      string    `gorm:"primaryKey;size:200" json:"name"`
	Total     float64   `gorm:"not null;default:0" json:"total"`
	Remaining float64   `gorm:"not null;default:0" json:"remaining"`
	Issued    float64   `gorm:"not null;default:0" json:"issued"`
	Unit      string    `gorm:"size:40" json:"unit"`
	CASNo     string    `gorm:"column:cas_no;size:40" json:"casNo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Chemical) TableName() string { return ChemicalTable }
