package models

import "gorm.io/gorm"

// Supplier identifies where a price record was sourced from. Supplier
// management lives in the surrounding application; the ledger only keeps
// the reference.
type Supplier struct {
	gorm.Model
	Name   string `gorm:"not null;uniqueIndex" json:"name"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}
