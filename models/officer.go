// models/officer.go
package models

import "time"

// AgriOfficer is a field officer who records figures on behalf of farmers
// and resellers. Officers own no ledger rows themselves; their submissions
// land in the pending buffers (O2FProduction, O2RResellDetail).
type AgriOfficer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:80;not null"`
	Password  string `gorm:"size:120;not null"`
	PhNumber  string `gorm:"size:80;not null"`
	CreatedAt time.Time
}

func (AgriOfficer) TableName() string { return "agriofficer" }
