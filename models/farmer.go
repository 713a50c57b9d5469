// models/farmer.go
package models

import "time"

// Farmer is a registered grower. Status is a free-text lifecycle label
// ("harvest", "sold", ...) assigned by the farmer or an officer; no
// transition rules are enforced.
type Farmer struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:80;not null"`
	Area        string `gorm:"size:120;not null"`
	PhNumber    string `gorm:"size:80;not null"`
	Password    string `gorm:"size:120;not null"`
	Status      string `gorm:"size:120;not null"`
	CreatedAt   time.Time
	Productions []Production `gorm:"foreignKey:FarmerID"`
}

func (Farmer) TableName() string { return "farmer" }
