// models/reseller.go
package models

// Reseller buys produce at an economic centre and records resale figures.
type Reseller struct {
	ID             uint           `gorm:"primaryKey"`
	Name           string         `gorm:"size:80;not null"`
	PhNumber       string         `gorm:"size:80;not null"`
	Password       string         `gorm:"size:120;not null"`
	EconomicCentre string         `gorm:"size:100;not null"`
	ResellDetails  []ResellDetail `gorm:"foreignKey:ResellerID"`
}

func (Reseller) TableName() string { return "reseller" }
