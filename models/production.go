// models/production.go
package models

// Production is one harvest-weight entry in a farmer's ledger.
type Production struct {
	ID       uint      `gorm:"primaryKey"`
	Date     *DateOnly `gorm:"type:date"`
	Quantity *float64
	FarmerID uint `gorm:"not null"`
}

// ResellDetail is one resale entry in a reseller's ledger. Price is kept as
// text, matching how resellers report it (ranges like "120-130" occur).
type ResellDetail struct {
	ID         uint      `gorm:"primaryKey"`
	Date       *DateOnly `gorm:"type:date"`
	Quantity   *float64
	Price      *string
	ResellerID uint `gorm:"not null"`
}
