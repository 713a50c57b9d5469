// models/pending.go
package models

// O2FProduction buffers an officer-submitted production figure for a farmer
// until it is reconciled into the farmer's ledger. Reconciliation happens
// outside this service; rows only accumulate here.
type O2FProduction struct {
	ID       uint `gorm:"primaryKey"`
	Quantity *float64
	FarmerID uint `gorm:"not null"`
}

func (O2FProduction) TableName() string { return "o2fproduction" }

// O2RResellDetail buffers an officer-submitted resale figure for a reseller.
type O2RResellDetail struct {
	ID         uint `gorm:"primaryKey"`
	Quantity   *float64
	Price      *string
	ResellerID uint `gorm:"not null"`
}

func (O2RResellDetail) TableName() string { return "o2rreselldetail" }
