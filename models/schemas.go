// models/schemas.go
package models

// Transport projections. Each entity is dumped through a fixed field
// subset; passwords and phone numbers never leave the store this way.

type ProductionSchema struct {
	ID       uint      `json:"id"`
	Date     *DateOnly `json:"date"`
	Quantity *float64  `json:"quantity"`
}

type ResellDetailSchema struct {
	ID       uint      `json:"id"`
	Date     *DateOnly `json:"date"`
	Quantity *float64  `json:"quantity"`
	Price    *string   `json:"price"`
}

type FarmerSchema struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Area   string `json:"area"`
	Status string `json:"status"`
}

// FarmerListEntry is the /farmers listing shape: the farmer projection plus
// its most recent production, or null when the ledger is empty.
type FarmerListEntry struct {
	FarmerSchema
	LastProduction *ProductionSchema `json:"last_production"`
}

func DumpProduction(p Production) ProductionSchema {
	return ProductionSchema{ID: p.ID, Date: p.Date, Quantity: p.Quantity}
}

func DumpProductions(ps []Production) []ProductionSchema {
	out := make([]ProductionSchema, 0, len(ps))
	for _, p := range ps {
		out = append(out, DumpProduction(p))
	}
	return out
}

func DumpResellDetail(rd ResellDetail) ResellDetailSchema {
	return ResellDetailSchema{ID: rd.ID, Date: rd.Date, Quantity: rd.Quantity, Price: rd.Price}
}

func DumpResellDetails(rds []ResellDetail) []ResellDetailSchema {
	out := make([]ResellDetailSchema, 0, len(rds))
	for _, rd := range rds {
		out = append(out, DumpResellDetail(rd))
	}
	return out
}

func DumpFarmer(f Farmer) FarmerSchema {
	return FarmerSchema{ID: f.ID, Name: f.Name, Area: f.Area, Status: f.Status}
}
