package config

import (
	"log"

	"agromate_be/models"
)

// RunAllSeeding inserts the fixture rows used for manual testing. It skips
// itself when a farmer already exists so repeated runs stay harmless.
func RunAllSeeding() error {
	log.Println("=== Starting Database Seeding ===")

	var count int64
	if err := DB.Model(&models.Farmer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed data already present, skipping")
		return nil
	}

	qty := 100.0
	o2rQty := 1022.0
	o2rPrice := "1313"

	farmer := models.Farmer{
		Name:     "123",
		Area:     "0",
		PhNumber: "119",
		Password: "123",
		Status:   "harvest",
	}
	officer := models.AgriOfficer{
		Name:     "123",
		PhNumber: "123",
		Password: "123",
	}
	reseller := models.Reseller{
		Name:           "123",
		PhNumber:       "119",
		Password:       "123",
		EconomicCentre: "dabulla",
	}

	if err := DB.Create(&officer).Error; err != nil {
		return err
	}
	if err := DB.Create(&farmer).Error; err != nil {
		return err
	}
	if err := DB.Create(&reseller).Error; err != nil {
		return err
	}
	if err := DB.Create(&models.O2FProduction{Quantity: &qty, FarmerID: farmer.ID}).Error; err != nil {
		return err
	}
	if err := DB.Create(&models.O2RResellDetail{Quantity: &o2rQty, Price: &o2rPrice, ResellerID: reseller.ID}).Error; err != nil {
		return err
	}

	log.Println("=== Database Seeding Complete ===")
	return nil
}
