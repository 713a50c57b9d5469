package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"agromate_be/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "01032024_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Farmer{}, &models.AgriOfficer{}, &models.Reseller{},
					&models.Production{}, &models.ResellDetail{},
					&models.O2FProduction{}, &models.O2RResellDetail{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&models.O2RResellDetail{}, &models.O2FProduction{},
					&models.ResellDetail{}, &models.Production{},
					&models.Reseller{}, &models.AgriOfficer{}, &models.Farmer{})
			},
		},
	})
	return m.Migrate()
}

// DropAll removes every table, children before parents. Used by the db:drop
// maintenance command only.
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.O2RResellDetail{}, &models.O2FProduction{},
		&models.ResellDetail{}, &models.Production{},
		&models.Reseller{}, &models.AgriOfficer{}, &models.Farmer{})
}
