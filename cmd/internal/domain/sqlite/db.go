package sqlite

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mydoc/cmd/internal/domain/entity"
)

func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Hospital{},
		&entity.Doctor{},
		&entity.Review{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.Bill{},
		&entity.Medication{},
		&entity.Payment{},
		&entity.Prescription{},
		&entity.MedicationDosage{},
		&entity.History{},
		&entity.MedicationDosageHistory{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
