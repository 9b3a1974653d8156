package migration

import (
	"Pantry-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.PantryItem{},
		&entities.BarcodeProduct{},
		&entities.UserExpiryOverride{},
		&entities.WeightReading{},
		&entities.NotificationLog{},
		&entities.UserStreak{},
		&entities.UserAchievement{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
