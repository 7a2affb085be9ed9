package models

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the sqlite store and migrates the schema. Foreign
// keys must be on for ownership cascades to fire.
func ConnectDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&Project{},
		&Drillhole{},
		&Sample{},
		&Deviation{},
		&Lithology{},
		&LithologyInterval{},
		&Image{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
