package models

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Daskott/dogcare/server/logger"
	"github.com/Daskott/dogcare/utils"
	sqliteEncrypt "github.com/Daskott/gorm-sqlite-cipher"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const DB_NAME = "dogcare.db"

var logg = logger.NewLogger()
var db *gorm.DB

// AutoMigrate opens the db & auto-migrates its schema
func AutoMigrate(passPhrase string, dbRootDir string) error {
	dbFilePath, err := DbFilePath(dbRootDir)
	if err != nil {
		return fmt.Errorf("failed to set sqlite DSN: %v", err)
	}

	err = openDB(fmt.Sprintf(
		"file:%v?_pragma_key=%s&_pragma_cipher_page_size=4096&_journal_mode=WAL&_foreign_keys=1",
		dbFilePath,
		passPhrase,
	))
	if err != nil {
		return err
	}

	return migrate()
}

// InitializeTestDb replaces the current db with a fresh in-memory one
func InitializeTestDb() {
	err := openDB("file::memory:?_foreign_keys=1")
	if err != nil {
		logg.Panic(err)
	}

	// Every connection to ':memory:' is a different db, so keep just one.
	sqlDB, err := db.DB()
	if err != nil {
		logg.Panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = migrate(); err != nil {
		logg.Panic(err)
	}
}

// Checkpoint flushes the WAL into the main db file, so the file can be copied
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error
}

// DbFilePath returns the path to the sqlite file in 'dbRootDir', creating its folder if needed
func DbFilePath(dbRootDir string) (string, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(dbDir, DB_NAME), nil
}

func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.CreateDirIfNotExist(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func openDB(dsn string) error {
	var err error

	db, err = gorm.Open(sqliteEncrypt.Open(dsn), &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				LogLevel:                  gormLogger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %v", err)
	}

	return db.Exec("PRAGMA foreign_keys = ON").Error
}

func migrate() error {
	return db.AutoMigrate(&Owner{}, &Dog{}, &BoardingIntake{})
}
