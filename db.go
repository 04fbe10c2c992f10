package main

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func openDB(dbname string) (*gorm.DB, error) {
	connStr := strings.Join([]string{"dbname", dbname}, "=")

	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		log.WithError(err).WithField("connStr", connStr).Error("failed to connect database")
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Game{}, &Play{}); err != nil {
		return nil, err
	}
	return database, nil
}

// Close close.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	e := err
	for errors.Unwrap(e) != nil {
		e = errors.Unwrap(e)
	}
	if e.Error() == "sql: database is closed" {
		time.Sleep(1 * time.Second)
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
}
