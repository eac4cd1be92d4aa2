package database

import (
	"embed"

	"Atrium/config"
	"Atrium/pkg/log"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrations embed.FS

// NewDB opens the MySQL connection and applies pending migrations.
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		log.L.Fatal("failed to set goose dialect", zap.Error(err))
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		log.L.Fatal("failed to run migrations", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}
