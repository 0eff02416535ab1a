package storage

import (
	"fmt"
	"log/slog"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/placelists/placelists/pkg/config"
	"github.com/placelists/placelists/pkg/model"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase connects to PostgreSQL and migrates the schema. Queries are traced if tracing is
// enabled.
func NewDatabase(logger *slog.Logger, c config.Postgresql, tracing bool) (*gorm.DB, error) {
	host := c.Host
	port := c.Port
	username := c.Username
	password := c.Password
	name := c.DatabaseName

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", host, username, password, name, port)

	databaseConfig := gorm.Config{
		Logger: slogGorm.New(
			slogGorm.WithHandler(logger.Handler()),
			slogGorm.WithSlowThreshold(200*time.Millisecond),
		),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	if tracing {
		if err := db.Use(otelgorm.NewPlugin()); err != nil {
			return nil, fmt.Errorf("failed to enable database tracing: %v", err)
		}
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Place{},

		&model.List{},
		&model.ListEntry{},

		&model.Event{},
		&model.Participant{},
		&model.Message{},

		&model.Notification{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
