package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-taskflow/internal/infra/database/gormdb"
	"go-taskflow/internal/infra/database/sqlc"
	"go-taskflow/internal/infra/database/sqlite"
	"go-taskflow/pkg/log"
	"go-taskflow/pkg/msg"
)

// Connection holds the handles opened for the configured driver. Both are nil for the memory driver.
type Connection struct {
	Driver string
	SQL    *sql.DB
	Gorm   *gorm.DB
}

func Connect(ctx context.Context, cfg Config) (*Connection, error) {
	conn := &Connection{Driver: cfg.Driver}

	switch cfg.Driver {
	case DriverMemory:
		return conn, nil
	case DriverPostgres:
		db, err := sqlc.Open(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		gormDB, err := gormdb.Open(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		conn.SQL, conn.Gorm = db, gormDB
	case DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		conn.SQL = db
	default:
		return nil, errors.New(msg.GetMessage("db.error.unknown-driver", cfg.Driver))
	}

	log.Info(msg.GetMessage("db.connected", cfg.Driver))
	return conn, nil
}

// Migrate creates the schema: gorm AutoMigrate on postgres, plain DDL on sqlite
func (c *Connection) Migrate(ctx context.Context) error {
	var err error
	switch c.Driver {
	case DriverPostgres:
		err = gormdb.AutoMigrate(ctx, c.Gorm)
	case DriverSQLite:
		err = sqlite.Migrate(ctx, c.SQL)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", c.Driver, err)
	}

	log.Info(msg.GetMessage("db.migrated", c.Driver))
	return nil
}

func (c *Connection) Close() error {
	if c.SQL == nil {
		return nil
	}
	return c.SQL.Close()
}
