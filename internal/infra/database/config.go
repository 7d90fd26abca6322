package database

import (
	"fmt"

	"go-taskflow/pkg/resource"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Driver      string
	Host        string
	Port        string
	Username    string
	Password    string
	Database    string
	Schema      string
	SSLMode     string
	SQLitePath  string
	AutoMigrate bool
}

// ConfigFromProperties reads the app.db.* properties
func ConfigFromProperties() Config {
	return Config{
		Driver:      resource.GetString("app.db.driver"),
		Host:        resource.GetString("app.db.host"),
		Port:        resource.GetString("app.db.port"),
		Username:    resource.GetString("app.db.username"),
		Password:    resource.GetString("app.db.password"),
		Database:    resource.GetString("app.db.database"),
		Schema:      resource.GetString("app.db.schema"),
		SSLMode:     resource.GetString("app.db.ssl-mode"),
		SQLitePath:  resource.GetString("app.db.sqlite-path"),
		AutoMigrate: resource.GetBool("app.db.auto-migrate"),
	}
}

// PostgresDSN renders the keyword/value connection string understood by lib/pq and pgx
func (c Config) PostgresDSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, sslMode, c.Schema)
}
