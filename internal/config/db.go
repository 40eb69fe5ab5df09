package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// DSN builds the MySQL data source name for the request pool. parseTime
// lets DATE columns scan into time.Time.
func (e Env) DSN() string {
	return e.mysqlConfig().FormatDSN()
}

// MigrationDSN is DSN with multiStatements enabled. Only the migration
// connection uses it.
func (e Env) MigrationDSN() string {
	cfg := e.mysqlConfig()
	cfg.MultiStatements = true
	return cfg.FormatDSN()
}

func (e Env) mysqlConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = e.DBUser
	cfg.Passwd = e.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = e.DBHost
	cfg.DBName = e.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

// OpenDB opens the pool and pings it. The handle is returned to the caller
// and threaded through repositories explicitly.
func OpenDB(env Env) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", env.DSN())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	logrus.WithField("db", env.DBName).Info("connected to MySQL")
	return db, nil
}

// PingDB is used by the health endpoint to fail fast when the pool is gone.
func PingDB(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
