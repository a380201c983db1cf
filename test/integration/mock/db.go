package mock

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brecho/backoffice/internal/integration/persistence/model"
)

var (
	dbOnce sync.Once
	db     *Db
	dbErr  error
)

// Db is a shared in-memory SQLite database migrated with every persistence model.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	tables []string
}

// NewDb opens the database on first use and returns the same instance afterwards.
func NewDb(name string) (*Db, error) {
	dbOnce.Do(func() {
		db, dbErr = open(name)
	})
	return db, dbErr
}

func open(name string) (*Db, error) {
	dbSQL, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// A single connection keeps every query on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	models := model.AllModels()
	if err := dbConn.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate models: %w", err)
	}

	d := &Db{
		DbConn: dbConn,
		models: make(map[string]any, len(models)),
		tables: make([]string, 0, len(models)),
	}
	for _, m := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", m, err)
		}
		d.models[stmt.Schema.Table] = m
		d.tables = append(d.tables, stmt.Schema.Table)
	}

	return d, nil
}

// ClearDB deletes every row, soft-deleted ones included, in reverse migration order.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		if err := d.DbConn.Exec("DELETE FROM " + d.tables[i]).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", d.tables[i], err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
