package database

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"time"

	"blogpessoal/pkg/config"
	"blogpessoal/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the target selected by cfg.Environment: PostgreSQL in
// production, a SQLite file otherwise.
func Open(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	if cfg.IsProduction() {
		log.Info("Connecting to production database %s@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
		return NewPostgresDB(cfg)
	}
	log.Info("Connecting to local database %s", cfg.SQLitePath)
	return NewSQLiteDB(SQLiteDSN(cfg.SQLitePath))
}

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := RegisterAuditCallbacks(db, nil); err != nil {
		return nil, err
	}
	return db, nil
}

// NewSQLiteDB opens a SQLite database. The connection pool is limited to a
// single connection so in-memory databases are shared by every query.
func NewSQLiteDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := RegisterAuditCallbacks(db, nil); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLiteDSN builds a DSN for path with foreign key enforcement on.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// MemorySQLiteDSN is used by tests.
const MemorySQLiteDSN = "file::memory:?_pragma=foreign_keys(1)"

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(os.Stdout),
	}
}

// newGormLogger reports slow queries and real failures. Lookups that find
// nothing are expected (username checks, 404s) and stay quiet.
func newGormLogger(w io.Writer) gormlogger.Interface {
	return gormlogger.New(stdlog.New(w, "\r\n", stdlog.LstdFlags), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
