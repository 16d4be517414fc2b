package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"sponsorship_backend/internals/configs"
)

// ConnectDB opens the configured backend. SQLite is the embedded default and
// runs on the pure-Go modernc driver through a pre-opened *sql.DB.
func ConnectDB(cfg *configs.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:                 configs.NewGormLogger(cfg.DBLogLevel),
		SkipDefaultTransaction: true, // every operation is a single statement
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case configs.DriverPostgres:
		log.Println("[INFO] Connecting to PostgreSQL...")
		dialector = postgres.New(postgres.Config{
			DSN:                  postgresDSN(cfg),
			PreferSimpleProtocol: true, // PgBouncer friendly
		})
	case configs.DriverMySQL:
		log.Println("[INFO] Connecting to MySQL...")
		dialector = mysql.Open(mysqlDSN(cfg))
	case configs.DriverSQLite, "":
		log.Println("[INFO] Opening SQLite database...")
		sqlDB, err := OpenSQLite(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		dialector = &sqlite.Dialector{Conn: sqlDB}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.DBDriver != configs.DriverSQLite && cfg.DBDriver != "" {
		TunePool(db)
	}
	log.Println("[INFO] DB connected.")
	return db, nil
}

// OpenSQLite opens a modernc SQLite handle limited to one connection so that
// concurrent writers queue instead of failing with "database is locked".
func OpenSQLite(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = configs.DefaultSQLiteDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate creates missing tables, columns, indexes and checks. It never
// drops anything.
func AutoMigrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func postgresDSN(cfg *configs.Config) string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	port := cfg.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sponsorship&options=-c%%20statement_timeout=3000",
		url.QueryEscape(cfg.DBUser),
		url.QueryEscape(cfg.DBPassword),
		cfg.DBHost,
		port,
		cfg.DBName,
		cfg.DBSSLMode,
	)
}

// clientFoundRows makes RowsAffected count matched rows, so re-approving an
// approved request is not reported as missing.
func mysqlDSN(cfg *configs.Config) string {
	if cfg.DBDSN != "" {
		return cfg.DBDSN
	}
	port := cfg.DBPort
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, port, cfg.DBName,
	)
}
