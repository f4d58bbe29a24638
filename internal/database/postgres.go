package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// ConnectPostgres opens the PostgreSQL pool used for contact-form submissions
// and makes sure its table exists.
func ConnectPostgres(postgresURI string) (*sql.DB, error) {
	db, err := sql.Open("postgres", postgresURI)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initContactTable(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initContactTable(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS contact_us (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			ip_address VARCHAR(255)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_us_created_at ON contact_us(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_us_email ON contact_us(email)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
