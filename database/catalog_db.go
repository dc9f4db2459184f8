package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"priceserver/catalog"
)

// FallbackUSDRate курс на случай, когда в базе его еще нет. Использование
// фоллбэка всегда сопровождается предупреждением в логе.
const FallbackUSDRate = 120.0

// CatalogDB обертка для работы с базой каталога.
type CatalogDB struct {
	conn *sql.DB
	log  *slog.Logger
}

// NewCatalogDB открывает базу и накатывает схему.
func NewCatalogDB(dbPath string, log *slog.Logger) (*CatalogDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &CatalogDB{conn: conn, log: log}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close закрывает соединение.
func (db *CatalogDB) Close() error {
	return db.conn.Close()
}

func (db *CatalogDB) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS catalog (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		supplier TEXT NOT NULL,
		raw_brand TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL,
		name TEXT NOT NULL,
		aroma TEXT NOT NULL DEFAULT '',
		gender TEXT NOT NULL DEFAULT '',
		volume TEXT NOT NULL DEFAULT '',
		concentration TEXT NOT NULL DEFAULT '',
		item_type TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL,
		canonical_name TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_catalog_canonical ON catalog(canonical_name);
	CREATE INDEX IF NOT EXISTS idx_catalog_brand ON catalog(brand);
	CREATE INDEX IF NOT EXISTS idx_catalog_supplier ON catalog(supplier);

	CREATE TABLE IF NOT EXISTS currency_rates (
		code TEXT PRIMARY KEY,
		rate REAL NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ReplaceCatalog атомарно заменяет каталог новым срезом: прогон конвейера
// всегда дает полную картину, поэтому прежние строки не нужны.
func (db *CatalogDB) ReplaceCatalog(rows []catalog.Listing) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM catalog`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO catalog (
			supplier, raw_brand, brand, name, aroma, gender,
			volume, concentration, item_type, price, canonical_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(
			r.Supplier, r.RawBrand, r.Brand, r.Name, r.Aroma, r.Gender,
			r.Volume, r.Concentration, r.Type, r.Price, r.CanonicalName,
		); err != nil {
			return fmt.Errorf("failed to insert listing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	db.log.Info("каталог сохранен", "строк", len(rows))
	return nil
}

// Catalog возвращает каталог, отсортированный по бренду и каноническому
// имени.
func (db *CatalogDB) Catalog() ([]catalog.Listing, error) {
	rows, err := db.conn.Query(`
		SELECT supplier, raw_brand, brand, name, aroma, gender,
		       volume, concentration, item_type, price, canonical_name
		FROM catalog
		ORDER BY brand, canonical_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var out []catalog.Listing
	for rows.Next() {
		var l catalog.Listing
		if err := rows.Scan(
			&l.Supplier, &l.RawBrand, &l.Brand, &l.Name, &l.Aroma, &l.Gender,
			&l.Volume, &l.Concentration, &l.Type, &l.Price, &l.CanonicalName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// SetRate сохраняет курс валюты.
func (db *CatalogDB) SetRate(code string, rate float64) error {
	_, err := db.conn.Exec(`
		INSERT INTO currency_rates (code, rate, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET rate = excluded.rate, updated_at = excluded.updated_at
	`, code, rate, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save rate: %w", err)
	}
	return nil
}

// USDRate возвращает сохраненный курс доллара. Если курса в базе нет,
// возвращается фоллбэк с предупреждением: прогон важнее точного курса.
func (db *CatalogDB) USDRate() float64 {
	var rate float64
	err := db.conn.QueryRow(
		`SELECT rate FROM currency_rates WHERE code = ?`, "USD").Scan(&rate)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		db.log.Warn("курс USD не найден, используется фоллбэк",
			"фоллбэк", FallbackUSDRate)
		return FallbackUSDRate
	case err != nil:
		db.log.Warn("не удалось прочитать курс USD, используется фоллбэк",
			"ошибка", err, "фоллбэк", FallbackUSDRate)
		return FallbackUSDRate
	}
	return rate
}
