// Package persist stores sites and conversation turns in SQLite.
package persist

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles persistence of sites and conversation history using SQLite
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new SQLite-backed persistence store at the given path
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &Store{db: db}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// init creates the necessary tables if they don't exist
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS sites (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			name        TEXT NOT NULL,
			document    TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL,
			UNIQUE(name)
		);

		CREATE TABLE IF NOT EXISTS turns (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			site_id     INTEGER NOT NULL,
			role        TEXT NOT NULL,
			content     TEXT,
			tool_calls  TEXT,
			created_at  TEXT NOT NULL,
			FOREIGN KEY (site_id) REFERENCES sites(id)
		);

		CREATE INDEX IF NOT EXISTS idx_turns_site ON turns(site_id);
		CREATE INDEX IF NOT EXISTS idx_turns_created ON turns(created_at);
	`)
	return err
}

// GetOrCreateSite gets an existing site by name or creates an empty one
func (s *Store) GetOrCreateSite(name string) (*Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	nowStr := now.Format(time.RFC3339)

	site, err := s.getSiteInternal(name)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if site != nil {
		return site, nil
	}

	result, err := s.db.Exec(`
		INSERT INTO sites (name, document, created_at, updated_at)
		VALUES (?, '', ?, ?)
	`, name, nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &Site{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *Store) getSiteInternal(name string) (*Site, error) {
	row := s.db.QueryRow(`
		SELECT id, name, document, created_at, updated_at
		FROM sites
		WHERE name = ?
	`, name)

	var site Site
	var createdAt, updatedAt string

	err := row.Scan(&site.ID, &site.Name, &site.Document, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		site.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		site.UpdatedAt = t
	}

	return &site, nil
}

// GetSiteByID fetches one site by its row id
func (s *Store) GetSiteByID(id int64) (*Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, document, created_at, updated_at
		FROM sites
		WHERE id = ?
	`, id)

	var site Site
	var createdAt, updatedAt string

	if err := row.Scan(&site.ID, &site.Name, &site.Document, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		site.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		site.UpdatedAt = t
	}
	return &site, nil
}

// SaveDocument replaces a site's document JSON
func (s *Store) SaveDocument(siteID int64, document string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Format(time.RFC3339)

	_, err := s.db.Exec(`
		UPDATE sites SET document = ?, updated_at = ? WHERE id = ?
	`, document, now, siteID)
	return err
}

// AddTurn appends one conversation turn to a site's history
func (s *Store) AddTurn(siteID int64, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Format(time.RFC3339)

	_, err := s.db.Exec(`
		INSERT INTO turns (site_id, role, content, tool_calls, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, siteID, turn.Role, turn.Content, toJSON(turn.ToolCalls), now)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE sites SET updated_at = ? WHERE id = ?
	`, now, siteID)
	return err
}

// GetTurns returns up to limit most recent turns for a site, oldest first
func (s *Store) GetTurns(siteID int64, limit int) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, site_id, role, content, tool_calls, created_at
		FROM (
			SELECT id, site_id, role, content, tool_calls, created_at
			FROM turns
			WHERE site_id = ?
			ORDER BY id DESC
			LIMIT ?
		)
		ORDER BY id ASC
	`, siteID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var turn Turn
		var toolCalls, createdAt string

		if err := rows.Scan(&turn.ID, &turn.SiteID, &turn.Role, &turn.Content, &toolCalls, &createdAt); err != nil {
			return nil, err
		}
		_ = fromJSON(toolCalls, &turn.ToolCalls)
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			turn.CreatedAt = t
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}

// ListSites returns all sites, most recently updated first
func (s *Store) ListSites() ([]*Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, document, created_at, updated_at
		FROM sites
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*Site
	for rows.Next() {
		var site Site
		var createdAt, updatedAt string

		if err := rows.Scan(&site.ID, &site.Name, &site.Document, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			site.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			site.UpdatedAt = t
		}
		sites = append(sites, &site)
	}
	return sites, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
