package cards

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/qusai-Kagalwala/repo-vista/internal/langdist"
	"github.com/qusai-Kagalwala/repo-vista/pkg/logger"
)

var ErrNotFound = errors.New("not found")

// DropTables drops the cards and metadata tables
func DropTables(db *sql.DB) error {
	logger.Info("repo: DropTables start")

	dropMetadata := `DROP TABLE IF EXISTS metadata;`
	if _, err := db.Exec(dropMetadata); err != nil {
		logger.Error("repo: drop metadata table failed", logger.WithError(err))
		return err
	}

	dropCards := `DROP TABLE IF EXISTS cards;`
	if _, err := db.Exec(dropCards); err != nil {
		logger.Error("repo: drop cards table failed", logger.WithError(err))
		return err
	}

	logger.Info("repo: DropTables complete")
	return nil
}

// EnsureTables creates cards and metadata tables when needed
func EnsureTables(db *sql.DB) error {
	logger.Info("repo: EnsureTables start")
	createCards := `
    CREATE TABLE IF NOT EXISTS cards (
        id BIGINT AUTO_INCREMENT PRIMARY KEY,
        owner VARCHAR(255) NOT NULL,
        repo VARCHAR(255) NOT NULL,
        description TEXT,
        stars BIGINT NOT NULL DEFAULT 0,
        forks BIGINT NOT NULL DEFAULT 0,
        avatar_url VARCHAR(512),
        languages JSON,
        last_refreshed_at DATETIME,
        UNIQUE KEY unique_slug (owner, repo)
    );`

	if _, err := db.Exec(createCards); err != nil {
		logger.Error("repo: create cards table failed", logger.WithError(err))
		return err
	}

	// metadata table for storing global values like last refresh
	createMeta := `
    CREATE TABLE IF NOT EXISTS metadata (
        meta_key VARCHAR(128) PRIMARY KEY,
        meta_value VARCHAR(1024),
        updated_at DATETIME
    );`

	if _, err := db.Exec(createMeta); err != nil {
		logger.Error("repo: create metadata table failed", logger.WithError(err))
		return err
	}

	logger.Info("repo: EnsureTables complete")
	return nil
}

// UpsertCard inserts or updates a card by its owner/repo slug
func UpsertCard(tx *sql.Tx, c *Card) error {
	q := `INSERT INTO cards
        (owner, repo, description, stars, forks, avatar_url, languages, last_refreshed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
            description = VALUES(description),
            stars = VALUES(stars),
            forks = VALUES(forks),
            avatar_url = VALUES(avatar_url),
            languages = VALUES(languages),
            last_refreshed_at = VALUES(last_refreshed_at)
    `

	var desc, avatar sql.NullString
	if c.Description != nil {
		desc = sql.NullString{String: *c.Description, Valid: true}
	}
	if c.AvatarURL != nil {
		avatar = sql.NullString{String: *c.AvatarURL, Valid: true}
	}

	langs, err := json.Marshal(c.Languages)
	if err != nil {
		logger.Error("repo: marshal languages failed", logger.Fields{"card": c.FullName()}, logger.WithError(err))
		return err
	}

	_, err = tx.Exec(q,
		c.Owner,
		c.Repo,
		desc,
		c.Stars,
		c.Forks,
		avatar,
		string(langs),
		c.LastRefreshedAt,
	)

	if err != nil {
		logger.Error("repo: UpsertCard failed", logger.Fields{"card": c.FullName()}, logger.WithError(err))
	}
	return err
}

func scanCard(row *sql.Row) (*Card, error) {
	var c Card
	var desc, avatar, langs sql.NullString
	var last sql.NullTime

	if err := row.Scan(&c.ID, &c.Owner, &c.Repo, &desc, &c.Stars, &c.Forks, &avatar, &langs, &last); err != nil {
		return nil, err
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	if avatar.Valid {
		c.AvatarURL = &avatar.String
	}
	if langs.Valid && langs.String != "" {
		if err := json.Unmarshal([]byte(langs.String), &c.Languages); err != nil {
			logger.Warn("repo: stored languages unreadable", logger.Fields{"card": c.FullName()}, logger.WithError(err))
			c.Languages = nil
		}
	}
	if last.Valid {
		c.LastRefreshedAt = &last.Time
	}
	return &c, nil
}

// GetCard fetches a single card by case-insensitive owner/repo
func GetCard(db *sql.DB, owner, repo string) (*Card, error) {
	q := `SELECT id, owner, repo, description, stars, forks, avatar_url, languages, last_refreshed_at
        FROM cards WHERE LOWER(owner) = LOWER(?) AND LOWER(repo) = LOWER(?) LIMIT 1`
	c, err := scanCard(db.QueryRow(q, owner, repo))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("repo: GetCard not found", logger.Fields{"owner": owner, "repo": repo})
			return nil, ErrNotFound
		}
		logger.Error("repo: GetCard failed", logger.Fields{"owner": owner, "repo": repo}, logger.WithError(err))
		return nil, err
	}

	logger.Info("repo: GetCard success", logger.Fields{"card": c.FullName(), "id": c.ID})
	return c, nil
}

// UpdateLanguages replaces a card's stored distribution
func UpdateLanguages(db *sql.DB, owner, repo string, d langdist.Distribution) error {
	langs, err := json.Marshal(d)
	if err != nil {
		return err
	}
	q := `UPDATE cards SET languages = ? WHERE LOWER(owner) = LOWER(?) AND LOWER(repo) = LOWER(?)`
	res, err := db.Exec(q, string(langs), owner, repo)
	if err != nil {
		logger.Error("repo: UpdateLanguages failed", logger.Fields{"owner": owner, "repo": repo}, logger.WithError(err))
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	logger.Info("repo: UpdateLanguages", logger.Fields{"owner": owner, "repo": repo, "entries": len(d)})
	return nil
}

// DeleteCard deletes a card by owner/repo
func DeleteCard(db *sql.DB, owner, repo string) (bool, error) {
	q := `DELETE FROM cards WHERE LOWER(owner) = LOWER(?) AND LOWER(repo) = LOWER(?)`
	res, err := db.Exec(q, owner, repo)
	if err != nil {
		logger.Error("repo: DeleteCard failed", logger.Fields{"owner": owner, "repo": repo}, logger.WithError(err))
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		logger.Error("repo: DeleteCard RowsAffected failed", logger.Fields{"owner": owner, "repo": repo}, logger.WithError(err))
		return false, err
	}
	logger.Info("repo: DeleteCard result", logger.Fields{"owner": owner, "repo": repo, "deleted": n > 0})
	return n > 0, nil
}

// TotalCount returns number of cached cards
func TotalCount(db *sql.DB) (int64, error) {
	q := `SELECT COUNT(*) FROM cards`
	var n int64
	if err := db.QueryRow(q).Scan(&n); err != nil {
		logger.Error("repo: TotalCount failed", logger.WithError(err))
		return 0, err
	}
	logger.Info("repo: TotalCount", logger.Fields{"count": n})
	return n, nil
}

// SaveLastRefreshed stores the last refresh timestamp in metadata
func SaveLastRefreshed(tx *sql.Tx, t time.Time) error {
	q := `INSERT INTO metadata (meta_key, meta_value, updated_at) VALUES ('last_refreshed_at', ?, ?) ON DUPLICATE KEY UPDATE meta_value = VALUES(meta_value), updated_at = VALUES(updated_at)`
	_, err := tx.Exec(q, t.UTC().Format(time.RFC3339), t)
	if err != nil {
		logger.Error("repo: SaveLastRefreshed failed", logger.WithError(err))
	} else {
		logger.Info("repo: SaveLastRefreshed", logger.Fields{"t": t.UTC().Format(time.RFC3339)})
	}
	return err
}

// GetLastRefreshed reads the last refresh timestamp
func GetLastRefreshed(db *sql.DB) (*time.Time, error) {
	q := `SELECT meta_value FROM metadata WHERE meta_key='last_refreshed_at' LIMIT 1`
	var v sql.NullString
	if err := db.QueryRow(q).Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("repo: GetLastRefreshed failed", logger.WithError(err))
		return nil, err
	}
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		// fallback to null
		logger.Warn("repo: GetLastRefreshed parse failed", logger.WithError(err))
		return nil, nil
	}
	logger.Info("repo: GetLastRefreshed", logger.Fields{"t": t.UTC().Format(time.RFC3339)})
	return &t, nil
}
