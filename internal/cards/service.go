package cards

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/qusai-Kagalwala/repo-vista/internal/config"
	"github.com/qusai-Kagalwala/repo-vista/internal/langcolors"
	"github.com/qusai-Kagalwala/repo-vista/internal/langdist"
	"github.com/qusai-Kagalwala/repo-vista/pkg/logger"
)

const githubAPI = "https://api.github.com"

// external structs
type ghRepo struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int64  `json:"stargazers_count"`
	Forks       int64  `json:"forks_count"`
	Owner       struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"owner"`
}

// ExternalError marks which external API failed
type ExternalError struct {
	API string
}

func (e ExternalError) Error() string {
	return fmt.Sprintf("Could not fetch data from %s", e.API)
}

func githubGet(ctx context.Context, client *http.Client, token, url string, out interface{}) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/vnd.github+json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("service: github request failed", logger.Fields{"url": url}, logger.WithError(err))
		return ExternalError{API: "github"}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		logger.Warn("service: github returned non-200", logger.Fields{"url": url, "status": resp.StatusCode})
		return ExternalError{API: "github"}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn("service: failed decoding github response", logger.Fields{"url": url}, logger.WithError(err))
		return ExternalError{API: "github"}
	}
	return nil
}

// Refresh fetches repository metadata and languages from GitHub and updates
// the DB in a transaction. If the fetch fails, no DB changes are made.
func Refresh(ctx context.Context, db *sql.DB, cfg *config.Config, owner, repo string) (*Card, error) {
	logger.Info("service: Refresh started", logger.Fields{"owner": owner, "repo": repo})
	client := &http.Client{Timeout: 20 * time.Second}

	var gr ghRepo
	repoURL := fmt.Sprintf("%s/repos/%s/%s", githubAPI, owner, repo)
	if err := githubGet(ctx, client, cfg.GithubToken, repoURL, &gr); err != nil {
		return nil, err
	}

	var bytes map[string]int64
	if err := githubGet(ctx, client, cfg.GithubToken, repoURL+"/languages", &bytes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &Card{
		Owner:           owner,
		Repo:            repo,
		Stars:           gr.Stars,
		Forks:           gr.Forks,
		LastRefreshedAt: &now,
	}
	if gr.Description != "" {
		c.Description = &gr.Description
	}
	if gr.Owner.AvatarURL != "" {
		c.AvatarURL = &gr.Owner.AvatarURL
	}

	c.Languages = langdist.FromByteCounts(bytes, langcolors.Lookup)
	if len(c.Languages) == 0 {
		// repos with no detected languages still get a bar to edit
		c.Languages = seedDistribution(cfg.DefaultLangs)
	}

	if err := c.Validate(); err != nil {
		logger.Warn("service: card validation failed", logger.Fields{
			"card":   c.FullName(),
			"errors": err.(*ValidationError).Errors,
		})
		return nil, err
	}

	if err := EnsureTables(db); err != nil {
		logger.Error("service: EnsureTables failed", logger.WithError(err))
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("service: begin tx failed", logger.WithError(err))
		return nil, err
	}

	if err := UpsertCard(tx, c); err != nil {
		logger.Error("service: UpsertCard failed", logger.WithError(err))
		tx.Rollback()
		return nil, err
	}

	if err := SaveLastRefreshed(tx, now); err != nil {
		logger.Error("service: SaveLastRefreshed failed", logger.WithError(err))
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("service: tx commit failed", logger.WithError(err))
		tx.Rollback()
		return nil, err
	}

	renderAsync(c, cfg)

	logger.Info("service: Refresh completed", logger.Fields{"card": c.FullName(), "languages": len(c.Languages)})
	return c, nil
}

// AddLanguage appends a language to a card's distribution at the given share
// (langdist.DefaultAddShare when pct <= 0), rebalancing the rest.
func AddLanguage(db *sql.DB, cfg *config.Config, owner, repo, name string, pct int) (*Card, error) {
	if pct <= 0 {
		pct = langdist.DefaultAddShare
	}
	return editLanguages(db, cfg, owner, repo, func(d langdist.Distribution) langdist.Distribution {
		return langdist.AddEntry(d, name, langcolors.Lookup(name), pct)
	})
}

// RemoveLanguage deletes the entry at index, redistributing its share.
// An out-of-range index leaves the card unchanged.
func RemoveLanguage(db *sql.DB, cfg *config.Config, owner, repo string, index int) (*Card, error) {
	return editLanguages(db, cfg, owner, repo, func(d langdist.Distribution) langdist.Distribution {
		return langdist.RemoveEntry(d, index)
	})
}

// SetPercentage updates the entry at index to the raw user-supplied share,
// rebalancing the others. Non-numeric input coerces to 0 and clamps to 1.
func SetPercentage(db *sql.DB, cfg *config.Config, owner, repo string, index int, raw string) (*Card, error) {
	return editLanguages(db, cfg, owner, repo, func(d langdist.Distribution) langdist.Distribution {
		return langdist.UpdatePercentage(d, index, langdist.ParseShare(raw))
	})
}

func editLanguages(db *sql.DB, cfg *config.Config, owner, repo string, op func(langdist.Distribution) langdist.Distribution) (*Card, error) {
	c, err := GetCard(db, owner, repo)
	if err != nil {
		return nil, err
	}

	updated := op(c.Languages)
	c.Languages = updated

	if err := UpdateLanguages(db, owner, repo, updated); err != nil {
		return nil, err
	}

	renderAsync(c, cfg)
	return c, nil
}

// renderAsync regenerates the card PNG in the background; rendering is
// best-effort and never fails the request that triggered it.
func renderAsync(c *Card, cfg *config.Config) {
	card := *c
	go func() {
		if err := RenderCard(&card, ImagePath(cfg.CacheDir, card.Owner, card.Repo)); err != nil {
			logger.Warn("service: RenderCard failed", logger.Fields{"card": card.FullName()}, logger.WithError(err))
		} else {
			logger.Info("service: RenderCard completed", logger.Fields{"card": card.FullName()})
		}
	}()
}

// ImagePath is where a card's rendered PNG lives under the cache dir.
func ImagePath(cacheDir, owner, repo string) string {
	return filepath.Join(cacheDir, fmt.Sprintf("%s__%s.png", owner, repo))
}

// seedDistribution parses the configured "name:pct,name:pct" seed list,
// falling back to a generic web-stack split when unset or unparsable. The
// result is always normalized.
func seedDistribution(spec string) langdist.Distribution {
	var d langdist.Distribution
	for _, pair := range strings.Split(spec, ",") {
		name, pct, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" {
			continue
		}
		n, err := strconv.Atoi(pct)
		if err != nil || n <= 0 {
			continue
		}
		d = append(d, langdist.Entry{Name: name, Percentage: n, ColorToken: langcolors.Lookup(name)})
	}
	if len(d) == 0 {
		for _, e := range []langdist.Entry{
			{Name: "JavaScript", Percentage: 40},
			{Name: "TypeScript", Percentage: 30},
			{Name: "CSS", Percentage: 20},
			{Name: "HTML", Percentage: 10},
		} {
			e.ColorToken = langcolors.Lookup(e.Name)
			d = append(d, e)
		}
	}
	return langdist.Normalize(d)
}
