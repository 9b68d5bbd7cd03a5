package cards

import (
	"fmt"
	"strings"
	"time"

	"github.com/qusai-Kagalwala/repo-vista/internal/langdist"
)

// Card represents a repository preview card stored in the DB and returned by
// the API. Optional fields are pointers so missing values serialize as null.
type Card struct {
	ID              int64                 `json:"id"`
	Owner           string                `json:"owner"`
	Repo            string                `json:"repo"`
	Description     *string               `json:"description,omitempty"`
	Stars           int64                 `json:"stars"`
	Forks           int64                 `json:"forks"`
	AvatarURL       *string               `json:"avatar_url,omitempty"`
	Languages       langdist.Distribution `json:"languages"`
	LastRefreshedAt *time.Time            `json:"last_refreshed_at,omitempty"`
}

// FullName is the owner/repo slug shown on the card header.
func (c *Card) FullName() string {
	return c.Owner + "/" + c.Repo
}

// HTMLURL is the address the card's QR code points at.
func (c *Card) HTMLURL() string {
	return "https://github.com/" + c.FullName()
}

// ValidationError collects field-level problems found by Validate
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for field, msg := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the card is safe to persist
func (c *Card) Validate() error {
	errs := map[string]string{}
	if c.Owner == "" {
		errs["owner"] = "is required"
	}
	if c.Repo == "" {
		errs["repo"] = "is required"
	}
	if c.Stars < 0 {
		errs["stars"] = "must be non-negative"
	}
	if c.Forks < 0 {
		errs["forks"] = "must be non-negative"
	}
	if len(c.Languages) > 0 && c.Languages.Total() != 100 {
		errs["languages"] = fmt.Sprintf("must total 100, got %d", c.Languages.Total())
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
