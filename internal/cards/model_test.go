package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qusai-Kagalwala/repo-vista/internal/langdist"
)

func validCard() *Card {
	return &Card{
		Owner: "golang",
		Repo:  "go",
		Stars: 120000,
		Forks: 17000,
		Languages: langdist.Distribution{
			{Name: "Go", Percentage: 90, ColorToken: "#00ADD8"},
			{Name: "Assembly", Percentage: 10, ColorToken: "#6E4C13"},
		},
	}
}

func TestCardValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Card)
		wantField string
	}{
		{"valid", func(c *Card) {}, ""},
		{"empty languages ok", func(c *Card) { c.Languages = nil }, ""},
		{"missing owner", func(c *Card) { c.Owner = "" }, "owner"},
		{"missing repo", func(c *Card) { c.Repo = "" }, "repo"},
		{"negative stars", func(c *Card) { c.Stars = -1 }, "stars"},
		{"negative forks", func(c *Card) { c.Forks = -3 }, "forks"},
		{"languages off total", func(c *Card) { c.Languages[0].Percentage = 50 }, "languages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, ve.Errors, tt.wantField)
		})
	}
}

func TestCardNames(t *testing.T) {
	c := validCard()
	assert.Equal(t, "golang/go", c.FullName())
	assert.Equal(t, "https://github.com/golang/go", c.HTMLURL())
}
