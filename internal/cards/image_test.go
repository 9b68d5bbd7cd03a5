package cards

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCard(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "card.png")

	err := RenderCard(validCard(), dest)
	require.NoError(t, err)

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, cardW, img.Bounds().Dx())
	assert.Equal(t, cardH, img.Bounds().Dy())
}

func TestRenderCardSparse(t *testing.T) {
	// no description, no avatar, no languages
	c := &Card{Owner: "o", Repo: "r"}
	dest := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, RenderCard(c, dest))

	_, err := os.Stat(dest)
	assert.NoError(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))

	got := truncate("a long description that will not fit on the card", 10)
	assert.Len(t, []rune(got), 10)
	assert.Equal(t, "…", string([]rune(got)[9]))
}
