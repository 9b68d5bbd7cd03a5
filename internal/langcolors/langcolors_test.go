package langcolors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestLookupKnownLanguages(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Go", "#00ADD8"},
		{"JavaScript", "#f1e05a"},
		{"TypeScript", "#3178c6"},
		{"Rust", "#dea584"},
		{"HTML", "#e34c26"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lookup(tt.name), tt.name)
	}
}

func TestLookupUnknownIsStable(t *testing.T) {
	first := Lookup("Brainfuck")
	second := Lookup("Brainfuck")
	assert.Equal(t, first, second)
	assert.Regexp(t, hexRe, first)
	assert.NotEqual(t, Fallback, first)
}

func TestLookupUnknownsDiffer(t *testing.T) {
	assert.NotEqual(t, Lookup("Whitespace"), Lookup("Befunge"))
}

func TestLookupEmptyName(t *testing.T) {
	assert.Equal(t, Fallback, Lookup(""))
}

func TestCatalogEntriesAreValidHex(t *testing.T) {
	once.Do(load)
	assert.NotEmpty(t, catalog)
	for name, hex := range catalog {
		assert.Regexp(t, hexRe, hex, name)
	}
}
