package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet_Fingerprint(t *testing.T) {
	base := Snippet{
		ID:          "1",
		Trigger:     ";hi",
		Content:     "Hello",
		ContentType: ContentPlaintext,
		Tags:        []string{"b", "a"},
	}

	t.Run("ignores identity and timestamps", func(t *testing.T) {
		other := base.Clone()
		other.ID = "2"
		other.CreatedAt = time.Now()
		other.UpdatedBy = "bob"
		assert.Equal(t, base.Fingerprint(), other.Fingerprint())
	})

	t.Run("tag order does not matter", func(t *testing.T) {
		other := base.Clone()
		other.Tags = []string{"a", "b"}
		assert.Equal(t, base.Fingerprint(), other.Fingerprint())
	})

	t.Run("content change is detected", func(t *testing.T) {
		other := base.Clone()
		other.Content = "Hello!"
		assert.NotEqual(t, base.Fingerprint(), other.Fingerprint())
	})

	assert.Len(t, base.Fingerprint(), 64)
}

func TestSnippet_Clone(t *testing.T) {
	s := Snippet{Tags: []string{"x"}, Variables: []Variable{{Name: "n"}}}
	c := s.Clone()
	c.Tags[0] = "y"
	c.Variables[0].Name = "m"

	assert.Equal(t, "x", s.Tags[0])
	assert.Equal(t, "n", s.Variables[0].Name)
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
		ok   bool
	}{
		{"", ContentPlaintext, true},
		{"Markdown", ContentMarkdown, true},
		{"md", ContentMarkdown, true},
		{" html ", ContentHTML, true},
		{"tex", ContentLatex, true},
		{"docx", ContentType("docx"), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseContentType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortSources(t *testing.T) {
	sources := []Source{
		{ID: "team", Priority: 2},
		{ID: "org", Priority: 1},
		{ID: "alpha", Priority: 1},
		DefaultSource("/tmp"),
	}

	SortSources(sources)

	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{DefaultSourceID, "alpha", "org", "team"}, ids)
	require.True(t, sources[0].IsDefault())
}

func TestCatalog_Lookup(t *testing.T) {
	cat := &Catalog{Entries: []CatalogEntry{
		{Snippet: Snippet{ID: "1", Trigger: ";a"}},
		{Snippet: Snippet{ID: "2", Trigger: ";a"}},
		{Snippet: Snippet{ID: "3", Trigger: ";b"}},
	}}

	e, ok := cat.Lookup("3")
	require.True(t, ok)
	assert.Equal(t, ";b", e.Snippet.Trigger)

	_, ok = cat.Lookup("nope")
	assert.False(t, ok)

	assert.Len(t, cat.ByTrigger(";a"), 2)

	var empty *Catalog
	assert.Nil(t, empty.ByTrigger(";a"))
}
