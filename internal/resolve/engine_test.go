package resolve

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/snipkeeper/internal/models"
)

func snip(id, trigger, content string) models.Snippet {
	return models.Snippet{ID: id, Trigger: trigger, Content: content, ContentType: models.ContentPlaintext}
}

func src(id string, priority int) models.Source {
	return models.Source{ID: id, Priority: priority}
}

func TestResolve_ExampleScenario(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(src("A", 0), []models.Snippet{snip("1", ";hi", "A")})
	acc.Add(src("B", 1), []models.Snippet{snip("1", ";hi", "B"), snip("2", ";bye", "C")})

	res := acc.Resolve(Options{})

	require.Len(t, res.Entries, 2)

	byID := map[string]models.CatalogEntry{}
	for _, e := range res.Entries {
		byID[e.Snippet.ID] = e
	}

	one := byID["1"]
	assert.Equal(t, "A", one.Snippet.Content)
	assert.Equal(t, "A", one.SourceID)
	require.Len(t, one.Duplicates, 1)
	assert.Equal(t, "B", one.Duplicates[0].Snippet.Content)
	assert.Equal(t, "B", one.Duplicates[0].SourceID)

	two := byID["2"]
	assert.Equal(t, "C", two.Snippet.Content)
	assert.Empty(t, two.Duplicates)

	assert.Equal(t, 3, res.Stats.TotalInput)
	assert.Equal(t, 2, res.Stats.UniqueOutput)
	assert.Equal(t, 1, res.Stats.DuplicatesRemoved)
	assert.Equal(t, 2, res.Stats.SourcesProcessed)
}

func TestResolve_PriorityWinsRegardlessOfInputOrder(t *testing.T) {
	low := []models.Snippet{snip("x", ";t", "low")}
	high := []models.Snippet{snip("x", ";t", "high")}

	forward := Resolve([]Input{{Source: src("hi", 0), Snippets: high}, {Source: src("lo", 3), Snippets: low}}, Options{})
	backward := Resolve([]Input{{Source: src("lo", 3), Snippets: low}, {Source: src("hi", 0), Snippets: high}}, Options{})

	require.Len(t, forward.Entries, 1)
	assert.Equal(t, "high", forward.Entries[0].Snippet.Content)
	assert.Equal(t, forward.Entries, backward.Entries)
}

func TestResolve_Deterministic(t *testing.T) {
	var inputs []Input
	for s := 0; s < 4; s++ {
		var snippets []models.Snippet
		for i := 0; i < 30; i++ {
			snippets = append(snippets, snip(fmt.Sprintf("id-%02d", (i*7+s)%40), fmt.Sprintf(";t%d", i%5), fmt.Sprintf("s%d-%d", s, i)))
		}
		inputs = append(inputs, Input{Source: src(fmt.Sprintf("src-%d", s), s), Snippets: snippets})
	}

	first, err := json.Marshal(Resolve(inputs, Options{}).Catalog())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]Input(nil), inputs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		again, err := json.Marshal(Resolve(shuffled, Options{}).Catalog())
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(again))
		assert.Equal(t, first, again)
	}
}

func TestResolve_EqualPriorityBreaksTiesBySourceID(t *testing.T) {
	res := Resolve([]Input{
		{Source: src("zeta", 2), Snippets: []models.Snippet{snip("1", ";a", "z")}},
		{Source: src("alpha", 2), Snippets: []models.Snippet{snip("1", ";a", "a")}},
	}, Options{})

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "alpha", res.Entries[0].SourceID)
	assert.Equal(t, "zeta", res.Entries[0].Duplicates[0].SourceID)
}

func TestResolve_EqualPriorityBreaksTiesByTrigger(t *testing.T) {
	older := snip("1", ";a", "older")
	older.UpdatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := snip("1", ";b", "newer")
	newer.UpdatedAt = older.UpdatedAt.Add(time.Hour)

	res := Resolve([]Input{{Source: src("s", 0), Snippets: []models.Snippet{newer, older}}}, Options{})
	require.Len(t, res.Entries, 1)
	assert.Equal(t, ";a", res.Entries[0].Snippet.Trigger)
	require.Len(t, res.Entries[0].Duplicates, 1)
	assert.Equal(t, ";b", res.Entries[0].Duplicates[0].Snippet.Trigger)

	// Trigger решает раньше, чем ID источника
	res = Resolve([]Input{
		{Source: src("alpha", 2), Snippets: []models.Snippet{snip("2", ";z", "a")}},
		{Source: src("zeta", 2), Snippets: []models.Snippet{snip("2", ";m", "z")}},
	}, Options{})
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "zeta", res.Entries[0].SourceID)
}

func TestResolve_OrderedByTriggerThenID(t *testing.T) {
	res := Resolve([]Input{{Source: src("s", 0), Snippets: []models.Snippet{
		snip("b", ";z", ""),
		snip("c", ";a", ""),
		snip("a", ";a", ""),
	}}}, Options{})

	var ids []string
	for _, e := range res.Entries {
		ids = append(ids, e.Snippet.ID)
	}
	assert.Equal(t, []string{"a", "c", "b"}, ids)
}

func TestResolve_TriggerGroups(t *testing.T) {
	res := Resolve([]Input{
		{Source: src("team", 2), Snippets: []models.Snippet{snip("t1", ";sig", "team signature")}},
		{Source: src("me", 0), Snippets: []models.Snippet{snip("m1", ";sig", "my signature")}},
		{Source: src("org", 1), Snippets: []models.Snippet{snip("o1", ";addr", "address")}},
	}, Options{})

	require.Len(t, res.Triggers, 2)
	assert.Equal(t, ";addr", res.Triggers[0].Trigger)

	sig := res.Triggers[1]
	assert.Equal(t, ";sig", sig.Trigger)
	require.Len(t, sig.Entries, 2)
	assert.Equal(t, "m1", sig.Entries[0].Snippet.ID)
	assert.Equal(t, "t1", sig.Entries[1].Snippet.ID)
}

func TestResolve_UsageFirst(t *testing.T) {
	inputs := []Input{
		{Source: src("me", 0), Snippets: []models.Snippet{snip("m1", ";sig", "")}},
		{Source: src("team", 2), Snippets: []models.Snippet{snip("t1", ";sig", ""), snip("t2", ";sig", "")}},
	}

	res := Resolve(inputs, Options{
		Mode:  ModeUsageFirst,
		Usage: map[string]int{"t1": 5, "t2": 5, "m1": 1},
	})

	require.Len(t, res.Triggers, 1)
	var ids []string
	for _, e := range res.Triggers[0].Entries {
		ids = append(ids, e.Snippet.ID)
	}
	// t1 и t2 равны по usage, затем равны по приоритету, решает ID
	assert.Equal(t, []string{"t1", "t2", "m1"}, ids)

	// id-группировка не зависит от usage
	for _, e := range res.Entries {
		assert.Empty(t, e.Duplicates)
	}
}

func TestResolve_Filters(t *testing.T) {
	md := snip("2", ";md", "# hi")
	md.ContentType = models.ContentMarkdown

	inputs := []Input{
		{Source: src("a", 0), Snippets: []models.Snippet{snip("1", ";x", "a"), md}},
		{Source: src("b", 1), Snippets: []models.Snippet{snip("1", ";x", "b")}},
	}

	t.Run("by source", func(t *testing.T) {
		res := Resolve(inputs, Options{Sources: map[string]bool{"b": true}})
		require.Len(t, res.Entries, 1)
		assert.Equal(t, "b", res.Entries[0].Snippet.Content)
		assert.Equal(t, 1, res.Stats.SourcesProcessed)
	})

	t.Run("by content type", func(t *testing.T) {
		res := Resolve(inputs, Options{ContentTypes: map[models.ContentType]bool{models.ContentMarkdown: true}})
		require.Len(t, res.Entries, 1)
		assert.Equal(t, "2", res.Entries[0].Snippet.ID)
		assert.Equal(t, 1, res.Stats.TotalInput)
	})
}

func TestResolve_EmptyInput(t *testing.T) {
	res := Resolve(nil, Options{})

	assert.Empty(t, res.Entries)
	assert.Empty(t, res.Triggers)
	assert.Equal(t, Stats{}, Stats{
		TotalInput:        res.Stats.TotalInput,
		UniqueOutput:      res.Stats.UniqueOutput,
		DuplicatesRemoved: res.Stats.DuplicatesRemoved,
		SourcesProcessed:  res.Stats.SourcesProcessed,
	})
}

func TestResolve_SkipsSnippetsWithoutID(t *testing.T) {
	res := Resolve([]Input{{Source: src("a", 0), Snippets: []models.Snippet{snip("", ";x", "")}}}, Options{})
	assert.Empty(t, res.Entries)
	assert.Equal(t, 0, res.Stats.TotalInput)
}

func TestResolve_Duration(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}

	res := Resolve(nil, Options{Now: now})
	assert.Equal(t, time.Millisecond, res.Stats.Duration)
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	in := []models.Snippet{{ID: "1", Trigger: ";x", Tags: []string{"a"}}}
	res := Resolve([]Input{{Source: src("a", 0), Snippets: in}}, Options{})

	res.Entries[0].Snippet.Tags[0] = "changed"
	assert.Equal(t, "a", in[0].Tags[0])
}
