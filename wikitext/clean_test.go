package wikitext_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/filmoscope/wikitext"
	"github.com/stretchr/testify/assert"
)

func TestCleanValue(t *testing.T) {
	t.Parallel()

	t.Run("keeps display text of piped wiki links", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Alex Proyas", wikitext.CleanValue("[[Alex Proyas (réalisateur)|Alex Proyas]]"))
	})

	t.Run("keeps whole target of unpiped wiki links", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Australie", wikitext.CleanValue("[[Australie]]"))
	})

	t.Run("keeps display text of templates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "États-Unis", wikitext.CleanValue("{{drapeau|États-Unis}}"))
	})

	t.Run("strips references and their content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "95 minutes", wikitext.CleanValue(`95 minutes<ref name="imdb">source douteuse</ref>`))
	})

	t.Run("strips html tags and emphasis markers", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Dark City", wikitext.CleanValue("'''''Dark City'''''<small></small>"))
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", wikitext.CleanValue("  a \t b\n  c  "))
	})
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	t.Run("splits on br markers", func(t *testing.T) {
		t.Parallel()

		got := wikitext.SplitList("[[Lem Dobbs]]<br>[[David S. Goyer]]<br>Alex Proyas")
		assert.Equal(t, []string{"Lem Dobbs", "David S. Goyer", "Alex Proyas"}, got)
	})

	t.Run("splits on newline bullets and commas", func(t *testing.T) {
		t.Parallel()

		got := wikitext.SplitList("[[France]]\n* [[Italie]], [[Espagne]]")
		assert.Equal(t, []string{"France", "Italie", "Espagne"}, got)
	})

	t.Run("drops empty and single-character items", func(t *testing.T) {
		t.Parallel()

		got := wikitext.SplitList("[[France]],,x,[[Italie]]")
		assert.Equal(t, []string{"France", "Italie"}, got)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, wikitext.SplitList(""))
	})
}

func TestCleanSynopsis(t *testing.T) {
	t.Parallel()

	t.Run("strips subsection headings and templates", func(t *testing.T) {
		t.Parallel()

		raw := "=== Acte 1 ===\nJohn Murdoch se réveille. {{refnec}} Il a perdu la mémoire."
		got := wikitext.CleanSynopsis(raw)
		assert.Equal(t, "John Murdoch se réveille. Il a perdu la mémoire.", got)
	})

	t.Run("keeps external link text", func(t *testing.T) {
		t.Parallel()

		got := wikitext.CleanSynopsis("Voir [https://example.com le site] pour plus.")
		assert.Equal(t, "Voir le site pour plus.", got)
	})

	t.Run("cuts long text at a sentence boundary", func(t *testing.T) {
		t.Parallel()

		sentence := strings.Repeat("x", 149) + ". "
		raw := strings.Repeat(sentence, 20) // well past the cap
		got := wikitext.CleanSynopsis(raw)
		assert.LessOrEqual(t, len([]rune(got)), 2000)
		assert.True(t, strings.HasSuffix(got, "."), "should end on a sentence boundary")
	})

	t.Run("hard-cuts with ellipsis when no late sentence boundary exists", func(t *testing.T) {
		t.Parallel()

		raw := strings.Repeat("x", 2500) // no periods at all
		got := wikitext.CleanSynopsis(raw)
		assert.Equal(t, 2003, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}
