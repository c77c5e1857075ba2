package dump_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/filmoscope"
	"github.com/fwojciec/filmoscope/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.11/">
  <siteinfo>
    <sitename>Wikipédia</sitename>
  </siteinfo>
  <page>
    <title>Dark City</title>
    <ns>0</ns>
    <revision>
      <id>123</id>
      <text bytes="42">{{Infobox Film
| titre = Dark City
}}</text>
    </revision>
  </page>
  <page>
    <title>Alex Proyas</title>
    <revision>
      <text>{{Infobox Cinéma (personnalité)
| nom = Alex Proyas
}}</text>
    </revision>
  </page>
</mediawiki>`

func TestReader_Scan(t *testing.T) {
	t.Parallel()

	t.Run("yields pages in document order", func(t *testing.T) {
		t.Parallel()

		r := dump.NewReader(strings.NewReader(sampleDump))

		var pages []*filmoscope.Page
		for r.Scan() {
			pages = append(pages, r.Page())
		}
		require.NoError(t, r.Err())
		require.Len(t, pages, 2)

		assert.Equal(t, "Dark City", pages[0].Title)
		assert.Contains(t, pages[0].Text, "{{Infobox Film")
		assert.Equal(t, "Alex Proyas", pages[1].Title)
		assert.Contains(t, pages[1].Text, "personnalité")
	})

	t.Run("empty document yields nothing", func(t *testing.T) {
		t.Parallel()

		r := dump.NewReader(strings.NewReader("<mediawiki></mediawiki>"))
		assert.False(t, r.Scan())
		assert.NoError(t, r.Err())
	})

	t.Run("truncated document surfaces an error", func(t *testing.T) {
		t.Parallel()

		r := dump.NewReader(strings.NewReader("<mediawiki><page><title>X</title>"))
		for r.Scan() {
		}
		assert.Error(t, r.Err())
	})

	t.Run("scan after exhaustion keeps returning false", func(t *testing.T) {
		t.Parallel()

		r := dump.NewReader(strings.NewReader(sampleDump))
		for r.Scan() {
		}
		assert.False(t, r.Scan())
		assert.Nil(t, r.Page())
	})
}
