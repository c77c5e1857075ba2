package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.11/">
  <page>
    <title>Dark City</title>
    <revision>
      <text>{{Infobox Film
| titre = Dark City
| réalisation = [[Alex Proyas]]
| genre = [[Science-fiction]]
| durée = 95 minutes
| sortie = 1998
}}

== Synopsis ==
John Murdoch se réveille dans la baignoire d'une chambre d'hôtel, amnésique, poursuivi par d'étranges hommes en noir.

{{IMDb titre|0118929}}</text>
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
  <page>
    <title>Alphaville (film)</title>
    <revision>
      <text>{{Infobox Film
| titre = Alphaville
| réalisation = [[Jean-Luc Godard]]
| sortie = 1965
}}</text>
    </revision>
  </page>
</mediawiki>`

// writeTestDump writes a zstd-compressed dump and returns its stem.
func writeTestDump(t *testing.T, dir string) string {
	t.Helper()

	stem := filepath.Join(dir, "frwiki-test.xml")
	f, err := os.Create(stem + ".zst")
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = enc.Write([]byte(testDump))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	return stem
}

func newTestMain(t *testing.T) *Main {
	t.Helper()

	m := NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "filmoscope.db")
	return m
}

func TestMain_Sync(t *testing.T) {
	t.Parallel()

	t.Run("extracts films end to end", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stem := writeTestDump(t, t.TempDir())

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"sync", stem}, &stdout, &stderr)
		require.NoError(t, err, stderr.String())

		out := stdout.String()
		assert.Contains(t, out, "3 pages processed")
		assert.Contains(t, out, "2 films")
		assert.Contains(t, out, "2 new")
	})

	t.Run("second identical pass is all touches", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stem := writeTestDump(t, t.TempDir())
		ctx := context.Background()

		var stdout, stderr bytes.Buffer
		require.NoError(t, m.Run(ctx, []string{"sync", stem}, &stdout, &stderr))

		stdout.Reset()
		m2 := NewMain()
		m2.DBPath = m.DBPath
		require.NoError(t, m2.Run(ctx, []string{"sync", stem}, &stdout, &stderr))

		assert.Contains(t, stdout.String(), "0 new, 0 updated, 2 unchanged")
	})

	t.Run("missing dump file fails before processing", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"sync", filepath.Join(t.TempDir(), "absent.xml")}, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dump file not found")
	})
}

func TestMain_Export(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)
	stem := writeTestDump(t, t.TempDir())
	ctx := context.Background()

	var stdout, stderr bytes.Buffer
	require.NoError(t, m.Run(ctx, []string{"sync", stem}, &stdout, &stderr))

	stdout.Reset()
	m2 := NewMain()
	m2.DBPath = m.DBPath
	require.NoError(t, m2.Run(ctx, []string{"export"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"index":0`)
	assert.Contains(t, lines[0], "Dark City 1998")
	assert.Contains(t, lines[0], "John Murdoch")
	assert.Contains(t, lines[1], `"index":1`)
	assert.Contains(t, lines[1], "Alphaville 1965")
}

func TestMain_Stats(t *testing.T) {
	t.Parallel()

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)

		var stdout, stderr bytes.Buffer
		require.NoError(t, m.Run(context.Background(), []string{"stats"}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "articles: 0")
	})

	t.Run("after a pass", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		stem := writeTestDump(t, t.TempDir())
		ctx := context.Background()

		var stdout, stderr bytes.Buffer
		require.NoError(t, m.Run(ctx, []string{"sync", stem}, &stdout, &stderr))

		stdout.Reset()
		m2 := NewMain()
		m2.DBPath = m.DBPath
		require.NoError(t, m2.Run(ctx, []string{"stats"}, &stdout, &stderr))

		out := stdout.String()
		assert.Contains(t, out, "articles: 2")
		assert.Contains(t, out, "max id:   2")
	})
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
