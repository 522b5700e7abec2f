package cssprune

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunFindsUnusedRules(t *testing.T) {
	dir := t.TempDir()

	sheet := writeFile(t, dir, "styles.css", `.used { color: red; }
.unused { color: blue; }
.parent {
  &-child { color: green; }
}
`)
	search := writeFile(t, dir, "page.html", `<main>
  <div class="used">hello</div>
  <i class="parent">x</i>
  <span class="parent-child">world</span>
</main>
`)

	result, err := Run(Config{
		Stylesheets: []string{sheet},
		SearchPaths: []string{search},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 1, result.FilesParsed)
	assert.Equal(t, 4, result.RulesSeen)
	assert.Positive(t, result.TokenCount)
	assert.Positive(t, result.IndexSize)
	assert.Empty(t, result.Warnings)

	require.Len(t, result.Unused, 1)
	assert.Equal(t, sheet, result.Unused[0].File)
	assert.Equal(t, ".unused", result.Unused[0].Selector)
	assert.Equal(t, 22, result.Unused[0].Offset)
}

func TestRunSkipsUnbalancedStylesheet(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.css", ".ok { }\n")
	bad := writeFile(t, dir, "bad.css", "} .broken { }\n")
	search := writeFile(t, dir, "app.js", `el.className = "ok";`)

	result, err := Run(Config{
		Stylesheets: []string{good, bad},
		SearchPaths: []string{search},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesParsed)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], bad)
	assert.Contains(t, result.Warnings[0], "offset 0")
}

func TestRunWarnsOnInvalidNesting(t *testing.T) {
	dir := t.TempDir()

	sheet := writeFile(t, dir, "styles.css", "& { color: red; }\n")
	search := writeFile(t, dir, "app.js", `"anything-here"`)

	result, err := Run(Config{
		Stylesheets: []string{sheet},
		SearchPaths: []string{search},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Unused, "blocks that fail to normalize are kept")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], sheet)
}

func TestRunCapacityExceededAborts(t *testing.T) {
	dir := t.TempDir()

	sheet := writeFile(t, dir, "styles.css", ".a { }\n")
	search := writeFile(t, dir, "app.js", `"one-long-token-over-the-limit"`)

	_, err := Run(Config{
		Stylesheets:  []string{sheet},
		SearchPaths:  []string{search},
		MaxIndexSize: 4,
	})
	require.Error(t, err)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, int64(4), capErr.Limit)
}

func TestRunMissingSearchFileFatal(t *testing.T) {
	dir := t.TempDir()
	sheet := writeFile(t, dir, "styles.css", ".a { }\n")

	_, err := Run(Config{
		Stylesheets: []string{sheet},
		SearchPaths: []string{filepath.Join(dir, "nope.js")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read search file")
}

func TestRunNoFilesMatched(t *testing.T) {
	dir := t.TempDir()
	sheet := writeFile(t, dir, "styles.css", ".a { }\n")

	_, err := Run(Config{
		Stylesheets: []string{sheet},
		SearchPaths: []string{filepath.Join(dir, "*.nope")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no search files matched")
}

func TestRunGlobExpansion(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "one.css", ".used { }\n")
	writeFile(t, dir, "two.css", ".missing { }\n")
	writeFile(t, dir, "index.html", `<p class="used">x</p>`)

	result, err := Run(Config{
		Stylesheets: []string{filepath.Join(dir, "*.css")},
		SearchPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesParsed)
	require.Len(t, result.Unused, 1)
	assert.Equal(t, ".missing", result.Unused[0].Selector)
}
