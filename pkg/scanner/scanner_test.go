package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propspec/propspec/pkg/analyzer"
	"github.com/propspec/propspec/pkg/parser"
	"github.com/propspec/propspec/pkg/registry"
	"github.com/propspec/propspec/pkg/schema"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	pm := parser.NewManager(nil)
	t.Cleanup(func() { _ = pm.Close() })

	reg, err := registry.New(analyzer.New(pm, nil), 0, nil)
	require.NoError(t, err)
	return reg
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "button.tsx", "export {}")
	writeFixture(t, dir, "util.ts", "export {}")
	writeFixture(t, dir, "button.test.tsx", "export {}")
	writeFixture(t, dir, "node_modules/lib/index.ts", "export {}")
	writeFixture(t, dir, "readme.md", "# hi")

	files, err := DiscoverFiles(dir, DefaultScanConfig())
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"button.tsx", "util.ts"}, names)
}

func TestDiscoverFiles_Sorted(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "zeta.tsx", "export {}")
	writeFixture(t, dir, "alpha.tsx", "export {}")

	files, err := DiscoverFiles(dir, DefaultScanConfig())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "alpha.tsx", filepath.Base(files[0]))
	assert.Equal(t, "zeta.tsx", filepath.Base(files[1]))
}

func TestDiscoverFiles_InvalidPattern(t *testing.T) {
	_, err := DiscoverFiles(t.TempDir(), ScanConfig{Include: []string{"[["}})
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "button.tsx", `
interface Props { label: string; onClick?: () => void; }
export function Button({ label, onClick }: Props) {
  return <button onClick={onClick}>{label}</button>;
}
`)
	writeFixture(t, dir, "card.tsx", `type CardProps = { title: string };`)
	writeFixture(t, dir, "broken.ts", "((((%%%%")

	reg := newTestRegistry(t)
	stats, err := Scan(context.Background(), dir, DefaultScanConfig(), reg, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.Registered)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 1, stats.Fallbacks)

	assert.ElementsMatch(t, []string{"Button", "Card", "Broken"}, reg.List())

	button, found := reg.Get("Button")
	require.True(t, found)
	assert.Equal(t, schema.PlatformVanilla, button.Platform)
	require.Len(t, button.Props, 1)
	assert.Equal(t, "label", button.Props[0].Name)

	broken, found := reg.Get("Broken")
	require.True(t, found)
	assert.True(t, broken.IsFallback())
}

func TestScan_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.tsx", "export {}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := newTestRegistry(t)
	_, err := Scan(ctx, dir, DefaultScanConfig(), reg, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSourceCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "a.tsx", "const x = 1;")

	cache := NewSourceCache(nil)
	defer cache.Close()

	first, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", string(first))

	second, err := cache.Get(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Size())
}

func TestSourceCache_MissingFile(t *testing.T) {
	cache := NewSourceCache(nil)
	defer cache.Close()

	_, err := cache.Get(filepath.Join(t.TempDir(), "missing.tsx"))
	assert.Error(t, err)
}

func TestSourceCache_EmptyFileFallsBack(t *testing.T) {
	// mmap of a zero-length file fails; the cache must fall back to ReadFile.
	dir := t.TempDir()
	path := writeFixture(t, dir, "empty.ts", "")

	cache := NewSourceCache(nil)
	defer cache.Close()

	data, err := cache.Get(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
