package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TypeScript(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.Parse([]byte("const x: number = 1;"), LanguageTypeScript, false)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Kind())
	assert.False(t, root.HasError())
}

func TestParse_TSX(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.Parse([]byte("const el = <div>hello</div>;"), LanguageTypeScript, true)
	require.NoError(t, err)
	defer tree.Close()

	assert.False(t, tree.RootNode().HasError())
}

func TestParse_JavaScript(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.Parse([]byte("function f() { return 1; }"), LanguageJavaScript, false)
	require.NoError(t, err)
	defer tree.Close()

	assert.False(t, tree.RootNode().HasError())
}

func TestParse_UnknownLanguage(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	_, err := m.Parse([]byte("x"), LanguageUnknown, false)
	assert.Error(t, err)
}

func TestParse_PartialTreeReturned(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.Parse([]byte("const x = ((("), LanguageTypeScript, false)
	require.NoError(t, err, "partial trees are returned, not rejected")
	defer tree.Close()

	assert.True(t, tree.RootNode().HasError())
}

func TestParseFile(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	tree, err := m.ParseFile([]byte("const el = <div/>;"), "src/app.tsx")
	require.NoError(t, err)
	tree.Close()

	_, err = m.ParseFile([]byte("x"), "notes.txt")
	assert.Error(t, err)
}

func TestParse_Concurrent(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := m.Parse([]byte("const x: string = 'y';"), LanguageTypeScript, false)
			assert.NoError(t, err)
			if tree != nil {
				tree.Close()
			}
		}()
	}
	wg.Wait()
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want Language
	}{
		{"a.ts", LanguageTypeScript},
		{"a.tsx", LanguageTypeScript},
		{"a.mts", LanguageTypeScript},
		{"a.js", LanguageJavaScript},
		{"a.jsx", LanguageJavaScript},
		{"a.cjs", LanguageJavaScript},
		{"a.go", LanguageUnknown},
		{"a", LanguageUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLanguage(tt.path), tt.path)
	}

	assert.True(t, IsTSXFile("a.tsx"))
	assert.False(t, IsTSXFile("a.ts"))
}
