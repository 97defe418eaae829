package web

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystem_Embedded(t *testing.T) {
	files := FileSystem("")

	for _, name := range []string{"/index.html", "/js/app.js", "/css/styles.css"} {
		f, err := files.Open(name)
		require.NoError(t, err, name)
		_ = f.Close()
	}
}

func TestFileSystem_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>dev</h1>"), 0o644))

	f, err := FileSystem(dir).Open("/index.html")
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "<h1>dev</h1>", string(content))
}

func TestIndex_FormHasNoHiddenIDField(t *testing.T) {
	f, err := FileSystem("").Open("/index.html")
	require.NoError(t, err)
	defer f.Close()

	content, err := io.ReadAll(f)
	require.NoError(t, err)
	// 编辑状态只保存在 app.js 的 state.editingId 中
	assert.NotContains(t, string(content), `type="hidden"`)
	assert.Contains(t, string(content), `id="usuario-form"`)
}
