package assets

import (
	"os"
	"path/filepath"
	"testing"

	"quiz-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header plus IHDR chunk start; enough for type sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestLibrary_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "owl.png"), pngBytes, 0o644))

	att, err := NewLibrary(dir).Load("owl.png")
	require.NoError(t, err)
	assert.Equal(t, "owl.png", att.Filename)
	assert.Equal(t, "image/png", att.ContentType)
	assert.Equal(t, pngBytes, att.Content)
}

func TestLibrary_LoadMissing(t *testing.T) {
	_, err := NewLibrary(t.TempDir()).Load("unicorn.png")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.TypeNotFound))
}

func TestLibrary_LoadStaysInDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "results")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("nope"), 0o644))

	_, err := NewLibrary(dir).Load("../secret.txt")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.TypeNotFound))

	_, err = NewLibrary(dir).Load("")
	assert.True(t, apperror.Is(err, apperror.TypeNotFound))
}
