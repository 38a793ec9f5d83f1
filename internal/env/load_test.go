package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `
# comment
SIMULACRA_TITLE="Quoted Title"
export LOG_LEVEL=debug
=novalue
BROKEN
SIMULACRA_WIDTH = 640
SINGLE='x'
`
	vars, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"SIMULACRA_TITLE", "Quoted Title"},
		{"LOG_LEVEL", "debug"},
		{"SIMULACRA_WIDTH", "640"},
		{"SINGLE", "x"},
	}, vars)
}

func TestLoad_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENVTEST_KEEP=file\nENVTEST_NEW=file\n"), 0644))

	t.Setenv("ENVTEST_KEEP", "process")
	t.Setenv("ENVTEST_NEW", "")
	require.NoError(t, os.Unsetenv("ENVTEST_NEW"))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENVTEST_NEW"}, set)
	assert.Equal(t, "process", os.Getenv("ENVTEST_KEEP"))
	assert.Equal(t, "file", os.Getenv("ENVTEST_NEW"))
}

func TestLoad_MissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, set)
}
