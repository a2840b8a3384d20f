package container

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Infrastructure adapters must stay domain-agnostic; domain-aware
// gateways live under internal/domains/<domain>/gateway.
func TestInfrastructureDoesNotImportDomains(t *testing.T) {
	root := filepath.Join("..", "..", "internal", "infrastructure")
	fset := token.NewFileSet()
	checked := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
			return err
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		checked++
		for _, imp := range f.Imports {
			p, _ := strconv.Unquote(imp.Path.Value)
			assert.NotContains(t, p, "actor-catalog/internal/domains/", "%s imports %s", path, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Positive(t, checked)
}
