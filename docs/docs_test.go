package docs

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	securityAnnotation   = regexp.MustCompile(`(?m)^\s*// @Security (\S+)`)
	securityDefAnnotated = regexp.MustCompile(`(?m)^// @securityDefinitions\.apikey (\S+)`)
)

func definedSchemes(t *testing.T) map[string]bool {
	t.Helper()
	var doc struct {
		SecurityDefinitions map[string]json.RawMessage `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	schemes := make(map[string]bool, len(doc.SecurityDefinitions))
	for name := range doc.SecurityDefinitions {
		schemes[name] = true
	}
	return schemes
}

func TestHandlerSecurityReferencesDefinedScheme(t *testing.T) {
	schemes := definedSchemes(t)
	require.NotEmpty(t, schemes)

	rootSrc, err := os.ReadFile(filepath.Join("..", "cmd", "jirant", "main.go"))
	require.NoError(t, err)
	for _, m := range securityDefAnnotated.FindAllStringSubmatch(string(rootSrc), -1) {
		assert.True(t, schemes[m[1]], "root annotation defines %q but docs do not", m[1])
	}

	var refs int
	root := filepath.Join("..", "internal", "interfaces", "http", "handlers")
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return err
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range securityAnnotation.FindAllStringSubmatch(string(src), -1) {
			refs++
			assert.True(t, schemes[m[1]], "%s references undefined security scheme %q", path, m[1])
		}
		return nil
	})
	require.NoError(t, err)
	assert.Positive(t, refs)
}
