package template

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/shared/logger"
)

func TestDefaultTemplateLoader_Embedded(t *testing.T) {
	defs, err := NewDefaultTemplateLoader("", logger.NewNop()).Load()
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "Bug Report", defs[0].Name)
	assert.Equal(t, 1, defs[0].Tier)
	require.Len(t, defs[0].Sections, 3)
	assert.Equal(t, "Description", defs[0].Sections[0].SectionTitle)
	assert.Equal(t, "Steps to Reproduce", defs[0].Sections[1].SectionTitle)
	assert.Equal(t, "Feature Request", defs[1].Name)
	assert.Equal(t, "Task", defs[2].Name)
}

func TestDefaultTemplateLoader_MissingDirFallsBack(t *testing.T) {
	defs, err := NewDefaultTemplateLoader(filepath.Join(t.TempDir(), "nope"), logger.NewNop()).Load()
	require.NoError(t, err)
	assert.Len(t, defs, 3)
}

func TestDefaultTemplateLoader_Override(t *testing.T) {
	dir := t.TempDir()
	content := `
templates:
  - name: Incident
    details: Production incident write-up
    icon: alert
    color: text-orange-500
    tier: 1
    sections:
      - sectionTitle: Impact
        content: ""
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "defaults.yml"), []byte(content), 0o644))

	defs, err := NewDefaultTemplateLoader(dir, logger.NewNop()).Load()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Incident", defs[0].Name)
	assert.Equal(t, "", defs[0].Sections[0].Content)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty", "templates: []", "no templates defined"},
		{"bad tier", "templates:\n  - {name: A, details: d, icon: i, color: c, tier: 9}", "tier must be between"},
		{"missing icon", "templates:\n  - {name: A, details: d, color: c, tier: 1}", "icon is required"},
		{"duplicate folded name", "templates:\n  - {name: Task, details: d, icon: i, color: c, tier: 1}\n  - {name: ' TASK ', details: d, icon: i, color: c, tier: 2}", "duplicate name"},
		{"not yaml", "templates: [", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaultTemplateLoader_ConcurrentLoadsGetOwnSlices(t *testing.T) {
	loader := NewDefaultTemplateLoader("", logger.NewNop())

	results := make([][]string, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defs, err := loader.Load()
			if err != nil {
				return
			}
			defs[0].Name = "mutated"
			names := make([]string, 0, len(defs))
			for _, d := range defs {
				names = append(names, d.Name)
			}
			results[i] = names
		}(i)
	}
	wg.Wait()

	defs, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "Bug Report", defs[0].Name)
	for _, names := range results {
		assert.Len(t, names, 3)
	}
}
