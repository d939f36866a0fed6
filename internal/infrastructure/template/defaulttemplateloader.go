package template

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/logger"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

// override file names looked up in the configured directory, in order
var overrideFiles = []string{"defaults.yaml", "defaults.yml"}

type sectionFile struct {
	SectionTitle string `yaml:"sectionTitle"`
	Content      string `yaml:"content"`
}

type templateFile struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Details     string        `yaml:"details"`
	Icon        string        `yaml:"icon"`
	Color       string        `yaml:"color"`
	Tier        int           `yaml:"tier"`
	Sections    []sectionFile `yaml:"sections"`
}

type defaultsFile struct {
	Templates []templateFile `yaml:"templates"`
}

// DefaultTemplateLoader provides the ticket types seeded for new users: the
// embedded set, or a defaults.yaml found in the configured directory.
type DefaultTemplateLoader struct {
	path   string
	logger logger.Interface
	group  singleflight.Group
}

func NewDefaultTemplateLoader(path string, logger logger.Interface) *DefaultTemplateLoader {
	return &DefaultTemplateLoader{
		path:   path,
		logger: logger,
	}
}

// Load returns validated definitions in file order. Concurrent calls share
// one read of the file.
func (l *DefaultTemplateLoader) Load() ([]tickettemplate.Definition, error) {
	v, err, _ := l.group.Do("defaults", func() (interface{}, error) {
		return l.load()
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]tickettemplate.Definition)
	defs := make([]tickettemplate.Definition, len(shared))
	copy(defs, shared)
	return defs, nil
}

func (l *DefaultTemplateLoader) load() ([]tickettemplate.Definition, error) {
	content, source, err := l.read()
	if err != nil {
		return nil, err
	}

	defs, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	l.logger.Debugw("default ticket types loaded", "source", source, "count", len(defs))
	return defs, nil
}

func (l *DefaultTemplateLoader) read() ([]byte, string, error) {
	if l.path == "" {
		return embeddedDefaults, "embedded", nil
	}

	for _, name := range overrideFiles {
		filePath := filepath.Join(l.path, name)
		content, err := os.ReadFile(filePath)
		if err == nil {
			return content, filePath, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warnw("failed to read default templates file", "file", filePath, "error", err)
			return nil, "", fmt.Errorf("failed to read %s: %w", filePath, err)
		}
	}

	return embeddedDefaults, "embedded", nil
}

// Parse decodes a defaults file and validates every entry.
func Parse(content []byte) ([]tickettemplate.Definition, error) {
	var file defaultsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("no templates defined")
	}

	seen := make(map[string]bool, len(file.Templates))
	defs := make([]tickettemplate.Definition, 0, len(file.Templates))
	for i, tf := range file.Templates {
		def := tf.toDefinition()
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("template %d (%q): %w", i, tf.Name, err)
		}
		key := tickettemplate.FoldName(def.Name)
		if seen[key] {
			return nil, fmt.Errorf("template %d: duplicate name %q", i, tf.Name)
		}
		seen[key] = true
		defs = append(defs, def)
	}
	return defs, nil
}

func (tf templateFile) toDefinition() tickettemplate.Definition {
	sections := make([]tickettemplate.Section, 0, len(tf.Sections))
	for _, s := range tf.Sections {
		sections = append(sections, tickettemplate.Section{SectionTitle: s.SectionTitle, Content: s.Content})
	}
	return tickettemplate.Definition{
		Name:        tf.Name,
		Description: tf.Description,
		Details:     tf.Details,
		Sections:    sections,
		Icon:        tf.Icon,
		Color:       tf.Color,
		Tier:        tf.Tier,
	}
}
