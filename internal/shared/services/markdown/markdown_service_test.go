package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized_StripsScripts(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("## Description\n\nLogin fails<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "Description")
	assert.NotContains(t, out, "<script>")
}

func TestParse_HeadingSections(t *testing.T) {
	svc := NewMarkdownService()
	body := "Intro line.\n\n## Description\nLogin button does nothing on Safari.\n\n## Steps to Reproduce:\n1. Open Safari\n2. Click login\n"

	parsed := svc.Parse("Safari login broken", body)

	assert.Equal(t, "Safari login broken", parsed.Title)
	assert.Equal(t, body, parsed.RawContent)
	require.Len(t, parsed.Sections, 2)
	assert.Equal(t, "Description", parsed.Sections[0].SectionTitle)
	assert.Equal(t, "Login button does nothing on Safari.", parsed.Sections[0].Content)
	assert.Equal(t, "Steps to Reproduce", parsed.Sections[1].SectionTitle)
	assert.Equal(t, "1. Open Safari\n2. Click login", parsed.Sections[1].Content)
}

func TestParse_BoldSections(t *testing.T) {
	svc := NewMarkdownService()
	body := "**Description:**\n\nThe export hangs.\n\n**Use Case**\n\nMonthly reports."

	parsed := svc.Parse("Export", body)

	require.Len(t, parsed.Sections, 2)
	assert.Equal(t, "Description", parsed.Sections[0].SectionTitle)
	assert.Equal(t, "The export hangs.", parsed.Sections[0].Content)
	assert.Equal(t, "Use Case", parsed.Sections[1].SectionTitle)
	assert.Equal(t, "Monthly reports.", parsed.Sections[1].Content)
}

func TestParse_NoHeadings(t *testing.T) {
	parsed := NewMarkdownService().Parse("t", "just some text")
	assert.Empty(t, parsed.Sections)
	assert.Equal(t, "just some text", parsed.RawContent)
}
