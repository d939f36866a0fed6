package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Section is one titled block of a generated ticket body.
type Section struct {
	SectionTitle string `json:"section_title"`
	Content      string `json:"content"`
}

// ParsedAIResponse is a generated ticket body split into its sections.
type ParsedAIResponse struct {
	Title      string    `json:"title"`
	Sections   []Section `json:"sections"`
	RawContent string    `json:"raw_content"`
}

type MarkdownService interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
	Parse(title, markdown string) ParsedAIResponse
}

type markdownServiceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &markdownServiceImpl{
		md:     md,
		policy: policy,
	}
}

func (s *markdownServiceImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *markdownServiceImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *markdownServiceImpl) ToHTMLSanitized(markdown string) (string, error) {
	rendered, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.Sanitize(rendered), nil
}

// boundary marks a top-level block that opens a section.
type boundary struct {
	title      string
	lineStart  int
	contentPos int
}

// Parse splits the body on section headings. A heading is either a markdown
// heading of any level or a paragraph made only of bold text, e.g.
// "**Steps to Reproduce:**". Text before the first heading stays in RawContent only.
func (s *markdownServiceImpl) Parse(title, markdown string) ParsedAIResponse {
	src := []byte(markdown)
	doc := s.md.Parser().Parse(text.NewReader(src))

	var bounds []boundary
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := sectionHeading(n, src)
		if !ok || n.Lines().Len() == 0 {
			continue
		}
		first := n.Lines().At(0)
		last := n.Lines().At(n.Lines().Len() - 1)
		bounds = append(bounds, boundary{
			title:      heading,
			lineStart:  lineStart(src, first.Start),
			contentPos: skipSetextUnderline(src, lineEnd(src, last.Stop)),
		})
	}

	sections := make([]Section, 0, len(bounds))
	for i, b := range bounds {
		end := len(src)
		if i+1 < len(bounds) {
			end = bounds[i+1].lineStart
		}
		content := ""
		if b.contentPos < end {
			content = strings.TrimSpace(string(src[b.contentPos:end]))
		}
		sections = append(sections, Section{SectionTitle: b.title, Content: content})
	}

	return ParsedAIResponse{
		Title:      title,
		Sections:   sections,
		RawContent: markdown,
	}
}

func sectionHeading(n ast.Node, src []byte) (string, bool) {
	switch node := n.(type) {
	case *ast.Heading:
		return cleanHeading(inlineText(node, src)), true
	case *ast.Paragraph:
		emphasis, ok := node.FirstChild().(*ast.Emphasis)
		if !ok || emphasis.Level != 2 {
			return "", false
		}
		for rest := emphasis.NextSibling(); rest != nil; rest = rest.NextSibling() {
			t, isText := rest.(*ast.Text)
			if !isText || len(bytes.TrimSpace(t.Segment.Value(src))) > 0 {
				return "", false
			}
		}
		title := cleanHeading(inlineText(emphasis, src))
		return title, title != ""
	}
	return "", false
}

func cleanHeading(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ":"))
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func lineStart(src []byte, pos int) int {
	if pos > len(src) {
		pos = len(src)
	}
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

func lineEnd(src []byte, pos int) int {
	if pos >= len(src) {
		return len(src)
	}
	idx := bytes.IndexByte(src[pos:], '\n')
	if idx < 0 {
		return len(src)
	}
	return pos + idx + 1
}

// skipSetextUnderline steps over a "====" or "----" line following a heading.
func skipSetextUnderline(src []byte, pos int) int {
	end := lineEnd(src, pos)
	line := strings.TrimSpace(string(src[pos:end]))
	if line != "" && (strings.Trim(line, "=") == "" || strings.Trim(line, "-") == "") {
		return end
	}
	return pos
}
