package service

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
)

// readTimeWordsPerMinute assumed reading speed for read-time estimates.
const readTimeWordsPerMinute = 200

// RenderMarkdown render markdown source to HTML for detail responses.
func RenderMarkdown(md string) string {
	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	return string(markdown.ToHTML([]byte(md), nil, renderer))
}

// DeriveReadTime estimate reading time in minutes from the markdown word
// count, never less than one minute.
func DeriveReadTime(md string) int {
	words := len(strings.Fields(md))
	minutes := (words + readTimeWordsPerMinute - 1) / readTimeWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}
