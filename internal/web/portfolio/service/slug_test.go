package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		title string
		want  string
	}{
		{"Getting Started with ML!", "getting-started-with-ml"},
		{"Getting Started with Machine Learning", "getting-started-with-machine-learning"},
		{"Hello, World", "hello-world"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"---already---dashed---", "already-dashed"},
		{"C++ & Go: A Comparison", "c-go-a-comparison"},
		{"UPPER case", "upper-case"},
		{"100% coverage?", "100-coverage"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.title, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestDeriveReadTime(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, DeriveReadTime(""))
	require.Equal(t, 1, DeriveReadTime("short post"))
	require.Equal(t, 1, DeriveReadTime(strings.Repeat("word ", 200)))
	require.Equal(t, 2, DeriveReadTime(strings.Repeat("word ", 201)))
	require.Equal(t, 5, DeriveReadTime(strings.Repeat("word ", 1000)))
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	out := RenderMarkdown("## Heading\n\nsome *emphasis* and a [link](https://example.com)")
	require.Contains(t, out, "<h2")
	require.Contains(t, out, "<em>emphasis</em>")
	require.Contains(t, out, `target="_blank"`)
}
