package stylesheet_test

import (
	"bytes"
	"testing"

	"bennypowers.dev/tuc/internal/rules"
	"bennypowers.dev/tuc/internal/stylesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, class, pseudo string, minWidth int, utility string) stylesheet.Entry {
	t.Helper()
	decl, ok := rules.Resolve(utility)
	require.True(t, ok, utility)
	return stylesheet.Entry{Class: class, Pseudo: pseudo, MinWidth: minWidth, Declaration: decl}
}

func TestEscape(t *testing.T) {
	tests := map[string]string{
		"bg-x":           "bg-x",
		"border-bar/50":  `border-bar\/50`,
		"md:hover:bg-x":  `md\:hover\:bg-x`,
		"2xl:text-a":     `\32 xl\:text-a`,
		"-5":             `-\35 `,
		"-":              `\-`,
		"w-1.5":          `w-1\.5`,
		"a(b)":           `a\(b\)`,
		"héllo_wörld":    "héllo_wörld",
		"tab\there":      `tab\9 here`,
	}
	for in, want := range tests {
		assert.Equal(t, want, stylesheet.Escape(in), in)
	}
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "border-color", stylesheet.PropertyName("borderColor"))
	assert.Equal(t, "background", stylesheet.PropertyName("background"))
	assert.Equal(t, "font-family", stylesheet.PropertyName("fontFamily"))
	assert.Equal(t, "--sys-bg", stylesheet.PropertyName("--sys-bg"))
}

func TestRender(t *testing.T) {
	entries := []stylesheet.Entry{
		entry(t, "md:bg-x", "", 768, "bg-x"),
		entry(t, "hover:text-y", ":hover", 0, "text-y"),
		entry(t, "border-bar/50", "", 0, "border-bar/50"),
		entry(t, "sm:hover:bg-z", ":hover", 640, "bg-z"),
		entry(t, "bg-a", "", 0, "bg-a"),
		entry(t, "md:text-y", "", 768, "text-y"),
	}

	got := stylesheet.Render(entries, stylesheet.Options{
		Root: []stylesheet.CustomProperty{{Name: "--x", Value: "#fff"}},
	})

	want := `:root {
  --x: #fff;
}
.bg-a {
  background: var(--a);
}
.border-bar\/50 {
  border-color: color-mix(in oklab, var(--bar) 50%, transparent);
}
.hover\:text-y:hover {
  color: var(--y);
}
@media (min-width: 640px) {
  .sm\:hover\:bg-z:hover {
    background: var(--z);
  }
}
@media (min-width: 768px) {
  .md\:bg-x {
    background: var(--x);
  }
  .md\:text-y {
    color: var(--y);
  }
}
`
	assert.Equal(t, want, got)
}

func TestSortPseudoByClass(t *testing.T) {
	entries := []stylesheet.Entry{
		entry(t, "hover:bg-a", ":hover", 0, "bg-a"),
		entry(t, "focus-visible:bg-a", ":focus-visible", 0, "bg-a"),
		entry(t, "active:bg-a", ":active", 0, "bg-a"),
		entry(t, "first:bg-a", ":first-child", 0, "bg-a"),
		entry(t, "bg-z", "", 0, "bg-z"),
	}
	stylesheet.Sort(entries)

	classes := make([]string, 0, len(entries))
	for _, e := range entries {
		classes = append(classes, e.Class)
	}
	assert.Equal(t, []string{
		"bg-z",
		"active:bg-a",
		"first:bg-a",
		"focus-visible:bg-a",
		"hover:bg-a",
	}, classes)
}

func TestRenderMinified(t *testing.T) {
	entries := []stylesheet.Entry{
		entry(t, "lg:bg-x", "", 1024, "bg-x"),
		entry(t, "text-y/5", "", 0, "text-y/5"),
	}
	var buf bytes.Buffer
	err := stylesheet.Write(&buf, entries, stylesheet.Options{
		Minify: true,
		Root: []stylesheet.CustomProperty{
			{Name: "--a", Value: "1px"},
			{Name: "--b", Value: "2px"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`:root{--a:1px;--b:2px}.text-y\/5{color:color-mix(in oklab, var(--y) 5%, transparent)}@media (min-width:1024px){.lg\:bg-x{background:var(--x)}}`,
		buf.String())
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, stylesheet.Render(nil, stylesheet.Options{}))
}
