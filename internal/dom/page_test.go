package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shell = `<!DOCTYPE html>
<html><head><title>Placeholder</title></head>
<body>
<span data-brand>Brand</span>
<ul id="list"><li>static</li></ul>
<div id="box" style="color: red; background-image: url(&quot;a;b.jpg&quot;)"></div>
<template id="row-template"><li><span class="name">Name</span></li></template>
</body></html>`

func mustParse(t *testing.T, src string) *Page {
	t.Helper()
	p, err := ParseString(src)
	require.NoError(t, err)
	return p
}

func TestByIDAndAll(t *testing.T) {
	p := mustParse(t, shell)

	assert.Equal(t, 1, p.ByID("list").Length())
	assert.Equal(t, 0, p.ByID("missing").Length())
	assert.Equal(t, 1, p.All("[data-brand]").Length())

	// Elements inside template content are invisible to queries.
	assert.Equal(t, 0, p.All(".name").Length())
}

func TestTemplateInstantiateIsDetached(t *testing.T) {
	p := mustParse(t, shell)
	tpl, ok := p.Template("row-template")
	require.True(t, ok)
	assert.Equal(t, "row-template", tpl.ID())

	a := tpl.Instantiate()
	a.First(".name").SetText("first")
	b := tpl.Instantiate()
	assert.Equal(t, "Name", b.First(".name").Text())

	list := p.ByID("list")
	Clear(list)
	a.AppendTo(list)
	b.AppendTo(list)
	assert.Equal(t, 2, list.Children().Length())
	assert.Equal(t, "first", list.Find(".name").First().Text())

	_, ok = p.Template("nope")
	assert.False(t, ok)
}

func TestTemplateSnapshotSurvivesPageEdits(t *testing.T) {
	p := mustParse(t, shell)
	p.Document().Find("template#row-template").Remove()

	tpl, ok := p.Template("row-template")
	require.True(t, ok)
	assert.Equal(t, "Name", tpl.Instantiate().First(".name").Text())
}

func TestNewFragment(t *testing.T) {
	f := NewFragment(`<div class="card"><h3></h3></div>`)
	f.First("h3").SetText("<b>escaped</b>")

	p := mustParse(t, shell)
	f.AppendTo(p.ByID("box"))

	out, err := p.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `<h3>&lt;b&gt;escaped&lt;/b&gt;</h3>`)
}

func TestSetStyleMergesDeclarations(t *testing.T) {
	p := mustParse(t, shell)
	box := p.ByID("box")

	SetStyle(box, "display", "none")
	SetStyle(box, "color", "blue")

	assert.Equal(t, "blue", Style(box, "color"))
	assert.Equal(t, "none", Style(box, "display"))
	assert.Equal(t, `url("a;b.jpg")`, Style(box, "background-image"))

	// Setting the same value again is stable.
	before, _ := box.Attr("style")
	SetStyle(box, "display", "none")
	after, _ := box.Attr("style")
	assert.Equal(t, before, after)
}

func TestBackgroundImageEscapesQuotes(t *testing.T) {
	assert.Equal(t, `url("img/a.jpg")`, BackgroundImage("img/a.jpg"))
	assert.Equal(t, `url("x\"y.jpg")`, BackgroundImage(`x"y.jpg`))
}

func TestTitleAndBodyFlags(t *testing.T) {
	p := mustParse(t, shell)
	p.SetTitle("Foodee")
	assert.Equal(t, "Foodee", p.Title())

	assert.False(t, p.BodyFlag("cms-preview"))
	p.MarkPreview()
	assert.True(t, p.BodyFlag("cms-preview"))

	bare := mustParse(t, `<p>no head</p>`)
	bare.SetTitle("Added")
	assert.Equal(t, "Added", bare.Title())
}

func TestRenderRoundTrip(t *testing.T) {
	p := mustParse(t, shell)
	out, err := p.HTML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<template id="row-template">`)
}
