// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyElement struct {
	tag   string
	attrs map[string]string
}

func (e *spyElement) SetAttribute(name, value string) { e.attrs[name] = value }

type spyContainer struct {
	inner    string
	children []Element
	style    map[string]string
}

func (c *spyContainer) SetInnerHTML(s string) { c.inner = s; c.children = nil }
func (c *spyContainer) AppendChild(child Element) { c.children = append(c.children, child) }
func (c *spyContainer) SetStyle(property, value string) { c.style[property] = value }

type spyDocument struct {
	created []*spyElement
	lookups []string
	box     *spyContainer
}

func (d *spyDocument) CreateElement(tag string) Element {
	e := &spyElement{tag: tag, attrs: map[string]string{}}
	d.created = append(d.created, e)
	return e
}

func (d *spyDocument) GetElementByID(id string) (Container, bool) {
	d.lookups = append(d.lookups, id)
	if id == LightboxID && d.box != nil {
		return d.box, true
	}
	return nil, false
}

func TestOpenLocationFrame(t *testing.T) {
	box := &spyContainer{inner: "<p>stale</p>", style: map[string]string{"display": ""}}
	doc := &spyDocument{box: box}

	require.NoError(t, OpenLocationFrame(doc))

	require.Len(t, doc.created, 1)
	frame := doc.created[0]
	assert.Equal(t, "iframe", frame.tag)
	assert.Equal(t, "LocationSelect.html", frame.attrs["src"])

	assert.Equal(t, []string{"locationLightbox"}, doc.lookups)
	assert.Equal(t, "", box.inner)
	require.Len(t, box.children, 1)
	assert.Same(t, frame, box.children[0])
	assert.Equal(t, "block", box.style["display"])
}

func TestOpenLocationFrame_NoContainer(t *testing.T) {
	doc := &spyDocument{}

	err := OpenLocationFrame(doc)
	assert.ErrorIs(t, err, ErrContainerNotFound)
	assert.Empty(t, doc.created)
}

func TestOpenLocationFrame_Page(t *testing.T) {
	p := NewPage("Weather", true)
	box := p.Lookup(LightboxID)
	require.NotNil(t, box)
	assert.Equal(t, "none", box.Style("display"))
	box.SetInnerHTML("<p>old</p>")

	require.NoError(t, OpenLocationFrame(p))
	// Opening twice replaces the frame rather than stacking another.
	require.NoError(t, OpenLocationFrame(p))

	assert.Equal(t, 2, p.Created())
	assert.Equal(t, "block", box.Style("display"))
	assert.Equal(t, "", box.InnerHTML())
	require.Len(t, box.Children(), 1)

	src, ok := box.Children()[0].Attribute("src")
	assert.True(t, ok)
	assert.Equal(t, FrameSource, src)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	assert.Equal(t,
		"<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Weather</title></head>"+
			`<body><div id="locationLightbox" class="lightbox" style="display: block">`+
			`<iframe src="LocationSelect.html"></iframe></div></body></html>`+"\n",
		buf.String())
}

func TestOpenLocationFrame_PageWithoutLightbox(t *testing.T) {
	p := NewPage("Bare", false)
	assert.ErrorIs(t, OpenLocationFrame(p), ErrContainerNotFound)
	assert.Equal(t, 0, p.Created())
}

func TestNode(t *testing.T) {
	n := NewNode("DIV")
	n.SetAttribute("Title", `a "quoted" <value>`)
	n.SetAttribute("title", "second")
	n.SetStyle("display", "none")
	n.SetStyle("display", "block")
	n.AppendChild(&spyElement{attrs: map[string]string{}})

	assert.Empty(t, n.Children())

	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	assert.Equal(t, `<div title="second" style="display: block"></div>`, buf.String())

	n.SetAttribute("title", `<b>&`)
	buf.Reset()
	require.NoError(t, n.Render(&buf))
	assert.Equal(t, `<div title="&lt;b&gt;&amp;" style="display: block"></div>`, buf.String())
}
