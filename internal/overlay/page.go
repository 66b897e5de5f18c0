// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/apex/log"
)

// Node is an element in a Page. Attributes and style properties keep their
// insertion order so rendering is stable.
type Node struct {
	Tag      string
	attrs    [][2]string
	style    [][2]string
	inner    string
	children []*Node
}

// NewNode returns an empty element.
func NewNode(tag string) *Node {
	return &Node{Tag: strings.ToLower(tag)}
}

func set(pairs [][2]string, name, value string) [][2]string {
	for i := range pairs {
		if pairs[i][0] == name {
			pairs[i][1] = value
			return pairs
		}
	}
	return append(pairs, [2]string{name, value})
}

func get(pairs [][2]string, name string) (string, bool) {
	for _, p := range pairs {
		if p[0] == name {
			return p[1], true
		}
	}
	return "", false
}

func (n *Node) SetAttribute(name, value string) {
	n.attrs = set(n.attrs, strings.ToLower(name), value)
}

// Attribute returns the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	return get(n.attrs, strings.ToLower(name))
}

// SetInnerHTML replaces the node's content, dropping all children.
func (n *Node) SetInnerHTML(s string) {
	n.inner = s
	n.children = nil
}

// InnerHTML returns the raw markup set by SetInnerHTML.
func (n *Node) InnerHTML() string { return n.inner }

// AppendChild adds child after existing content. Only *Node children created
// by a Page can be attached.
func (n *Node) AppendChild(child Element) {
	c, ok := child.(*Node)
	if !ok {
		log.Warnf("cannot append %T to <%s>", child, n.Tag)
		return
	}
	n.children = append(n.children, c)
}

func (n *Node) SetStyle(property, value string) {
	n.style = set(n.style, property, value)
}

// Style returns a style property, "" when unset.
func (n *Node) Style(property string) string {
	v, _ := get(n.style, property)
	return v
}

func (n *Node) Children() []*Node { return n.children }

// find walks the subtree depth first for a node with the given id.
func (n *Node) find(id string) *Node {
	if v, ok := n.Attribute("id"); ok && v == id {
		return n
	}
	for _, c := range n.children {
		if f := c.find(id); f != nil {
			return f
		}
	}
	return nil
}

// Render writes the node as HTML.
func (n *Node) Render(w io.Writer) error {
	var b strings.Builder
	n.render(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

func (n *Node) render(b *strings.Builder) {
	b.WriteString("<" + n.Tag)
	for _, a := range n.attrs {
		fmt.Fprintf(b, ` %s="%s"`, a[0], html.EscapeString(a[1]))
	}
	if len(n.style) > 0 {
		var decls []string
		for _, s := range n.style {
			decls = append(decls, s[0]+": "+s[1])
		}
		fmt.Fprintf(b, ` style="%s"`, html.EscapeString(strings.Join(decls, "; ")))
	}
	b.WriteString(">")
	b.WriteString(n.inner)
	for _, c := range n.children {
		c.render(b)
	}
	b.WriteString("</" + n.Tag + ">")
}

// Page is an in-memory Document: a body holding the hidden lightbox
// container, ready for OpenLocationFrame.
type Page struct {
	Title   string
	body    *Node
	created int
}

// NewPage returns a page whose body contains a hidden #locationLightbox.
// Pass includeLightbox=false to model a page without the container.
func NewPage(title string, includeLightbox bool) *Page {
	p := &Page{Title: title, body: NewNode("body")}
	if includeLightbox {
		box := NewNode("div")
		box.SetAttribute("id", LightboxID)
		box.SetAttribute("class", "lightbox")
		box.SetStyle("display", "none")
		p.body.AppendChild(box)
	}
	return p
}

// Body returns the page body.
func (p *Page) Body() *Node { return p.body }

// Created counts elements made through CreateElement.
func (p *Page) Created() int { return p.created }

func (p *Page) CreateElement(tag string) Element {
	p.created++
	return NewNode(tag)
}

func (p *Page) GetElementByID(id string) (Container, bool) {
	n := p.Lookup(id)
	if n == nil {
		return nil, false
	}
	return n, true
}

// Lookup is GetElementByID returning the concrete node, nil when absent.
func (p *Page) Lookup(id string) *Node {
	return p.body.find(id)
}

// Render writes the whole page as an HTML document.
func (p *Page) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(p.Title))
	b.WriteString("</title></head>")
	p.body.render(&b)
	b.WriteString("</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
