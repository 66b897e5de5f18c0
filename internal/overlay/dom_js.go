// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package overlay

import "syscall/js"

// JSDocument is the live browser document.
type JSDocument struct {
	v js.Value
}

// JSElement wraps a DOM element.
type JSElement struct {
	v js.Value
}

// NewJSDocument binds to the global document.
func NewJSDocument() *JSDocument {
	return &JSDocument{v: js.Global().Get("document")}
}

func (d *JSDocument) CreateElement(tag string) Element {
	return &JSElement{v: d.v.Call("createElement", tag)}
}

func (d *JSDocument) GetElementByID(id string) (Container, bool) {
	v := d.v.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &JSElement{v: v}, true
}

func (e *JSElement) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *JSElement) SetInnerHTML(html string) {
	e.v.Set("innerHTML", html)
}

func (e *JSElement) AppendChild(child Element) {
	if c, ok := child.(*JSElement); ok {
		e.v.Call("appendChild", c.v)
	}
}

func (e *JSElement) SetStyle(property, value string) {
	e.v.Get("style").Set(property, value)
}
