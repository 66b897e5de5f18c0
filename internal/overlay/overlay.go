// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"errors"

	"github.com/apex/log"
)

const (
	// LightboxID identifies the overlay container in the hosting page.
	LightboxID = "locationLightbox"
	// FrameSource is loaded into the overlay, relative to the hosting page.
	FrameSource = "LocationSelect.html"
)

var ErrContainerNotFound = errors.New("overlay container not found")

// Element is a newly created node that can be configured before insertion.
type Element interface {
	SetAttribute(name, value string)
}

// Container is an existing node that can receive children.
type Container interface {
	SetInnerHTML(html string)
	AppendChild(child Element)
	SetStyle(property, value string)
}

// Document creates elements and finds containers by id.
type Document interface {
	CreateElement(tag string) Element
	GetElementByID(id string) (Container, bool)
}

// OpenLocationFrame replaces the contents of the LightboxID container with an
// iframe loading FrameSource and makes the container visible. Nothing is
// created when the container is absent.
func OpenLocationFrame(doc Document) error {
	box, ok := doc.GetElementByID(LightboxID)
	if !ok {
		log.Warnf("no #%s in document", LightboxID)
		return ErrContainerNotFound
	}

	frame := doc.CreateElement("iframe")
	frame.SetAttribute("src", FrameSource)

	box.SetInnerHTML("")
	box.AppendChild(frame)
	box.SetStyle("display", "block")

	log.Debugf("opened %s in #%s", FrameSource, LightboxID)
	return nil
}
