package viewer

import (
	"fmt"
	"math"
)

const (
	ZoomStep    = 0.25
	MinZoom     = 0.25
	MaxZoom     = 5.0
	DefaultZoom = 1.0
)

// Document is the presentation state the menu commands act on. Pages is
// zero when the loader could not report a page count; paging is then only
// bounded below.
type Document struct {
	Name  string
	Pages int
	Page  int
	Zoom  float64
}

// NewDocument returns the empty state: no document, page 1, default zoom.
func NewDocument() *Document {
	return &Document{Page: 1, Zoom: DefaultZoom}
}

func (d *Document) Loaded() bool {
	return d.Name != ""
}

func (d *Document) Open(name string, pages int) {
	if pages < 0 {
		pages = 0
	}
	d.Name = name
	d.Pages = pages
	d.Page = 1
	d.Zoom = DefaultZoom
}

func (d *Document) Close() {
	*d = *NewDocument()
}

func (d *Document) ZoomIn() {
	d.setZoom(d.Zoom + ZoomStep)
}

func (d *Document) ZoomOut() {
	d.setZoom(d.Zoom - ZoomStep)
}

func (d *Document) ResetZoom() {
	d.Zoom = DefaultZoom
}

func (d *Document) setZoom(z float64) {
	d.Zoom = math.Max(MinZoom, math.Min(z, MaxZoom))
}

func (d *Document) NextPage() {
	if !d.Loaded() {
		return
	}
	if d.Pages > 0 && d.Page >= d.Pages {
		return
	}
	d.Page++
}

func (d *Document) PrevPage() {
	if !d.Loaded() || d.Page <= 1 {
		return
	}
	d.Page--
}

// SetPage moves to page n, clamped to the known page range.
func (d *Document) SetPage(n int) {
	if !d.Loaded() {
		return
	}
	if n < 1 {
		n = 1
	}
	if d.Pages > 0 && n > d.Pages {
		n = d.Pages
	}
	d.Page = n
}

func (d *Document) String() string {
	if !d.Loaded() {
		return fmt.Sprintf("No document open · %.0f%%", d.Zoom*100)
	}
	if d.Pages == 0 {
		return fmt.Sprintf("%s · page %d · %.0f%%", d.Name, d.Page, d.Zoom*100)
	}
	return fmt.Sprintf("%s · page %d of %d · %.0f%%", d.Name, d.Page, d.Pages, d.Zoom*100)
}
