package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DocumentTarget renders into a parsed HTML document, addressing elements
// by their id attribute.
type DocumentTarget struct {
	doc *goquery.Document
}

// NewDocumentTarget parses r as the dashboard page.
func NewDocumentTarget(r io.Reader) (*DocumentTarget, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard document: %w", err)
	}
	return &DocumentTarget{doc: doc}, nil
}

func (t *DocumentTarget) find(id string) *goquery.Selection {
	return t.doc.Find("#" + id).First()
}

func (t *DocumentTarget) Has(id string) bool {
	return t.find(id).Length() > 0
}

func (t *DocumentTarget) SetText(id, text string) bool {
	sel := t.find(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetText(text)
	return true
}

func (t *DocumentTarget) SetClass(id, class string) bool {
	sel := t.find(id)
	if sel.Length() == 0 {
		return false
	}
	sel.SetAttr("class", class)
	return true
}

func (t *DocumentTarget) ReplaceActivities(id string, items []ActivityItem) bool {
	sel := t.find(id)
	if sel.Length() == 0 {
		return false
	}
	sel.Empty()

	var b strings.Builder
	for _, item := range items {
		writeActivityItem(&b, item)
	}
	sel.AppendHtml(b.String())
	return true
}

// Document exposes the underlying document for inspection.
func (t *DocumentTarget) Document() *goquery.Document {
	return t.doc
}

// HTML serialises the rendered page.
func (t *DocumentTarget) HTML() (string, error) {
	return t.doc.Html()
}

func writeActivityItem(b *strings.Builder, item ActivityItem) {
	b.WriteString(`<div class="activity-item">`)
	b.WriteString(`<div class="activity-icon"><i class="fas `)
	b.WriteString(html.EscapeString(item.Icon))
	b.WriteString(`"></i></div>`)
	b.WriteString(`<div class="activity-details">`)
	b.WriteString(`<div class="activity-title">`)
	b.WriteString(html.EscapeString(item.Title))
	b.WriteString(`</div>`)
	b.WriteString(`<div class="activity-time">`)
	b.WriteString(html.EscapeString(item.Time))
	b.WriteString(`</div>`)
	b.WriteString(`</div></div>`)
}
