package plan

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ImportHTML extends the catalog with exercise names scraped from an HTML
// document. Any table cell or list item carrying the data-exercise attribute
// counts, falling back to plain list items when the document has no
// annotations. Used to load gym-specific equipment lists exported from the
// admin tool.
func (c *Catalog) ImportHTML(r io.Reader) (int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return 0, fmt.Errorf("parse catalog document: %w", err)
	}

	before := c.Len()

	annotated := doc.Find("[data-exercise]")
	if annotated.Length() > 0 {
		annotated.Each(func(_ int, sel *goquery.Selection) {
			if name, ok := sel.Attr("data-exercise"); ok && strings.TrimSpace(name) != "" {
				c.Add(name)
			} else {
				c.Add(sel.Text())
			}
		})
		return c.Len() - before, nil
	}

	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		c.Add(strings.TrimSpace(sel.Text()))
	})
	return c.Len() - before, nil
}
