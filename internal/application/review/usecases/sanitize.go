package usecases

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/expohub/expohub/internal/domain/review"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitizeContent strips all markup from user text. Entities produced by the
// policy are decoded again so the stored text stays plain.
func sanitizeContent(c review.Content) review.Content {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
	}
	c.Title = clean(c.Title)
	c.Text = clean(c.Text)
	c.Pros = clean(c.Pros)
	c.Cons = clean(c.Cons)
	return c
}
