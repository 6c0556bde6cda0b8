package html

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// minifier collapses insignificant whitespace and line breaks before
// parsing. End tags and document tags must survive: the flattened token
// stream depends on closing boundaries.
var minifier = func() *minify.M {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{
		KeepEndTags:      true,
		KeepDocumentTags: true,
		KeepQuotes:       true,
	})
	return m
}()

// Normalize minifies raw markup and strips the doctype declaration,
// returning markup ready for Parse. Malformed input that the minifier
// rejects is a parse error for the load.
func Normalize(src string) (string, error) {
	out, err := minifier.String("text/html", src)
	if err != nil {
		return "", fmt.Errorf("minifying markup: %w", err)
	}
	lower := strings.ToLower(out)
	if i := strings.Index(lower, "<!doctype"); i >= 0 {
		if j := strings.IndexByte(out[i:], '>'); j >= 0 {
			out = out[:i] + out[i+j+1:]
		}
	}
	return out, nil
}
