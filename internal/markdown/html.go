package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML converts the rendered Markdown to HTML.
func ToHTML(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := converter.Convert(md, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to convert markdown to HTML")
	}
	return buf.Bytes(), nil
}
