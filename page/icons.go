package page

import (
	"github.com/testmaster-app/testmaster/content"
	"github.com/testmaster-app/testmaster/view"
)

// IconSprite is the path of the embedded SVG sprite sheet.
const IconSprite = "/static/icons.svg"

// icon references a glyph in the sprite sheet. Unknown icons render as an
// empty svg so layout is preserved.
func icon(i content.Icon, class string) *view.Node {
	svg := view.El("svg",
		view.Class(class),
		view.AttrOf("aria-hidden", "true"),
		view.Data("icon", string(i)),
	)
	if i.Valid() {
		svg.Children = append(svg.Children, view.El("use", view.Href(IconSprite+"#"+string(i))))
	}
	return svg
}

func tint(c content.Color) string {
	if c == "" {
		return ""
	}
	return "text-" + string(c) + "-500"
}

func gradient(g content.Gradient) string {
	return "from-" + string(g.From) + "-500 to-" + string(g.To) + "-500"
}
