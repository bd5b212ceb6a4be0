package layout

import (
	"fmt"
	"html"
	"strings"
)

// Generate produces a complete, self-contained HTML document for the given
// template at the base design size. The document embeds the layout CSS, one
// clickable element per image slot, the blurb text element, and the relay
// script that bridges clicks out to the host page.
//
// images may be shorter or longer than the template's slot count: missing
// slots render as empty placeholders, overflow entries are ignored. Output
// is deterministic: identical inputs yield byte-identical markup.
func Generate(templateID int, images []string, blurb, displayName string) (string, error) {
	tpl, err := Lookup(templateID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>")
	writeCSS(&b, tpl)
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString(`<div class="page">` + "\n")
	for i := range tpl.slots {
		if i < len(images) && images[i] != "" {
			fmt.Fprintf(&b, `<div class="slot slot-%d" data-slot="%d"><img src="%s" alt=""></div>`+"\n",
				i, i, html.EscapeString(images[i]))
		} else {
			fmt.Fprintf(&b, `<div class="slot slot-%d empty" data-slot="%d"></div>`+"\n", i, i)
		}
	}
	fmt.Fprintf(&b, `<div class="blurb" data-role="blurb">%s</div>`+"\n", html.EscapeString(blurb))
	fmt.Fprintf(&b, `<div class="byline">%s</div>`+"\n", html.EscapeString(strings.ToLower(displayName)))
	b.WriteString("</div>\n")

	b.WriteString(`<div id="menu-layer"></div>` + "\n")
	b.WriteString("<script>\n")
	b.WriteString(relayScript)
	b.WriteString("\n</script>\n</body>\n</html>\n")

	return b.String(), nil
}

// writeCSS emits the document style block: page frame, per-slot absolute
// geometry from the descriptor, text regions, and the arc menu button
// styling. Geometry is in absolute pixels at the base size; fonts are in
// rem so the root font-size injected by the scaler tracks them.
func writeCSS(b *strings.Builder, tpl TemplateDescriptor) {
	b.WriteString("*{margin:0;padding:0;box-sizing:border-box}\n")
	b.WriteString("body{font-family:Georgia,serif;background:#faf8f4}\n")
	fmt.Fprintf(b, ".page{position:relative;width:%dpx;height:%dpx;margin:0 auto;background:#fff;overflow:hidden}\n",
		BaseWidth, BaseHeight)
	b.WriteString(".slot{position:absolute;background:#f0ede8;overflow:hidden;cursor:pointer}\n")
	b.WriteString(".slot img{width:100%;height:100%;object-fit:cover;display:block;pointer-events:none}\n")
	b.WriteString(".slot.empty{border:2px dashed #d6cfc2}\n")

	for i, r := range tpl.slots {
		fmt.Fprintf(b, ".slot-%d{left:%dpx;top:%dpx;width:%dpx;height:%dpx}\n", i, r.X, r.Y, r.W, r.H)
	}
	fmt.Fprintf(b, ".blurb{position:absolute;left:%dpx;top:%dpx;width:%dpx;height:%dpx;font-size:1rem;line-height:1.5;color:#3a362f;white-space:pre-wrap;overflow:hidden;cursor:pointer}\n",
		tpl.blurb.X, tpl.blurb.Y, tpl.blurb.W, tpl.blurb.H)
	fmt.Fprintf(b, ".byline{position:absolute;left:%dpx;top:%dpx;width:%dpx;height:%dpx;font-size:0.875rem;font-style:italic;color:#8a8275;text-align:right}\n",
		tpl.byline.X, tpl.byline.Y, tpl.byline.W, tpl.byline.H)

	// Arc menu buttons. Positions arrive from the host via the relay, so
	// only appearance and the enter/exit transition live here.
	b.WriteString("#menu-layer{position:fixed;left:0;top:0;right:0;bottom:0;pointer-events:none}\n")
	b.WriteString(".menu-btn{position:absolute;width:44px;height:44px;border-radius:50%;background:#2f2b26;color:#fff;display:flex;align-items:center;justify-content:center;font-size:1.1rem;pointer-events:auto;cursor:pointer;opacity:0;transform:scale(0.4);transition:transform 0.18s ease,opacity 0.18s ease}\n")
	b.WriteString(".menu-btn.shown{opacity:1;transform:scale(1)}\n")
	b.WriteString(".menu-btn-close{background:#9c2b2b}\n")
}
