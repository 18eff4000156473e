package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SetText replaces the text content of every element in s.
func SetText(s *goquery.Selection, text string) {
	s.SetText(text)
}

// SetHTML replaces the content of every element in s with trusted HTML.
func SetHTML(s *goquery.Selection, markup string) {
	s.SetHtml(markup)
}

// Clear removes all children of every element in s.
func Clear(s *goquery.Selection) {
	s.Empty()
}

// SetStyle sets one inline style property on every element in s, keeping the
// other declarations.
func SetStyle(s *goquery.Selection, prop, value string) {
	s.Each(func(_ int, el *goquery.Selection) {
		style, _ := el.Attr("style")
		el.SetAttr("style", setDeclaration(style, prop, value))
	})
}

// Style returns the value of one inline style property of the first element.
func Style(s *goquery.Selection, prop string) string {
	style, _ := s.Attr("style")
	for _, d := range splitDeclarations(style) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// BackgroundImage formats a CSS url() value for the given image location.
func BackgroundImage(url string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", "")
	return `url("` + r.Replace(url) + `")`
}

type declaration struct {
	prop, value string
}

func setDeclaration(style, prop, value string) string {
	decls := splitDeclarations(style)
	found := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, declaration{prop: prop, value: value})
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ") + ";"
}

// splitDeclarations splits an inline style on semicolons that are outside
// quotes and parentheses.
func splitDeclarations(style string) []declaration {
	var (
		out   []declaration
		start int
		depth int
		quote byte
	)
	flush := func(end int) {
		raw := strings.TrimSpace(style[start:end])
		start = end + 1
		if raw == "" {
			return
		}
		prop, value, ok := strings.Cut(raw, ":")
		if !ok {
			return
		}
		out = append(out, declaration{
			prop:  strings.ToLower(strings.TrimSpace(prop)),
			value: strings.TrimSpace(value),
		})
	}
	for i := 0; i < len(style); i++ {
		c := style[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			flush(i)
		}
	}
	if start < len(style) {
		flush(len(style))
	}
	return out
}
