package listing

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Anchor é um link encontrado numa listagem.
type Anchor struct {
	Href string
	Text string
}

// IsParent indica o link de navegação para o diretório pai.
func (a Anchor) IsParent() bool {
	return a.Href == "../" || a.Href == ".."
}

// Anchors percorre o HTML e devolve os links na ordem do documento.
// Usado para contar entradas em listagens coletadas e para conferir os
// renderers.
func Anchors(r io.Reader) ([]Anchor, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var anchors []Anchor
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := ""
			for _, a := range n.Attr {
				if a.Key == "href" {
					href = a.Val
					break
				}
			}
			anchors = append(anchors, Anchor{Href: href, Text: nodeText(n)})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return anchors, nil
}

// Entries devolve apenas os links de entradas (sem o link para o pai).
func Entries(r io.Reader) ([]Anchor, error) {
	all, err := Anchors(r)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, a := range all {
		if a.IsParent() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return b.String()
}
