package j48

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// blockTags end a line when text is collected outside of <pre>.
var blockTags = map[string]bool{
	"br": true, "p": true, "div": true, "tr": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// HTMLText reduces an HTML document to the text a J48 dump would have had.
// Preformatted blocks are returned verbatim, joined by blank lines; a
// document without <pre> falls back to its body text with block elements
// breaking lines.
func HTMLText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var pres []string
	var findPre func(*html.Node)
	findPre = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "pre" {
			pres = append(pres, rawText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPre(c)
		}
	}
	findPre(doc)
	if len(pres) > 0 {
		return strings.Join(pres, "\n\n"), nil
	}

	var b bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(doc)
	return b.String(), nil
}

func rawText(n *html.Node) string {
	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return sb.String()
}

// LooksLikeHTML sniffs the start of data for a markup document.
func LooksLikeHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data))
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.HasPrefix(head, []byte("<!doctype html")) ||
		bytes.HasPrefix(head, []byte("<html")) ||
		bytes.HasPrefix(head, []byte("<pre"))
}

// HTMLLines returns the lines of HTMLText, terminators kept.
func HTMLLines(r io.Reader) ([]string, error) {
	text, err := HTMLText(r)
	if err != nil {
		return nil, err
	}
	return ReadLines(strings.NewReader(text))
}
