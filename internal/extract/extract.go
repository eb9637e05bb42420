package extract

import (
    "strings"

    "golang.org/x/net/html"
)

// Document is the readable form of a loaded page.
type Document struct {
    Title string
    Text  string
}

// FromMarkup renders markup as plain text for display without a browser
// engine. It keeps headings, paragraphs, list items, preformatted blocks and
// form controls, and drops script and style.
func FromMarkup(markup string) Document {
    node, err := html.Parse(strings.NewReader(markup))
    if err != nil || node == nil {
        return Document{}
    }

    title := strings.TrimSpace(findTitle(node))
    content := findFirst(node, "body")
    if content == nil {
        content = node
    }
    var b strings.Builder
    collectText(&b, content, false)
    return Document{Title: title, Text: normalizeWhitespace(b.String())}
}

func findTitle(n *html.Node) string {
    t := findFirst(n, "title")
    if t == nil || t.FirstChild == nil {
        return ""
    }
    return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
    if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
        return n
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        if res := findFirst(c, tag); res != nil {
            return res
        }
    }
    return nil
}

func attr(n *html.Node, key string) (string, bool) {
    for _, a := range n.Attr {
        if strings.EqualFold(a.Key, key) {
            return a.Val, true
        }
    }
    return "", false
}

func collectText(b *strings.Builder, n *html.Node, inPre bool) {
    if n.Type == html.ElementNode {
        name := strings.ToLower(n.Data)
        switch name {
        case "script", "style", "noscript", "head", "object", "iframe", "template":
            return
        case "pre", "textarea":
            inPre = true
            b.WriteString("\n")
        case "br", "hr":
            b.WriteString("\n")
        case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "ul", "ol", "table", "form":
            b.WriteString("\n")
        case "input":
            writeInput(b, n)
            return
        case "button":
            b.WriteString("[ ")
        }
    }

    if n.Type == html.TextNode {
        data := n.Data
        if !inPre {
            data = strings.ReplaceAll(data, "\t", " ")
            data = strings.ReplaceAll(data, "\r", " ")
            data = strings.ReplaceAll(data, "\n", " ")
        }
        b.WriteString(data)
    }

    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectText(b, c, inPre)
    }

    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "p", "h1", "h2", "h3", "h4", "h5", "h6", "table":
            b.WriteString("\n\n")
        case "pre", "textarea":
            b.WriteString("\n")
        case "td", "th":
            b.WriteString(" ")
        case "button":
            b.WriteString(" ]")
        }
    }
}

// writeInput renders buttons as "[ label ]", check boxes and radios as
// "[x]"/"[ ]", and text fields as their value in brackets.
func writeInput(b *strings.Builder, n *html.Node) {
    typ, _ := attr(n, "type")
    value, _ := attr(n, "value")
    switch strings.ToLower(typ) {
    case "hidden":
    case "button", "submit", "reset":
        b.WriteString("[ " + value + " ]")
    case "checkbox", "radio":
        if _, checked := attr(n, "checked"); checked {
            b.WriteString("[x]")
        } else {
            b.WriteString("[ ]")
        }
    default:
        b.WriteString("[" + value + "]")
    }
}

func normalizeWhitespace(s string) string {
    lines := strings.Split(s, "\n")
    out := make([]string, 0, len(lines))
    for _, line := range lines {
        trimmed := strings.TrimSpace(line)
        if trimmed == "" {
            // Keep at most one consecutive blank
            if len(out) > 0 && out[len(out)-1] == "" {
                continue
            }
            out = append(out, "")
            continue
        }
        out = append(out, collapseSpaces(trimmed))
    }
    for len(out) > 0 && out[0] == "" {
        out = out[1:]
    }
    for len(out) > 0 && out[len(out)-1] == "" {
        out = out[:len(out)-1]
    }
    return strings.Join(out, "\n")
}

func collapseSpaces(s string) string {
    var b strings.Builder
    lastSpace := false
    for _, r := range s {
        if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    return b.String()
}
