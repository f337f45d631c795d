package markup

import (
	"fmt"
	"strings"
)

// Render maps nodes to HTML, one element string per node, order
// preserved. Node content is emitted as-is: the parser already injected
// <strong>/<code>/<mark> tags and never escaped the surrounding text,
// so article bodies are trusted HTML end to end. Callers exposing this
// output to untrusted authors need their own sanitization step.
func Render(nodes []Node) []string {
	rendered := make([]string, 0, len(nodes))
	for _, node := range nodes {
		rendered = append(rendered, RenderNode(node))
	}
	return rendered
}

// RenderHTML renders the whole sequence as a single HTML fragment.
func RenderHTML(nodes []Node) string {
	return strings.Join(Render(nodes), "\n")
}

func RenderNode(node Node) string {
	switch node.Type {
	case NodeHeader:
		return fmt.Sprintf("<h%d>%s</h%d>", node.Level, node.Content, node.Level)
	case NodeParagraph:
		return fmt.Sprintf("<p>%s</p>", node.Content)
	case NodeImage:
		return fmt.Sprintf(`<img src="%s" alt="%s">`, node.URL, node.Alt)
	case NodeList:
		return renderList(node)
	case NodeCodeBlock:
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`, node.Language, node.Content)
	case NodeCustom:
		return renderLineContainer(fmt.Sprintf("custom-component custom-%s", node.Directive), node.Lines)
	case NodeInteractive:
		return renderLineContainer("interactive-element", node.Lines)
	case NodeError:
		return fmt.Sprintf(`<div class="error-element"><strong>Error:</strong> %s<pre>%s</pre></div>`, node.Message, node.Content)
	default:
		return ""
	}
}

func renderList(node Node) string {
	tag := "ul"
	if node.Ordered {
		tag = "ol"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<%s>", tag)
	for _, item := range node.Items {
		fmt.Fprintf(&b, "<li>%s</li>", item)
	}
	fmt.Fprintf(&b, "</%s>", tag)
	return b.String()
}

func renderLineContainer(class string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s">`, class)
	for _, line := range lines {
		fmt.Fprintf(&b, "<p>%s</p>", line)
	}
	b.WriteString("</div>")
	return b.String()
}
