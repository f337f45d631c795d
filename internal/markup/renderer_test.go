package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderNode(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"header",
			Node{Type: NodeHeader, Level: 2, Content: "Rules"},
			"<h2>Rules</h2>",
		},
		{
			"paragraph keeps injected inline tags",
			Node{Type: NodeParagraph, Content: "be <strong>kind</strong>"},
			"<p>be <strong>kind</strong></p>",
		},
		{
			"image",
			Node{Type: NodeImage, URL: "https://example.com/x.png", Alt: "x"},
			`<img src="https://example.com/x.png" alt="x">`,
		},
		{
			"unordered list",
			Node{Type: NodeList, Items: []string{"a", "b"}},
			"<ul><li>a</li><li>b</li></ul>",
		},
		{
			"ordered list",
			Node{Type: NodeList, Ordered: true, Items: []string{"a", "b"}},
			"<ol><li>a</li><li>b</li></ol>",
		},
		{
			"code block",
			Node{Type: NodeCodeBlock, Language: "js", Content: "const x = 1;\n"},
			"<pre><code class=\"language-js\">const x = 1;\n</code></pre>",
		},
		{
			"custom component",
			Node{Type: NodeCustom, Directive: "note", Lines: []string{"one", "two"}},
			`<div class="custom-component custom-note"><p>one</p><p>two</p></div>`,
		},
		{
			"interactive",
			Node{Type: NodeInteractive, Lines: []string{"> sm_addrule"}},
			`<div class="interactive-element"><p>> sm_addrule</p></div>`,
		},
		{
			"error",
			Node{Type: NodeError, Message: "bad directive", Content: "{% wat %}"},
			`<div class="error-element"><strong>Error:</strong> bad directive<pre>{% wat %}</pre></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderNode(tt.node))
		})
	}
}

func TestRender_OnePerNodeInOrder(t *testing.T) {
	nodes := Parse("# Hi\nHello **world**")

	rendered := Render(nodes)
	assert.Equal(t, []string{"<h1>Hi</h1>", "<p>Hello <strong>world</strong></p>"}, rendered)
}

func TestRenderHTML(t *testing.T) {
	html := RenderHTML(Parse("# Hi\nHello"))
	assert.Equal(t, "<h1>Hi</h1>\n<p>Hello</p>", html)
}
