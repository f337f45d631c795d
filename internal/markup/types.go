package markup

// NodeType discriminates the parsed content node variants.
type NodeType string

const (
	NodeHeader      NodeType = "header"
	NodeParagraph   NodeType = "paragraph"
	NodeImage       NodeType = "image"
	NodeList        NodeType = "list"
	NodeCodeBlock   NodeType = "codeBlock"
	NodeCustom      NodeType = "custom"
	NodeInteractive NodeType = "interactive"
	NodeError       NodeType = "error"
)

// Node is one structurally-classified unit of parsed markup. Only the
// fields relevant to its Type are populated.
type Node struct {
	Type NodeType `json:"type"`

	// header
	Level int `json:"level,omitempty"`

	// header, paragraph, codeBlock
	Content string `json:"content,omitempty"`

	// image
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`

	// list
	Ordered bool     `json:"ordered,omitempty"`
	Items   []string `json:"items,omitempty"`
	Indent  int      `json:"indent,omitempty"`

	// codeBlock
	Language string `json:"language,omitempty"`

	// custom / interactive
	Directive string   `json:"directive,omitempty"`
	Args      string   `json:"args,omitempty"`
	Lines     []string `json:"lines,omitempty"`

	// error
	Message string `json:"message,omitempty"`
}
