package markup

import (
	"regexp"
	"strings"
)

var (
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	inlineCodeRe = regexp.MustCompile("``(.*?)``")
	highlightRe  = regexp.MustCompile(`\^\^(.*?)\^\^`)
	hashRunRe    = regexp.MustCompile(`#+`)
	imageRe      = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	orderedRe    = regexp.MustCompile(`^\d+\.\s`)
	orderedTrim  = regexp.MustCompile(`^\d+\.\s*`)
)

// applyInlineFormatting substitutes the inline markers: **bold**,
// ``inline code`` and ^^highlight^^. It runs on every physical line
// before structural classification, so markers inside an open code
// fence are substituted too. That matches the shipped editor behavior
// and must not be "fixed" without flagging a content migration.
func applyInlineFormatting(text string) string {
	text = boldRe.ReplaceAllString(text, "<strong>${1}</strong>")
	text = inlineCodeRe.ReplaceAllString(text, "<code>${1}</code>")
	text = highlightRe.ReplaceAllString(text, "<mark>${1}</mark>")
	return text
}

// Parse converts the article markup dialect into an ordered node
// sequence. It is total: malformed input degrades to paragraphs, and
// accumulators still open at end of input are flushed, never dropped.
func Parse(rawContent string) []Node {
	var elements []Node
	lines := strings.Split(rawContent, "\n")

	var currentList *Node
	var currentCodeBlock *Node

	flushList := func() {
		if currentList != nil {
			elements = append(elements, *currentList)
			currentList = nil
		}
	}
	flushCodeBlock := func() {
		if currentCodeBlock != nil {
			elements = append(elements, *currentCodeBlock)
			currentCodeBlock = nil
		}
	}

	for _, line := range lines {
		line = applyInlineFormatting(line)

		switch {
		case strings.HasPrefix(line, "#"):
			level := len(hashRunRe.FindString(line))
			content := strings.TrimSpace(hashRunRe.ReplaceAllString(line, ""))
			elements = append(elements, Node{Type: NodeHeader, Level: level, Content: content})
			flushList()
			flushCodeBlock()

		case strings.HasPrefix(line, "!["):
			if m := imageRe.FindStringSubmatch(line); m != nil {
				elements = append(elements, Node{Type: NodeImage, Alt: m[1], URL: m[2]})
			}
			flushList()
			flushCodeBlock()

		case strings.HasPrefix(line, "```"):
			if currentCodeBlock != nil {
				flushCodeBlock()
			} else {
				language := strings.TrimSpace(line[3:])
				currentCodeBlock = &Node{Type: NodeCodeBlock, Language: language}
			}

		case currentCodeBlock != nil:
			currentCodeBlock.Content += line + "\n"

		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			raw := strings.Split(line[1:len(line)-1], ",")
			items := make([]string, len(raw))
			for i, item := range raw {
				items[i] = strings.TrimSpace(item)
			}
			elements = append(elements, Node{Type: NodeList, Ordered: false, Items: items})

		case orderedRe.MatchString(line):
			if currentList == nil || !currentList.Ordered {
				flushList()
				currentList = &Node{Type: NodeList, Ordered: true}
			}
			currentList.Items = append(currentList.Items, orderedTrim.ReplaceAllString(line, ""))

		case strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- "):
			if currentList == nil || currentList.Ordered {
				flushList()
				currentList = &Node{Type: NodeList, Ordered: false}
			}
			currentList.Items = append(currentList.Items, line[2:])

		default:
			flushList()
			if strings.TrimSpace(line) != "" {
				elements = append(elements, Node{Type: NodeParagraph, Content: strings.TrimSpace(line)})
			}
		}
	}

	flushList()
	flushCodeBlock()

	return elements
}
