// Package planmark defines the small line-oriented markup used by generated
// plan content: # / ## / ### headings, - and * bullet lines, N. numbered
// lines, blank spacer lines and plain paragraphs. Every renderer of saved
// plans parses content with these rules so their output stays identical.
package planmark

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the grammar production a line matched.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindBullet    Kind = "bullet"
	KindNumbered  Kind = "numbered"
	KindParagraph Kind = "paragraph"
	KindSpacer    Kind = "spacer"
)

// Block is one parsed line of plan content.
type Block struct {
	Kind   Kind   `json:"kind"`
	Level  int    `json:"level,omitempty"`  // Heading level 1-3.
	Number int    `json:"number,omitempty"` // Ordinal of a numbered line.
	Text   string `json:"text,omitempty"`
}

var numberedRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Parse splits content into blocks, one per line. Lines are trimmed before
// classification; anything that matches no marker is a paragraph.
func Parse(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: KindSpacer})

		case strings.HasPrefix(trimmed, "### "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 3, Text: strings.TrimSpace(trimmed[4:])})

		case strings.HasPrefix(trimmed, "## "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 2, Text: strings.TrimSpace(trimmed[3:])})

		case strings.HasPrefix(trimmed, "# "):
			blocks = append(blocks, Block{Kind: KindHeading, Level: 1, Text: strings.TrimSpace(trimmed[2:])})

		case strings.HasPrefix(trimmed, "- "):
			blocks = append(blocks, Block{Kind: KindBullet, Text: strings.TrimSpace(trimmed[2:])})

		case strings.HasPrefix(trimmed, "* "):
			blocks = append(blocks, Block{Kind: KindBullet, Text: strings.TrimSpace(trimmed[2:])})

		default:
			if m := numberedRe.FindStringSubmatch(trimmed); m != nil {
				// An ordinal too large for int is not a list marker.
				if n, err := strconv.Atoi(m[1]); err == nil {
					blocks = append(blocks, Block{Kind: KindNumbered, Number: n, Text: m[2]})
					continue
				}
			}
			blocks = append(blocks, Block{Kind: KindParagraph, Text: trimmed})
		}
	}

	return blocks
}

// Headings returns the text of every heading, in order. Handy for building a
// table of contents for a saved plan.
func Headings(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == KindHeading {
			out = append(out, b.Text)
		}
	}
	return out
}
