package planmark_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"fitvibe/fitness-coach/internal/planmark"
)

func TestParse_Grammar(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name    string
		content string
		want    []planmark.Block
	}{
		{
			name:    "level one heading",
			content: "# Workout Plan",
			want:    []planmark.Block{{Kind: planmark.KindHeading, Level: 1, Text: "Workout Plan"}},
		},
		{
			name:    "level two heading",
			content: "## Warm-up",
			want:    []planmark.Block{{Kind: planmark.KindHeading, Level: 2, Text: "Warm-up"}},
		},
		{
			name:    "level three heading",
			content: "### Day 1",
			want:    []planmark.Block{{Kind: planmark.KindHeading, Level: 3, Text: "Day 1"}},
		},
		{
			name:    "dash bullet",
			content: "- 10 push-ups",
			want:    []planmark.Block{{Kind: planmark.KindBullet, Text: "10 push-ups"}},
		},
		{
			name:    "star bullet",
			content: "* 10 squats",
			want:    []planmark.Block{{Kind: planmark.KindBullet, Text: "10 squats"}},
		},
		{
			name:    "numbered line",
			content: "2. Bench press",
			want:    []planmark.Block{{Kind: planmark.KindNumbered, Number: 2, Text: "Bench press"}},
		},
		{
			name:    "plain paragraph",
			content: "Rest for 60 seconds between sets.",
			want:    []planmark.Block{{Kind: planmark.KindParagraph, Text: "Rest for 60 seconds between sets."}},
		},
		{
			name:    "blank spacer",
			content: "",
			want:    []planmark.Block{{Kind: planmark.KindSpacer}},
		},
		{
			name:    "hash without space is a paragraph",
			content: "#hashtag",
			want:    []planmark.Block{{Kind: planmark.KindParagraph, Text: "#hashtag"}},
		},
		{
			name:    "number without dot is a paragraph",
			content: "3 sets of 12",
			want:    []planmark.Block{{Kind: planmark.KindParagraph, Text: "3 sets of 12"}},
		},
		{
			name:    "leading whitespace is trimmed before classification",
			content: "   - indented bullet",
			want:    []planmark.Block{{Kind: planmark.KindBullet, Text: "indented bullet"}},
		},
		{
			name:    "ordinal too large for int is a paragraph",
			content: "99999999999999999999. overflow",
			want:    []planmark.Block{{Kind: planmark.KindParagraph, Text: "99999999999999999999. overflow"}},
		},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(planmark.Parse(tc.content), qt.DeepEquals, tc.want)
		})
	}
}

func TestParse_FullPlan(t *testing.T) {
	c := qt.New(t)

	content := "# Full Body Workout\n\n## Warm-up\n- Jumping jacks\n- Arm circles\n\n## Main Sets\n1. Squats 3x12\n2. Push-ups 3x10\n\nRest well between sets."
	blocks := planmark.Parse(content)

	c.Assert(blocks, qt.HasLen, 11)
	c.Assert(blocks[0], qt.DeepEquals, planmark.Block{Kind: planmark.KindHeading, Level: 1, Text: "Full Body Workout"})
	c.Assert(blocks[1].Kind, qt.Equals, planmark.KindSpacer)
	c.Assert(blocks[7].Kind, qt.Equals, planmark.KindNumbered)
	c.Assert(blocks[10], qt.DeepEquals, planmark.Block{Kind: planmark.KindParagraph, Text: "Rest well between sets."})
}

func TestHeadings(t *testing.T) {
	c := qt.New(t)

	blocks := planmark.Parse("# Title\n- bullet\n## Section A\ntext\n### Sub")
	c.Assert(planmark.Headings(blocks), qt.DeepEquals, []string{"Title", "Section A", "Sub"})
}
