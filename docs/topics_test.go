package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/finsage/intake"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation index stays in sync with the topic
// files:
// 1. Every topic listed in readme.md loads.
// 2. Every topic file is listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := Topic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := List()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range all {
		if !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

// TestAmountExamples feeds every example inside an `amount` fenced code
// block to the parser, so the documented formats cannot drift from the
// code.
func TestAmountExamples(t *testing.T) {
	content, err := os.ReadFile("formats.md")
	if err != nil {
		t.Fatalf("failed to read formats.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var examples []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(content)) != "amount" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			if s := strings.TrimSpace(string(line.Value(content))); s != "" {
				examples = append(examples, s)
			}
		}
		return ast.WalkContinue, nil
	})

	if len(examples) == 0 {
		t.Fatal("formats.md has no amount examples")
	}
	for _, example := range examples {
		t.Run(example, func(t *testing.T) {
			if _, err := intake.ParseAmount(example); err != nil {
				t.Errorf("documented example %q does not parse: %v", example, err)
			}
		})
	}
}
