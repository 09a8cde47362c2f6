package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Every embedded topic must be valid markdown opening with a level-1 title,
// since `psim topic` concatenates them into one document.
func TestTopicsAreWellFormed(t *testing.T) {
	names, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no topics embedded")
	}
	names = append(names, "readme")

	md := goldmark.New()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := GetTopic(name)
			if err != nil {
				t.Fatalf("GetTopic(%q) failed: %v", name, err)
			}

			source := []byte(content)
			doc := md.Parser().Parse(text.NewReader(source))

			first := doc.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", name)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with an H%d, want an H1", name, heading.Level)
			}
		})
	}
}

func TestGetTopics(t *testing.T) {
	out, err := GetTopics("simulate", "track")
	if err != nil {
		t.Fatalf("GetTopics() failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("GetTopics() returned nothing")
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() of a missing topic should fail")
	}

	all, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	if len(all) <= len(out) {
		t.Errorf("GetTopics(*) = %d bytes, expected more than %d", len(all), len(out))
	}
}
