package pipeline

import (
	"regexp"
	"strings"
)

var (
	unorderedItem = regexp.MustCompile(`^[-*+]\s+`)
	orderedItem   = regexp.MustCompile(`^\d+\.\s+`)
)

// listKind is both the line classification and the scanner state.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

func (k listKind) tag() string {
	if k == listOrdered {
		return "ol"
	}
	return "ul"
}

// classifyListItem reports the kind of list item on line and its content
// with the marker removed. Surrounding whitespace is ignored.
func classifyListItem(line string) (listKind, string) {
	trimmed := strings.TrimSpace(line)
	if loc := unorderedItem.FindStringIndex(trimmed); loc != nil {
		return listUnordered, trimmed[loc[1]:]
	}
	if loc := orderedItem.FindStringIndex(trimmed); loc != nil {
		return listOrdered, trimmed[loc[1]:]
	}
	return listNone, ""
}

// listScanner is a single-level state machine: none, in-ul, in-ol.
type listScanner struct {
	state listKind
	items []string
	out   []string
}

func (s *listScanner) item(kind listKind, content string) {
	if s.state != kind {
		s.close()
		s.state = kind
	}
	s.items = append(s.items, content)
}

func (s *listScanner) passthrough(line string) {
	s.close()
	s.out = append(s.out, line)
}

// close emits the open list, if any, as a single line.
func (s *listScanner) close() {
	if s.state == listNone {
		return
	}
	tag := s.state.tag()

	var b strings.Builder
	b.WriteString("<" + tag + ">")
	for _, it := range s.items {
		b.WriteString("<li>")
		b.WriteString(it)
		b.WriteString("</li>")
	}
	b.WriteString("</" + tag + ">")

	s.out = append(s.out, b.String())
	s.items = nil
	s.state = listNone
}

// ConvertLists merges contiguous bullet or numbered lines into <ul>/<ol>.
// Switching between bullet and numbered items closes the open list first.
// Indentation is not interpreted; there are no nested lists.
func ConvertLists(text string) string {
	lines := strings.Split(text, "\n")
	s := &listScanner{out: make([]string, 0, len(lines))}

	for _, line := range lines {
		kind, content := classifyListItem(line)
		if kind == listNone {
			s.passthrough(line)
			continue
		}
		s.item(kind, content)
	}
	s.close()

	return strings.Join(s.out, "\n")
}
