package delta

import "strings"

// Line pairs one line's content (as a delta of inserts, never containing
// the newline itself) with the attributes carried by the newline op that
// closed it. A line with no attached attributes (including the trailing
// line, if any) has a nil/empty Attributes.
type Line struct {
	Content    *Delta
	Attributes Attributes
}

// Lines splits a document into its constituent lines on "\n", pairing
// each line's content with the attributes of the newline that closed it.
// It fails with ErrBadDocument if doc contains a retain or delete op.
//
// Example:
//
//	doc := delta.New().
//	    Insert("ab", delta.Attributes{"bold": true}).
//	    Insert("\n", delta.Attributes{"header": 1}).
//	    Insert("cd", nil)
//	lines, _ := delta.Lines(doc)
//	// [ ({insert "ab" bold}, {header:1}), ({insert "cd"}, {}) ]
func Lines(doc *Delta) ([]Line, error) {
	for _, op := range doc.ops {
		if op.Kind != KindInsert {
			return nil, ErrBadDocument
		}
	}

	var lines []Line
	cur := New()
	for _, op := range doc.ops {
		s, ok := op.Insert.(string)
		if !ok {
			cur.Append(op)
			continue
		}
		for {
			idx := strings.IndexByte(s, '\n')
			if idx < 0 {
				cur.Append(NewInsert(s, op.Attributes))
				break
			}
			if idx > 0 {
				cur.Append(NewInsert(s[:idx], op.Attributes))
			}
			lines = append(lines, Line{Content: cur, Attributes: cloneAttributes(op.Attributes)})
			cur = New()
			s = s[idx+1:]
		}
	}
	if len(cur.ops) > 0 {
		lines = append(lines, Line{Content: cur})
	}
	return lines, nil
}

// MustLines is like Lines but panics instead of returning an error.
func MustLines(doc *Delta) []Line {
	lines, err := Lines(doc)
	if err != nil {
		panic(err)
	}
	return lines
}
