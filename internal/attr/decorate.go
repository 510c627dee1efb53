package attr

import (
	"strings"

	"github.com/dave/dst"
)

// DirectivePrefix starts the comment line of every non-doc attribute.
const DirectivePrefix = "//ffigen:"

// Lines returns the comment lines that represent a.
//
// Sugared docs become ordinary comment lines; text that already starts with
// "//" is kept as is. Every other attribute becomes a single directive line.
func Lines(a Attribute) []string {
	if text, ok := a.DocText(); ok {
		return docLines(text)
	}
	if a.Value == nil {
		return nil
	}
	return []string{DirectivePrefix + a.Value.String()}
}

func docLines(text string) []string {
	split := strings.Split(strings.TrimRight(text, "\n"), "\n")
	lines := make([]string, 0, len(split))
	for _, line := range split {
		line = strings.TrimRight(line, " \t\r")
		switch {
		case strings.HasPrefix(line, "//"):
			lines = append(lines, line)
		case line == "":
			lines = append(lines, "//")
		default:
			lines = append(lines, "// "+line)
		}
	}
	return lines
}

// Decorate attaches attrs to generated code. Outer attributes are added to
// node and inner attributes to file; when file is nil inner attributes go to
// node as well.
//
// A node with no spacing before it is moved to a new line, so that its
// comments stay attached to it.
//
// Doc lines are placed before directive lines, because the printer moves
// directives to the end of a doc comment anyway. Within each group the
// attributes keep the order they were given in.
func Decorate(file *dst.File, node dst.Node, attrs ...Attribute) {
	var outer, inner []Attribute
	for _, a := range attrs {
		if a.Style == Inner && file != nil {
			inner = append(inner, a)
		} else {
			outer = append(outer, a)
		}
	}

	if node != nil && len(outer) > 0 {
		decs := node.Decorations()
		decs.Start.Append(commentBlock(outer)...)
		if decs.Before == dst.None {
			decs.Before = dst.NewLine
			if _, ok := node.(dst.Decl); ok {
				decs.Before = dst.EmptyLine
			}
		}
	}
	if file != nil && len(inner) > 0 {
		file.Decs.Start.Append(commentBlock(inner)...)
	}
}

func commentBlock(attrs []Attribute) []string {
	var docs, directives []string
	for _, a := range attrs {
		if a.IsSugaredDoc {
			docs = append(docs, Lines(a)...)
		} else {
			directives = append(directives, Lines(a)...)
		}
	}
	return append(docs, directives...)
}
