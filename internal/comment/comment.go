package comment

import (
	"fmt"
	"go/token"

	"github.com/dave/dst"
)

const (
	InfoHeader string = "FFIGEN INFO"
	WarnHeader string = "FFIGEN WARN"
)

// Info prepends an ffigen info comment to the node.
// This function is used to add comments that will be written to the generated code.
// The message is the main comment, and additionalInfo is a list of optional
// comments that will be printed on new lines below the main comment.
// pos is the location of the foreign declaration the node was generated from,
// and is only used for the console output.
func Info(pos token.Position, node dst.Node, message string, additionalInfo ...string) {
	add(pos, node, InfoHeader, message, additionalInfo...)
}

// Warn prepends an ffigen warning comment to the node, like Info.
func Warn(pos token.Position, node dst.Node, message string, additionalInfo ...string) {
	add(pos, node, WarnHeader, message, additionalInfo...)
}

func add(pos token.Position, node dst.Node, header, message string, additionalInfo ...string) {
	comments := []string{
		fmt.Sprintf("// %s: %s", header, message),
	}
	for _, info := range additionalInfo {
		comments = append(comments, fmt.Sprintf("// %s", info))
	}

	decs := node.Decorations()
	if len(decs.Start) > 0 {
		comments = append(comments, "//")
	}

	decs.Start.Prepend(comments...)
	printer.Add(pos, header, message, additionalInfo...)
}
