package comment

import (
	"go/token"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyles = map[string]lipgloss.Style{
	InfoHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	WarnHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
}

type ConsolePrinter struct {
	inputRoot string
	comments  []string
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

// EnableConsolePrinter starts collecting console output. File names are
// printed relative to inputRoot when they are inside it.
func EnableConsolePrinter(inputRoot string) {
	printer = &ConsolePrinter{
		inputRoot: inputRoot,
	}
}

// DisableConsolePrinter drops any queued output and stops collecting.
func DisableConsolePrinter() {
	printer = nil
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

// Add appends a new comment to the console output.
// The message is the main comment, and additionalInfo is a list of optional
// comments that will be printed on new lines below the main comment.
func (p *ConsolePrinter) Add(pos token.Position, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	b := strings.Builder{}
	if style, ok := headerStyles[header]; ok {
		b.WriteString(style.Render(header))
	} else {
		b.WriteString(header)
	}
	b.WriteByte(':')
	b.WriteByte(' ')

	if loc := formatPosition(pos, p.inputRoot); loc != "" {
		b.WriteString(loc)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.comments = append(p.comments, b.String())
}

// Flush logs all the queued comments.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	for _, c := range p.comments {
		log.Println(c)
	}
	p.comments = []string{}
}
