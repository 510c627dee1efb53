package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver/guess"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// Writer writes a generated file to disk, or to Stdout when Output is empty.
type Writer struct {
	// Output is the path of the generated Go file.
	Output string
	// Diff, when set, is the path of a unified diff between the previous
	// contents of Output and the new ones.
	Diff string
	// Stdout receives the file when Output is empty.
	Stdout io.Writer
}

// Render prints file as formatted Go source. Imports are added for every
// qualified identifier in the file; identifiers qualified with the file's own
// package name are printed unqualified.
func Render(file *dst.File) ([]byte, error) {
	r := decorator.NewRestorerWithImports(file.Name.Name, guess.New())

	buf := bytes.NewBuffer([]byte{})
	if err := r.Fprint(buf, file); err != nil {
		return nil, fmt.Errorf("printing %s: %w", file.Name.Name, err)
	}

	src, err := imports.Process(file.Name.Name+".go", buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", file.Name.Name, err)
	}
	return src, nil
}

func (w *Writer) Write(file *dst.File) error {
	src, err := Render(file)
	if err != nil {
		return err
	}

	if w.Output == "" {
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(src)
		return err
	}

	previous, err := os.ReadFile(w.Output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(w.Output, src, 0644); err != nil {
		return err
	}
	Logger().Debug("wrote generated file", zap.String("path", w.Output), zap.Int("bytes", len(src)))
	log.Printf("bindings written to %s", w.Output)

	if w.Diff != "" {
		return w.writeDiff(string(previous), string(src))
	}
	return nil
}

func (w *Writer) writeDiff(previous, current string) error {
	// what this file will be named in the diff file
	diffFileName := filepath.Base(w.Output)
	if rel, err := filepath.Rel(filepath.Dir(w.Diff), w.Output); err == nil {
		diffFileName = rel
	}

	f, err := os.Create(w.Diff)
	if err != nil {
		return err
	}
	defer f.Close()

	patch := godiffpatch.GeneratePatch(diffFileName, previous, current)
	if _, err := f.WriteString(patch); err != nil {
		return err
	}
	log.Printf("changes written to %s", w.Diff)
	return nil
}
