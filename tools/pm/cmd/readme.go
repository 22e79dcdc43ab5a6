package cmd

import (
	"fmt"
	"go/doc"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

var readmeCmd = &cobra.Command{
	Use:   "readme [<infile> [<outfile>]]",
	Short: "Render the README from its template",
	Long: `Render README.md from README.md.tmpl. Within the template, Example
"<file>" "<name>" expands to a complete runnable program built from the
named example function in the given test file, and ExampleCode does the
same but shows only the example body.`,
	Args: cobra.MaximumNArgs(2),
	Run:  RenderReadme,
}

var unindent = regexp.MustCompile(`(?m)^    `)
var snipMain = regexp.MustCompile(`(?m)^func main\(\) \{$`)

func RenderReadme(_ *cobra.Command, args []string) {
	infile, outfile := "README.md.tmpl", "README.md"
	if len(args) > 0 {
		infile = args[0]
	}
	if len(args) > 1 {
		outfile = args[1]
	}

	out, err := os.Create(outfile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: unable to create %q: %v\n", outfile, err)
		os.Exit(1)
	}

	tmpl := template.New(filepath.Base(infile)).Funcs(template.FuncMap{
		"Example": func(src, name string) (string, error) {
			return renderExample(src, name, false)
		},
		"ExampleCode": func(src, name string) (string, error) {
			return renderExample(src, name, true)
		},
	})

	tmpl, err = tmpl.ParseFiles(infile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: unable to decode template file %q: %v\n", infile, err)
		os.Exit(1)
	}

	err = tmpl.Execute(out, nil)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: cannot render template file: %v\n", err)
		os.Exit(1)
	}

	err = out.Close()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: cannot close new file %q: %v", outfile, err)
		os.Exit(1)
	}
}

// renderExample prints the named example from the given test file as a
// standalone program. With bodyOnly set, the main wrapper is stripped and
// the remaining lines unindented.
func renderExample(src, name string, bodyOnly bool) (string, error) {
	fset := token.NewFileSet()
	ex, err := findExample(fset, src, name)
	if err != nil {
		return "", err
	}

	b := &strings.Builder{}
	pc := &printer.Config{
		Mode:     printer.UseSpaces,
		Tabwidth: 4,
	}
	err = pc.Fprint(b, fset, ex.Play)
	if err != nil {
		return "", err
	}

	s := b.String()
	if !bodyOnly {
		return s, nil
	}

	if ixs := snipMain.FindStringIndex(s); ixs != nil {
		s = s[ixs[1]:]
	}
	if ix := strings.LastIndex(s, "\n}"); ix >= 0 {
		s = s[:ix]
	}

	s = unindent.ReplaceAllString(s, "")
	return strings.TrimSpace(s), nil
}

func findExample(fset *token.FileSet, src, name string) (*doc.Example, error) {
	f, err := parser.ParseFile(fset, src, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	for _, ex := range doc.Examples(f) {
		if ex.Name == name {
			return ex, nil
		}
	}

	return nil, fmt.Errorf("example %q not found in file %q", name, src)
}
