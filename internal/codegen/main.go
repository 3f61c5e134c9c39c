// Command codegen renders the fixed-arity tuple types of package fdbtuple.
//
// Go has no variadic generics, so Tuple1 through TupleN are generated from one
// template instead of being written by hand:
//
//	go run ./internal/codegen -out fixed_gen.go -max 12
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

type arity struct {
	N      int
	Params string // "T0, T1"
	Fields []int
}

func (a arity) Name() string { return fmt.Sprintf("Tuple%d", a.N) }

// Type returns the instantiated receiver type, e.g. "Tuple2[T0, T1]".
func (a arity) Type() string { return fmt.Sprintf("Tuple%d[%s]", a.N, a.Params) }

// Args returns the constructor parameter list, e.g. "v0 T0, v1 T1".
func (a arity) Args() string {
	parts := make([]string, len(a.Fields))
	for i := range a.Fields {
		parts[i] = fmt.Sprintf("v%d T%d", i, i)
	}

	return strings.Join(parts, ", ")
}

func (a arity) Plural() string {
	if a.N == 1 {
		return "field"
	}

	return "fields"
}

var tmpl = template.Must(template.New("fixed").Parse(`// Code generated by internal/codegen; DO NOT EDIT.

package fdbtuple
{{range .}}
// {{.Name}} is a fixed-arity tuple of {{.N}} {{.Plural}}.
type {{.Name}}[{{.Params}} Field] struct {
{{- range .Fields}}
	V{{.}} T{{.}}
{{- end}}
}

// New{{.Name}} returns a {{.Name}} holding the given values.
func New{{.Name}}[{{.Params}} Field]({{.Args}}) {{.Type}} {
	return {{.Type}}{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}V{{$f}}: v{{$f}}{{end -}} }
}

// Arity returns {{.N}}.
func ({{.Type}}) Arity() int { return {{.N}} }

// AppendTuple appends the encoding of t to dst.
func (t {{.Type}}) AppendTuple(dst []byte) []byte {
{{- range .Fields}}
	dst = appendField(dst, t.V{{.}})
{{- end}}

	return dst
}

// Encode returns the encoding of t.
func (t {{.Type}}) Encode() []byte {
	return t.AppendTuple(nil)
}

func (t *{{.Type}}) decode(buf []byte) error {
	var off, n int
	var err error
{{range .Fields}}
	if t.V{{.}}, n, err = decodeField[T{{.}}](buf[off:]); err != nil {
		return fieldError({{.}}, off, err)
	}
	off += n
{{- end}}

	return checkExhausted(buf, off, {{.N}})
}

// Decode{{.Name}} decodes buf as exactly {{.N}} {{.Plural}}.
func Decode{{.Name}}[{{.Params}} Field](buf []byte) ({{.Type}}, error) {
	return DecodeFixed[{{.Type}}](buf)
}
{{end}}`))

func main() {
	out := flag.String("out", "fixed_gen.go", "output file")
	maxArity := flag.Int("max", 12, "largest arity to generate")
	flag.Parse()

	src, err := render(*maxArity)
	if err != nil {
		log.Fatalf("codegen: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o600); err != nil {
		log.Fatalf("codegen: %v", err)
	}
}

// render returns the gofmt-ed source of Tuple1 through TupleN.
func render(maxArity int) ([]byte, error) {
	if maxArity < 1 {
		return nil, fmt.Errorf("-max must be at least 1, got %d", maxArity)
	}

	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		a := arity{N: n, Fields: make([]int, n)}
		params := make([]string, n)
		for i := 0; i < n; i++ {
			a.Fields[i] = i
			params[i] = fmt.Sprintf("T%d", i)
		}
		a.Params = strings.Join(params, ", ")
		arities = append(arities, a)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w\n%s", err, buf.Bytes())
	}

	return src, nil
}
