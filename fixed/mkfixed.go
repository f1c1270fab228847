//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"strings"
	"text/template"
)

var fixedTemplate = `
const (
	{{ .Name }}Frac                     = {{ .Frac }}
	{{ .Name }}One          {{ .Name }} = 1 << {{ .Frac }}
	{{ .Name }}FractionMask {{ .Name }} = 1<<{{ .Frac }} - 1
	{{ .Name }}WholeMask    {{ .Name }} = ^{{ .Name }}FractionMask
	{{ .Name }}Min          {{ .Name }} = -1 << {{ .SignBit }}
	{{ .Name }}Max          {{ .Name }} = 1<<{{ .SignBit }} - 1
)

func {{ .Name }}U(i int) {{ .Name }}     { return {{ .Name }}(i << {{ .Frac }}) }
func {{ .Name }}F(f float32) {{ .Name }} { return {{ .Name }}(f * (1 << {{ .Frac }})) }

func {{ .Name }}FromInt26_6(v imgfixed.Int26_6) {{ .Name }} { return {{ .Name }}(rescale(int64(v), 6, {{ .Frac }})) }
func {{ .Name }}FromInt52_12(v imgfixed.Int52_12) {{ .Name }} { return {{ .Name }}(rescale(int64(v), 12, {{ .Frac }})) }

func (x {{ .Name }}) Floor() int             { return int(x >> {{ .Frac }}) }
func (x {{ .Name }}) Ceil() int              { return int(({{ .MulType }}(x) + (1<<{{ .Frac }} - 1)) >> {{ .Frac }}) }
func (x {{ .Name }}) Float() float32         { return float32(x) / (1 << {{ .Frac }}) }
func (x {{ .Name }}) FractionPart() {{ .Name }} { return x & {{ .Name }}FractionMask }
func (x {{ .Name }}) WholePart() {{ .Name }}    { return x & {{ .Name }}WholeMask }

func (x {{ .Name }}) Neg() {{ .Name }} { return -x }
func (x {{ .Name }}) Abs() {{ .Name }} {
	if x < {{ .Name }}F(0) {
		return -x
	}
	return x
}

// Mul drops the low {{ .Half }} bits of both operands to stay within {{ .BaseType }}.
func (x {{ .Name }}) Mul(y {{ .Name }}) {{ .Name }} { return (x >> {{ .Half }}) * (y >> {{ .Half }}) }
func (x {{ .Name }}) MulExact(y {{ .Name }}) {{ .Name }} { return {{ .Name }}(({{ .MulType }}(x) * {{ .MulType }}(y)) >> {{ .Frac }}) }

// Div drops the low {{ .Half }} bits of y and the high {{ .Half }} bits of x to stay within {{ .BaseType }}.
func (x {{ .Name }}) Div(y {{ .Name }}) {{ .Name }}      { return (x << {{ .Half }}) / (y >> {{ .Half }}) }
func (x {{ .Name }}) Div2(y {{ .Name }}) {{ .Name }}     { return x.DivAdj(y, 2) }
func (x {{ .Name }}) DivExact(y {{ .Name }}) {{ .Name }} { return {{ .Name }}({{ .MulType }}(x) << {{ .Frac }} / {{ .MulType }}(y)) }

// DivAdj moves adj bits of precision from x to y compared to Div.
func (x {{ .Name }}) DivAdj(y {{ .Name }}, adj int) {{ .Name }} {
	debug.AssertRange(adj, -{{ .Half }}, {{ .Half }}, "division adjustment")
	return (x << ({{ .Half }} - adj)) / (y >> ({{ .Half }} + adj))
}

func (x {{ .Name }}) Sin() {{ .Name }}  { return {{ .Name }}F(math32.Sin(x.Float())) }
func (x {{ .Name }}) Cos() {{ .Name }}  { return {{ .Name }}F(math32.Cos(x.Float())) }
func (x {{ .Name }}) Tan() {{ .Name }}  { return {{ .Name }}F(math32.Tan(x.Float())) }
func (x {{ .Name }}) Sqrt() {{ .Name }} { return {{ .Name }}F(math32.Sqrt(x.Float())) }

func (x {{ .Name }}) Int26_6() imgfixed.Int26_6   { return imgfixed.Int26_6(rescale(int64(x), {{ .Frac }}, 6)) }
func (x {{ .Name }}) Int52_12() imgfixed.Int52_12 { return imgfixed.Int52_12(rescale(int64(x), {{ .Frac }}, 12)) }

func (x {{ .Name }}) String() string {
	const shift, mask = {{ .Frac }}, 1<<{{ .Frac }} - 1
	return fmt.Sprintf("%d:%0{{ .Digits }}d", {{ .MulType }}(x>>shift), {{ .MulType }}(x&mask))
}
`

type fixedType struct {
	Name, BaseType, MulType string
	Frac, Half, SignBit     uint
	Digits                  uint
}

func fromDecl(name, basetype string) (f fixedType) {
	f.Name = name
	f.BaseType = basetype
	switch basetype {
	case "int32":
		f.MulType = "int64"
	case "int16":
		f.MulType = "int32"
	case "int8":
		f.MulType = "int16"
	default:
		log.Fatalln("unsupported basetype:", basetype)
	}

	name, found := strings.CutPrefix(name, "Int")
	if !found {
		log.Fatalln("invalid name:", f.Name)
	}

	var intbits, width uint
	_, err := fmt.Sscanf(name, "%d_%d", &intbits, &f.Frac)
	if err != nil && err != io.EOF {
		log.Fatalln(err)
	}
	_, err = fmt.Sscanf(basetype, "int%d", &width)
	if err != nil && err != io.EOF {
		log.Fatalln(err)
	}
	if f.Frac+intbits != width {
		log.Fatalln("must use all bits")
	}
	// Mul and Div split the scale evenly between both operands.
	if f.Frac%2 != 0 {
		log.Fatalln("scale must be even:", f.Frac)
	}
	f.Half = f.Frac / 2
	f.SignBit = width - 1
	f.Digits = digits(f.Frac)
	return
}

func digits(bits uint) uint {
	return uint(len(fmt.Sprint((1 << bits) - 1)))
}

func usage() {
	fmt.Printf("Usage: %v <typename> <basetype>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}

	source := bytes.NewBuffer(nil)
	tmpl, err := template.New("fixedTemplate").Parse(fixedTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Fprintln(source, "package fixed")
	fmt.Fprintln(source, `import (
	"fmt"

	"github.com/chewxy/math32"
	imgfixed "golang.org/x/image/math/fixed"

	"github.com/clktmr/fx/debug"
)`)

	err = tmpl.Execute(source, fromDecl(os.Args[1], os.Args[2]))
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(strings.ToLower(os.Args[1])+"_fixed.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
