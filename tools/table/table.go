// Package table prints the error of an fx operation compared to a float64
// reference over a range of inputs.
package table

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clktmr/fx/fx"
)

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrRange     = errors.New("invalid range")
)

type operation struct {
	fn  func(fx.Num) fx.Num
	ref func(float64) float64
}

var operations = map[string]operation{
	"abs":  {fx.AbsoluteValue, math.Abs},
	"neg":  {fx.Negate, func(x float64) float64 { return -x }},
	"sin":  {fx.Sin, math.Sin},
	"cos":  {fx.Cos, math.Cos},
	"tan":  {fx.Tan, math.Tan},
	"sqrt": {fx.Sqrt, math.Sqrt},
	"square": {
		func(x fx.Num) fx.Num { return fx.Multiply(x, x) },
		func(x float64) float64 { return x * x },
	},
	"recip": {
		func(x fx.Num) fx.Num { return fx.Divide(fx.One, x) },
		func(x float64) float64 { return 1 / x },
	},
}

// Operations returns the names of all supported operations.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type Options struct {
	From, To, Step float64

	// Lang selects the number format of the value columns.
	Lang language.Tag
}

// Write prints one row per input in [From, To]. The reference is computed on
// the input after conversion to fx, so the error column only shows the error
// of the operation itself. Rows where the operation faults show "fault".
func Write(w io.Writer, op string, opts Options) error {
	o, ok := operations[op]
	if !ok {
		return fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}
	if !(opts.Step > 0) || opts.To < opts.From {
		return fmt.Errorf("%w: %v to %v step %v", ErrRange, opts.From, opts.To, opts.Step)
	}

	p := message.NewPrinter(opts.Lang)
	_, err := fmt.Fprintf(w, "%10s %12s %12s %12s %12s\n", "x", "fx", "value", "ref", "err")
	if err != nil {
		return err
	}

	n := int(math.Floor((opts.To-opts.From)/opts.Step + 1e-9))
	for i := 0; i <= n; i++ {
		x := opts.From + float64(i)*opts.Step
		v := fx.FromFloat(float32(x))

		cols := []string{p.Sprintf("%.5f", x), "fault", "-", "-", "-"}
		if r, ok := eval(o.fn, v); ok {
			got := float64(fx.ToFloat(r))
			ref := o.ref(float64(fx.ToFloat(v)))
			cols[1] = r.String()
			cols[2] = p.Sprintf("%.5f", got)
			cols[3] = p.Sprintf("%.5f", ref)
			cols[4] = p.Sprintf("%.6f", got-ref)
		}
		_, err = fmt.Fprintf(w, "%10s %12s %12s %12s %12s\n", cols[0], cols[1], cols[2], cols[3], cols[4])
		if err != nil {
			return err
		}
	}
	return nil
}

// eval reports false if fn faulted with an integer division by zero.
func eval(fn func(fx.Num) fx.Num, x fx.Num) (r fx.Num, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			rerr, isRuntime := p.(runtime.Error)
			if !isRuntime || !strings.Contains(rerr.Error(), "divide by zero") {
				panic(p)
			}
			ok = false
		}
	}()
	return fn(x), true
}

var (
	flags = flag.NewFlagSet("table", flag.ExitOnError)

	from = flags.Float64("from", 0, "first input")
	to   = flags.Float64("to", 1, "last input")
	step = flags.Float64("step", 0.125, "distance between inputs")
	lang = flags.String("lang", "en", "BCP 47 language tag for number formatting")
)

const usageString = `Print the error of an fx operation.

Usage: %s [flags] <operation>

The operations are: %s

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "table", strings.Join(Operations(), ", "))
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalln(err)
	}

	err = Write(os.Stdout, flags.Arg(0), Options{From: *from, To: *to, Step: *step, Lang: tag})
	if err != nil {
		log.Fatalln(err)
	}
}
