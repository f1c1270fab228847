// Package calc evaluates single fx operations given as text, e.g.
//
//	mul 1.5 -2.25
//	divadj 3 4 2
//
// Operands are parsed as float32 and converted with fx.FromFloat.
package calc

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"

	"github.com/clktmr/fx/fx"
)

var (
	ErrUnknownOp    = errors.New("unknown operation")
	ErrArity        = errors.New("wrong number of operands")
	ErrDivideByZero = errors.New("divide by zero")
	ErrAdjustment   = errors.New("adjustment out of range")
)

type operation struct {
	arity int
	fn    func(v []fx.Num) fx.Num
}

func unary(fn func(fx.Num) fx.Num) operation {
	return operation{1, func(v []fx.Num) fx.Num { return fn(v[0]) }}
}

func binary(fn func(a, b fx.Num) fx.Num) operation {
	return operation{2, func(v []fx.Num) fx.Num { return fn(v[0], v[1]) }}
}

var operations = map[string]operation{
	"fx":   unary(func(x fx.Num) fx.Num { return x }),
	"abs":  unary(fx.AbsoluteValue),
	"neg":  unary(fx.Negate),
	"sin":  unary(fx.Sin),
	"cos":  unary(fx.Cos),
	"tan":  unary(fx.Tan),
	"sqrt": unary(fx.Sqrt),
	"add":  binary(fx.Add),
	"sub":  binary(fx.Sub),
	"mul":  binary(fx.Multiply),
	"mulx": binary(fx.MultiplyExact),
	"div":  binary(fx.Divide),
	"div2": binary(fx.Divide2),
	"divx": binary(fx.DivideExact),
}

// Format returns the value of v followed by its String form.
func Format(v fx.Num) string {
	return fmt.Sprintf("%g (%v)", fx.ToFloat(v), v)
}

// Eval evaluates a single expression. An empty line evaluates to an empty
// result.
func Eval(line string) (result string, err error) {
	words, err := shellwords.Split(line)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return "", nil
	}
	op, args := words[0], words[1:]

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok || !strings.Contains(rerr.Error(), "divide by zero") {
				panic(r)
			}
			result, err = "", fmt.Errorf("%s: %w", op, ErrDivideByZero)
		}
	}()

	var v []fx.Num
	switch op {
	case "int":
		if v, err = operands(op, args, 1); err != nil {
			return "", err
		}
		return strconv.Itoa(fx.ToInt(v[0])), nil
	case "divadj":
		if len(args) != 3 {
			return "", fmt.Errorf("%s: %w: want 3, got %d", op, ErrArity, len(args))
		}
		adj, err := strconv.Atoi(args[2])
		if err != nil {
			return "", fmt.Errorf("%s: adjustment %q: %w", op, args[2], err)
		}
		if fx.Fixed && (adj < -fx.Scale/2 || adj > fx.Scale/2) {
			return "", fmt.Errorf("%s: %w: %d", op, ErrAdjustment, adj)
		}
		if v, err = operands(op, args[:2], 2); err != nil {
			return "", err
		}
		return Format(fx.DivideAdjusted(v[0], v[1], adj)), nil
	}

	o, ok := operations[op]
	if !ok {
		return "", fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}
	if v, err = operands(op, args, o.arity); err != nil {
		return "", err
	}
	return Format(o.fn(v)), nil
}

func operands(op string, args []string, arity int) ([]fx.Num, error) {
	if len(args) != arity {
		return nil, fmt.Errorf("%s: %w: want %d, got %d", op, ErrArity, arity, len(args))
	}
	v := make([]fx.Num, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %q: %w", op, arg, err)
		}
		v[i] = fx.FromFloat(float32(f))
	}
	return v, nil
}

// Run evaluates every line of r and writes the results to w. Evaluation
// errors are written to w as well and don't stop processing.
func Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		result, err := Eval(line)
		if *echo && strings.TrimSpace(line) != "" {
			fmt.Fprintf(w, "%s = ", line)
		}
		switch {
		case err != nil:
			fmt.Fprintln(w, "error:", err)
		case result != "":
			fmt.Fprintln(w, result)
		}
	}
	return scanner.Err()
}

var (
	flags = flag.NewFlagSet("calc", flag.ExitOnError)

	echo = flags.Bool("echo", false, "print each expression in front of its result")
)

const usageString = `Evaluate fx expressions.

Usage: %s [flags] [expression...]

Reads expressions from stdin, one per line, if none are given.

The operations are:

	fx <x>                 convert x
	int <x>                convert x and back to int
	abs, neg <x>
	sin, cos, tan, sqrt <x>
	add, sub <a> <b>
	mul, mulx <a> <b>      fast and exact multiplication
	div, div2, divx <a> <b> fast, adjusted and exact division
	divadj <a> <b> <adj>

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "calc")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 0 {
		if err := Run(os.Stdin, os.Stdout); err != nil {
			log.Fatalln(err)
		}
		return
	}

	for _, expr := range flags.Args() {
		result, err := Eval(expr)
		if err != nil {
			log.Fatalln(err)
		}
		if *echo {
			fmt.Printf("%s = ", expr)
		}
		fmt.Println(result)
	}
}
