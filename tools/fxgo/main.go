package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/fx/fx"
	"github.com/clktmr/fx/tools/calc"
	"github.com/clktmr/fx/tools/table"
)

const usageString = `fxgo is a tool for inspecting fx arithmetic.

Usage:

	%s <command> [arguments]

The commands are:

	calc     evaluate fx expressions
	table    print the error of an fx operation over a range

Backend: %s
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0], fx.Backend())
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "calc":
		calc.Main(flag.Args())
	case "table":
		table.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
