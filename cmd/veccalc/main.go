// Command veccalc evaluates basic vector operations on literal vectors.
//
// Usage:
//
//	veccalc [flags] vector [vector]
//
// A vector is a comma-separated list of numbers, e.g. "1,2,3". With one
// vector it prints dimension, norm and the normalized vector; with two
// it additionally prints sum, difference, Hadamard product, dot product
// and, for three-dimensional operands, the cross product.
//
// Examples:
//
//	veccalc 1,2,3
//	veccalc 1,2,3 4,5,6
//	veccalc -op dot 1,2,3 4,5,6
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-linalg"
)

func main() {
	op := flag.String("op", "", "print only this operation (dims, norm, normalize, add, sub, mul, dot, cross)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: veccalc [flags] vector [vector]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates basic vector operations on literal vectors.\n")
		fmt.Fprintf(os.Stderr, "A vector is a comma-separated list of numbers, e.g. 1,2,3.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  veccalc 1,2,3\n")
		fmt.Fprintf(os.Stderr, "  veccalc 1,2,3 4,5,6\n")
		fmt.Fprintf(os.Stderr, "  veccalc -op dot 1,2,3 4,5,6\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	parsed := make([]linalg.Vector[float64], len(args))
	for i, arg := range args {
		v, err := parseVector(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		parsed[i] = v
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	wantOp := strings.ToLower(strings.TrimSpace(*op))
	show := func(name string) bool {
		return wantOp == "" || wantOp == name
	}

	for i, v := range parsed {
		label := fmt.Sprintf("v%d", i+1)
		if show("dims") {
			fmt.Fprintf(tw, "%s dims\t%d\n", label, v.Dims())
		}
		if show("norm") {
			fmt.Fprintf(tw, "%s norm\t%g\n", label, v.Norm())
		}
		if show("normalize") {
			fmt.Fprintf(tw, "%s normalized\t%s\n", label, v.Normalized())
		}
	}

	if len(parsed) != 2 {
		return
	}
	a, b := parsed[0], parsed[1]

	if show("add") {
		printResult(tw, "add", func() (fmt.Stringer, error) { return result(a.Add(b)) })
	}
	if show("sub") {
		printResult(tw, "sub", func() (fmt.Stringer, error) { return result(a.Sub(b)) })
	}
	if show("mul") {
		printResult(tw, "mul", func() (fmt.Stringer, error) { return result(a.Mul(b)) })
	}
	if show("dot") {
		d, err := linalg.Dot(a, b)
		if err != nil {
			tw.Flush()
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(tw, "dot\t%g\n", d)
	}
	// Without -op cross, only attempt the cross product when both
	// operands are three-dimensional.
	if show("cross") && ((a.Dims() == 3 && b.Dims() == 3) || wantOp == "cross") {
		printResult(tw, "cross", func() (fmt.Stringer, error) { return result(linalg.Cross(a, b)) })
	}
}

func result(v linalg.Vector[float64], err error) (fmt.Stringer, error) {
	return v, err
}

func printResult(tw *tabwriter.Writer, name string, f func() (fmt.Stringer, error)) {
	v, err := f()
	if err != nil {
		tw.Flush()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(tw, "%s\t%s\n", name, v)
}

func parseVector(s string) (linalg.Vector[float64], error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return linalg.Vector[float64]{}, fmt.Errorf("invalid vector element %q in %q", p, s)
		}
		values = append(values, x)
	}
	return linalg.FromSlice(values), nil
}
