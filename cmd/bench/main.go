// cmd/bench/main.go
//
// bench - ad-hoc timing harness for the btree and fingertree engines.
//
// Usage:
//
//	bench <engine> <op> [n]
//
// engine is "btree" or "fingertree"; op is "insert", "get", "push",
// "split", or "concat" (the latter three only apply to fingertree).
// n defaults to the sizes the engines were sized against: 2048, 4096,
// ..., 524288; for "fingertree push" it defaults instead to the finger
// tree's worst-case push sizes 1820, 5465, 16400, 49205, 147620, 442865.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"ordmap/pkg/btree"
	"ordmap/pkg/fingertree"
)

// rangeSizes mirrors the RangeMultiplier(2)->Range(2<<10, 2<<18) sweep
// used to size both engines against.
var rangeSizes = []int{2 << 10, 2 << 11, 2 << 12, 2 << 13, 2 << 14, 2 << 15, 2 << 16, 2 << 17, 2 << 18}

// worstCaseSizes are the finger-tree push sizes chosen to provoke
// repeated cascading overflow into the middle tree.
var worstCaseSizes = []int{1820, 5465, 16400, 49205, 147620, 442865}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: bench <btree|fingertree> <insert|get|push|split|concat> [n]")
		os.Exit(1)
	}

	engine, op := os.Args[1], os.Args[2]
	sizes := rangeSizes
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid size %q: %v\n", os.Args[3], err)
			os.Exit(1)
		}
		sizes = []int{n}
	} else if op == "push" && engine == "fingertree" {
		sizes = worstCaseSizes
	}

	for _, n := range sizes {
		d, err := run(engine, op, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s/%s\tn=%d\t%v\n", engine, op, n, d)
	}
}

func run(engine, op string, n int) (time.Duration, error) {
	switch engine {
	case "btree":
		return runBTree(op, n)
	case "fingertree":
		return runFingerTree(op, n)
	default:
		return 0, fmt.Errorf("unknown engine %q", engine)
	}
}

func runBTree(op string, n int) (time.Duration, error) {
	tr := btree.New[int, int]()
	for i := 0; i < n; i++ {
		tr = tr.Insert(rand.Int(), i)
	}

	start := time.Now()
	switch op {
	case "insert":
		tr = tr.Insert(rand.Int(), 0)
	case "get":
		_, _ = tr.Get(rand.Int())
	default:
		return 0, fmt.Errorf("btree does not support op %q", op)
	}
	return time.Since(start), nil
}

func runFingerTree(op string, n int) (time.Duration, error) {
	tr := fingertree.New[int, int]()
	for i := 0; i < n; i++ {
		tr = tr.Insert(i, i)
	}

	start := time.Now()
	switch op {
	case "insert":
		tr = tr.Insert(n, 0)
	case "get":
		_, _ = tr.Get(n / 2)
	case "push":
		tr = tr.Push(fingertree.Right, n, 0)
	case "split":
		_, _, _, _ = tr.Split(n / 2)
	case "concat":
		left, _, _, right := tr.Split(n / 2)
		_ = fingertree.Concat(left, right)
	default:
		return 0, fmt.Errorf("fingertree does not support op %q", op)
	}
	return time.Since(start), nil
}
