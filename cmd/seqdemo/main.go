// Package main is the canonical pika demo: it builds the sequence
// 1 through 5, maps a running total over it, and prints the original
// sequence twice. See docs/example.pika for the pika-side rendition of the
// running total.
package main

import (
	"fmt"
	"os"

	"github.com/pika-lang/pika/accumulate"
	"github.com/pika-lang/pika/sequence"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	nums := sequence.Of(1, 2, 3, 4, 5)

	// The totals are computed and discarded; only the source sequence is
	// printed, twice.
	if _, err := nums.Map(accumulate.RunningTotal); err != nil {
		return err
	}

	fmt.Println(nums)
	fmt.Println(nums)

	return nil
}
