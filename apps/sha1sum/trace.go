//
// trace.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/text/superscript"
)

type tracer struct {
	out io.Writer
}

func newTracer(out io.Writer) *tracer {
	return &tracer{
		out: out,
	}
}

// Round prints the working registers after a compression round.
func (t *tracer) Round(block uint64, round int, a, b, c, d, e uint32) {
	if round == 0 {
		fmt.Fprintf(t.out, "B%s:\t%8s %8s %8s %8s %8s\n",
			superscript.Itoa(int(block)), "A", "B", "C", "D", "E")
	}
	fmt.Fprintf(t.out, "t=%2d:\t%08x %08x %08x %08x %08x\n",
		round, a, b, c, d, e)
}
