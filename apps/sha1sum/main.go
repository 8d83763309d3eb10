//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"log"
	"os"

	"github.com/markkurossi/sha1/sha1"
	"github.com/markkurossi/sha1/timing"
)

func main() {
	str := flag.String("s", "", "hash string")
	fTiming := flag.Bool("t", false, "print timing statistics")
	trace := flag.Bool("trace", false, "trace compression rounds")
	chunk := flag.Int("chunk", 4096, "update chunk size")
	flag.Parse()

	log.SetFlags(0)

	if *chunk <= 0 {
		log.Fatalf("invalid chunk size: %d", *chunk)
	}

	h := &hasher{
		engine: sha1.New(),
		buf:    make([]byte, *chunk),
		timing: timing.New(),
	}
	if *trace {
		h.engine.SetTracer(newTracer(os.Stdout).Round)
	}

	var err error
	if len(*str) > 0 {
		err = h.hashString(os.Stdout, *str)
	} else if len(flag.Args()) == 0 {
		err = h.hashReader(os.Stdout, os.Stdin, "-")
	} else {
		for _, arg := range flag.Args() {
			err = h.hashFile(os.Stdout, arg)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	if *fTiming {
		h.timing.Print(os.Stdout)
	}
}
