//
// hasher.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/markkurossi/sha1/sha1"
	"github.com/markkurossi/sha1/timing"
)

type hasher struct {
	engine *sha1.Engine
	buf    []byte
	timing *timing.Timing
}

func (h *hasher) hashString(out io.Writer, str string) error {
	data := []byte(str)
	for len(data) > 0 {
		n := min(len(data), len(h.buf))
		h.engine.Update(data[:n])
		data = data[n:]
	}
	return h.final(out, fmt.Sprintf("%q", str), uint64(len(str)))
}

func (h *hasher) hashFile(out io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return h.hashReader(out, f, name)
}

func (h *hasher) hashReader(out io.Writer, in io.Reader, name string) error {
	var total uint64
	for {
		n, err := in.Read(h.buf)
		if n > 0 {
			h.engine.Update(h.buf[:n])
			total += uint64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return h.final(out, name, total)
}

func (h *hasher) final(out io.Writer, name string, size uint64) error {
	updated := time.Now()
	digest := h.engine.Final()

	sample := h.timing.Sample(name, timing.FileSize(size))
	sample.SubSample("Update", updated, timing.FileSize(size))
	sample.SubSample("Final", sample.End, 0)

	_, err := fmt.Fprintf(out, "%x  %s\n", digest, name)
	return err
}
