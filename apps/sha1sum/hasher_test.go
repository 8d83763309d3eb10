//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markkurossi/sha1/sha1"
	"github.com/markkurossi/sha1/timing"
)

func newHasher(chunk int) *hasher {
	return &hasher{
		engine: sha1.New(),
		buf:    make([]byte, chunk),
		timing: timing.New(),
	}
}

func TestHashString(t *testing.T) {
	for _, chunk := range []int{1, 2, 64, 4096} {
		var out bytes.Buffer
		h := newHasher(chunk)
		if err := h.hashString(&out, "abc"); err != nil {
			t.Fatal(err)
		}
		want := "a9993e364706816aba3e25717850c26c9cd0d89d  \"abc\"\n"
		if out.String() != want {
			t.Errorf("chunk %d: got %q, expected %q", chunk, out.String(), want)
		}
	}
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "input")
	data := bytes.Repeat([]byte("a"), 1000*1000)
	if err := os.WriteFile(name, data, 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	h := newHasher(1000)
	if err := h.hashFile(&out, name); err != nil {
		t.Fatal(err)
	}
	want := "34aa973cd4c4daa4f61eeb2bdbad27316534016f  " + name + "\n"
	if out.String() != want {
		t.Errorf("got %q, expected %q", out.String(), want)
	}
	if len(h.timing.Samples) != 1 || len(h.timing.Samples[0].Samples) != 2 {
		t.Errorf("unexpected timing samples")
	}

	err := h.hashFile(&out, filepath.Join(dir, "missing"))
	if err == nil {
		t.Errorf("missing file hashed")
	}
}

func TestTracer(t *testing.T) {
	var out bytes.Buffer
	h := newHasher(64)
	h.engine.SetTracer(newTracer(&out).Round)
	if err := h.hashReader(&out, strings.NewReader("abc"), "-"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 82 {
		t.Fatalf("got %d lines, expected 82", len(lines))
	}
	if lines[80] != "t=79:\t42541b35 5738d5e1 21834873 681e6df6 d8fdf6ad" {
		t.Errorf("unexpected last round: %q", lines[80])
	}
}
