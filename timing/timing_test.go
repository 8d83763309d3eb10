//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var fileSizeTests = []struct {
	size FileSize
	want string
}{
	{0, "0B"},
	{1000, "1000B"},
	{1001, "1kB"},
	{64 * 1000 * 1000, "64MB"},
	{3 * 1000 * 1000 * 1000, "3GB"},
	{2 * 1000 * 1000 * 1000 * 1000 * 1000, "2000TB"},
}

func TestFileSize(t *testing.T) {
	for _, test := range fileSizeTests {
		if got := test.size.String(); got != test.want {
			t.Errorf("FileSize(%d)=%q, expected %q", test.size, got, test.want)
		}
	}
}

func TestRate(t *testing.T) {
	if got := Rate(5000, 0); got != "" {
		t.Errorf("Rate with zero duration: %q", got)
	}
	if got := Rate(2000*1000, time.Second); got != "2MB/s" {
		t.Errorf("Rate=%q, expected 2MB/s", got)
	}
}

func TestSamples(t *testing.T) {
	timing := New()

	var buf bytes.Buffer
	timing.Print(&buf)
	if buf.Len() != 0 {
		t.Fatalf("empty timing printed %q", buf.String())
	}

	s := timing.Sample("Update", 4096)
	s.SubSample("file1", s.Start.Add(time.Millisecond), 1024)
	s.SubSample("file2", s.End, 3072)
	timing.Sample("Final", 0)

	if len(timing.Samples) != 2 {
		t.Fatalf("got %d samples", len(timing.Samples))
	}
	if timing.Samples[1].Start != timing.Samples[0].End {
		t.Errorf("samples are not contiguous")
	}
	if s.Samples[1].Start != s.Samples[0].End {
		t.Errorf("sub-samples are not contiguous")
	}

	timing.Print(&buf)
	report := buf.String()
	for _, label := range []string{"Update", "file1", "file2", "Final",
		"Total", "4kB"} {
		if !strings.Contains(report, label) {
			t.Errorf("report does not contain %q:\n%s", label, report)
		}
	}
}
