//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records timing samples of hashing operations and
// renders profiling reports.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// FileSize specifies a byte count.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Rate returns the throughput of size bytes in duration d.
func Rate(size FileSize, d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return FileSize(float64(size)/d.Seconds()).String() + "/s"
}

// Timing records timing samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// New creates a new Timing instance.
func New() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with label and the number of bytes
// processed during the sample.
func (t *Timing) Sample(label string, size FileSize) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Size:  size,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the profiling report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	var size FileSize
	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%", percent(duration, total)))
		row.Column(sample.Size.String())
		row.Column(Rate(sample.Size, duration))
		size += sample.Size

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}

			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.End.Sub(sub.Start)
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(fmt.Sprintf("%.2f%%", percent(d, duration))).
				SetFormat(tabulate.FmtItalic)
			row.Column(sub.Size.String()).SetFormat(tabulate.FmtItalic)
			row.Column(Rate(sub.Size, d)).SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(size.String()).SetFormat(tabulate.FmtBold)
	row.Column(Rate(size, total)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

func percent(d, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(d) / float64(total) * 100
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Size    FileSize
	Samples []*Sample
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time, size FileSize) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
		Size:  size,
	})
}
