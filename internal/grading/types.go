package grading

import (
	"fmt"
	"strings"
)

const (
	SeparatorWidth = 27
	NotAvailable   = "N/A"
)

type StudentAverage struct {
	Name    string
	Average float64
	Graded  bool
}

// ClassStats aggregates per-student averages. Overall is the mean of those
// averages, not a pooled mean over every grade.
type ClassStats struct {
	Max     float64
	Min     float64
	Overall float64
}

type Report struct {
	Students []StudentAverage
	// Stats is nil when no student has a grade.
	Stats *ClassStats
}

type TopPerformer struct {
	Name    string
	Average float64
}

func FormatAverage(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func (s StudentAverage) Line() string {
	avg := NotAvailable
	if s.Graded {
		avg = FormatAverage(s.Average)
	}
	return fmt.Sprintf("%s's average grade is %s.", s.Name, avg)
}

func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Students)+4)
	for _, s := range r.Students {
		lines = append(lines, s.Line())
	}
	lines = append(lines, strings.Repeat("-", SeparatorWidth))
	if r.Stats == nil {
		return append(lines, "No grades have been added for any student yet.")
	}
	return append(lines,
		"Max Average: "+FormatAverage(r.Stats.Max),
		"Min Average: "+FormatAverage(r.Stats.Min),
		"Overall Average: "+FormatAverage(r.Stats.Overall),
	)
}

func (t TopPerformer) Line() string {
	return fmt.Sprintf("The student with the highest average is %s with a grade of %s", t.Name, FormatAverage(t.Average))
}
