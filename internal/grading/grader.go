// Package grading computes per-student and class-wide statistics over a roster snapshot.
package grading

import (
	"errors"

	"gradebook/internal/roster"
)

var (
	ErrNoStudents = errors.New("no students have been added yet")
	ErrNoGrades   = errors.New("no grades have been added")
)

type DefaultGrader struct{}

func NewGrader() *DefaultGrader { return &DefaultGrader{} }

// Average returns ok=false for an empty slice.
func Average(grades []int) (avg float64, ok bool) {
	if len(grades) == 0 {
		return 0, false
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return float64(sum) / float64(len(grades)), true
}

func (g *DefaultGrader) Report(students []roster.Student) (Report, error) {
	if len(students) == 0 {
		return Report{}, ErrNoStudents
	}
	report := Report{Students: make([]StudentAverage, 0, len(students))}
	averages := make([]float64, 0, len(students))
	for _, s := range students {
		avg, ok := Average(s.Grades)
		report.Students = append(report.Students, StudentAverage{Name: s.Name, Average: avg, Graded: ok})
		if ok {
			averages = append(averages, avg)
		}
	}
	if len(averages) == 0 {
		return report, nil
	}

	stats := ClassStats{Max: averages[0], Min: averages[0]}
	sum := 0.0
	for _, avg := range averages {
		stats.Max = max(stats.Max, avg)
		stats.Min = min(stats.Min, avg)
		sum += avg
	}
	stats.Overall = sum / float64(len(averages))
	report.Stats = &stats
	return report, nil
}

// TopPerformer picks the highest average; ties go to the earliest student.
func (g *DefaultGrader) TopPerformer(students []roster.Student) (TopPerformer, error) {
	if len(students) == 0 {
		return TopPerformer{}, ErrNoStudents
	}
	var (
		top   TopPerformer
		found bool
	)
	for _, s := range students {
		avg, ok := Average(s.Grades)
		if !ok {
			continue
		}
		if !found || avg > top.Average {
			top = TopPerformer{Name: s.Name, Average: avg}
			found = true
		}
	}
	if !found {
		return TopPerformer{}, ErrNoGrades
	}
	return top, nil
}
