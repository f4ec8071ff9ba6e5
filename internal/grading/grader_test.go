package grading

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gradebook/internal/roster"
)

func TestAverage(t *testing.T) {
	_, ok := Average(nil)
	require.False(t, ok)
	_, ok = Average([]int{})
	require.False(t, ok)

	avg, ok := Average([]int{0})
	require.True(t, ok)
	require.Equal(t, 0.0, avg)

	avg, ok = Average([]int{80, 90, 95})
	require.True(t, ok)
	require.InDelta(t, 88.3333, avg, 1e-4)
}

func TestReportUsesAverageOfAverages(t *testing.T) {
	students := []roster.Student{
		{Name: "A", Grades: []int{}},
		{Name: "B", Grades: []int{80, 90}},
		{Name: "C", Grades: []int{100}},
	}
	report, err := NewGrader().Report(students)
	require.NoError(t, err)
	require.NotNil(t, report.Stats)
	require.Equal(t, 92.5, report.Stats.Overall)

	require.Equal(t, []string{
		"A's average grade is N/A.",
		"B's average grade is 85.0.",
		"C's average grade is 100.0.",
		"---------------------------",
		"Max Average: 100.0",
		"Min Average: 85.0",
		"Overall Average: 92.5",
	}, report.Lines())
}

func TestReportWithoutGrades(t *testing.T) {
	report, err := NewGrader().Report([]roster.Student{{Name: "A"}, {Name: "B"}})
	require.NoError(t, err)
	require.Nil(t, report.Stats)
	require.Equal(t, []string{
		"A's average grade is N/A.",
		"B's average grade is N/A.",
		"---------------------------",
		"No grades have been added for any student yet.",
	}, report.Lines())
}

func TestReportEmptyRoster(t *testing.T) {
	_, err := NewGrader().Report(nil)
	require.ErrorIs(t, err, ErrNoStudents)
}

func TestTopPerformerTieGoesToFirst(t *testing.T) {
	students := []roster.Student{
		{Name: "w", Grades: []int{70}},
		{Name: "x", Grades: []int{85, 86}},
		{Name: "y", Grades: []int{86, 85}},
		{Name: "z", Grades: []int{60}},
	}
	top, err := NewGrader().TopPerformer(students)
	require.NoError(t, err)
	require.Equal(t, "x", top.Name)
	require.Equal(t, 85.5, top.Average)
	require.Equal(t, "The student with the highest average is x with a grade of 85.5", top.Line())
}

func TestTopPerformerSkipsUngraded(t *testing.T) {
	students := []roster.Student{
		{Name: "empty"},
		{Name: "zero", Grades: []int{0}},
	}
	top, err := NewGrader().TopPerformer(students)
	require.NoError(t, err)
	require.Equal(t, "zero", top.Name)
}

func TestTopPerformerErrors(t *testing.T) {
	_, err := NewGrader().TopPerformer(nil)
	require.ErrorIs(t, err, ErrNoStudents)

	_, err = NewGrader().TopPerformer([]roster.Student{{Name: "a"}})
	require.ErrorIs(t, err, ErrNoGrades)
}

func TestFormatAverageOneDecimal(t *testing.T) {
	require.Equal(t, "100.0", FormatAverage(100))
	require.Equal(t, "66.7", FormatAverage(200.0/3.0))
	require.Equal(t, "0.0", FormatAverage(0))
}
