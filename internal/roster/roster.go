// Package roster holds the ordered, in-memory list of students for one session.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MinGrade = 0
	MaxGrade = 100
)

var (
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrDuplicate   = errors.New("student already exists")
	ErrNotFound    = errors.New("student not found")
	ErrEmptyRoster = errors.New("no students yet")
	ErrGradeRange  = fmt.Errorf("grade must be between %d and %d", MinGrade, MaxGrade)
)

type Student struct {
	Name   string
	Grades []int
}

// Roster keeps students in insertion order. Names are unique ignoring case.
type Roster struct {
	students []Student
}

func New() *Roster { return &Roster{} }

func normalize(name string) string {
	return strings.TrimSpace(name)
}

// lowerKey lowercases the trimmed name. Only case differences are ignored, so
// "Straße" and "Strasse" stay distinct.
func lowerKey(name string) string {
	return cases.Lower(language.Und).String(normalize(name))
}

func (r *Roster) index(name string) int {
	key := lowerKey(name)
	for i := range r.students {
		if lowerKey(r.students[i].Name) == key {
			return i
		}
	}
	return -1
}

// Find returns a copy of the first student whose name matches, ignoring case and
// surrounding whitespace.
func (r *Roster) Find(name string) (Student, bool) {
	i := r.index(name)
	if i < 0 {
		return Student{}, false
	}
	return r.students[i].clone(), true
}

func (r *Roster) Add(name string) (Student, error) {
	name = normalize(name)
	if name == "" {
		return Student{}, ErrEmptyName
	}
	if r.index(name) >= 0 {
		return Student{}, fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	s := Student{Name: name, Grades: []int{}}
	r.students = append(r.students, s)
	return s.clone(), nil
}

func (r *Roster) AddGrade(name string, grade int) error {
	if len(r.students) == 0 {
		return ErrEmptyRoster
	}
	if grade < MinGrade || grade > MaxGrade {
		return fmt.Errorf("%w: got %d", ErrGradeRange, grade)
	}
	i := r.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	r.students[i].Grades = append(r.students[i].Grades, grade)
	return nil
}

// Students returns a snapshot in insertion order.
func (r *Roster) Students() []Student {
	out := make([]Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s.clone())
	}
	return out
}

func (r *Roster) Len() int { return len(r.students) }

func (s Student) clone() Student {
	grades := make([]int, len(s.Grades))
	copy(grades, s.Grades)
	return Student{Name: s.Name, Grades: grades}
}
