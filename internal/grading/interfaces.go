package grading

import "gradebook/internal/roster"

type Reporter interface {
	Report(students []roster.Student) (Report, error)
	TopPerformer(students []roster.Student) (TopPerformer, error)
}
