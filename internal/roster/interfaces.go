package roster

type Store interface {
	Find(name string) (Student, bool)
	Add(name string) (Student, error)
	AddGrade(name string, grade int) error
	Students() []Student
	Len() int
}
