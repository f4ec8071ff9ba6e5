package app

type MenuChoice int

const (
	ChoiceAddStudent MenuChoice = iota + 1
	ChoiceAddGrades
	ChoiceShowReport
	ChoiceTopPerformer
	ChoiceExit
)

type menuItem struct {
	Choice MenuChoice
	Label  string
}

var menuItems = []menuItem{
	{ChoiceAddStudent, "Add a new student"},
	{ChoiceAddGrades, "Add grades for a student"},
	{ChoiceShowReport, "Show report (all students)"},
	{ChoiceTopPerformer, "Find top performer"},
	{ChoiceExit, "Exit"},
}

const (
	menuHeader   = "--- Student Grade Analyzer ---"
	reportHeader = "--- Student Report ---"

	promptChoice = "Enter your choice (1-5): "
	promptName   = "Enter student name: "
	promptGrade  = "Enter a grade (or 'done' to finish): "

	msgChoiceNotNumber  = "Invalid input. Please enter a number between 1 and 5."
	msgChoiceOutOfRange = "Please enter a number between 1 and 5"
	msgEmptyName        = "Name cannot be empty."
	msgNoStudentsYet    = "No students yet. Please add a student first."
	msgGradesIntro      = "Enter grades for the student (0–100)."
	msgGradesDoneHint   = "Type 'done' when you finish."
	msgGradeNotNumber   = "Invalid input! Please enter a number."
	msgGradeOutOfRange  = "Grade must be between 0 and 100"
	msgNoStudents       = "No students have been added yet."
	msgNoTopPerformer   = "No grades have been added, so there is no top performer yet."
	msgExit             = "Exiting program."
)
