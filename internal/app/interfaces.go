package app

type Console interface {
	ReadLine(prompt string) (string, error)
	Println(lines ...string)
	Header(s string)
	Success(s string)
	Warn(s string)
	Note(s string)
}
