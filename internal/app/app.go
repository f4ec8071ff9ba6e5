package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gradebook/internal/grading"
	"gradebook/internal/input"
	"gradebook/internal/roster"
	"gradebook/internal/telemetry"
	"gradebook/internal/ui"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var ErrInputClosed = errors.New("input closed")

type Options struct {
	In          io.Reader
	Out         io.Writer
	Diagnostics io.Writer
}

// App owns the roster for exactly one session.
type App struct {
	cfg Config

	journal *telemetry.Journal
	diag    *clog.Logger
	console Console
	roster  roster.Store
	grader  grading.Reporter

	sessionID string
}

func New(cfg Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = os.Stderr
	}

	diag, err := telemetry.NewDiagnostics(opts.Diagnostics, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	journal, err := telemetry.OpenJournal(cfg.JournalPath, sessionID)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	theme := ui.PlainTheme()
	if ui.ColorEnabled(cfg.Color, opts.Out) {
		theme = ui.ThemeForVariant(opts.Out, cfg.StyleVariant, cfg.Color == string(ColorAlways))
	}

	return &App{
		cfg:       cfg,
		journal:   journal,
		diag:      diag.With("session", sessionID),
		console:   ui.NewConsole(ui.Options{In: opts.In, Out: opts.Out, Theme: theme}),
		roster:    roster.New(),
		grader:    grading.NewGrader(),
		sessionID: sessionID,
	}, nil
}

func (a *App) SessionID() string { return a.sessionID }

// Run loops over the menu until Exit is chosen. Closed input ends the session
// with ErrInputClosed.
func (a *App) Run(ctx context.Context) error {
	a.journal.Info("session.start", map[string]any{"color": a.cfg.Color})
	a.diag.Debug("session started")

	for {
		if err := ctx.Err(); err != nil {
			a.journal.Error("session.end", map[string]any{"error": err.Error()})
			return err
		}
		a.printMenu()
		choice, err := a.readMenuChoice()
		if err != nil {
			a.journal.Error("session.end", map[string]any{"error": err.Error(), "students": a.roster.Len()})
			return err
		}
		exit, err := a.dispatch(choice)
		if err != nil {
			a.journal.Error("session.end", map[string]any{"error": err.Error(), "students": a.roster.Len()})
			return err
		}
		if exit {
			a.journal.Info("session.end", map[string]any{"students": a.roster.Len(), "events": a.journal.Events()})
			return nil
		}
	}
}

func (a *App) Close() error {
	return a.journal.Close()
}

func (a *App) dispatch(choice MenuChoice) (bool, error) {
	a.diag.Debug("dispatch", "choice", int(choice))
	switch choice {
	case ChoiceAddStudent:
		return false, a.addStudent()
	case ChoiceAddGrades:
		return false, a.addGrades()
	case ChoiceShowReport:
		a.showReport()
		return false, nil
	case ChoiceTopPerformer:
		a.findTopPerformer()
		return false, nil
	case ChoiceExit:
		a.console.Println(msgExit)
		return true, nil
	default:
		// readMenuChoice only yields 1-5.
		return false, fmt.Errorf("unknown menu choice %d", choice)
	}
}

func (a *App) printMenu() {
	a.console.Println("")
	a.console.Header(menuHeader)
	for _, item := range menuItems {
		a.console.Println(fmt.Sprintf("%d. %s", item.Choice, item.Label))
	}
}

func (a *App) readLine(prompt string) (string, error) {
	line, err := a.console.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (a *App) readMenuChoice() (MenuChoice, error) {
	for {
		raw, err := a.readLine(promptChoice)
		if err != nil {
			return 0, err
		}
		n, err := input.ParseMenuChoice(raw)
		if err == nil {
			return MenuChoice(n), nil
		}
		a.diag.Debug("menu choice rejected", "input", raw, "err", err)
		if errors.Is(err, input.ErrOutOfRange) {
			a.console.Warn(msgChoiceOutOfRange)
		} else {
			a.console.Warn(msgChoiceNotNumber)
		}
	}
}

func (a *App) addStudent() error {
	raw, err := a.readLine(promptName)
	if err != nil {
		return err
	}
	name := input.NormalizeName(raw)
	s, err := a.roster.Add(name)
	switch {
	case errors.Is(err, roster.ErrEmptyName):
		a.console.Warn(msgEmptyName)
		a.journal.Warn("student.rejected", map[string]any{"reason": "empty_name"})
	case errors.Is(err, roster.ErrDuplicate):
		a.console.Warn(fmt.Sprintf("Student '%s' already exists.", name))
		a.journal.Warn("student.rejected", map[string]any{"reason": "duplicate", "name": name})
	case err != nil:
		return err
	default:
		a.console.Success(fmt.Sprintf("Student '%s' added successfully.", s.Name))
		a.journal.Info("student.added", map[string]any{"name": s.Name, "roster_size": a.roster.Len()})
	}
	return nil
}

func (a *App) addGrades() error {
	if a.roster.Len() == 0 {
		a.console.Warn(msgNoStudentsYet)
		return nil
	}
	raw, err := a.readLine(promptName)
	if err != nil {
		return err
	}
	student, ok := a.roster.Find(raw)
	if !ok {
		a.console.Warn(fmt.Sprintf("Student '%s' was not found.", raw))
		a.journal.Warn("grade.rejected", map[string]any{"reason": "unknown_student", "name": raw})
		return nil
	}

	a.console.Note(msgGradesIntro)
	a.console.Note(msgGradesDoneHint)
	for {
		line, err := a.readLine(promptGrade)
		if err != nil {
			return err
		}
		grade, done, err := input.ParseGrade(line)
		if done {
			return nil
		}
		if err != nil {
			a.diag.Debug("grade rejected", "input", line, "err", err)
			a.journal.Warn("grade.rejected", map[string]any{"name": student.Name, "input": line})
			if errors.Is(err, input.ErrOutOfRange) {
				a.console.Warn(msgGradeOutOfRange)
			} else {
				a.console.Warn(msgGradeNotNumber)
			}
			continue
		}
		if err := a.roster.AddGrade(student.Name, grade); err != nil {
			a.diag.Error("add grade", "name", student.Name, "err", err)
			return err
		}
		a.journal.Info("grade.added", map[string]any{"name": student.Name, "grade": grade})
	}
}

func (a *App) showReport() {
	report, err := a.grader.Report(a.roster.Students())
	if err != nil {
		a.console.Warn(msgNoStudents)
		return
	}
	a.console.Println("")
	a.console.Header(reportHeader)
	a.console.Println(report.Lines()...)
	a.journal.Info("report.shown", map[string]any{"students": len(report.Students), "graded": report.Stats != nil})
}

func (a *App) findTopPerformer() {
	top, err := a.grader.TopPerformer(a.roster.Students())
	switch {
	case errors.Is(err, grading.ErrNoStudents):
		a.console.Warn(msgNoStudents)
	case errors.Is(err, grading.ErrNoGrades):
		a.console.Warn(msgNoTopPerformer)
	case err != nil:
		a.diag.Error("top performer", "err", err)
	default:
		a.console.Println(top.Line())
		a.journal.Info("top.shown", map[string]any{"name": top.Name, "average": top.Average})
	}
}
