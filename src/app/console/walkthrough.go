// Package console runs the lessons as a printed walkthrough.
//
// Every step either prints its result or prints its classified failure; in
// both cases the walkthrough moves on to the next step. Nothing a step
// returns stops the run; only cancelling the context does.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"lessonbox/src/core/domain"
	"lessonbox/src/core/usecase"
	"lessonbox/src/infra/config"
	"lessonbox/src/infra/logger"
)

const rule = "------------------------------"

// Recorder receives the outcome of every step.
type Recorder interface {
	RecordFailure(source string, err error)
	RecordStep(failed bool)
}

// Step is one independent unit of work. It returns the lines to print.
type Step struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

// Lesson is a titled group of steps.
type Lesson struct {
	Title string
	Steps []Step
}

// Services are the use cases the lessons drive.
type Services struct {
	Members    *usecase.MemberService
	Accounts   *usecase.AccountService
	Animals    *usecase.AnimalService
	Calculator *usecase.CalculatorService
	Notes      *usecase.NoteService
}

// Summary counts what happened during a run.
type Summary struct {
	Steps    int
	Failures map[domain.Kind]int
}

// Failed returns the total number of failed steps.
func (s Summary) Failed() int {
	n := 0
	for _, c := range s.Failures {
		n += c
	}
	return n
}

// Walkthrough prints lessons to out.
type Walkthrough struct {
	cfg      config.WalkthroughConfig
	svc      Services
	out      io.Writer
	in       *bufio.Reader
	log      *slog.Logger
	recorder Recorder
}

// New builds a walkthrough. in is only read when cfg.Interactive is set;
// recorder may be nil.
func New(cfg config.WalkthroughConfig, svc Services, in io.Reader, out io.Writer, log *slog.Logger, recorder Recorder) *Walkthrough {
	w := &Walkthrough{
		cfg:      cfg,
		svc:      svc,
		out:      out,
		log:      logger.WithComponent(log, "walkthrough"),
		recorder: recorder,
	}
	if cfg.Interactive && in != nil {
		w.in = bufio.NewReader(in)
	}
	return w
}

// Run prints every lesson in order. It returns early only if ctx is done.
func (w *Walkthrough) Run(ctx context.Context) (Summary, error) {
	return w.RunLessons(ctx, w.Lessons())
}

// RunLessons prints the given lessons in order.
func (w *Walkthrough) RunLessons(ctx context.Context, lessons []Lesson) (Summary, error) {
	sum := Summary{Failures: make(map[domain.Kind]int)}
	for i, lesson := range lessons {
		w.printf("--- %d. %s ---\n", i+1, lesson.Title)
		for _, step := range lesson.Steps {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			sum.Steps++
			text, err := step.Run(ctx)
			if text != "" {
				w.printf("%s\n", strings.TrimRight(text, "\n"))
			}
			if w.recorder != nil {
				w.recorder.RecordStep(err != nil)
			}
			if err == nil {
				continue
			}
			kind := domain.KindOf(err)
			sum.Failures[kind]++
			w.printf("%s failed [%s]: %v\n", step.Name, kind, err)
			if w.recorder != nil {
				w.recorder.RecordFailure("walkthrough", err)
			}
			if kind == domain.KindUnclassified {
				logger.Warn(w.log, "unclassified failure", "lesson", lesson.Title, "step", step.Name, "error", err)
			} else {
				logger.Debug(w.log, "step failed", "lesson", lesson.Title, "step", step.Name, "kind", kind)
			}
		}
		w.printf("%s\n", rule)
	}
	w.printSummary(sum)
	return sum, nil
}

func (w *Walkthrough) printSummary(sum Summary) {
	w.printf("%d steps, %d reported a failure\n", sum.Steps, sum.Failed())
	kinds := make([]string, 0, len(sum.Failures))
	for k := range sum.Failures {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		w.printf("  %-20s %d\n", k, sum.Failures[domain.Kind(k)])
	}
}

func (w *Walkthrough) printf(format string, args ...any) {
	// Write errors on out are ignored.
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// readLine prompts and reads one line from the input.
func (w *Walkthrough) readLine(prompt string) (string, error) {
	w.printf("%s", prompt)
	line, err := w.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("%w: %w", domain.NewIOError("reading input"), err)
	}
	return strings.TrimSpace(line), nil
}
