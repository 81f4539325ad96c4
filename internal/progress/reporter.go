// Package progress reports batch contract analysis: one outcome per file,
// tallied by risk level.
package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/lexdesk/lexdesk/internal/document"
)

// Outcome is the result of analyzing one file.
type Outcome struct {
	Path  string
	Level document.RiskLevel
	Score int
	Err   error
}

func (o Outcome) String() string {
	name := filepath.Base(o.Path)
	if o.Err != nil {
		return name + ": failed"
	}
	return fmt.Sprintf("%s: %s %d", name, o.Level, o.Score)
}

// Tally counts finished files. Safe for concurrent use.
type Tally struct {
	mu      sync.Mutex
	total   int
	done    int
	failed  int
	byLevel map[document.RiskLevel]int
}

func (t *Tally) reset(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total, t.done, t.failed = total, 0, 0
	t.byLevel = make(map[document.RiskLevel]int)
}

// add records o and returns how many files have finished, out of how many.
func (t *Tally) add(o Outcome) (done, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.byLevel == nil {
		t.byLevel = make(map[document.RiskLevel]int)
	}
	t.done++
	if o.Err != nil {
		t.failed++
	} else {
		t.byLevel[o.Level]++
	}
	return t.done, t.total
}

// Summary renders e.g. "3 analyzed (높음 1, 중간 2), 1 failed". Levels are
// listed most severe first; unrecognized levels follow.
func (t *Tally) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var levels []string
	seen := make(map[document.RiskLevel]bool)
	for i := len(document.RiskLevels) - 1; i >= 0; i-- {
		level := document.RiskLevels[i]
		seen[level] = true
		if n := t.byLevel[level]; n > 0 {
			levels = append(levels, fmt.Sprintf("%s %d", level, n))
		}
	}
	var other []string
	for level, n := range t.byLevel {
		if !seen[level] {
			other = append(other, fmt.Sprintf("%s %d", level, n))
		}
	}
	sort.Strings(other)
	levels = append(levels, other...)

	s := fmt.Sprintf("%d analyzed", t.done-t.failed)
	if len(levels) > 0 {
		s += " (" + strings.Join(levels, ", ") + ")"
	}
	return fmt.Sprintf("%s, %d failed", s, t.failed)
}

// Failed returns the number of failed files so far.
func (t *Tally) Failed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}

// Reporter receives one Done call per file, from any goroutine.
type Reporter interface {
	Start(total int)
	Done(o Outcome)
	Finish()
	Tally() *Tally
}

// NewReporter returns a CIReporter when running under CI, and a
// TerminalReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter draws a progress bar on stderr.
type TerminalReporter struct {
	tally Tally
	mu    sync.Mutex // keeps bar updates in finish order
	bar   *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.tally.reset(total)
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Analyzing contracts"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Done(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, _ := r.tally.add(o)
	if r.bar != nil {
		r.bar.Describe(o.String())
		_ = r.bar.Set(n)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprintln(os.Stderr, r.tally.Summary())
}

func (r *TerminalReporter) Tally() *Tally { return &r.tally }

// CIReporter prints one line per file, for logs without a terminal.
type CIReporter struct {
	// Out defaults to stderr.
	Out io.Writer

	tally Tally
	mu    sync.Mutex // serializes lines
}

func (r *CIReporter) printf(format string, args ...interface{}) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, format, args...)
}

func (r *CIReporter) Start(total int) {
	r.tally.reset(total)
	r.printf("Analyzing %d contracts\n", total)
}

func (r *CIReporter) Done(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, total := r.tally.add(o)
	r.printf("[%d/%d] %s\n", n, total, o)
}

func (r *CIReporter) Finish() {
	r.printf("Analysis complete: %s\n", r.tally.Summary())
}

func (r *CIReporter) Tally() *Tally { return &r.tally }
