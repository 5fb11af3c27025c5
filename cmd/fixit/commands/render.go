package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/fixit/internal/ui/output"
	"go.trai.ch/fixit/internal/ui/style"
)

type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: output.New(w)}
}

func (p *printer) colored(text string, c lipgloss.Color) string {
	return p.out.String(text).Foreground(termenv.RGBColor(string(c))).String()
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// fixSet prints every fix under a numbered header. The correct fix is not revealed.
func (p *printer) fixSet(set domain.FixSet) {
	p.line("%s %s (%d fixes)", p.colored(style.Dot, style.Iris), set.Key, set.Len())
	for i, fix := range set.Fixes {
		p.line("")
		p.line("%s", p.colored(fmt.Sprintf("[%d]", i), style.Slate))
		for _, l := range strings.Split(strings.TrimRight(fix, "\n"), "\n") {
			p.line("    %s", l)
		}
	}
}

func (p *printer) outcome(o domain.Outcome) {
	if o.Verdict {
		p.line("%s correct", p.colored(style.Check, style.Green))
	} else {
		p.line("%s incorrect", p.colored(style.Cross, style.Red))
	}
	if o.HasExplanation {
		p.line("  %s", o.Explanation)
	}
}

func (p *printer) accuracy(r domain.AccuracyReport) {
	p.line("accuracy %.1f%% (%d/%d passed), %d solved", r.Ratio()*100, r.Passed, r.Attempts, r.Solved())
	for _, c := range r.Challenges {
		icon := p.colored(style.Dot, style.Slate)
		if c.Solved {
			icon = p.colored(style.Check, style.Green)
		}
		p.line("%s %s %d/%d", icon, c.Key, c.Passed, c.Attempts)
	}
}

func (p *printer) index(sets []domain.FixSet) {
	for _, set := range sets {
		marker := p.colored(style.Warning, style.Yellow)
		if set.HasCorrect() {
			marker = p.colored(style.Check, style.Green)
		}
		p.line("%s %s %d", marker, set.Key, set.Len())
	}
	p.line("indexed %d challenges", len(sets))
}
