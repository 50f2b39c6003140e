// Package repl turns a lang.Session into a line-at-a-time console. It owns
// the buffer accumulation that the session leaves to its host: a line is
// appended to the pending unit while the session reports it incomplete,
// and starts a fresh unit otherwise.
package repl

import (
	"errors"
	"fmt"
	"strings"

	"golet/pkg/config"
	"golet/pkg/lang"
)

const helpText = `REPL commands:
  :help    Show this help
  :env     List variables with their types and values
  :reset   Drop every variable
  :quit    Exit the REPL`

// Reply is the outcome of one submitted line.
type Reply struct {
	Output string // text to show, possibly multi-line; empty for nothing
	Err    error  // classified failure from the session, already reported in Output
	Quit   bool
}

type Driver struct {
	sess    *lang.Session
	cfg     config.REPL
	pending bool
}

func NewDriver(sess *lang.Session, cfg config.REPL) *Driver {
	return &Driver{sess: sess, cfg: cfg}
}

// Pending reports whether an incomplete unit is waiting for more lines.
func (d *Driver) Pending() bool { return d.pending }

// Prompt returns the prompt for the next line.
func (d *Driver) Prompt() string {
	if d.pending {
		return d.cfg.ContinuationPrompt
	}
	return d.cfg.Prompt
}

// Submit handles one line of input.
func (d *Driver) Submit(line string) Reply {
	if !d.pending {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return Reply{}
		}
		if strings.HasPrefix(trimmed, ":") {
			return d.command(trimmed)
		}
		d.sess.Feed(line, false)
	} else {
		d.sess.Feed("\n"+line, true)
	}

	obj, err := d.sess.Run()
	if errors.Is(err, lang.ErrWaitForInput) {
		d.pending = true
		return Reply{}
	}
	d.pending = false
	if err != nil {
		return Reply{Output: lang.FormatError(err, d.sess.Source()), Err: err}
	}
	if lang.IsNull(obj) && !d.cfg.PrintNull {
		return Reply{}
	}
	return Reply{Output: obj.String()}
}

// Cancel abandons a pending unit.
func (d *Driver) Cancel() {
	d.pending = false
	d.sess.Feed("", false)
}

func (d *Driver) command(cmd string) Reply {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return Reply{Quit: true}
	case ":help":
		return Reply{Output: helpText}
	case ":reset":
		d.sess.Reset()
		return Reply{Output: "environment cleared"}
	case ":env":
		return Reply{Output: d.env()}
	}
	return Reply{Output: fmt.Sprintf("unknown command %s. Type :help for help.", cmd)}
}

func (d *Driver) env() string {
	bindings := d.sess.Bindings()
	if len(bindings) == 0 {
		return "(no variables)"
	}
	lines := make([]string, len(bindings))
	for i, b := range bindings {
		val := "<unset>"
		if b.Value != nil {
			val = b.Value.String()
		}
		lines[i] = fmt.Sprintf("%s: %s = %s", b.Name, b.Type, val)
	}
	return strings.Join(lines, "\n")
}
