// Package host connects a Schema to a real process: it reads the program name
// and arguments, prints results and decides the exit status.
package host

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/dsl"
)

// Exit statuses used by Handle.
const (
	ExitOK    = 0
	ExitError = 1
)

// Host is the process-facing side of a parse. The zero value is not usable;
// start from New.
type Host struct {
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)
	Logger *slog.Logger
	// Color renders error messages in red.
	Color bool
	// Name overrides the program name taken from os.Args[0].
	Name string
	// Argv is the full argument vector; os.Args when nil.
	Argv []string
}

// New returns a Host bound to the current process.
func New() *Host {
	return &Host{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
		Logger: slog.Default(),
		Color:  !color.NoColor,
	}
}

// ProgramName returns the display name of the running program.
func (h *Host) ProgramName() string {
	if h.Name != "" {
		return h.Name
	}
	argv := h.argv()
	if len(argv) == 0 || argv[0] == "" {
		return "prog-name"
	}
	return filepath.Base(argv[0])
}

// Args returns the argument tokens after the program name.
func (h *Host) Args() []string {
	argv := h.argv()
	if len(argv) < 2 {
		return nil
	}
	return append([]string(nil), argv[1:]...)
}

func (h *Host) argv() []string {
	if h.Argv != nil {
		return h.Argv
	}
	return os.Args
}

// Handle acts on res. Success returns the values and true. Errors are
// printed to Stderr one per line followed by Exit(ExitError); output is
// printed to Stdout followed by Exit(ExitOK). If Exit returns, as it does in
// tests, Handle returns false.
func (h *Host) Handle(ctx context.Context, res argskema.Result) (argskema.Values, bool) {
	log := h.logger()
	switch res.Kind {
	case argskema.Success:
		log.DebugContext(ctx, "arguments parsed", slog.Int("fields", res.Value.Len()))
		return res.Value, true
	case argskema.OutputAndExit:
		_, _ = io.WriteString(h.Stdout, res.Output)
		h.Exit(ExitOK)
		return argskema.Values{}, false
	default:
		red := color.New(color.FgRed)
		if h.Color {
			red.EnableColor()
		} else {
			red.DisableColor()
		}
		for _, msg := range res.Messages() {
			_, _ = red.Fprintln(h.Stderr, msg)
		}
		log.DebugContext(ctx, "argument errors", slog.Int("count", len(res.Issues)), slog.Any("error", res.Err()))
		h.Exit(ExitError)
		return argskema.Values{}, false
	}
}

// Parse runs s against the process arguments and handles the result.
func (h *Host) Parse(ctx context.Context, s *argskema.Schema) (argskema.Values, bool) {
	return h.Handle(ctx, s.Parse(h.ProgramName(), h.Args()))
}

func (h *Host) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// GetArguments parses the process arguments into T. It returns only on
// success unless the Host's Exit returns.
func GetArguments[T any](ctx context.Context, h *Host, p *dsl.Parser[T]) (T, bool) {
	v, res := p.Parse(h.ProgramName(), h.Args())
	if _, ok := h.Handle(ctx, res); !ok {
		var zero T
		return zero, false
	}
	return v, true
}
