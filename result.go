package argskema

// ResultKind tags the populated variant of a Result.
type ResultKind int

const (
	Success       ResultKind = iota // Value holds the parsed record.
	Errors                          // Issues holds every problem found, in order.
	OutputAndExit                   // Output should be printed and the program should exit 0.
)

func (k ResultKind) String() string {
	switch k {
	case Success:
		return "success"
	case Errors:
		return "errors"
	case OutputAndExit:
		return "output-and-exit"
	}
	return "unknown"
}

// Result is the terminal artifact of one parse. Exactly one of Value, Issues
// and Output is meaningful, as selected by Kind.
type Result struct {
	Kind   ResultKind
	Value  Values
	Issues Issues
	Output string
}

// Messages returns the rendered error messages; nil unless Kind is Errors.
func (r Result) Messages() []string {
	if r.Kind != Errors {
		return nil
	}
	return r.Issues.Messages()
}

// Err returns the issues as an error, or nil unless Kind is Errors.
func (r Result) Err() error {
	if r.Kind != Errors {
		return nil
	}
	return r.Issues
}

func succeed(v Values) Result       { return Result{Kind: Success, Value: v} }
func failWith(iss Issues) Result    { return Result{Kind: Errors, Issues: iss} }
func outputAndExit(s string) Result { return Result{Kind: OutputAndExit, Output: s} }
