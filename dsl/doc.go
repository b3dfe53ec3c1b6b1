// Package dsl declares argskema descriptions in Go.
//
// Entry points
//   - Object(name): a builder for flag-addressed fields; chain Field/Required/
//     Optional/Multiple/Positional/Help and finish with Build or MustBuild.
//   - Tuple(name, kinds...): unnamed components filled by position.
//   - Union(name, variants...): alternatives. Declarable, never buildable.
//   - StructOf[T](): derive the description from a struct and its `arg` tags.
//   - Bind[T](builder): pair a hand-written builder with a struct.
//
// Example
//
//	type Opts struct {
//	    Port    int      `arg:"help=listen port"`
//	    Verbose bool
//	    Files   []string `arg:"positional"`
//	}
//
//	p := dsl.MustStructOf[Opts]()
//	opts, res := p.Parse("serve", os.Args[1:])
//	if res.Kind != argskema.Success {
//	    // hand res to host.Handle
//	}
//	_ = opts
package dsl
