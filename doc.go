// Package argskema derives a command-line parser, validator and help text from
// a static description of a target structure.
//
// A Description lists a structure's fields with their element Kind and
// Cardinality. BuildSchema turns it into an immutable Schema holding the
// option table; Schema.Parse consumes argument tokens and returns a Result
// that is exactly one of:
//
//   - Success: the typed Values, in declaration order
//   - Errors: every problem found, in a deterministic order
//   - OutputAndExit: help (or version) text the host should print before exiting 0
//
// Design policy:
//   - The engine does no I/O, never exits and keeps no global state; see the
//     host package for the process-facing side.
//   - Problems are accumulated, never short-circuited, except that a schema
//     which cannot be built is rejected before any token is read.
//   - Element parsers live in an explicit Registry passed with WithRegistry.
//
// Typical usage:
//
//	s := argskema.MustBuildSchema(argskema.Product("Options",
//	    argskema.FieldSpec{Name: "bar", Kind: argskema.KindInt, Cardinality: argskema.Optional},
//	    argskema.FieldSpec{Name: "baz", Kind: argskema.KindString},
//	    argskema.FieldSpec{Name: "bool", Kind: argskema.KindBool},
//	))
//	res := s.Parse("prog-name", os.Args[1:])
//
// The dsl package builds Descriptions fluently or from Go struct types and
// binds Values back into them; describe loads Descriptions from YAML or JSON.
package argskema
