package ir

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
)

// Package is the result of Collect.
type Package struct {
	Name    string
	Structs []Struct
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Collect loads the Go package in dir, honoring build constraints and
// leaving out test files, and reduces the named struct types in the order
// given. dir must be inside a module.
func Collect(dir string, typeNames ...string) (*Package, error) {
	cfg := &packages.Config{Mode: loadMode, Dir: dir}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("ir: %d packages in %s", len(pkgs), dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, fmt.Errorf("ir: load %s: %w", dir, errors.Join(errs...))
	}
	return collect(pkg.Types, typeNames)
}

// CollectSource is Collect over a single in-memory file. Imports are
// resolved from source.
func CollectSource(src string, typeNames ...string) (*Package, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	tp, err := conf.Check(f.Name.Name, fset, []*ast.File{f}, nil)
	if err != nil {
		return nil, fmt.Errorf("ir: %w", err)
	}
	return collect(tp, typeNames)
}

func collect(tp *types.Package, typeNames []string) (*Package, error) {
	out := &Package{Name: tp.Name()}
	for _, tn := range typeNames {
		obj, ok := tp.Scope().Lookup(tn).(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("ir: type %s not found in %s", tn, tp.Path())
		}
		s, err := structOf(obj, tp)
		if err != nil {
			return nil, err
		}
		out.Structs = append(out.Structs, s)
	}
	return out, nil
}

// structOf follows the field rules of dsl.StructOf: every exported field,
// embedded ones included, unless its tag skips it.
func structOf(obj *types.TypeName, tp *types.Package) (Struct, error) {
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return Struct{}, fmt.Errorf("ir: %s is not a struct type", obj.Name())
	}
	s := Struct{Name: obj.Name()}
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() {
			continue
		}
		t := ResolveTag(v.Name(), reflect.StructTag(st.Tag(i)))
		if t.Skip || t.Name == "" {
			continue
		}
		f, err := fieldOf(v.Name(), v.Type(), t, tp)
		if err != nil {
			return Struct{}, fmt.Errorf("ir: %s.%s: %w", obj.Name(), v.Name(), err)
		}
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

// fieldOf maps a field type by its underlying kind, so named types such as
// `type Level int` behave as they do under reflection.
func fieldOf(goName string, typ types.Type, t Tag, tp *types.Package) (Field, error) {
	f := Field{GoName: goName, Name: t.Name, Positional: t.Positional, Help: t.Help}
	switch u := typ.Underlying().(type) {
	case *types.Pointer:
		f.Cardinality = argskema.Optional
		typ = u.Elem()
	case *types.Slice:
		f.Cardinality = argskema.Multiple
		typ = u.Elem()
	}
	if t.Kind != "" {
		f.Kind = argskema.Kind(t.Kind)
		return f, nil
	}
	if n, ok := typ.(*types.Named); ok && n.Obj().Pkg() != nil && n.Obj().Pkg().Path() == "time" {
		switch n.Obj().Name() {
		case "Time":
			f.Kind = codec.KindTime
			return f, nil
		case "Duration":
			f.Kind = codec.KindDuration
			return f, nil
		}
	}
	unsupported := func() error {
		return fmt.Errorf("unsupported field type %s", types.TypeString(typ, types.RelativeTo(tp)))
	}
	b, ok := typ.Underlying().(*types.Basic)
	if !ok {
		return f, unsupported()
	}
	switch b.Kind() {
	case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
		f.Kind = argskema.KindInt
	case types.String:
		f.Kind = argskema.KindString
	case types.Bool:
		f.Kind = argskema.KindBool
	case types.Float32, types.Float64:
		f.Kind = argskema.KindFloat
	default:
		return f, unsupported()
	}
	return f, nil
}
