package dsl

import (
	"fmt"
	"reflect"
	"time"

	argskema "github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
	"github.com/reoring/argskema/internal/ir"
)

// Parser is a Schema bound to struct type T.
type Parser[T any] struct {
	schema *argskema.Schema
	desc   argskema.Description
	index  []int // struct field index per schema field
}

// StructOf derives a Schema from the exported fields of struct T.
//
// Field types map as follows: integer types are INTEGER, string is STRING,
// float32/float64 are NUMBER, time.Time is TIME, time.Duration is DURATION
// and bool is a flag. *E makes the field optional
// and []E lets it repeat. Fields are configured with the `arg` tag:
//
//	type Opts struct {
//	    Port    int      `arg:"help=listen port"`
//	    Files   []string `arg:"positional"`
//	    Secret  string   `arg:"-"`
//	}
func StructOf[T any](opts ...argskema.Option) (*Parser[T], error) {
	rt, err := structType[T]()
	if err != nil {
		return nil, err
	}
	var (
		fields []argskema.FieldSpec
		index  []int
	)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		ft := resolveField(sf)
		if ft.Skip || ft.Name == "" {
			continue
		}
		fs, err := specOf(sf.Type, ft)
		if err != nil {
			return nil, fmt.Errorf("dsl: %s.%s: %w", rt.Name(), sf.Name, err)
		}
		fields = append(fields, fs)
		index = append(index, i)
	}
	desc := argskema.Product(rt.Name(), fields...)
	s, err := argskema.BuildSchema(desc, withCodecs(opts)...)
	if err != nil {
		return nil, err
	}
	return &Parser[T]{schema: s, desc: desc, index: index}, nil
}

// MustStructOf is like StructOf but panics on error.
func MustStructOf[T any](opts ...argskema.Option) *Parser[T] {
	p, err := StructOf[T](opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Bind builds an object schema and binds it to struct type T. Every declared
// field must resolve to an exported struct field; struct fields that are not
// declared keep their zero value.
func Bind[T any](b *objectBuilder) (*Parser[T], error) {
	rt, err := structType[T]()
	if err != nil {
		return nil, err
	}
	idxByName := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if ft := resolveField(sf); !ft.Skip && ft.Name != "" {
			idxByName[ft.Name] = i
		}
	}
	desc := b.Describe()
	s, err := argskema.BuildSchema(desc, withCodecs(b.opts)...)
	if err != nil {
		return nil, err
	}
	index := make([]int, 0, len(b.fields))
	for _, f := range b.fields {
		i, ok := idxByName[f.Name]
		if !ok {
			return nil, fmt.Errorf("dsl: %s has no field for %q", rt.Name(), f.Name)
		}
		index = append(index, i)
	}
	return &Parser[T]{schema: s, desc: desc, index: index}, nil
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *objectBuilder) *Parser[T] {
	p, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return p
}

// Schema returns the underlying Schema.
func (p *Parser[T]) Schema() *argskema.Schema { return p.schema }

// Describe returns the Description the schema was built from.
func (p *Parser[T]) Describe() argskema.Description { return p.desc }

// Parse parses tokens and decodes a successful result into T. The returned
// Result is the one to hand to the host; on success its Value is also set.
func (p *Parser[T]) Parse(programName string, tokens []string) (T, argskema.Result) {
	var zero T
	res := p.schema.Parse(programName, tokens)
	if res.Kind != argskema.Success {
		return zero, res
	}
	v, err := p.Decode(res.Value)
	if err != nil {
		iss, ok := argskema.AsIssues(err)
		if !ok {
			iss = argskema.Issues{{Code: argskema.CodeParseFailure, Message: err.Error()}}
		}
		return zero, argskema.Result{Kind: argskema.Errors, Issues: iss}
	}
	return v, res
}

// Decode copies materialized values into a new T. A value that does not fit
// its struct field (an int8 field given 300) is reported as a parse failure.
func (p *Parser[T]) Decode(vals argskema.Values) (T, error) {
	var out T
	if vals.Len() != len(p.index) {
		return out, fmt.Errorf("dsl: %d values for %d fields", vals.Len(), len(p.index))
	}
	rv := reflect.ValueOf(&out).Elem()
	fields := p.schema.Fields()
	var iss argskema.Issues
	for i, fi := range p.index {
		if err := assign(rv.Field(fi), vals.At(i)); err != nil {
			fd := fields[i]
			iss = argskema.AppendIssues(iss, p.schema.Issue(argskema.CodeParseFailure, fd.SourceName, fmt.Sprint(vals.At(i)),
				map[string]string{"label": fd.Tag.Label, "token": fmt.Sprint(vals.At(i)), "cardinality": fd.Cardinality.String()}))
		}
	}
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

func structType[T any]() (reflect.Type, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: %s is not a struct type", rt)
	}
	return rt, nil
}

func specOf(t reflect.Type, ft ir.Tag) (argskema.FieldSpec, error) {
	fs := argskema.FieldSpec{Name: ft.Name, Positional: ft.Positional, Help: ft.Help}
	switch t.Kind() {
	case reflect.Pointer:
		fs.Cardinality = argskema.Optional
		t = t.Elem()
	case reflect.Slice:
		fs.Cardinality = argskema.Multiple
		t = t.Elem()
	}
	if ft.Kind != "" {
		fs.Kind = argskema.Kind(ft.Kind)
		return fs, nil
	}
	switch t {
	case reflect.TypeFor[time.Time]():
		fs.Kind = codec.KindTime
		return fs, nil
	case reflect.TypeFor[time.Duration]():
		fs.Kind = codec.KindDuration
		return fs, nil
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fs.Kind = argskema.KindInt
	case reflect.String:
		fs.Kind = argskema.KindString
	case reflect.Bool:
		fs.Kind = argskema.KindBool
	case reflect.Float32, reflect.Float64:
		fs.Kind = argskema.KindFloat
	default:
		return fs, fmt.Errorf("unsupported field type %s", t)
	}
	return fs, nil
}

func assign(dst reflect.Value, v any) error {
	if v == nil {
		return nil
	}
	switch dst.Kind() {
	case reflect.Pointer:
		e := reflect.New(dst.Type().Elem())
		if err := assign(e.Elem(), v); err != nil {
			return err
		}
		dst.Set(e)
		return nil
	case reflect.Slice:
		vs, ok := v.([]any)
		if !ok {
			return fmt.Errorf("want a list, got %T", v)
		}
		s := reflect.MakeSlice(dst.Type(), len(vs), len(vs))
		for j, e := range vs {
			if err := assign(s.Index(j), e); err != nil {
				return err
			}
		}
		dst.Set(s)
		return nil
	}
	sv := reflect.ValueOf(v)
	switch {
	case sv.Type().AssignableTo(dst.Type()):
		dst.Set(sv)
	case sv.CanInt() && dst.CanInt():
		if dst.OverflowInt(sv.Int()) {
			return fmt.Errorf("%d overflows %s", sv.Int(), dst.Type())
		}
		dst.SetInt(sv.Int())
	case sv.CanFloat() && dst.CanFloat():
		dst.SetFloat(sv.Float())
	case sv.Kind() == dst.Kind() && sv.Type().ConvertibleTo(dst.Type()):
		dst.Set(sv.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %T to %s", v, dst.Type())
	}
	return nil
}
