package dsl

import (
	"reflect"

	"github.com/reoring/argskema/internal/ir"
)

func resolveField(sf reflect.StructField) ir.Tag { return ir.ResolveTag(sf.Name, sf.Tag) }
