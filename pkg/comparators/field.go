package comparators

import (
	"fmt"
	"sort"

	"github.com/oneconcern/solo/pkg/model"
)

// Kind of numeric value expected in a field
type Kind uint8

const (
	// Int64 fields, e.g. timestamps
	Int64 Kind = iota

	// Int32 fields, e.g. counters
	Int32
)

func (k Kind) String() string {
	switch k {
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// FieldSpec tells which field to extract from a record, and as which numeric type
type FieldSpec struct {
	Name        string
	Kind        Kind
	Description string // used in diagnostics
}

func (f FieldSpec) extract(r model.Record) (int64, error) {
	if f.Kind == Int32 {
		n, err := r.Int32(f.Name)
		return int64(n), err
	}
	return r.Int64(f.Name)
}

// Created orders articles by creation date
func Created() FieldSpec {
	return FieldSpec{Name: model.ArticleCreated, Kind: Int64, Description: "create date"}
}

// Updated orders articles by update date
func Updated() FieldSpec {
	return FieldSpec{Name: model.ArticleUpdated, Kind: Int64, Description: "update date"}
}

// ReferenceCount orders tags by reference count
func ReferenceCount() FieldSpec {
	return FieldSpec{Name: model.TagReferenceCount, Kind: Int32, Description: "tag reference count"}
}

var byName = map[string]func() FieldSpec{
	"created":  Created,
	"updated":  Updated,
	"refcount": ReferenceCount,
}

// FieldSpecNames lists the names accepted by FieldSpecFor
func FieldSpecNames() []string {
	names := make([]string, 0, len(byName))
	for k := range byName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FieldSpecFor resolves a short name (created, updated, refcount) into a FieldSpec
func FieldSpecFor(name string) (FieldSpec, error) {
	build, ok := byName[name]
	if !ok {
		return FieldSpec{}, fmt.Errorf("unknown sort field %q, expected one of %v", name, FieldSpecNames())
	}
	return build(), nil
}
