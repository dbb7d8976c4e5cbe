package comparators

import (
	"slices"

	"github.com/oneconcern/solo/pkg/model"
)

// Func adapts a comparator to the int-returning callbacks expected by the slices package
func Func[R model.Record](c Comparator, field FieldSpec) func(a, b R) int {
	return func(a, b R) int {
		return int(c.Compare(a, b, field))
	}
}

// SortStable sorts records in place by the descending value of field.
//
// Records comparing as equal, including those with a faulty field, keep their relative order.
func SortStable[R model.Record](c Comparator, records []R, field FieldSpec) {
	slices.SortStableFunc(records, Func[R](c, field))
}

// IsSorted reports whether records are in descending order of field
func IsSorted[R model.Record](c Comparator, records []R, field FieldSpec) bool {
	return slices.IsSortedFunc(records, Func[R](c, field))
}
