// Package comparators orders loosely typed records by a numeric field, most recent (or largest) first.
//
// A comparison never fails: when a field cannot be extracted from either record, the fault is logged,
// counted, and both records compare as equal. A single malformed record therefore never aborts a sort.
//
// Ties and faults both collapse to EqualTo, so comparators define a total preorder rather than a strict order.
// Use a stable sort to keep the input order of equal records.
package comparators
