// Package model describes the base objects manipulated by solo.
//
// The package exposes a loosely typed model for content records.
//
// The object model is composed of:
//
//  Records:
//    A record is a key/value entity holding the fields of a content item. Fields are looked up by
//    name and converted to the expected numeric type on access. A record is never mutated by readers.
//
//  Articles:
//    A record carrying creation and update timestamps (milliseconds since epoch).
//
//  Tags:
//    A record carrying a reference count, i.e. the number of articles referencing the tag.
package model
