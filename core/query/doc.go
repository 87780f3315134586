// Package query provides the filter and sort primitives shared by the
// entity services.
//
// All helpers are pure: they never mutate their input and return fresh
// slices, so the content store's collections stay untouched no matter what
// a handler does with the result.
package query
