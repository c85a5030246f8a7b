// Package aggregates defines the error kinds shared by every aggregate:
// lookups that matched nothing, operations that would break an aggregate
// invariant, field-level validation rejections, and storage failures
// surfaced by the data layer.
//
// The kinds intentionally avoid persistence/transport implementation
// details; callers branch on them with the Is* helpers.
package aggregates
