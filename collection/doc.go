// Package collection adapts Go containers to traversal.Collection.
// Slices passed by pointer, lists and maps support removal during traversal;
// arrays, reflected values and struct fields are read only and report
// traversal.ErrRemoveUnsupported.
package collection
