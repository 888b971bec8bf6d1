package main

import (
	"strings"

	"github.com/viant/traversal"
	"github.com/viant/traversal/strfold"
)

// lineVisitor folds lines, removing blank ones when skipEmpty is set and stopping after limit tokens
type lineVisitor struct {
	*strfold.Folder[string]
	skipEmpty bool
	limit     int
	removed   int
}

func (v *lineVisitor) Visit(line string) (traversal.Signal, error) {
	if v.skipEmpty && strings.TrimSpace(line) == "" {
		v.removed++
		return traversal.Remove, nil
	}
	if _, err := v.Folder.Visit(line); err != nil {
		return traversal.Continue, err
	}
	if v.limit > 0 && v.Len() >= v.limit {
		return traversal.Stop, nil
	}
	return traversal.Continue, nil
}
