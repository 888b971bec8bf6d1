// Package strfold folds collections into delimited strings.
//
// A Folder renders every visited element to text and joins the tokens as
//
//	initial + token1 + separator + token2 + ... + closing
//
// Folder never asks for removal or an early stop on its own. To add such behaviour embed
// *Folder in your own visitor, call Folder.Visit (or Append) and return the signal you need:
//
//	type firstTwo struct {
//		*strfold.Folder[int]
//	}
//
//	func (f firstTwo) Visit(element int) (traversal.Signal, error) {
//		if _, err := f.Folder.Visit(element); err != nil {
//			return traversal.Continue, err
//		}
//		if f.Len() == 2 {
//			return traversal.Stop, nil
//		}
//		return traversal.Continue, nil
//	}
//
// Fold and FoldSlice use the traversal.Tolerant policy, so a stop yields a well formed, trimmed string.
package strfold
