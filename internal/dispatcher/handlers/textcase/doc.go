// Package textcase provides handlers that change letter case inside each
// selection, or in the word under each cursor.
//
//   - case.upper, case.lower, case.title
//   - case.transform: the mode ("upper", "lower" or "title") is an argument
//
// Title case leaves the configured minor words in lower case unless they
// start a selection.
package textcase
