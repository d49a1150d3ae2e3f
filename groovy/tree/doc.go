// Package tree builds Groovy parse trees from a token stream.
//
// The Builder follows the mark/done discipline of generated recursive
// descent parsers: a rule opens a Marker when it starts, consumes tokens
// with Advance, and finalizes the marker exactly once with Done, Collapse,
// Error or Drop. A completed marker can be wrapped after the fact with
// Precede, which is how parse hooks restructure the most recently completed
// node.
//
//	m := b.Mark()
//	b.Advance()          // foo
//	m.Done(tree.KindReferenceExpression)
//	call := m.Precede()  // wrap foo
//	b.Advance()          // (
//	b.Advance()          // )
//	call.Done(tree.KindMethodCallExpression)
//
// Speculative parsing uses Save with either Rollback or Commit. Rollback
// restores the stream position, the production list and every marker
// touched since Save, so a failed alternative leaves no trace.
//
// Tree materializes the production into Nodes. Trivia (whitespace, newlines
// and comments) never appear in the tree; spans carry source offsets so
// callers can recover the original text with Node.Source.
package tree
