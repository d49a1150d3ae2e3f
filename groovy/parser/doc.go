// Package parser resolves the context-sensitive parts of Groovy syntax on
// top of a mark-based recursive descent parser.
//
// Grammar rules are plain functions of type Rule. They consume tokens from
// the Session's tree builder and report success with their return value; a
// failing rule leaves no trace, either because it consumed nothing or
// because it ran under a rollback. The exported functions are the hooks such
// rules call into:
//
//   - scoped flags (Key.With, Key.Without) pass parse modes such as
//     "arguments" or "diamond allowed" down to nested rules;
//   - restructuring primitives (Error, Unexpected, ParseTailLeftFlat,
//     MarkLeft, WrapLeft, CollapseToToken) rewrite the latest completed node
//     and must be called right after the node they target is done;
//   - lookahead checks (Lookahead, CastOperandCheck, NewLine) inspect tokens
//     ahead without consuming them;
//   - ParseApplication picks the next segment of a command expression such
//     as `foo a ref(c)[d]` from the kind of the latest node;
//   - DefinitelyTypeElement and CapitalizedTypeElement decide whether an
//     ambiguous reference is a type;
//   - ParseBlockLazy and IsBlockParseable defer parsing of block bodies.
//
// ParseFile and ParseExpression drive a small Groovy grammar built from
// these hooks:
//
//	p := parser.ParseFile(strings.NewReader(src), parser.WithFile("build.groovy"))
//	root, err := p.Finish()
//	for _, d := range p.Diagnostics() {
//		fmt.Println(d)
//	}
package parser
