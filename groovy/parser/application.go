package parser

import "github.com/dhamidi/groovy/groovy/tree"

// ParseApplication continues a command expression. The kind of the latest
// completed node selects which segment parsers are tried, in order:
//
//	foo a               reference   -> application
//	foo a ref           application -> reference
//	foo a ref c         reference   -> application
//	foo a ref(c)        reference   -> call
//	foo a ref[c]        reference   -> index
//	foo a ref[c] ref    index       -> reference
//	foo a ref[c] (a)    index       -> call
//	foo a ref(c) ref    call        -> reference
//	foo a ref(c)(c)     call        -> call
//	foo a ref(c)[c]     call        -> index
//
// With no completed node, or any other kind, only application is tried.
func ParseApplication(s *Session, level int, ref, application, call, index Rule) bool {
	next := level + 1
	latest, ok := s.b.LatestDone()
	if !ok {
		return application(s, next)
	}
	switch latest.Kind() {
	case tree.KindApplicationExpression:
		return ref(s, next)
	case tree.KindMethodCallExpression:
		return index(s, next) || call(s, next) || ref(s, next)
	case tree.KindReferenceExpression:
		return index(s, next) || call(s, next) || application(s, next)
	case tree.KindApplicationIndex:
		return call(s, next) || ref(s, next)
	default:
		return application(s, next)
	}
}
