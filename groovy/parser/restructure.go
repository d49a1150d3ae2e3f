package parser

import "github.com/dhamidi/groovy/groovy/tree"

// CollapseToToken replaces the completed marker m with an opaque leaf of
// kind that covers the same span, and returns the new marker.
func CollapseToToken(s *Session, m tree.Marker, kind tree.Kind) tree.Marker {
	collapsed := m.Precede()
	m.Drop()
	collapsed.Collapse(kind)
	return collapsed
}

// Error wraps the latest completed node in a node of the same kind and
// attaches an empty error leaf carrying the message for key. It fails when
// no node has been completed.
func Error(s *Session, level int, key string) bool {
	latest, ok := s.b.LatestDone()
	if !ok {
		return false
	}
	kind := latest.Kind()
	wrapper := latest.Precede()
	latest.Drop()
	s.b.Error(Message(key))
	wrapper.Done(kind)
	return true
}

// Unexpected parses rule and marks whatever it consumed as an error. It
// always succeeds; when rule fails nothing is consumed or reported.
func Unexpected(s *Session, level int, rule Rule, key string) bool {
	m := s.b.Mark()
	if rule(s, level) {
		m.Error(Message(key))
	} else {
		m.Drop()
	}
	return true
}

// UnexpectedAny marks the current token as unexpected.
func UnexpectedAny(s *Session, level int, key string) bool {
	return Unexpected(s, level, anyToken, key)
}

func anyToken(s *Session, level int) bool {
	if s.b.EOF() {
		return false
	}
	s.b.Advance()
	return true
}

// ParseTailLeftFlat parses head followed by tail and regroups both under a
// single node of the kind tail produced. When head fails nothing changes.
// When tail fails the head tokens stay consumed and an error is reported.
func ParseTailLeftFlat(s *Session, level int, head, tail Rule) bool {
	m := s.b.Mark()
	if !head(s, level) {
		m.Drop()
		return false
	}
	if !tail(s, level) {
		m.Drop()
		return ReportError(s, level)
	}
	latest, ok := s.b.LatestDone()
	if !ok {
		m.Drop()
		return true
	}
	kind := latest.Kind()
	latest.Drop()
	m.Done(kind)
	return true
}

// MarkLeft remembers the latest completed node as the left operand for a
// following WrapLeft.
func MarkLeft(s *Session, level int) bool {
	latest, ok := s.b.LatestDone()
	if !ok {
		s.left = tree.Marker{}
		return true
	}
	s.left = latest
	return true
}

// WrapLeft encloses everything from the remembered left operand to the
// current position in a node of the latest completed node's kind, and drops
// that latest node's own wrapper. When nothing completed since MarkLeft the
// left node is replaced by an equivalent node of the same kind.
func WrapLeft(s *Session, level int) bool {
	left := s.left
	if !left.IsValid() || !left.IsDone() {
		return false
	}
	latest, ok := s.b.LatestDone()
	if !ok {
		return false
	}
	kind := latest.Kind()
	left.Precede().Done(kind)
	latest.Drop()
	return true
}
