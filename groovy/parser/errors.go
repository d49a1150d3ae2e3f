package parser

import (
	"strings"

	"github.com/dhamidi/groovy/groovy/lexer"
)

type expectedVariant struct {
	pos  int
	text string
}

// frame is an error recovery frame. Positions are raw token indexes; -1
// means unset. lastVariantAt is the furthest position a variant was
// recorded at since the last report.
type frame struct {
	name            string
	variants        int
	lastVariantAt   int
	errorReportedAt int
}

type errorState struct {
	frames   []*frame
	variants []expectedVariant
}

func (e *errorState) push(name string) *frame {
	f := &frame{
		name:            name,
		variants:        len(e.variants),
		lastVariantAt:   -1,
		errorReportedAt: -1,
	}
	e.frames = append(e.frames, f)
	return f
}

func (e *errorState) pop() {
	if len(e.frames) > 1 {
		e.variants = e.variants[:e.current().variants]
		e.frames = e.frames[:len(e.frames)-1]
	}
}

func (e *errorState) current() *frame {
	return e.frames[len(e.frames)-1]
}

func (e *errorState) addVariant(pos int, text string) {
	f := e.current()
	if pos > f.lastVariantAt {
		f.lastVariantAt = pos
	}
	for _, v := range e.variants[f.variants:] {
		if v.pos == pos && v.text == text {
			return
		}
	}
	e.variants = append(e.variants, expectedVariant{pos: pos, text: text})
}

// Section runs fn inside a fresh error recovery frame. Variants and error
// positions recorded by fn stay local to the frame.
func (s *Session) Section(level int, name string, fn func() bool) bool {
	s.errors.push(name)
	defer s.errors.pop()
	return fn()
}

// AddVariant records variant as an expected alternative at the current
// position. It always succeeds.
func AddVariant(s *Session, level int, variant string) bool {
	s.errors.addVariant(s.b.RawTokenIndex(), "<"+variant+">")
	return true
}

// ClearVariants forgets the variants recorded in the current frame.
func ClearVariants(s *Session, level int) bool {
	f := s.errors.current()
	s.errors.variants = s.errors.variants[:f.variants]
	f.lastVariantAt = -1
	return true
}

// ReplaceVariants replaces the current frame's variants with variant.
func ReplaceVariants(s *Session, level int, variant string) bool {
	return ClearVariants(s, level) && AddVariant(s, level, variant)
}

// ClearError allows a new error to be reported at a position that already
// has one.
func ClearError(s *Session, level int) bool {
	s.errors.current().errorReportedAt = -1
	return true
}

// WithProtectedLastVariantPos runs rule and, when it fails, restores the
// frame's last variant position so a failed speculative branch does not
// move the anchor of the primary error message.
func WithProtectedLastVariantPos(s *Session, level int, rule Rule) bool {
	f := s.errors.current()
	prev := f.lastVariantAt
	if rule(s, level+1) {
		return true
	}
	f.lastVariantAt = prev
	return false
}

// ReportError adds an error leaf at the current position describing what
// was expected. The message is taken from the variants at the frame's
// furthest variant position when that lies ahead of the current one, so
// a speculative branch that got further names the real problem. At most one
// error is reported per position and frame. It always succeeds.
func ReportError(s *Session, level int) bool {
	f := s.errors.current()
	pos := s.b.RawTokenIndex()
	if f.errorReportedAt >= pos {
		return true
	}
	anchor := pos
	if f.lastVariantAt > pos {
		anchor = f.lastVariantAt
	}
	f.errorReportedAt = pos
	msg := s.expectedMessage(anchor)
	s.log.Debugf("%s: %s at %s", f.name, msg, s.b.Token().Span.Start)
	s.b.Error(msg)
	s.errors.variants = s.errors.variants[:f.variants]
	f.lastVariantAt = -1
	return true
}

func (s *Session) expectedMessage(anchor int) string {
	var expected []string
	seen := make(map[string]bool)
	for _, v := range s.errors.variants[s.errors.current().variants:] {
		if v.pos == anchor && !seen[v.text] {
			seen[v.text] = true
			expected = append(expected, v.text)
		}
	}
	got := describeToken(s.b.RawToken(anchor))
	if len(expected) == 0 {
		return Message("unexpected.token") + " " + got
	}
	return joinAlternatives(expected) + " expected, got " + got
}

func describeToken(tok lexer.Token) string {
	if tok.Kind == lexer.TokenEOF {
		return Message("end.of.file")
	}
	return "'" + tok.Literal + "'"
}

func joinAlternatives(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
