package tree

import (
	"fmt"

	"github.com/dhamidi/groovy/groovy/lexer"
)

type markerState uint8

const (
	stateOpen markerState = iota
	stateDone
	stateCollapsed
	stateError
	stateDropped
)

type marker struct {
	start   int
	end     int
	kind    Kind
	state   markerState
	message string
	gen     uint64
	// item marks an error leaf added by Builder.Error. Items are not done
	// markers for LatestDone.
	item bool
}

type event struct {
	id   int
	done bool
}

type undoOp uint8

const (
	undoInsert undoOp = iota
	undoRemove
	undoMarker
)

type undo struct {
	op     undoOp
	index  int
	event  event
	marker marker
}

// Builder is an append-only, mark-based tree builder over a token stream.
// Markers live in an arena addressed by index; the production list records
// start and done events in source order and is turned into a Node tree by
// Tree. Trivia tokens are skipped transparently.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	text   []byte
	tokens []lexer.Token
	pos    int

	markers    []marker
	production []event

	journal []undo
	saves   int
	gen     uint64
}

func NewBuilder(text []byte, tokens []lexer.Token) *Builder {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.TokenEOF {
		end := lexer.Position{Offset: len(text)}
		if len(tokens) > 0 {
			end = tokens[len(tokens)-1].Span.End
		}
		tokens = append(tokens, lexer.Token{Kind: lexer.TokenEOF, Span: lexer.Span{Start: end, End: end}})
	}
	return &Builder{text: text, tokens: tokens}
}

// Marker is a handle to an open or completed span. The zero Marker is not
// valid.
type Marker struct {
	b   *Builder
	id  int
	gen uint64
}

// IsValid reports whether m refers to a live marker. Markers created after
// a Save become invalid when that Save is rolled back, even once their slot
// is reused by a new marker.
func (m Marker) IsValid() bool {
	return m.b != nil && m.id < len(m.b.markers) && m.b.markers[m.id].gen == m.gen
}

// Kind returns the element type of a completed marker.
func (m Marker) Kind() Kind {
	return m.b.markers[m.id].kind
}

func (m Marker) IsDone() bool {
	switch m.b.markers[m.id].state {
	case stateDone, stateCollapsed, stateError:
		return true
	}
	return false
}

// Precede opens a new marker starting at the same position as m, so that
// completing it encloses m.
func (m Marker) Precede() Marker {
	b := m.b
	idx := b.startEventIndex(m.id)
	if idx < 0 {
		panic(fmt.Sprintf("tree: precede on marker %d which is not in the production", m.id))
	}
	nm := b.newMarker(b.markers[m.id].start)
	b.insertEvent(idx, event{id: nm.id})
	return nm
}

func (m Marker) Done(kind Kind) {
	m.finish(kind, stateDone, "")
}

// Collapse completes m as a single leaf covering its span.
func (m Marker) Collapse(kind Kind) {
	m.finish(kind, stateCollapsed, "")
}

// Error completes m as an error node carrying message.
func (m Marker) Error(message string) {
	m.finish(KindError, stateError, message)
}

// Drop removes m from the tree, promoting its children to its parent.
// Dropping a completed marker removes its done event too.
func (m Marker) Drop() {
	b := m.b
	mk := b.markers[m.id]
	if mk.state == stateDropped {
		panic(fmt.Sprintf("tree: marker %d dropped twice", m.id))
	}
	if mk.state != stateOpen {
		if idx := b.doneEventIndex(m.id); idx >= 0 {
			b.removeEvent(idx)
		}
	}
	if idx := b.startEventIndex(m.id); idx >= 0 {
		b.removeEvent(idx)
	}
	mk.state = stateDropped
	b.setMarker(m.id, mk)
}

func (m Marker) finish(kind Kind, state markerState, message string) {
	b := m.b
	mk := b.markers[m.id]
	if mk.state != stateOpen {
		panic(fmt.Sprintf("tree: marker %d finalized twice", m.id))
	}
	start := b.startEventIndex(m.id)
	for i := len(b.production) - 1; i > start; i-- {
		ev := b.production[i]
		if !ev.done && b.markers[ev.id].state == stateOpen {
			panic(fmt.Sprintf("tree: marker %d done while inner marker %d is open", m.id, ev.id))
		}
	}
	mk.end = b.doneOffset(mk.start)
	mk.kind = kind
	mk.state = state
	mk.message = message
	b.setMarker(m.id, mk)
	b.insertEvent(len(b.production), event{id: m.id, done: true})
}

// Mark opens a new marker at the current token.
func (b *Builder) Mark() Marker {
	b.skipTrivia()
	m := b.newMarker(b.pos)
	b.insertEvent(len(b.production), event{id: m.id})
	return m
}

// Error adds an empty error node at the current position. The node is not
// seen by LatestDone.
func (b *Builder) Error(message string) {
	m := b.Mark()
	b.markers[m.id].item = true
	m.Error(message)
}

// LatestDone returns the most recently completed marker. Error leaves added
// by Error are skipped.
func (b *Builder) LatestDone() (Marker, bool) {
	for i := len(b.production) - 1; i >= 0; i-- {
		ev := b.production[i]
		if ev.done && !b.markers[ev.id].item {
			return Marker{b: b, id: ev.id, gen: b.markers[ev.id].gen}, true
		}
	}
	return Marker{}, false
}

func (b *Builder) TokenKind() lexer.TokenKind {
	b.skipTrivia()
	return b.tokens[b.pos].Kind
}

func (b *Builder) TokenText() string {
	b.skipTrivia()
	return b.tokens[b.pos].Literal
}

func (b *Builder) Token() lexer.Token {
	b.skipTrivia()
	return b.tokens[b.pos]
}

// LookAhead returns the kind of the n-th non-trivia token after the current one.
func (b *Builder) LookAhead(n int) lexer.TokenKind {
	b.skipTrivia()
	i := b.pos
	for n > 0 && i < len(b.tokens)-1 {
		i++
		if !lexer.Trivia.Contains(b.tokens[i].Kind) {
			n--
		}
	}
	return b.tokens[i].Kind
}

func (b *Builder) EOF() bool {
	return b.TokenKind() == lexer.TokenEOF
}

func (b *Builder) Advance() {
	b.skipTrivia()
	if b.pos < len(b.tokens)-1 {
		b.pos++
	}
}

// RawTokenIndex returns the raw index of the current token, trivia counted.
func (b *Builder) RawTokenIndex() int {
	b.skipTrivia()
	return b.pos
}

// RawToken returns the raw token at index i. Indexes past the end yield the
// EOF token.
func (b *Builder) RawToken(i int) lexer.Token {
	if i < 0 {
		i = 0
	}
	if i >= len(b.tokens) {
		i = len(b.tokens) - 1
	}
	return b.tokens[i]
}

// RawTokenStart returns the source offset of the raw token at rel relative
// to the current one. Trivia tokens count.
func (b *Builder) RawTokenStart(rel int) int {
	b.skipTrivia()
	i := b.pos + rel
	if i < 0 {
		return 0
	}
	if i >= len(b.tokens) {
		return len(b.text)
	}
	return b.tokens[i].Span.Start.Offset
}

func (b *Builder) Text() []byte {
	return b.text
}

// State is a saved stream and tree position.
type State struct {
	pos     int
	markers int
	journal int
	depth   int
}

// Save records the current position. Every Save must be matched, in LIFO
// order, by either Rollback or Commit.
func (b *Builder) Save() State {
	b.saves++
	return State{pos: b.pos, markers: len(b.markers), journal: len(b.journal), depth: b.saves}
}

// Rollback restores the stream position, the production and every marker
// to what they were at Save. Markers created after Save become invalid.
func (b *Builder) Rollback(s State) {
	b.checkDepth(s)
	for i := len(b.journal) - 1; i >= s.journal; i-- {
		u := b.journal[i]
		switch u.op {
		case undoInsert:
			b.production = append(b.production[:u.index], b.production[u.index+1:]...)
		case undoRemove:
			b.production = append(b.production, event{})
			copy(b.production[u.index+1:], b.production[u.index:])
			b.production[u.index] = u.event
		case undoMarker:
			b.markers[u.index] = u.marker
		}
	}
	b.journal = b.journal[:s.journal]
	b.markers = b.markers[:s.markers]
	b.pos = s.pos
	b.release()
}

// Commit keeps everything done since Save.
func (b *Builder) Commit(s State) {
	b.checkDepth(s)
	b.release()
}

func (b *Builder) checkDepth(s State) {
	if s.depth != b.saves {
		panic(fmt.Sprintf("tree: state at depth %d released out of order (current depth %d)", s.depth, b.saves))
	}
}

func (b *Builder) release() {
	b.saves--
	if b.saves == 0 {
		b.journal = b.journal[:0]
	}
}

func (b *Builder) skipTrivia() {
	for b.pos < len(b.tokens)-1 && lexer.Trivia.Contains(b.tokens[b.pos].Kind) {
		b.pos++
	}
}

// doneOffset is the current position with trailing trivia left outside.
func (b *Builder) doneOffset(start int) int {
	end := b.pos
	for end > start && lexer.Trivia.Contains(b.tokens[end-1].Kind) {
		end--
	}
	return end
}

func (b *Builder) newMarker(start int) Marker {
	b.gen++
	b.markers = append(b.markers, marker{start: start, end: start, state: stateOpen, gen: b.gen})
	return Marker{b: b, id: len(b.markers) - 1, gen: b.gen}
}

func (b *Builder) setMarker(id int, mk marker) {
	if b.saves > 0 {
		b.journal = append(b.journal, undo{op: undoMarker, index: id, marker: b.markers[id]})
	}
	b.markers[id] = mk
}

func (b *Builder) insertEvent(index int, ev event) {
	b.production = append(b.production, event{})
	copy(b.production[index+1:], b.production[index:])
	b.production[index] = ev
	if b.saves > 0 {
		b.journal = append(b.journal, undo{op: undoInsert, index: index})
	}
}

func (b *Builder) removeEvent(index int) {
	ev := b.production[index]
	b.production = append(b.production[:index], b.production[index+1:]...)
	if b.saves > 0 {
		b.journal = append(b.journal, undo{op: undoRemove, index: index, event: ev})
	}
}

func (b *Builder) startEventIndex(id int) int {
	for i := len(b.production) - 1; i >= 0; i-- {
		if ev := b.production[i]; ev.id == id && !ev.done {
			return i
		}
	}
	return -1
}

func (b *Builder) doneEventIndex(id int) int {
	for i := len(b.production) - 1; i >= 0; i-- {
		if ev := b.production[i]; ev.id == id && ev.done {
			return i
		}
	}
	return -1
}

// Tree materializes the production into a Node tree. All markers must be
// completed or dropped.
func (b *Builder) Tree() (*Node, error) {
	root := &Node{Kind: KindFile}
	stack := []*Node{root}
	cursor := 0

	emit := func(upTo int) {
		parent := stack[len(stack)-1]
		for ; cursor < upTo && cursor < len(b.tokens); cursor++ {
			tok := b.tokens[cursor]
			if tok.Kind == lexer.TokenEOF || lexer.Trivia.Contains(tok.Kind) {
				continue
			}
			parent.AddChild(&Node{Kind: KindToken, Span: tok.Span, Token: &tok})
		}
	}

	for _, ev := range b.production {
		mk := b.markers[ev.id]
		if mk.state == stateOpen {
			return nil, fmt.Errorf("tree: marker %d at %s is not done", ev.id, b.tokens[mk.start].Span.Start)
		}
		if !ev.done {
			emit(mk.start)
			pos := b.tokens[mk.start].Span.Start
			stack = append(stack, &Node{Kind: mk.kind, Span: lexer.Span{Start: pos, End: pos}})
			continue
		}
		emit(mk.end)
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.completeNode(n, mk)
		stack[len(stack)-1].AddChild(n)
	}
	emit(len(b.tokens))

	if len(stack) != 1 {
		return nil, fmt.Errorf("tree: %d unbalanced markers", len(stack)-1)
	}
	if len(root.Children) == 1 && root.Children[0].Kind != KindToken {
		return root.Children[0], nil
	}
	if len(root.Children) > 0 {
		root.Span = lexer.Span{Start: root.Children[0].Span.Start, End: root.Children[len(root.Children)-1].Span.End}
	}
	return root, nil
}

func (b *Builder) completeNode(n *Node, mk marker) {
	if len(n.Children) > 0 {
		n.Span.Start = n.Children[0].Span.Start
		n.Span.End = n.Children[len(n.Children)-1].Span.End
	}
	switch mk.state {
	case stateCollapsed:
		literal := string(b.text[n.Span.Start.Offset:n.Span.End.Offset])
		kind := lexer.TokenError
		if len(n.Children) > 0 && n.Children[0].Token != nil {
			kind = n.Children[0].Token.Kind
		}
		n.Token = &lexer.Token{Kind: kind, Span: n.Span, Literal: literal}
		n.Children = nil
	case stateError:
		n.Kind = KindError
		n.Error = &Error{Message: mk.message}
	}
}
