package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/groovy/groovy/lexer"
)

// LineEncoder writes one tab-separated line per token: position, kind and
// quoted literal. Trivia is skipped unless requested.
type LineEncoder struct {
	w      io.Writer
	trivia bool
}

func NewLineEncoder(w io.Writer, trivia bool) *LineEncoder {
	return &LineEncoder{w: w, trivia: trivia}
}

func (e *LineEncoder) Encode(tokens []lexer.Token) error {
	text, err := e.MarshalText(tokens)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(tokens []lexer.Token) ([]byte, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		if !e.trivia && lexer.Trivia.Contains(tok.Kind) {
			continue
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\n",
			tok.Span.Start,
			tok.Kind,
			strconv.Quote(tok.Literal),
		)
	}
	return []byte(sb.String()), nil
}
