package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ry/internal/token"
)

type TokenOutput struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
	Error string `json:"error,omitempty"`
}

// FormatTokensPretty выводит токены по одному на строку:
// `<index>: [<token>]@<start>..<end>`. Вывод останавливается перед EOF.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		if _, err := fmt.Fprintf(w, "%d: [%s]@%d..%d\n", i, tok, tok.Span.Start.Index, tok.Span.End.Index); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		out := TokenOutput{
			Index: i,
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Span.Start.Index,
			End:   tok.Span.End.Index,
			Line:  tok.Span.Start.Line,
			Col:   tok.Span.Start.Column,
		}
		if tok.Kind == token.Invalid {
			out.Error = tok.Value.Err.Error()
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
