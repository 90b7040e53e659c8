package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	sent "github.com/revelaction/segtag/sentence"
)

const Defaultformat = "pos"

var (
	Red       = "\033[1;31m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"pos", "text", "table"}
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	// Format determines the format of the sentence
	//
	// pos: word/POS pairs separated by a space
	// text: the sentence as in the source text, without tags
	// table: one line per token with its tagging fields
	Format string
}

func NewRenderer() *Renderer {
	return &Renderer{Out: os.Stdout, Format: Defaultformat}
}

// Doc renders every sentence of doc, each one prefixed with its index.
func (r *Renderer) Doc(doc sent.Doc) {
	for _, s := range doc.Sentences {
		prefix := fmt.Sprintf("✍  %d-%d ", doc.Id, s.Id)
		r.Sentence(s.Tokens, prefix)
	}
}

func (r *Renderer) Sentence(s []sent.Token, prefix string) {
	switch r.Format {
	case "table":
		fmt.Fprintf(r.Out, "%s\n", prefix)
		for _, token := range s {
			fmt.Fprintf(r.Out, "%20q %8s %12s %6d %s\n", token.Text, r.pos(token), token.Tag, token.Index, token.Lemma)
		}
	case "text":
		fmt.Fprintf(r.Out, "%s%s\n", prefix, strings.ReplaceAll(r.text(s), "\n", " "))
	default:
		fmt.Fprintf(r.Out, "%s%s\n", prefix, r.PosString(s))
	}
}

// PosString returns the sentence as word/POS pairs. Untagged words are
// rendered as word/_.
func (r *Renderer) PosString(s []sent.Token) string {
	parts := make([]string, len(s))
	for i, token := range s {
		parts[i] = token.Text + "/" + r.pos(token)
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) pos(token sent.Token) string {
	pos := token.Pos
	if pos == "" {
		pos = "_"
		if r.HasColor {
			return Red + pos + Off
		}
		return pos
	}

	if r.HasColor {
		return Green256 + pos + Off
	}
	return pos
}

// text rebuilds the original spacing of the sentence from the token
// offsets. Without offsets, words are separated by one space.
func (r *Renderer) text(sentence []sent.Token) string {
	var str strings.Builder
	var lastIdx, lastLen int
	for i, token := range sentence {
		l := len([]rune(token.Text))
		if i == 0 {
			str.WriteString(token.Text)
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		if token.Idx == 0 {
			str.WriteString(" ")
			str.WriteString(token.Text)
			continue
		}

		// parts of a multi token word share `text` and `idx`, only the
		// first one is written.
		diff := token.Idx - lastIdx

		if diff > 0 {
			str.WriteString(strings.Repeat(" ", max(diff-lastLen, 0)))
			str.WriteString(token.Text)
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return str.String()
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			r.Format = supported[(i+1)%len(supported)]
			return
		}
	}
	r.Format = supported[0]
}
