// Package repl is an interactive shell to tag sentences typed by the user.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/segtag/posmap"
	"github.com/revelaction/segtag/render"
	sent "github.com/revelaction/segtag/sentence"
	"github.com/revelaction/segtag/tagger"
)

const (
	// mapPrefix starts a line that resolves tags instead of tagging words
	mapPrefix = "/map"

	quit = "quit"
)

type Handler struct {
	Tagger   *tagger.SentenceTagger
	Mapper   *posmap.Mapper
	Renderer *render.Renderer
}

func NewHandler(t *tagger.SentenceTagger, m *posmap.Mapper, r *render.Renderer) *Handler {
	return &Handler{
		Tagger:   t,
		Mapper:   m,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.Out, "🔑 Ctrl+F: next Format, /map <tag>...: resolve tags, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🏷  ", h.completer,
			prompt.OptionTitle("segtag repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.Out, "Format set to: "+h.Renderer.Format)
				}}),
		)

		if strings.TrimSpace(in) == quit {
			return nil
		}

		history = append(history, in)

		out, err := h.Eval(in)
		if err != nil {
			fmt.Fprintf(h.Renderer.Out, "❌ %s\n", err)
			continue
		}
		fmt.Fprint(h.Renderer.Out, out)
	}
}

// Eval runs one line of input and returns what the shell prints.
func (h *Handler) Eval(in string) (string, error) {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return "", errors.New("nothing to tag")
	}

	if fields[0] == mapPrefix {
		return h.resolve(fields[1:])
	}

	s := sent.Sentence{}
	for i, word := range fields {
		s.Tokens = append(s.Tokens, sent.Token{Text: word, Index: i})
	}

	if err := h.Tagger.TagSentence(&s); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	r := *h.Renderer
	r.Out = &buf
	r.Sentence(s.Tokens, "")
	return buf.String(), nil
}

func (h *Handler) resolve(tags []string) (string, error) {
	if len(tags) == 0 {
		return "", errors.New("Usage: /map <tag>...")
	}

	var str strings.Builder
	for _, tag := range tags {
		res := h.Mapper.Resolve(tag)
		fmt.Fprintf(&str, "%-8s %-8s %s\n", tag, res.Tag, res.Status)
	}
	return str.String(), nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) == 1 {
		for _, cmd := range []string{mapPrefix, quit} {
			if strings.HasPrefix(cmd, tokens[0]) {
				s = append(s, prompt.Suggest{Text: cmd})
			}
		}
		return s
	}

	if tokens[0] != mapPrefix {
		return s
	}

	word := in.GetWordBeforeCursor()
	for _, tag := range h.Mapper.Tags() {
		if strings.HasPrefix(tag, word) {
			s = append(s, prompt.Suggest{Text: tag, Description: h.Mapper.Resolve(tag).Tag})
		}
	}

	return s
}
