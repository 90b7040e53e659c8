package tagger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/segtag/sentence"
	"github.com/revelaction/segtag/tagger"
	"github.com/revelaction/segtag/tagger/perceptron"
)

func words(id int, texts ...string) sent.Sentence {
	s := sent.Sentence{Id: id}
	for i, w := range texts {
		s.Tokens = append(s.Tokens, sent.Token{Text: w, Index: i})
	}
	return s
}

func TestPerceptronEmptyWordIsAlignmentError(t *testing.T) {
	var logs bytes.Buffer
	tg := tagger.New(perceptron.New(), tagger.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	tests := []struct {
		name     string
		sentence sent.Sentence
		want     tagger.AlignmentError
	}{
		{
			name:     "empty word inside a sentence",
			sentence: words(0, "The", "", "cat"),
			want:     tagger.AlignmentError{Doc: 4, Sentence: 0, Tokens: 3, Tags: 2},
		},
		{
			name:     "single empty word is padded",
			sentence: words(1, ""),
			want:     tagger.AlignmentError{Doc: 4, Sentence: 1, Tokens: 2, Tags: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &sent.Doc{Id: 4, Sentences: []sent.Sentence{tt.sentence}}

			_, err := tg.TagDocument(doc)
			require.ErrorIs(t, err, tagger.ErrAlignment)

			var aerr *tagger.AlignmentError
			require.True(t, errors.As(err, &aerr))
			assert.Equal(t, tt.want, *aerr)

			for _, token := range doc.Sentences[0].Tokens {
				assert.False(t, token.HasPos(), "no tag is written on misalignment")
			}
		})
	}
}

func TestPerceptronTagsWords(t *testing.T) {
	tg := tagger.New(perceptron.New())

	doc := &sent.Doc{Sentences: []sent.Sentence{words(0, "The", "cat", "sleeps", ".")}}
	_, err := tg.TagDocument(doc)
	require.NoError(t, err)

	for _, token := range doc.Sentences[0].Tokens {
		assert.True(t, token.HasPos(), token.Text)
	}
	assert.Equal(t, "DT", doc.Sentences[0].Tokens[0].Pos)
}
