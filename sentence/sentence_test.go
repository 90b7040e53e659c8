package sentence

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocTexts(t *testing.T) {
	doc := Doc{Sentences: []Sentence{
		{Tokens: []Token{{Text: "Hello"}, {Text: "world"}}},
		{Tokens: []Token{{Text: "Bye"}}},
	}}

	assert.Equal(t, []string{"Hello", "world"}, doc.Texts(0))
	assert.Equal(t, []string{"Bye"}, doc.Texts(1))
}

func TestTokenHasPos(t *testing.T) {
	assert.False(t, Token{Text: "cat"}.HasPos())
	assert.True(t, Token{Text: "cat", Pos: "NOUN"}.HasPos())
}

func TestDocDecodeSpacyFields(t *testing.T) {
	data := `{"title":"a.json","labels":["x"],"sentences":[{"id":0,"tokens":[
		{"id":0,"head":1,"sent":0,"pos":"","tag":"","text":"Dogs","lemma":"dog","index":0}]}]}`

	var doc Doc
	require.NoError(t, json.Unmarshal([]byte(data), &doc))
	require.Len(t, doc.Sentences, 1)

	tok := doc.Sentences[0].Tokens[0]
	assert.Equal(t, "Dogs", tok.Text)
	assert.Equal(t, "dog", tok.Lemma)
	assert.Equal(t, 1, tok.Head)
	assert.False(t, tok.HasPos())
}
