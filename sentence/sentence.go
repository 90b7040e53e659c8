package sentence

type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels"`
	Sentences []Sentence `json:"sentences"`
}

// Texts returns the words of the sentence at index i, in order.
func (d *Doc) Texts(i int) []string {
	return d.Sentences[i].Texts()
}

// Library is a collection of Doc
type Library []Doc

type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc_id"`
	Tokens []Token `json:"tokens"`
}

// Texts returns the unmodified words of the sentence.
func (s Sentence) Texts() []string {
	texts := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		texts[i] = t.Text
	}
	return texts
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Dep        string `json:"dep"`

	// The part of speech. Empty means the word has not been tagged yet.
	Pos string `json:"pos"`

	// A string containing detailed POS data, as emitted by the tagger
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// HasPos reports whether the token already carries a part of speech.
func (t Token) HasPos() bool {
	return t.Pos != ""
}
