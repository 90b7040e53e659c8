package stat

import (
	"sort"

	sent "github.com/revelaction/segtag/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int

	// Untagged counts the tokens without a part of speech
	Untagged int

	// PosCount counts the tokens per part of speech
	PosCount map[string]int
}

// PosFreq is a part of speech and its number of tokens.
type PosFreq struct {
	Pos   string
	Count int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{PosCount: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences of doc to the stats.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumSentences += len(doc.Sentences)
	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
		for _, token := range sentence.Tokens {
			if !token.HasPos() {
				h.stats.Untagged++
				continue
			}
			h.stats.PosCount[token.Pos]++
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// Sorted returns the parts of speech by descending count, then by name.
func (s Stats) Sorted() []PosFreq {
	freqs := make([]PosFreq, 0, len(s.PosCount))
	for pos, count := range s.PosCount {
		freqs = append(freqs, PosFreq{Pos: pos, Count: count})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Pos < freqs[j].Pos
	})

	return freqs
}
