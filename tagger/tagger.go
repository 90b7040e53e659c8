// Package tagger assigns a part of speech to every word of a document.
//
// Sentences are tagged one by one through a shared Model. The Model is
// called under a lock, everything else (collecting the words, resolving the
// pos map, writing the tags) runs without it, so several documents can be
// tagged concurrently with one Model.
//
// Words that already have a part of speech are left untouched, which makes
// tagging a document twice a no-op.
package tagger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/revelaction/segtag/posmap"
	sent "github.com/revelaction/segtag/sentence"
)

// PadToken is appended to single word sentences before they are tagged.
// Sequence taggers behave badly with one token of context. The tag of the
// pad token is always discarded.
const PadToken = "."

type SentenceTagger struct {
	model   *Guard
	mapper  *posmap.Mapper
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*SentenceTagger)

// WithMapper sets the pos map. A nil or disabled mapper keeps the model tags.
func WithMapper(m *posmap.Mapper) Option {
	return func(t *SentenceTagger) {
		t.mapper = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *SentenceTagger) {
		if l != nil {
			t.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(t *SentenceTagger) {
		t.metrics = m
	}
}

// New returns a SentenceTagger that owns m.
func New(m Model, opts ...Option) *SentenceTagger {
	t := &SentenceTagger{
		model:  NewGuard(m),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// TagDocument tags all the sentences of doc in place and returns doc.
//
// On error, the sentences before the failing one keep their tags and the
// remaining ones are not tagged.
func (t *SentenceTagger) TagDocument(doc *sent.Doc) (*sent.Doc, error) {
	for i := range doc.Sentences {
		if err := t.tagSentence(doc.Id, &doc.Sentences[i]); err != nil {
			return doc, err
		}
	}

	return doc, nil
}

// TagSentence tags s in place.
func (t *SentenceTagger) TagSentence(s *sent.Sentence) error {
	return t.tagSentence(s.DocId, s)
}

func (t *SentenceTagger) tagSentence(docId int, s *sent.Sentence) error {
	tokens := s.Texts()
	numWords := len(tokens)
	if numWords == 0 {
		return nil
	}

	if numWords == 1 {
		tokens = append(tokens, PadToken)
		if t.metrics != nil {
			t.metrics.Padded.Inc()
		}
	}

	tags, err := t.call(tokens)
	if err != nil {
		return fmt.Errorf("doc %d sentence %d: %w: %v", docId, s.Id, ErrModel, err)
	}

	if len(tags) != len(tokens) {
		if t.metrics != nil {
			t.metrics.AlignmentErrors.Inc()
		}
		return &AlignmentError{Doc: docId, Sentence: s.Id, Tokens: len(tokens), Tags: len(tags)}
	}

	// the pad tag, if any, is beyond numWords
	for i := 0; i < numWords; i++ {
		token := &s.Tokens[i]
		if token.HasPos() {
			continue
		}

		raw := tags[i]
		res := t.mapper.Resolve(raw)
		if res.Status == posmap.Unresolved {
			t.logger.Warn("pos map incomplete, keeping model tag", "tag", raw, "doc", docId, "sentence", s.Id)
			if t.metrics != nil {
				t.metrics.Unresolved.WithLabelValues(raw).Inc()
			}
		}

		token.Pos = res.Tag
		if token.Tag == "" {
			token.Tag = raw
		}
	}

	return nil
}

func (t *SentenceTagger) call(tokens []string) ([]string, error) {
	if t.metrics == nil {
		return t.model.Tag(tokens)
	}

	t.metrics.Sentences.Inc()
	start := time.Now()
	defer func() {
		t.metrics.ModelDuration.Observe(time.Since(start).Seconds())
	}()

	return t.model.Tag(tokens)
}

// TagDocuments tags docs concurrently with at most workers goroutines.
//
// A failing document does not stop the others: done is called once per
// document with its error (nil on success). Calls to done are serialized.
// The returned error is only non nil when ctx is done before all documents
// have been tagged.
func (t *SentenceTagger) TagDocuments(ctx context.Context, docs []*sent.Doc, workers int, done func(*sent.Doc, error)) error {
	if workers < 1 {
		workers = 1
	}

	var mu sync.Mutex
	report := func(doc *sent.Doc, err error) {
		if done == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		done(doc, err)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := t.TagDocument(doc)
			report(doc, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
