// Package perceptron provides a tagging model backed by the averaged
// perceptron of github.com/jdkato/prose.
package perceptron

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jdkato/prose/tag"
)

// ErrInvalidModel is returned when a model file can not be read or decoded.
var ErrInvalidModel = errors.New("invalid tagging model")

// File is the JSON layout of a trained model.
type File struct {
	Weights map[string]map[string]float64 `json:"weights"`
	Tags    map[string]string             `json:"tags"`
	Classes []string                      `json:"classes"`
}

// Model tags tokens with a perceptron tagger. It is not safe for concurrent
// use.
type Model struct {
	tagger *tag.PerceptronTagger
}

// New returns a Model using the English model embedded in prose
// (Penn Treebank tags).
func New() *Model {
	return &Model{tagger: tag.NewPerceptronTagger()}
}

// Load reads a trained model from path. An empty path returns New().
func Load(path string) (*Model, error) {
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Decode reads a trained model in the File layout.
func Decode(r io.Reader) (*Model, error) {
	var mf File
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	if len(mf.Classes) == 0 {
		return nil, fmt.Errorf("%w: no classes", ErrInvalidModel)
	}

	if mf.Weights == nil {
		mf.Weights = map[string]map[string]float64{}
	}
	if mf.Tags == nil {
		mf.Tags = map[string]string{}
	}

	ap := tag.NewAveragedPerceptron(mf.Weights, mf.Tags, mf.Classes)
	return &Model{tagger: tag.NewTrainedPerceptronTagger(ap)}, nil
}

// Tag returns the tag of every token. prose drops empty tokens, callers
// must check the length of the result.
func (m *Model) Tag(tokens []string) ([]string, error) {
	tagged := m.tagger.Tag(tokens)

	tags := make([]string, len(tagged))
	for i, t := range tagged {
		tags[i] = t.Tag
	}

	return tags, nil
}
