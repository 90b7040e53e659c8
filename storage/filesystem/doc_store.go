package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	sent "github.com/revelaction/segtag/sentence"
	"github.com/revelaction/segtag/storage"
)

// DocStore is a directory of JSON documents. The Title of a document is
// its file name, the Id its position in the sorted directory listing.
type DocStore struct {
	docDir string

	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore lists the documents of docDir with their labels. Sentences
// are read on demand.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]sent.Doc, 0, len(files))

	idx := 0
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}
		labels, err := readLabels(filepath.Join(docDir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name(), err)
		}

		docs = append(docs, sent.Doc{
			Id:     idx,
			Title:  file.Name(),
			Labels: labels,
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	docs := make([]sent.Doc, len(h.docs))
	for i, d := range h.docs {
		docs[i] = sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels}
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	meta := h.docs[id]

	doc, err := ReadDoc(filepath.Join(h.docDir, meta.Title))
	if err != nil {
		return sent.Doc{}, fmt.Errorf("%s: %w", meta.Title, err)
	}

	doc.Id = meta.Id
	doc.Title = meta.Title
	storage.Normalize(&doc)
	return doc, nil
}

// Write replaces the file named after the doc Title. The file is written
// to a temporary name first and renamed, so readers never see half a doc.
func (h *DocStore) Write(doc sent.Doc) error {
	if doc.Title == "" || filepath.Base(doc.Title) != doc.Title {
		return fmt.Errorf("invalid doc title %q", doc.Title)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(h.docDir, doc.Title)

	// CreateTemp uses 0600, keep the mode of the replaced file
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(h.docDir, "."+doc.Title+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	for i := range h.docs {
		if h.docs[i].Title == doc.Title {
			h.docs[i].Labels = doc.Labels
			return nil
		}
	}

	h.docs = append(h.docs, sent.Doc{Id: len(h.docs), Title: doc.Title, Labels: doc.Labels})
	return nil
}

// readLabels decodes only the labels of the doc at path.
func readLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	var meta struct {
		Labels []string `json:"labels"`
	}
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	return meta.Labels, nil
}

// legacyDoc mirrors the old JSON structure: tokens: [][]Token
type legacyDoc struct {
	Tokens [][]sent.Token `json:"tokens"`
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it. Documents
// in the legacy layout (a "tokens" array of sentences) are converted.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	if len(doc.Sentences) == 0 {
		var old legacyDoc
		if err := json.Unmarshal(f, &old); err == nil {
			for i, tokens := range old.Tokens {
				doc.Sentences = append(doc.Sentences, sent.Sentence{
					Id:     i,
					Tokens: tokens,
				})
			}
		}
	}

	if doc.Sentences == nil {
		doc.Sentences = []sent.Sentence{}
	}

	return doc, nil
}
