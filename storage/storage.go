package storage

import (
	sent "github.com/revelaction/segtag/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID, with its sentences.
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document. A document with the same Title is replaced.
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Normalize sets the positional ids of the sentences and tokens of doc.
func Normalize(doc *sent.Doc) {
	for i := range doc.Sentences {
		s := &doc.Sentences[i]
		s.Id = i
		s.DocId = doc.Id
		for j := range s.Tokens {
			s.Tokens[j].SentenceId = i
		}
	}
}
