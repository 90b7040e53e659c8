package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/segtag/posmap"
	"github.com/revelaction/segtag/storage/filesystem"
	"github.com/revelaction/segtag/tagger/perceptron"
)

const testModel = `{
	"weights": {},
	"tags": {"The": "DT", "cat": "NN", "sleeps": "VBZ", "Hello": "UH", "Bye": "UH", "purrs": "VBZ", ".": "."},
	"classes": ["DT", "NN", "VBZ", "UH", "."]
}`

const testMap = `# penn to universal
DT DET
NN NOUN
VBZ VERB
. PUNCT
`

const catDoc = `{"labels": ["pets"], "sentences": [
	{"tokens": [{"text": "The"}, {"text": "cat"}, {"text": "sleeps"}, {"text": "."}]},
	{"tokens": [{"text": "Hello"}]},
	{"tokens": [{"text": "The"}, {"text": "cat", "pos": "PROPN"}, {"text": "purrs"}]}
]}`

const byeDoc = `{"sentences": [{"tokens": [{"text": "Bye"}]}]}`

type fixture struct {
	docDir string
	model  string
	posMap string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()

	f := fixture{
		docDir: filepath.Join(root, "docs"),
		model:  filepath.Join(root, "model.json"),
		posMap: filepath.Join(root, "pos.map"),
	}

	require.NoError(t, os.Mkdir(f.docDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.docDir, "a-cat.json"), []byte(catDoc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(f.docDir, "b-bye.json"), []byte(byeDoc), 0644))
	require.NoError(t, os.WriteFile(f.model, []byte(testModel), 0644))
	require.NoError(t, os.WriteFile(f.posMap, []byte(testMap), 0644))

	return f
}

func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}
	err := newApp(ui).Run(append([]string{"segtag"}, args...))
	return out.String(), errOut.String(), err
}

func TestTagAndShow(t *testing.T) {
	f := newFixture(t)

	out, stderr, err := run("-d", f.docDir, "--model", f.model, "-m", f.posMap, "tag", "--no-progress", "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully tagged 2 docs")

	// UH is missing from the map
	assert.Contains(t, stderr, "level=WARN")
	assert.Contains(t, stderr, "tag=UH")

	out, _, err = run("-d", f.docDir, "show", "0")
	require.NoError(t, err)
	assert.Equal(t,
		"✍  0-0 The/DET cat/NOUN sleeps/VERB ./PUNCT\n"+
			"✍  0-1 Hello/UH\n"+
			"✍  0-2 The/DET cat/PROPN purrs/VERB\n",
		out)

	out, _, err = run("-d", f.docDir, "show", "1")
	require.NoError(t, err)
	assert.Equal(t, "✍  1-0 Bye/UH\n", out)

	doc, err := filesystem.ReadDoc(filepath.Join(f.docDir, "a-cat.json"))
	require.NoError(t, err)
	require.Len(t, doc.Sentences[1].Tokens, 1, "pad token is never written")
	assert.Equal(t, "NN", doc.Sentences[0].Tokens[1].Tag)
}

func TestTagTwiceKeepsTags(t *testing.T) {
	f := newFixture(t)

	_, _, err := run("-d", f.docDir, "--model", f.model, "-m", f.posMap, "tag", "--no-progress")
	require.NoError(t, err)
	first, _, err := run("-d", f.docDir, "show", "0")
	require.NoError(t, err)

	// no map on the second pass: nothing must change
	_, _, err = run("-d", f.docDir, "--model", f.model, "tag", "--no-progress")
	require.NoError(t, err)
	second, _, err := run("-d", f.docDir, "show", "0")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTagWithoutMap(t *testing.T) {
	f := newFixture(t)

	_, stderr, err := run("-d", f.docDir, "--model", f.model, "-m", filepath.Join(f.docDir, "absent.map"), "tag", "--no-progress", "--doc", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "pos map not found")

	out, _, err := run("-d", f.docDir, "show", "-f", "table", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "UH")
}

func TestTagUnknownDoc(t *testing.T) {
	f := newFixture(t)

	_, _, err := run("-d", f.docDir, "--model", f.model, "tag", "--no-progress", "--doc", "7")
	assert.ErrorContains(t, err, "doc not found: 7")
}

func TestTagMetricsFile(t *testing.T) {
	f := newFixture(t)
	metrics := filepath.Join(t.TempDir(), "segtag.prom")

	_, _, err := run("-d", f.docDir, "--model", f.model, "-m", f.posMap, "tag", "--no-progress", "--metrics-file", metrics)
	require.NoError(t, err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "segtag_tagger_sentences_total 4")
	assert.Contains(t, string(data), "segtag_tagger_padded_sentences_total 2")
	assert.Contains(t, string(data), `segtag_posmap_unresolved_total{tag="UH"} 2`)
}

func TestTagMalformedMap(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.posMap, []byte("NN\n"), 0644))

	_, _, err := run("-d", f.docDir, "--model", f.model, "-m", f.posMap, "tag", "--no-progress")
	assert.ErrorIs(t, err, posmap.ErrConfig)
}

func TestTagInvalidModel(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.model, []byte("{}"), 0644))

	_, _, err := run("-d", f.docDir, "--model", f.model, "tag", "--no-progress")
	assert.ErrorIs(t, err, perceptron.ErrInvalidModel)
}

func TestTagNoDocPath(t *testing.T) {
	f := newFixture(t)
	t.Setenv("SEGTAG_DOC_PATH", "")

	_, _, err := run("--model", f.model, "tag", "--no-progress")
	assert.ErrorContains(t, err, "Doc path must be specified")
}

func TestMap(t *testing.T) {
	f := newFixture(t)

	out, _, err := run("-m", f.posMap, "map", "NN", "UH")
	require.NoError(t, err)
	assert.Equal(t, "NN\tNOUN\tresolved\nUH\tUH\tunresolved\n", out)

	out, _, err = run("map", "NN")
	require.NoError(t, err)
	assert.Equal(t, "NN\tNN\tdisabled\n", out)

	_, _, err = run("map")
	assert.Error(t, err)
}

func TestStat(t *testing.T) {
	f := newFixture(t)

	out, _, err := run("-d", f.docDir, "stat", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Num sentences 3, num tokens 8, num tokens per sentence 2, untagged 7")
	assert.Contains(t, out, "PROPN 1")

	_, _, err = run("-d", f.docDir, "stat")
	assert.Error(t, err)
}

func TestShowWindowAndJSON(t *testing.T) {
	f := newFixture(t)

	out, _, err := run("-d", f.docDir, "show", "--start", "1", "-n", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "✍  0-1 Hello/_\n", out)

	out, _, err = run("-d", f.docDir, "show", "-f", "json", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "Bye"`)

	_, _, err = run("-d", f.docDir, "show", "-f", "xml", "1")
	assert.ErrorContains(t, err, "invalid format")
}

func TestImportAndTagSQLite(t *testing.T) {
	f := newFixture(t)
	db := filepath.Join(t.TempDir(), "corpus.db")

	out, _, err := run("import", "--from", f.docDir, "--to", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported 2 docs")

	_, _, err = run("-d", db, "--model", f.model, "-m", f.posMap, "tag", "--no-progress")
	require.NoError(t, err)

	// sqlite ids start at 1, ordered by title
	out, _, err = run("-d", db, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "The/DET cat/NOUN sleeps/VERB ./PUNCT")
	assert.Contains(t, out, "Hello/UH")
}

func TestVersion(t *testing.T) {
	out, _, err := run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "segtag version")
}

func TestLs(t *testing.T) {
	f := newFixture(t)

	out, _, err := run("-d", f.docDir, "ls")
	require.NoError(t, err)
	assert.Equal(t, "📖 0 a-cat.json [pets]\n📖 1 b-bye.json\n", out)
}

func TestExportRoundTrip(t *testing.T) {
	f := newFixture(t)
	db := filepath.Join(t.TempDir(), "corpus.db")
	target := filepath.Join(t.TempDir(), "exported")

	_, _, err := run("import", "--from", f.docDir, "--to", db)
	require.NoError(t, err)
	_, _, err = run("-d", db, "--model", f.model, "-m", f.posMap, "tag", "--no-progress", "--doc", "1")
	require.NoError(t, err)

	out, _, err := run("export", "--from", db, "--to", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully exported 2 docs")

	doc, err := filesystem.ReadDoc(filepath.Join(target, "a-cat.json"))
	require.NoError(t, err)
	require.Len(t, doc.Sentences, 3)
	assert.Equal(t, "DET", doc.Sentences[0].Tokens[0].Pos)
	assert.Equal(t, []string{"pets"}, doc.Labels)

	_, _, err = run("export", "--from", filepath.Join(t.TempDir(), "none.db"), "--to", target)
	assert.ErrorContains(t, err, "repository not found")
}

func TestBash(t *testing.T) {
	out, _, err := run("bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -o bashdefault -o default -F _segtag_autocomplete segtag")
}
