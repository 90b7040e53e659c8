// Package posmap translates fine grained tagger output into a coarser,
// tagset independent vocabulary.
//
// A mapping table is plain UTF-8 text with one entry per line:
//
//	# comment
//	NN   NOUN
//	VBZ  VERB
//
// Blank lines and lines starting with '#' are ignored. Fields after the
// second one are ignored.
package posmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// ErrConfig is returned for mapping tables that can not be used.
var ErrConfig = errors.New("invalid pos map")

// Status tells how a tag went through the Mapper.
type Status int

const (
	// Disabled means no mapping table is configured. The tag passes through.
	Disabled Status = iota
	// Resolved means the table has an entry for the tag.
	Resolved
	// Unresolved means the table is configured but has no entry for the tag.
	Unresolved
)

func (s Status) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Resolved:
		return "resolved"
	case Unresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Result is the outcome of Resolve. Tag always holds the tag to use: the
// coarse tag when Resolved, the input tag otherwise.
type Result struct {
	Tag    string
	Status Status
}

// Mapper maps fine tags to coarse tags. The zero value and the nil pointer
// are disabled mappers. A Mapper is never modified after Load, so it can be
// shared between goroutines without locking.
type Mapper struct {
	table map[string]string
}

// Load parses a mapping table. Duplicate fine tags keep the last entry.
func Load(r io.Reader) (*Mapper, error) {
	table := map[string]string{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"FINE COARSE\", got %q", ErrConfig, lineNum, line)
		}

		table[fields[0]] = fields[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return &Mapper{table: table}, nil
}

// LoadFile loads the mapping table at path. An empty path or a file that
// does not exist yields a disabled mapper and ok == false.
func LoadFile(path string) (m *Mapper, ok bool, err error) {
	if path == "" {
		return nil, false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	defer f.Close()

	m, err = Load(f)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}

	return m, true, nil
}

// Enabled reports whether a mapping table is configured.
func (m *Mapper) Enabled() bool {
	return m != nil && m.table != nil
}

// Len returns the number of entries of the table.
func (m *Mapper) Len() int {
	if !m.Enabled() {
		return 0
	}
	return len(m.table)
}

// Tags returns the fine tags of the table, sorted.
func (m *Mapper) Tags() []string {
	if !m.Enabled() {
		return nil
	}

	tags := make([]string, 0, len(m.table))
	for fine := range m.table {
		tags = append(tags, fine)
	}
	sort.Strings(tags)
	return tags
}

// Resolve looks up the coarse tag of fine.
func (m *Mapper) Resolve(fine string) Result {
	if !m.Enabled() {
		return Result{Tag: fine, Status: Disabled}
	}

	coarse, ok := m.table[fine]
	if !ok {
		return Result{Tag: fine, Status: Unresolved}
	}

	return Result{Tag: coarse, Status: Resolved}
}
