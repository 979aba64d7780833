// Package snapshot exports the rank table and the full safety matrix so that
// tools outside this module can consume the same verdicts.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"arithrank/internal/arith"
)

// SchemaVersion is bumped whenever the Snapshot layout changes.
const SchemaVersion uint16 = 1

var errSchemaMismatch = errors.New("snapshot schema mismatch")

// Row describes one arithmetic type.
type Row struct {
	Name     string `msgpack:"name" json:"name"`
	Ident    string `msgpack:"ident" json:"ident"`
	Category string `msgpack:"category" json:"category"`
	Rank     uint8  `msgpack:"rank" json:"rank"`
	Unsigned bool   `msgpack:"unsigned" json:"unsigned"`
}

// Snapshot is the exported table. Safe[i][j] holds the rank rule for
// (Types[i], Types[j]).
type Snapshot struct {
	Schema uint16   `msgpack:"schema" json:"schema"`
	Types  []Row    `msgpack:"types" json:"types"`
	Safe   [][]bool `msgpack:"safe" json:"safe"`
}

// Build captures the current table.
func Build() (*Snapshot, error) {
	all := arith.All()
	snap := &Snapshot{
		Schema: SchemaVersion,
		Types:  make([]Row, 0, len(all)),
		Safe:   make([][]bool, len(all)),
	}
	for i, a := range all {
		c, ok := a.Category()
		if !ok {
			return nil, fmt.Errorf("%s: no category", a)
		}
		r, ok := a.Rank()
		if !ok {
			return nil, fmt.Errorf("%s: no rank", a)
		}
		rank, err := safecast.Conv[uint8](r)
		if err != nil {
			return nil, fmt.Errorf("%s: rank overflow: %w", a, err)
		}
		snap.Types = append(snap.Types, Row{
			Name:     a.String(),
			Ident:    a.Ident(),
			Category: c.String(),
			Rank:     rank,
			Unsigned: a.UnsignedForSafety(),
		})
		snap.Safe[i] = make([]bool, len(all))
		for j, b := range all {
			snap.Safe[i][j] = arith.SafeByRank(a, b)
		}
	}
	return snap, nil
}

// Index returns the row position of the named type.
func (s *Snapshot) Index(name string) (int, bool) {
	for i, row := range s.Types {
		if row.Name == name {
			return i, true
		}
	}
	return 0, false
}

// SafeByRank looks the rank rule up by C spelling.
func (s *Snapshot) SafeByRank(a, b string) (bool, error) {
	i, ok := s.Index(a)
	if !ok {
		return false, fmt.Errorf("%w: %q", arith.ErrUnknownType, a)
	}
	j, ok := s.Index(b)
	if !ok {
		return false, fmt.Errorf("%w: %q", arith.ErrUnknownType, b)
	}
	if i >= len(s.Safe) || j >= len(s.Safe[i]) {
		return false, fmt.Errorf("safety matrix is truncated at %d,%d", i, j)
	}
	return s.Safe[i][j], nil
}

// Format selects the wire encoding.
type Format uint8

const (
	FormatMsgpack Format = iota + 1
	FormatJSON
)

// String returns the string representation of Format.
func (f Format) String() string {
	switch f {
	case FormatMsgpack:
		return "msgpack"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatMsgpack, fmt.Errorf("invalid export format: %q (expected: msgpack|json)", s)
	}
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, s *Snapshot, format Format) error {
	switch format {
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}

// DecodeMsgpack reads a msgpack snapshot and rejects foreign schemas.
func DecodeMsgpack(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", errSchemaMismatch, s.Schema, SchemaVersion)
	}
	return &s, nil
}

// WriteFile encodes s into path, replacing any previous file atomically.
func WriteFile(path string, s *Snapshot, format Format) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()
	if err := Encode(f, s, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
