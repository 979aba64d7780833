package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"arithrank/internal/arith"
)

func TestBuildCoversEveryType(t *testing.T) {
	snap, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	all := arith.All()
	if len(snap.Types) != len(all) || len(snap.Safe) != len(all) {
		t.Fatalf("snapshot has %d rows / %d matrix rows, want %d", len(snap.Types), len(snap.Safe), len(all))
	}
	for i, typ := range all {
		row := snap.Types[i]
		if row.Name != typ.String() || row.Ident != typ.Ident() {
			t.Fatalf("row %d = %+v, want %s", i, row, typ)
		}
		if row.Category != typ.MustCategory().String() || int(row.Rank) != typ.MustRank() {
			t.Fatalf("row %d = %+v disagrees with table", i, row)
		}
	}
	char, _ := snap.Index("char")
	if snap.Types[char].Unsigned {
		t.Fatalf("char must be exported as signed")
	}
}

func TestSnapshotSafeByRank(t *testing.T) {
	snap, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ok, err := snap.SafeByRank("unsigned int", "int")
	if err != nil || !ok {
		t.Fatalf("unsigned int/int = %v, %v", ok, err)
	}
	ok, err = snap.SafeByRank("int", "unsigned int")
	if err != nil || ok {
		t.Fatalf("int/unsigned int = %v, %v", ok, err)
	}
	if _, err := snap.SafeByRank("int", "void"); !errors.Is(err, arith.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	snap, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, snap, FormatMsgpack); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeMsgpack(&buf)
	if err != nil {
		t.Fatalf("DecodeMsgpack: %v", err)
	}
	if len(got.Types) != len(snap.Types) {
		t.Fatalf("decoded %d rows, want %d", len(got.Types), len(snap.Types))
	}
	for i := range snap.Safe {
		for j := range snap.Safe[i] {
			if got.Safe[i][j] != snap.Safe[i][j] {
				t.Fatalf("matrix differs at %s/%s", snap.Types[i].Name, snap.Types[j].Name)
			}
		}
	}
}

func TestDecodeRejectsForeignSchema(t *testing.T) {
	data, err := msgpack.Marshal(&Snapshot{Schema: SchemaVersion + 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := DecodeMsgpack(bytes.NewReader(data)); !errors.Is(err, errSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
}

func TestWriteFileJSON(t *testing.T) {
	snap, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out", "ranks.json")
	if err := WriteFile(path, snap, FormatJSON); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Schema != SchemaVersion || len(decoded.Types) != len(arith.All()) {
		t.Fatalf("unexpected JSON snapshot: schema=%d rows=%d", decoded.Schema, len(decoded.Types))
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(entries))
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"msgpack": FormatMsgpack, "MP": FormatMsgpack, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatalf("expected error for yaml")
	}
}
