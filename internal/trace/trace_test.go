package trace

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/recorder"
)

func sample(t *testing.T) *Data {
	t.Helper()
	input := []int{30, 10, 20}
	log, _ := recorder.Default().Sample("selection", input)
	d, err := New("selection", "random", 42, input, log)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	return d
}

func TestNew(t *testing.T) {
	d := sample(t)

	if !anim.IsSorted(d.Output) {
		t.Errorf("expected sorted output, got %v", d.Output)
	}
	if d.Input[0] != 30 {
		t.Error("input was modified")
	}
	if d.Stats.Swaps != d.Events.Swaps() {
		t.Errorf("stats mismatch: %+v", d.Stats)
	}

	if _, err := New("bad", "random", 1, []int{1}, anim.Log{anim.NewHighlight(anim.Selected, 4)}); err == nil {
		t.Error("expected error for out-of-range log")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "json", sample(t)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var d Data
	if err := json.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if d.Algorithm != "selection" || d.Seed != 42 {
		t.Errorf("unexpected header %+v", d)
	}
	out, err := anim.Replay(d.Input, d.Events)
	if err != nil {
		t.Fatalf("replay of decoded trace failed: %v", err)
	}
	if !anim.IsSorted(out) {
		t.Error("decoded trace does not sort its input")
	}
}

func TestWriteCSV(t *testing.T) {
	d := sample(t)
	var buf bytes.Buffer
	if err := Write(&buf, "csv", d); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != len(d.Events)+1 {
		t.Fatalf("expected %d rows, got %d", len(d.Events)+1, len(records))
	}
	if records[0][1] != "kind" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[2][1] != "swap" || records[2][4] != "0 1" {
		t.Errorf("unexpected swap row %v", records[2])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "xml", sample(t)); err == nil {
		t.Error("expected error for unknown format")
	}
}
