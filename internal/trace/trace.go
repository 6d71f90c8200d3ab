package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/anim"
	"github.com/san-kum/sortviz/internal/recorder"
)

// Data is everything needed to replay one recorded run elsewhere.
type Data struct {
	Algorithm string         `json:"algorithm"`
	Seed      int64          `json:"seed"`
	Shape     string         `json:"shape"`
	Input     []int          `json:"input"`
	Output    []int          `json:"output"`
	Stats     recorder.Stats `json:"stats"`
	Events    anim.Log       `json:"events"`
}

// New replays log over input to fill in the output.
func New(algorithm, shape string, seed int64, input []int, log anim.Log) (*Data, error) {
	out, err := anim.Replay(input, log)
	if err != nil {
		return nil, err
	}
	return &Data{
		Algorithm: algorithm,
		Seed:      seed,
		Shape:     shape,
		Input:     input,
		Output:    out,
		Stats:     recorder.Measure(log),
		Events:    log,
	}, nil
}

func WriteJSON(w io.Writer, d *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteCSV writes one row per event: position, kind, color, bars, indices, values.
func WriteCSV(w io.Writer, log anim.Log) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"pos", "kind", "color", "bars", "indices", "values"}); err != nil {
		return err
	}
	for i, e := range log {
		row := []string{
			strconv.Itoa(i),
			e.Kind.String(),
			e.Color.String(),
			joinInts(e.Bars),
			joinInts(e.Indices),
			joinInts(e.Values),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Write dispatches on format name.
func Write(w io.Writer, format string, d *Data) error {
	switch format {
	case "json":
		return WriteJSON(w, d)
	case "csv":
		return WriteCSV(w, d.Events)
	default:
		return fmt.Errorf("unknown format: %s (want json or csv)", format)
	}
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
