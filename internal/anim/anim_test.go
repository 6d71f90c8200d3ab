package anim

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestReplayExchange(t *testing.T) {
	values := []int{2, 1}
	log := Log{
		NewHighlight(Selected, 0, 1),
		NewExchange(0, 1, 2, 1),
	}

	out, err := Replay(values, log)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if out[0] != 1 || out[1] != 2 {
		t.Errorf("expected [1 2], got %v", out)
	}
	if values[0] != 2 {
		t.Error("replay mutated its input")
	}
	if log.Swaps() != 1 || log.Highlights() != 1 || log.Writes() != 2 {
		t.Errorf("unexpected counts: swaps=%d highlights=%d writes=%d", log.Swaps(), log.Highlights(), log.Writes())
	}
}

func TestReplayWrite(t *testing.T) {
	out, err := Replay([]int{7, 3, 9}, Log{NewWrite(2, 0, 1)})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if out[2] != 1 || out[0] != 7 {
		t.Errorf("unexpected result %v", out)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		log  Log
		n    int
		want error
	}{
		{"empty", Log{}, 0, nil},
		{"in range", Log{NewHighlight(Selected, 0, 2), NewExchange(0, 2, 5, 6)}, 3, nil},
		{"bar out of range", Log{NewHighlight(Selected, 0, 3)}, 3, ErrIndexOutOfRange},
		{"negative index", Log{NewExchange(-1, 0, 1, 1)}, 3, ErrIndexOutOfRange},
		{"values mismatch", Log{{Kind: Swap, Bars: []int{0}, Indices: []int{0, 1}, Values: []int{1}}}, 3, ErrMalformedEvent},
		{"empty swap", Log{{Kind: Swap, Bars: []int{0}}}, 3, ErrMalformedEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.log, tt.n)
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			var evErr *EventError
			if !errors.As(err, &evErr) {
				t.Errorf("expected *EventError, got %T", err)
			}
		})
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		in   []int
		want bool
	}{
		{nil, true},
		{[]int{5}, true},
		{[]int{5, 5, 6}, true},
		{[]int{6, 5}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.in); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEventJSON(t *testing.T) {
	data, err := json.Marshal(NewExchange(1, 4, 30, 10))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"kind":"swap","color":"unsorted","bars":[1,4],"indices":[1,4],"values":[10,30]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	var e Event
	if err := json.Unmarshal([]byte(`{"kind":"highlight","color":"selected","bars":[2,3]}`), &e); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if e.Kind != Highlight || e.Color != Selected || len(e.Bars) != 2 {
		t.Errorf("unexpected event %+v", e)
	}

	if err := json.Unmarshal([]byte(`{"kind":"teleport"}`), &e); !errors.Is(err, ErrMalformedEvent) {
		t.Errorf("expected ErrMalformedEvent, got %v", err)
	}
}
