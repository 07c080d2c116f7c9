package layout

import (
	"testing"

	"resumec/blocks"
)

func TestPaginate_WorkedExample(t *testing.T) {
	// 300+400=700 fits, +500 would be 1200 > 900, so 500 starts page two
	starts := Paginate([]float64{300, 400, 500, 200}, 900)

	want := []int{0, 2}
	if len(starts) != len(want) {
		t.Fatalf("Paginate() = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("Paginate()[%d] = %d, want %d", i, starts[i], want[i])
		}
	}
}

func TestPaginate_Empty(t *testing.T) {
	if starts := Paginate(nil, 900); starts != nil {
		t.Errorf("Paginate(nil) = %v, want nil", starts)
	}
	if starts := Paginate([]float64{}, 900); starts != nil {
		t.Errorf("Paginate(empty) = %v, want nil", starts)
	}
}

func TestPaginate_SingleOversizedBlock(t *testing.T) {
	// a block taller than the budget sits alone on its page and overflows
	starts := Paginate([]float64{1500}, 900)
	if len(starts) != 1 || starts[0] != 0 {
		t.Errorf("Paginate() = %v, want [0]", starts)
	}
}

func TestPaginate_OversizedBlockInMiddle(t *testing.T) {
	starts := Paginate([]float64{100, 1500, 100}, 900)

	// 100 on page one, 1500 alone on page two, 100 on page three
	want := []int{0, 1, 2}
	if len(starts) != len(want) {
		t.Fatalf("Paginate() = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("Paginate()[%d] = %d, want %d", i, starts[i], want[i])
		}
	}
}

func TestPaginate_ExactFit(t *testing.T) {
	// accumulated+h > budget is strict, exact fit stays on page
	starts := Paginate([]float64{450, 450, 1}, 900)

	want := []int{0, 2}
	if len(starts) != len(want) {
		t.Fatalf("Paginate() = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("Paginate()[%d] = %d, want %d", i, starts[i], want[i])
		}
	}
}

func TestPaginate_AlwaysStartsAtZero(t *testing.T) {
	cases := [][]float64{
		{1},
		{900},
		{901},
		{100, 200, 300},
		{1000, 1000, 1000},
	}
	for _, heights := range cases {
		starts := Paginate(heights, 900)
		if len(starts) == 0 || starts[0] != 0 {
			t.Errorf("Paginate(%v) = %v, first page must start at 0", heights, starts)
		}
	}
}

func TestPaginate_StartsStrictlyIncreasing(t *testing.T) {
	heights := []float64{100, 850, 100, 850, 100, 850}
	starts := Paginate(heights, 900)
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			t.Fatalf("Paginate() starts not strictly increasing: %v", starts)
		}
	}
	if last := starts[len(starts)-1]; last >= len(heights) {
		t.Fatalf("Paginate() last start %d out of range", last)
	}
}

func TestResult_Pages_Partition(t *testing.T) {
	seq := []blocks.Block{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}
	res := Result{
		Heights:    []float64{300, 400, 500, 200, 100},
		PageStarts: []int{0, 2, 4},
		Budget:     900,
	}

	pages := res.Pages(seq)
	if len(pages) != 3 {
		t.Fatalf("Pages() count = %d, want 3", len(pages))
	}

	// concatenating pages reproduces the sequence exactly
	var got []string
	for _, p := range pages {
		for _, b := range p {
			got = append(got, b.ID)
		}
	}
	if len(got) != len(seq) {
		t.Fatalf("Pages() flattened %d blocks, want %d", len(got), len(seq))
	}
	for i, b := range seq {
		if got[i] != b.ID {
			t.Errorf("Pages() flattened[%d] = %s, want %s", i, got[i], b.ID)
		}
	}
}

func TestResult_Pages_Empty(t *testing.T) {
	res := Result{}
	if pages := res.Pages(nil); pages != nil {
		t.Errorf("Pages() = %v, want nil", pages)
	}
}
