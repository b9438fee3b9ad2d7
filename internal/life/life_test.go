package life

import (
	"bytes"
	"testing"

	"github.com/san-kum/bitraster/internal/raster"
)

func newGrid(t *testing.T, byteLen, stride int, cells ...[2]int) *raster.Buffer {
	t.Helper()
	b, err := raster.New(byteLen, stride, raster.MSBFirst)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cells {
		b.Set(c[0], c[1])
	}
	return b
}

func TestStep_AllDeadStaysDead(t *testing.T) {
	b := newGrid(t, 8, 16)
	next := Step(b)
	for _, v := range next.Data() {
		if v != 0 {
			t.Fatal("dead grid produced live cells")
		}
	}
}

func TestStep_LoneCellDies(t *testing.T) {
	b := newGrid(t, 8, 16, [2]int{5, 2})
	next := Step(b)
	if next.Get(5, 2) != 0 {
		t.Error("isolated cell survived")
	}
}

func TestStep_BlockIsStill(t *testing.T) {
	b := newGrid(t, 8, 16, [2]int{3, 1}, [2]int{4, 1}, [2]int{3, 2}, [2]int{4, 2})

	cur := b
	for i := 0; i < 5; i++ {
		cur = Step(cur)
	}
	if !bytes.Equal(cur.Data(), b.Data()) {
		t.Error("2x2 block changed across generations")
	}
}

func TestStep_BlinkerOscillates(t *testing.T) {
	horiz := newGrid(t, 10, 16, [2]int{2, 1}, [2]int{3, 1}, [2]int{4, 1})
	vert := newGrid(t, 10, 16, [2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2})

	one := Step(horiz)
	if !bytes.Equal(one.Data(), vert.Data()) {
		t.Fatal("blinker did not turn vertical after one step")
	}
	two := Step(one)
	if !bytes.Equal(two.Data(), horiz.Data()) {
		t.Error("blinker did not return to horizontal after two steps")
	}
}

func TestStep_BorderIsZeroPadded(t *testing.T) {
	// a block in the top-left corner touches two edges and must still be
	// a still life when out-of-grid neighbors read as dead
	b := newGrid(t, 8, 16, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	next := Step(b)
	if !bytes.Equal(next.Data(), b.Data()) {
		t.Error("corner block changed; border not treated as dead")
	}
}

func TestStep_IsPure(t *testing.T) {
	b := newGrid(t, 10, 16, [2]int{2, 1}, [2]int{3, 1}, [2]int{4, 1})
	before := append([]byte(nil), b.Data()...)

	first := Step(b)
	second := Step(b)

	if !bytes.Equal(b.Data(), before) {
		t.Error("Step mutated its input")
	}
	if !bytes.Equal(first.Data(), second.Data()) {
		t.Error("Step on identical input gave different output")
	}
}

func TestStep_PreservesShape(t *testing.T) {
	b := newGrid(t, 12, 24)
	next := Step(b)
	if next.Len() != b.Len() || next.Stride() != b.Stride() || next.Order() != b.Order() {
		t.Errorf("output shape (%d, %d) differs from input (%d, %d)",
			next.Len(), next.Stride(), b.Len(), b.Stride())
	}
}
