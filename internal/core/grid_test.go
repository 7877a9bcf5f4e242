package core

import "testing"

func TestNewGridFill(t *testing.T) {
	g := NewGrid(3, 4, 2.5)
	if g.Rows != 3 || g.Cols != 4 {
		t.Fatalf("grid is %dx%d, expected 3x4", g.Rows, g.Cols)
	}
	if len(g.Values()) != 12 {
		t.Fatalf("grid has %d cells, expected 12", len(g.Values()))
	}
	for i, v := range g.Values() {
		if v != 2.5 {
			t.Fatalf("cell %d = %v, expected 2.5", i, v)
		}
	}
	g.Set(2, 3, -1)
	if g.Values()[g.Index(2, 3)] != -1 || g.At(2, 3) != -1 {
		t.Fatalf("Set/At disagree with row-major layout")
	}
	g.Add(2, 3, 0.5)
	if g.At(2, 3) != -0.5 {
		t.Fatalf("Add produced %v, expected -0.5", g.At(2, 3))
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 2, 0)
	g.Set(0, 1, 7)
	c := g.Clone()
	g.Set(0, 1, 9)
	if c.At(0, 1) != 7 {
		t.Fatalf("clone changed with source: %v", c.At(0, 1))
	}
}

func TestSwapGridsExchangesHandles(t *testing.T) {
	a := NewGrid(2, 2, 1)
	b := NewGrid(2, 2, 2)
	origA, origB := a, b
	SwapGrids(&a, &b)
	if a != origB || b != origA {
		t.Fatal("SwapGrids did not exchange handles")
	}
	if a.At(0, 0) != 2 || b.At(0, 0) != 1 {
		t.Fatal("swapped grids lost their contents")
	}
}

func TestDoubleGridSwapDoesNotCopy(t *testing.T) {
	d := NewDoubleGrid(4, 4, 0)
	cur, nxt := d.Current(), d.Next()
	nxt.Set(1, 1, 5)
	d.Swap()
	if d.Current() != nxt || d.Next() != cur {
		t.Fatal("Swap must exchange buffer identities")
	}
	if d.Current().At(1, 1) != 5 {
		t.Fatalf("current after swap = %v, expected 5", d.Current().At(1, 1))
	}
	if cur.At(1, 1) != 0 {
		t.Fatal("swap copied data into the old current buffer")
	}
	d.Fill(3)
	if d.Current().At(0, 0) != 3 || d.Next().At(3, 3) != 3 {
		t.Fatal("Fill must reset both buffers")
	}
}
