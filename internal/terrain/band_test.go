package terrain

import (
	"math"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	c := Classifier{MaxHeight: 10}
	cases := []struct {
		h    float64
		want Band
	}{
		{10, BandStone},
		{8.0001, BandStone},
		{8, BandDirt},
		{7.5, BandDirt},
		{7, BandGrass},
		{5.0001, BandGrass},
		{5, BandSand},
		{3.5, BandSand},
		{3, BandDirt2},
		{0.0001, BandDirt2},
	}
	for _, tc := range cases {
		got, ok := c.Classify(tc.h)
		if !ok {
			t.Errorf("Classify(%v) returned no band", tc.h)
			continue
		}
		if got != tc.want {
			t.Errorf("Classify(%v) = %v, want %v", tc.h, got, tc.want)
		}
	}
}

func TestClassifyExcludesNonPositive(t *testing.T) {
	c := Classifier{MaxHeight: 10}
	for _, h := range []float64{0, -0.5, -100} {
		if b, ok := c.Classify(h); ok {
			t.Errorf("Classify(%v) = %v, want no band", h, b)
		}
	}
}

func TestClassifyScalesWithMaxHeight(t *testing.T) {
	c := Classifier{MaxHeight: 20}
	if b, _ := c.Classify(16); b != BandDirt {
		t.Errorf("Classify(16) with max 20 = %v, want dirt", b)
	}
	if b, _ := c.Classify(16.5); b != BandStone {
		t.Errorf("Classify(16.5) with max 20 = %v, want stone", b)
	}
}

func TestBandDecorations(t *testing.T) {
	want := map[Band]Decoration{
		BandStone: DecorationRock,
		BandDirt:  DecorationTree,
		BandGrass: DecorationNone,
		BandSand:  DecorationRock,
		BandDirt2: DecorationNone,
	}
	for b, d := range want {
		if got := b.Decoration(); got != d {
			t.Errorf("%v.Decoration() = %v, want %v", b, got, d)
		}
	}
}

func TestBandNames(t *testing.T) {
	names := []string{"stone", "dirt", "grass", "sand", "dirt2"}
	for i, b := range Bands() {
		if b.String() != names[i] {
			t.Errorf("band %d: got %q, want %q", i, b.String(), names[i])
		}
	}
	if Band(42).String() != "unknown" {
		t.Errorf("out of range band should be unknown")
	}
}

func TestHeight(t *testing.T) {
	cases := []struct {
		sample, want float64
	}{
		{1, 10},
		{-1, 0},
		{0.2, math.Pow(0.6, 1.5) * 10},
		{0, math.Pow(0.5, 1.5) * 10},
		// out of range samples are clamped
		{1.5, 10},
		{-3, 0},
	}
	for _, c := range cases {
		if got := Height(c.sample, 1.5, 10); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Height(%v) = %v, want %v", c.sample, got, c.want)
		}
	}
}
