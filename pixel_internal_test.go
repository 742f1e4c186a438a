package qoi

import "testing"

func TestPixelHashRange(t *testing.T) {
	for r := 0; r < 256; r += 37 {
		p := Pixel{R: uint8(r), G: uint8(r + 11), B: uint8(r + 53), A: 255}
		if h := p.Hash(); h > 63 {
			t.Fatalf("hash(%v) = %d, want <= 63", p, h)
		}
	}
}

func TestPixelHashFormula(t *testing.T) {
	p := Pixel{R: 10, G: 20, B: 30, A: 255}
	want := uint8((10*3 + 20*5 + 30*7 + 255*11) % 64)
	if got := p.Hash(); got != want {
		t.Fatalf("Hash() = %d, want %d", got, want)
	}
}

func TestPixelEqual(t *testing.T) {
	a := Pixel{R: 1, G: 2, B: 3, A: 4}
	b := Pixel{R: 1, G: 2, B: 3, A: 4}
	c := Pixel{R: 1, G: 2, B: 3, A: 5}
	if !a.Equal(b) {
		t.Fatalf("a.Equal(b) = false, want true")
	}
	if a.Equal(c) {
		t.Fatalf("a.Equal(c) = true, want false")
	}
}

func TestSeenTableInitialState(t *testing.T) {
	var tbl seenTable
	for i := 0; i < 64; i++ {
		if got := tbl.get(uint8(i)); !got.Equal((Pixel{})) {
			t.Fatalf("tbl[%d] = %v, want zero pixel", i, got)
		}
	}
}

func TestPixelsFromRasterThreeChannel(t *testing.T) {
	raster := []byte{1, 2, 3, 4, 5, 6}
	pixels := pixelsFromRaster(raster, 3)
	want := []Pixel{{1, 2, 3, 255}, {4, 5, 6, 255}}
	for i := range want {
		if !pixels[i].Equal(want[i]) {
			t.Fatalf("pixels[%d] = %v, want %v", i, pixels[i], want[i])
		}
	}
}

func TestPixelsFromRasterFourChannel(t *testing.T) {
	raster := []byte{1, 2, 3, 4}
	pixels := pixelsFromRaster(raster, 4)
	if !pixels[0].Equal(Pixel{1, 2, 3, 4}) {
		t.Fatalf("pixels[0] = %v, want {1 2 3 4}", pixels[0])
	}
}

func TestPixelsToRasterDropsAlphaForThree(t *testing.T) {
	raster := pixelsToRaster([]Pixel{{1, 2, 3, 4}}, 3)
	want := []byte{1, 2, 3}
	for i, b := range want {
		if raster[i] != b {
			t.Fatalf("raster[%d] = %d, want %d", i, raster[i], b)
		}
	}
	if len(raster) != 3 {
		t.Fatalf("len(raster) = %d, want 3", len(raster))
	}
}
