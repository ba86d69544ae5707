package atlas

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// solidTile cria um tile quadrado preenchido com uma cor única.
func solidTile(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestBuildGridDimensions(t *testing.T) {
	tests := []struct {
		count     int
		wantGrid  int
		wantWidth int
	}{
		{1, 1, 4},
		{2, 2, 8},
		{4, 2, 8},
		{5, 3, 12},
		{9, 3, 12},
		{10, 4, 16},
	}

	for _, tt := range tests {
		images := make(map[string]*image.RGBA, tt.count)
		for i := 0; i < tt.count; i++ {
			images[string(rune('a'+i))] = solidTile(4, color.RGBA{uint8(i), 0, 0, 255})
		}

		a, err := Build(images)
		if err != nil {
			t.Fatalf("Build(%d tiles): %v", tt.count, err)
		}
		if a.PixelWidth() != tt.wantWidth {
			t.Errorf("%d tiles: PixelWidth = %d, esperava %d", tt.count, a.PixelWidth(), tt.wantWidth)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	// Cada tile com cor única: o retângulo UV escalado pelo lado do atlas
	// precisa cair exatamente sobre os pixels de origem.
	images := map[string]*image.RGBA{
		"dirt":  solidTile(4, color.RGBA{120, 80, 40, 255}),
		"grass": solidTile(4, color.RGBA{60, 180, 60, 255}),
		"stone": solidTile(4, color.RGBA{128, 128, 128, 255}),
	}

	a, err := Build(images)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	w := float32(a.PixelWidth())
	for id, src := range images {
		uv, err := a.Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", id, err)
		}

		x0 := int(uv.U0 * w)
		y0 := int(uv.V0 * w)
		x1 := int(uv.U1 * w)
		y1 := int(uv.V1 * w)

		if x1-x0 != a.TileSize() || y1-y0 != a.TileSize() {
			t.Errorf("%q: região %dx%d, esperava %dx%d", id, x1-x0, y1-y0, a.TileSize(), a.TileSize())
		}

		want := src.RGBAAt(0, 0)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if got := a.Image().RGBAAt(x, y); got != want {
					t.Fatalf("%q: pixel (%d,%d) = %v, esperava %v", id, x, y, got, want)
				}
			}
		}
	}
}

func TestTilesDoNotOverlap(t *testing.T) {
	images := make(map[string]*image.RGBA)
	for i := 0; i < 5; i++ {
		images[string(rune('a'+i))] = solidTile(2, color.RGBA{uint8(i * 40), 0, 0, 255})
	}

	a, err := Build(images)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	w := float32(a.PixelWidth())
	type region struct{ x0, y0, x1, y1 int }
	var regions []region
	for id := range images {
		uv, _ := a.Lookup(id)
		regions = append(regions, region{int(uv.U0 * w), int(uv.V0 * w), int(uv.U1 * w), int(uv.V1 * w)})
	}

	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			a, b := regions[i], regions[j]
			if a.x0 < b.x1 && b.x0 < a.x1 && a.y0 < b.y1 && b.y0 < a.y1 {
				t.Errorf("regiões %d e %d se sobrepõem: %v vs %v", i, j, a, b)
			}
		}
	}
}

func TestBuildRejectsMismatchedSizes(t *testing.T) {
	images := map[string]*image.RGBA{
		"ok":    solidTile(4, color.RGBA{255, 0, 0, 255}),
		"torto": image.NewRGBA(image.Rect(0, 0, 4, 8)),
	}

	_, err := Build(images)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("esperava ErrSizeMismatch, veio %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	a, err := Build(map[string]*image.RGBA{"stone": solidTile(4, color.RGBA{1, 2, 3, 255})})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, err = a.Lookup("missing_texture")
	if !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("esperava ErrUnknownTexture, veio %v", err)
	}
}
