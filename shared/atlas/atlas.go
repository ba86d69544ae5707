package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"
	"sort"
)

// Erros de construção e consulta do atlas.
var (
	ErrSizeMismatch   = errors.New("atlas: textura com tamanho divergente")
	ErrUnknownTexture = errors.New("atlas: textura desconhecida")
)

// UVRect é o retângulo normalizado [0,1] de um tile dentro do atlas.
type UVRect struct {
	U0, V0 float32
	U1, V1 float32
}

// Atlas empacota texturas quadradas nomeadas em uma única imagem quadrada,
// com uma tabela id→UV. Construído uma vez antes de qualquer render e
// compartilhado somente-leitura entre rebuilds.
type Atlas struct {
	tileSize int
	gridSize int
	img      *image.RGBA
	tiles    map[string]UVRect
}

// Build monta o atlas a partir de um conjunto id→pixels. Todas as imagens
// precisam ser quadradas e do mesmo tamanho; divergência é ErrSizeMismatch.
// Os tiles são dispostos em ordem row-major (ids ordenados, para o layout
// ser determinístico) no menor grid quadrado que comporta a contagem.
func Build(images map[string]*image.RGBA) (*Atlas, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("atlas: nenhuma textura fornecida")
	}

	ids := make([]string, 0, len(images))
	for id := range images {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	first := images[ids[0]].Bounds()
	tileSize := first.Dx()
	if first.Dy() != tileSize {
		return nil, fmt.Errorf("%w: %q é %dx%d", ErrSizeMismatch, ids[0], first.Dx(), first.Dy())
	}
	for _, id := range ids[1:] {
		b := images[id].Bounds()
		if b.Dx() != tileSize || b.Dy() != tileSize {
			return nil, fmt.Errorf("%w: %q é %dx%d, esperava %dx%d",
				ErrSizeMismatch, id, b.Dx(), b.Dy(), tileSize, tileSize)
		}
	}

	gridSize := int(math.Ceil(math.Sqrt(float64(len(ids)))))
	pixelWidth := gridSize * tileSize

	a := &Atlas{
		tileSize: tileSize,
		gridSize: gridSize,
		img:      image.NewRGBA(image.Rect(0, 0, pixelWidth, pixelWidth)),
		tiles:    make(map[string]UVRect, len(ids)),
	}

	for i, id := range ids {
		col := i % gridSize
		row := i / gridSize
		x0 := col * tileSize
		y0 := row * tileSize

		dst := image.Rect(x0, y0, x0+tileSize, y0+tileSize)
		draw.Draw(a.img, dst, images[id], images[id].Bounds().Min, draw.Src)

		a.tiles[id] = UVRect{
			U0: float32(x0) / float32(pixelWidth),
			V0: float32(y0) / float32(pixelWidth),
			U1: float32(x0+tileSize) / float32(pixelWidth),
			V1: float32(y0+tileSize) / float32(pixelWidth),
		}
	}

	log.Printf("[Atlas] %d texturas empacotadas em %dx%d (grid %dx%d, tile %dpx)",
		len(ids), pixelWidth, pixelWidth, gridSize, gridSize, tileSize)
	return a, nil
}

// Lookup devolve o retângulo UV de uma textura do conjunto de build.
func (a *Atlas) Lookup(id string) (UVRect, error) {
	uv, ok := a.tiles[id]
	if !ok {
		return UVRect{}, fmt.Errorf("%w: %q", ErrUnknownTexture, id)
	}
	return uv, nil
}

// Image expõe a imagem empacotada para upload na GPU.
func (a *Atlas) Image() *image.RGBA {
	return a.img
}

// PixelWidth devolve o lado da imagem quadrada do atlas.
func (a *Atlas) PixelWidth() int {
	return a.img.Bounds().Dx()
}

// TileSize devolve o lado de cada tile.
func (a *Atlas) TileSize() int {
	return a.tileSize
}
