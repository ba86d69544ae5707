package assets

import (
	"fmt"
	"log"

	"CraftVision/shared/atlas"
	"CraftVision/visor/internal/meshing"
)

// Direções de face de um cuboide.
const (
	faceNorth = "north"
	faceSouth = "south"
	faceEast  = "east"
	faceWest  = "west"
	faceUp    = "up"
	faceDown  = "down"
)

// faceLayout descreve como montar o quad de uma direção: qual canto do
// cuboide cada vértice usa (0 = from, 1 = to, por eixo) e de quais eixos
// vêm as coordenadas U e V dentro do tile.
type faceLayout struct {
	corners      [4][3]int
	uAxis, vAxis int
	uFlip, vFlip bool
}

// Winding CCW visto de fora, casando com o culling do renderer.
var faceLayouts = map[string]faceLayout{
	faceSouth: {corners: [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, uAxis: 0, vAxis: 1, vFlip: true},
	faceNorth: {corners: [4][3]int{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, uAxis: 0, vAxis: 1, uFlip: true, vFlip: true},
	faceEast:  {corners: [4][3]int{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, uAxis: 2, vAxis: 1, uFlip: true, vFlip: true},
	faceWest:  {corners: [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, uAxis: 2, vAxis: 1, vFlip: true},
	faceUp:    {corners: [4][3]int{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}, uAxis: 0, vAxis: 2},
	faceDown:  {corners: [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, uAxis: 0, vAxis: 2, vFlip: true},
}

// buildElements converte os cuboides de uma definição em elementos de
// malha já no espaço UV do atlas. Textura ausente do atlas derruba só a
// face; definição malformada derruba o bloco inteiro com ErrModelError.
func buildElements(def *BlockDefinition, atl *atlas.Atlas) ([]meshing.MeshElement, error) {
	cuboids := def.Elements
	if len(cuboids) == 0 {
		cuboids = []Cuboid{fullCube(def.Textures)}
	}

	tint := [3]float32{1, 1, 1}
	if len(def.Tint) == 3 {
		tint = [3]float32{def.Tint[0], def.Tint[1], def.Tint[2]}
	}

	elements := make([]meshing.MeshElement, 0, len(cuboids))
	for ci, c := range cuboids {
		if len(c.From) != 3 || len(c.To) != 3 {
			return nil, fmt.Errorf("%w: %s, cuboide %d sem from/to", meshing.ErrModelError, def.Name, ci)
		}
		for axis := 0; axis < 3; axis++ {
			if c.From[axis] < 0 || c.To[axis] > 16 || c.From[axis] >= c.To[axis] {
				return nil, fmt.Errorf("%w: %s, cuboide %d com extensão inválida no eixo %d",
					meshing.ErrModelError, def.Name, ci, axis)
			}
		}
		if len(c.Faces) == 0 {
			return nil, fmt.Errorf("%w: %s, cuboide %d sem faces", meshing.ErrModelError, def.Name, ci)
		}

		// from/to vêm em dezesseis avos, como nos modelos de resource pack.
		var from, to [3]float32
		for axis := 0; axis < 3; axis++ {
			from[axis] = c.From[axis] / 16
			to[axis] = c.To[axis] / 16
		}

		var e meshing.MeshElement
		for _, dir := range faceOrder {
			face, ok := c.Faces[dir]
			if !ok {
				continue
			}

			layout, ok := faceLayouts[dir]
			if !ok {
				return nil, fmt.Errorf("%w: %s, face %q desconhecida", meshing.ErrModelError, def.Name, dir)
			}

			textureID, ok := def.Textures[face.Texture]
			if !ok {
				return nil, fmt.Errorf("%w: %s, face %s referencia textura %q não declarada",
					meshing.ErrModelError, def.Name, dir, face.Texture)
			}

			uv, err := atl.Lookup(textureID)
			if err != nil {
				log.Printf("[Assets] %s: face %s pulada: %v", def.Name, dir, err)
				continue
			}

			appendFace(&e, layout, from, to, uv, face.Tinted, tint)
		}

		if e.VertexCount() == 0 {
			// Todas as faces caíram; sem geometria o cuboide não contribui.
			continue
		}
		elements = append(elements, e)
	}
	return elements, nil
}

// faceOrder fixa a ordem de emissão das faces para a malha ser determinística.
var faceOrder = []string{faceNorth, faceSouth, faceEast, faceWest, faceUp, faceDown}

func appendFace(e *meshing.MeshElement, layout faceLayout, from, to [3]float32, uv atlas.UVRect, tinted bool, tint [3]float32) {
	base := uint16(e.VertexCount())

	for _, sel := range layout.corners {
		var p [3]float32
		for axis := 0; axis < 3; axis++ {
			if sel[axis] == 0 {
				p[axis] = from[axis]
			} else {
				p[axis] = to[axis]
			}
		}
		e.Positions = append(e.Positions, p[0], p[1], p[2])

		// Fração dentro do tile proporcional à extensão do cuboide.
		u := p[layout.uAxis]
		v := p[layout.vAxis]
		if layout.uFlip {
			u = 1 - u
		}
		if layout.vFlip {
			v = 1 - v
		}
		e.UVs = append(e.UVs,
			uv.U0+u*(uv.U1-uv.U0),
			uv.V0+v*(uv.V1-uv.V0))

		if tinted {
			e.Tints = append(e.Tints, tint[0], tint[1], tint[2])
		} else {
			e.Tints = append(e.Tints, 1, 1, 1)
		}
	}

	e.Indices = append(e.Indices, base, base+1, base+2, base, base+2, base+3)
}

// fullCube é o cuboide implícito de definições sem elements: um cubo
// cheio. Cada face usa o grupo de textura mais específico declarado
// (top/bottom/side), caindo para "all".
func fullCube(textures map[string]string) Cuboid {
	pick := func(group string) string {
		if _, ok := textures[group]; ok {
			return group
		}
		return "all"
	}

	faces := map[string]Face{
		faceUp:    {Texture: pick("top"), Tinted: true},
		faceDown:  {Texture: pick("bottom"), Tinted: true},
		faceNorth: {Texture: pick("side"), Tinted: true},
		faceSouth: {Texture: pick("side"), Tinted: true},
		faceEast:  {Texture: pick("side"), Tinted: true},
		faceWest:  {Texture: pick("side"), Tinted: true},
	}
	return Cuboid{From: []float32{0, 0, 0}, To: []float32{16, 16, 16}, Faces: faces}
}
