package meshing

import (
	"fmt"
	"testing"

	"CraftVision/shared/structure"
)

// testCube monta um cubo unitário completo (6 faces, 24 vértices,
// 36 índices) como um único elemento, com UV e tint constantes.
func testCube() []MeshElement {
	var e MeshElement

	faces := [6][4][3]float32{
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // frente
		{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, // trás
		{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}, // topo
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // base
		{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, // direita
		{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // esquerda
	}

	for f, quad := range faces {
		for _, v := range quad {
			e.Positions = append(e.Positions, v[0], v[1], v[2])
			e.UVs = append(e.UVs, 0, 0)
			e.Tints = append(e.Tints, 1, 1, 1)
		}
		base := uint16(f * 4)
		e.Indices = append(e.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	return []MeshElement{e}
}

// cubeProvider resolve qualquer estado para um cubo cheio, exceto os
// nomes marcados para falhar.
type cubeProvider struct {
	fail map[string]error
}

func (p *cubeProvider) Resolve(st structure.BlockState) ([]MeshElement, error) {
	if err, ok := p.fail[st.Name]; ok {
		return nil, err
	}
	return testCube(), nil
}

func TestBuildRebasesIndices(t *testing.T) {
	elements := testCube()

	base, next := Build(elements, 0, [3]float32{0, 0, 0})
	shifted, shiftedNext := Build(elements, 24, [3]float32{0, 0, 0})

	if next != 24 || shiftedNext != 48 {
		t.Fatalf("offsets: veio (%d, %d), esperava (24, 48)", next, shiftedNext)
	}
	if len(base.Index) != len(shifted.Index) {
		t.Fatalf("contagem de índices divergiu: %d vs %d", len(base.Index), len(shifted.Index))
	}
	for i := range base.Index {
		if shifted.Index[i] != base.Index[i]+24 {
			t.Fatalf("índice %d: veio %d, esperava %d", i, shifted.Index[i], base.Index[i]+24)
		}
	}
}

func TestBuildAppliesTranslation(t *testing.T) {
	out, _ := Build(testCube(), 0, [3]float32{2, 3, 4})

	for i := 0; i+2 < len(out.Position); i += 3 {
		x, y, z := out.Position[i], out.Position[i+1], out.Position[i+2]
		if x < 2 || x > 3 || y < 3 || y > 4 || z < 4 || z > 5 {
			t.Fatalf("vértice %d fora do cubo transladado: (%v, %v, %v)", i/3, x, y, z)
		}
	}
}

func TestBuildThreadsOffsetAcrossElements(t *testing.T) {
	// Dois cubos como elementos separados: os índices do segundo precisam
	// vir re-baseados pelos vértices do primeiro.
	elements := append(testCube(), testCube()...)

	out, next := Build(elements, 0, [3]float32{0, 0, 0})

	if next != 48 {
		t.Fatalf("offset final = %d, esperava 48", next)
	}
	for _, idx := range out.Index {
		if int(idx) >= out.VertexCount() {
			t.Fatalf("índice %d fora do intervalo de %d vértices", idx, out.VertexCount())
		}
	}
	if out.Index[36] != 24 {
		t.Errorf("primeiro índice do segundo elemento = %d, esperava 24", out.Index[36])
	}
}

func TestAssembleTwoStackedCubes(t *testing.T) {
	s, err := structure.New([3]int{1, 2, 1}, []structure.PlacedBlock{
		{Pos: [3]int{0, 0, 0}, State: structure.BlockState{Name: "stone"}},
		{Pos: [3]int{0, 1, 0}, State: structure.BlockState{Name: "stone"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	scene := Assemble(s, &cubeProvider{})

	if got := len(scene.Structure.Index); got != 72 {
		t.Errorf("índices: veio %d, esperava 72", got)
	}
	if got := len(scene.Structure.Position); got != 2*24*3 {
		t.Errorf("posições: veio %d, esperava %d", got, 2*24*3)
	}
	if got := len(scene.Structure.TexCoord); got != 2*24*2 {
		t.Errorf("UVs: veio %d, esperava %d", got, 2*24*2)
	}
	for _, idx := range scene.Structure.Index {
		if int(idx) >= scene.Structure.VertexCount() {
			t.Fatalf("índice %d fora do intervalo de %d vértices", idx, scene.Structure.VertexCount())
		}
	}

	// O segundo cubo fica em y ∈ [1,2].
	maxY := float32(0)
	for i := 1; i < len(scene.Structure.Position); i += 3 {
		if scene.Structure.Position[i] > maxY {
			maxY = scene.Structure.Position[i]
		}
	}
	if maxY != 2 {
		t.Errorf("maior Y = %v, esperava 2", maxY)
	}
}

func TestAssembleSkipsFailingBlocks(t *testing.T) {
	s, err := structure.New([3]int{3, 1, 1}, []structure.PlacedBlock{
		{Pos: [3]int{0, 0, 0}, State: structure.BlockState{Name: "stone"}},
		{Pos: [3]int{1, 0, 0}, State: structure.BlockState{Name: "misterio"}},
		{Pos: [3]int{2, 0, 0}, State: structure.BlockState{Name: "stone"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	provider := &cubeProvider{fail: map[string]error{
		"misterio": fmt.Errorf("%w: misterio", ErrUnknownBlock),
	}}
	scene := Assemble(s, provider)

	// Dois dos três blocos sobrevivem; a malha segue consistente.
	if got := scene.Structure.VertexCount(); got != 48 {
		t.Errorf("vértices: veio %d, esperava 48", got)
	}
	if got := len(scene.Structure.Index); got != 72 {
		t.Errorf("índices: veio %d, esperava 72", got)
	}
	for _, idx := range scene.Structure.Index {
		if int(idx) >= scene.Structure.VertexCount() {
			t.Fatalf("índice %d fora do intervalo após pulo", idx)
		}
	}
}

func TestAssembleCapsSceneAtIndexLimit(t *testing.T) {
	// 2731 cubos cheios somam 65544 vértices, além do que índices de 16
	// bits endereçam. A cena para em 2730 blocos; os triângulos finais
	// continuam apontando para os últimos vértices, nunca de volta aos
	// primeiros blocos.
	const blocks = 2731
	placed := make([]structure.PlacedBlock, 0, blocks)
	for i := 0; i < blocks; i++ {
		placed = append(placed, structure.PlacedBlock{
			Pos:   [3]int{i % 64, (i / 64) % 64, i / 4096},
			State: structure.BlockState{Name: "stone"},
		})
	}
	s, err := structure.New([3]int{64, 64, 64}, placed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	scene := Assemble(s, &cubeProvider{})

	wantVerts := (blocks - 1) * 24
	if got := scene.Structure.VertexCount(); got != wantVerts {
		t.Fatalf("vértices: veio %d, esperava %d (cena truncada em %d blocos)", got, wantVerts, blocks-1)
	}
	for _, idx := range scene.Structure.Index {
		if int(idx) >= scene.Structure.VertexCount() {
			t.Fatalf("índice %d fora do intervalo de %d vértices", idx, scene.Structure.VertexCount())
		}
	}

	last := scene.Structure.Index[len(scene.Structure.Index)-1]
	if int(last) < wantVerts-24 {
		t.Errorf("último índice = %d, esperava referência ao último bloco emitido (>= %d)", last, wantVerts-24)
	}
}

func TestBuildGridCounts(t *testing.T) {
	tests := []struct{ x, y, z int }{
		{1, 1, 1},
		{1, 2, 1},
		{5, 3, 4},
		{16, 8, 16},
	}

	for _, tt := range tests {
		g := BuildGrid(tt.x, tt.y, tt.z)

		wantVerts := 2 * (10 + tt.x + tt.z)
		if got := len(g.Position) / 3; got != wantVerts {
			t.Errorf("%dx%dx%d: %d vértices, esperava %d", tt.x, tt.y, tt.z, got, wantVerts)
		}
		if len(g.Color) != len(g.Position) {
			t.Errorf("%dx%dx%d: cores (%d) e posições (%d) divergem",
				tt.x, tt.y, tt.z, len(g.Color), len(g.Position))
		}
		if g.LineCount() != 10+tt.x+tt.z {
			t.Errorf("%dx%dx%d: %d segmentos, esperava %d", tt.x, tt.y, tt.z, g.LineCount(), 10+tt.x+tt.z)
		}
	}
}

func TestBuildGridAxisColors(t *testing.T) {
	g := BuildGrid(2, 2, 2)

	// Primeiro segmento: eixo X em vermelho, ao longo de x.
	if g.Position[3] != 2 || g.Position[4] != 0 || g.Position[5] != 0 {
		t.Errorf("extremo do eixo X = %v", g.Position[3:6])
	}
	if g.Color[0] <= g.Color[2] {
		t.Errorf("eixo X deveria ser avermelhado, cor = %v", g.Color[0:3])
	}

	// Segundo segmento: eixo Z em azul, ao longo de z.
	if g.Position[9] != 0 || g.Position[10] != 0 || g.Position[11] != 2 {
		t.Errorf("extremo do eixo Z = %v", g.Position[9:12])
	}
	if g.Color[8] <= g.Color[6] {
		t.Errorf("eixo Z deveria ser azulado, cor = %v", g.Color[6:9])
	}
}
