package meshing

// MeshElement é uma face (ou cuboide) de um modelo de bloco já resolvida
// para o espaço do atlas: posições locais (o bloco ocupa o cubo unitário
// [0,1]³), UV por vértice, tint RGB por vértice e índices de triângulo
// com winding consistente para backface culling.
type MeshElement struct {
	Positions []float32
	UVs       []float32
	Tints     []float32
	Indices   []uint16
}

// VertexCount devolve a quantidade de vértices do elemento.
func (e *MeshElement) VertexCount() int {
	return len(e.Positions) / 3
}

// StructureBuffers é o conjunto de buffers planos da estrutura inteira,
// fundidos em um único index buffer compartilhado.
// Invariantes: todo índice < Position/3; TexCoord/2 == Position/3 == TintColor/3.
type StructureBuffers struct {
	Position  []float32
	TexCoord  []float32
	TintColor []float32
	Index     []uint16
}

// VertexCount devolve a quantidade de vértices acumulada.
func (b *StructureBuffers) VertexCount() int {
	return len(b.Position) / 3
}

// Append concatena outro conjunto de buffers. Os índices de src precisam
// já ter sido re-baseados pelo builder.
func (b *StructureBuffers) Append(src *StructureBuffers) {
	b.Position = append(b.Position, src.Position...)
	b.TexCoord = append(b.TexCoord, src.TexCoord...)
	b.TintColor = append(b.TintColor, src.TintColor...)
	b.Index = append(b.Index, src.Index...)
}

// GridBuffers guarda segmentos de linha do overlay de debug: pares de
// pontos consumidos como linhas, com uma cor RGB por vértice.
// Invariante: len(Position) == len(Color), múltiplos de 3, e a contagem
// de vértices é par (pares de extremidades).
type GridBuffers struct {
	Position []float32
	Color    []float32
}

// LineCount devolve a quantidade de segmentos.
func (g *GridBuffers) LineCount() int {
	return len(g.Position) / 6
}

// addLine adiciona um segmento com cor uniforme nos dois extremos.
func (g *GridBuffers) addLine(x0, y0, z0, x1, y1, z1 float32, r, gg, b float32) {
	g.Position = append(g.Position, x0, y0, z0, x1, y1, z1)
	g.Color = append(g.Color, r, gg, b, r, gg, b)
}
