package meshing

// Build funde os elementos de um bloco em buffers planos, aplicando a
// translação da posição do bloco a cada vértice e re-baseando os índices
// pelo offset acumulado da cena. Devolve também o novo offset, que é o
// antigo mais a quantidade de vértices emitida aqui.
//
// O offset corre como int para a soma nunca dar wrap; o chamador garante
// que o total da cena cabe nos índices de 16 bits antes de chamar.
// A translação é aplicada só nas posições; UV e tint passam direto.
func Build(elements []MeshElement, indexOffset int, translation [3]float32) (StructureBuffers, int) {
	var out StructureBuffers

	offset := indexOffset
	for ei := range elements {
		e := &elements[ei]

		for i := 0; i+2 < len(e.Positions); i += 3 {
			out.Position = append(out.Position,
				e.Positions[i]+translation[0],
				e.Positions[i+1]+translation[1],
				e.Positions[i+2]+translation[2])
		}
		out.TexCoord = append(out.TexCoord, e.UVs...)
		out.TintColor = append(out.TintColor, e.Tints...)

		for _, idx := range e.Indices {
			out.Index = append(out.Index, uint16(int(idx)+offset))
		}
		offset += e.VertexCount()
	}

	return out, offset
}
