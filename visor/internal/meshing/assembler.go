package meshing

import (
	"errors"
	"log"
	"math"

	"CraftVision/shared/structure"
)

// maxSceneVertices é o teto imposto pelos índices de 16 bits da malha.
const maxSceneVertices = math.MaxUint16 + 1

// Erros que um ModelProvider devolve por bloco. O assembler trata ambos
// com a mesma política: loga, pula o bloco e segue a varredura.
var (
	ErrUnknownBlock = errors.New("meshing: bloco sem modelo")
	ErrModelError   = errors.New("meshing: modelo malformado")
)

// ModelProvider resolve um estado de bloco nos elementos de malha já em
// espaço de atlas. A resolução é por estado completo (nome + propriedades),
// feita uma vez por bloco durante o rebuild.
type ModelProvider interface {
	Resolve(state structure.BlockState) ([]MeshElement, error)
}

// Scene é o resultado de uma montagem completa: a malha da estrutura e o
// overlay de grid correspondente ao footprint.
type Scene struct {
	Structure StructureBuffers
	Grid      GridBuffers
}

// Assemble percorre os blocos na ordem de declaração do snapshot, resolve
// cada estado no provider e funde tudo em um único conjunto de buffers.
// Bloco que falha na resolução é pulado sem abortar o rebuild: os demais
// blocos ainda aparecem na cena.
//
// Como os índices são de 16 bits, a cena é truncada ao atingir 65536
// vértices: blocos além do teto são omitidos de uma vez, nunca
// re-baseados com wrap por cima dos primeiros blocos.
func Assemble(s *structure.Structure, provider ModelProvider) Scene {
	var scene Scene
	offset := 0
	skipped := 0

	for i, b := range s.Blocks() {
		elements, err := provider.Resolve(b.State)
		if err != nil {
			log.Printf("[Assembler] pulando bloco %v (%s): %v", b.Pos, b.State.Key(), err)
			skipped++
			continue
		}

		vc := 0
		for ei := range elements {
			vc += elements[ei].VertexCount()
		}
		if offset+vc > maxSceneVertices {
			log.Printf("[Assembler] AVISO: teto de %d vértices atingido; cena truncada, %d de %d blocos omitidos",
				maxSceneVertices, s.Len()-i, s.Len())
			break
		}

		translation := [3]float32{float32(b.Pos[0]), float32(b.Pos[1]), float32(b.Pos[2])}
		part, next := Build(elements, offset, translation)
		scene.Structure.Append(&part)
		offset = next
	}

	x, y, z := s.Size()
	scene.Grid = BuildGrid(x, y, z)

	if skipped > 0 {
		log.Printf("[Assembler] %d de %d blocos pulados no rebuild", skipped, s.Len())
	}
	return scene
}
