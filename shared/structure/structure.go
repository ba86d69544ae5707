package structure

import (
	"fmt"
	"sort"
	"strings"
)

// BlockState identifica a variante visual de um bloco: nome do tipo +
// propriedades (ex: "minecraft:oak_log" com axis=y). Igualdade é estrutural.
type BlockState struct {
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Equals compara dois estados estruturalmente.
func (s BlockState) Equals(o BlockState) bool {
	if s.Name != o.Name || len(s.Properties) != len(o.Properties) {
		return false
	}
	for k, v := range s.Properties {
		if ov, ok := o.Properties[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Key devolve a forma canônica "nome[k=v,k=v]" com propriedades ordenadas.
// Usada como chave de paleta e de consulta no resource pack.
func (s BlockState) Key() string {
	if len(s.Properties) == 0 {
		return s.Name
	}
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.Properties[k])
	}
	b.WriteByte(']')
	return b.String()
}

// PlacedBlock é um bloco posicionado dentro da estrutura.
type PlacedBlock struct {
	Pos   [3]int
	State BlockState
}

// Structure é um snapshot imutável: dimensões inteiras + sequência ordenada
// de blocos posicionados. A ordem dos blocos é estável (ordem de declaração)
// e é a ordem que o assembler percorre ao fundir buffers.
type Structure struct {
	size   [3]int
	blocks []PlacedBlock
}

// New valida dimensões e posições e constrói o snapshot.
func New(size [3]int, blocks []PlacedBlock) (*Structure, error) {
	for i, d := range size {
		if d < 1 {
			return nil, fmt.Errorf("dimensão %d inválida: %d", i, d)
		}
	}
	for i, b := range blocks {
		for axis := 0; axis < 3; axis++ {
			if b.Pos[axis] < 0 || b.Pos[axis] >= size[axis] {
				return nil, fmt.Errorf("bloco %d fora dos limites: pos=%v size=%v", i, b.Pos, size)
			}
		}
		if b.State.Name == "" {
			return nil, fmt.Errorf("bloco %d sem nome de estado", i)
		}
	}
	cp := make([]PlacedBlock, len(blocks))
	copy(cp, blocks)
	return &Structure{size: size, blocks: cp}, nil
}

// Size devolve as dimensões (X, Y, Z).
func (s *Structure) Size() (int, int, int) {
	return s.size[0], s.size[1], s.size[2]
}

// Blocks devolve a sequência de blocos na ordem estável de declaração.
// O slice é compartilhado; chamadores não devem modificá-lo.
func (s *Structure) Blocks() []PlacedBlock {
	return s.blocks
}

// Len devolve a quantidade de blocos posicionados.
func (s *Structure) Len() int {
	return len(s.blocks)
}
