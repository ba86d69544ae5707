package structure

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document é a forma persistida/trocada de uma estrutura: dimensões,
// paleta ordenada de estados e blocos referenciando a paleta por índice.
type Document struct {
	Size    [3]int       `json:"size"`
	Palette []BlockState `json:"palette"`
	Blocks  []DocBlock   `json:"blocks"`
}

// DocBlock referencia um estado da paleta pelo índice.
type DocBlock struct {
	Pos   [3]int `json:"pos"`
	State int    `json:"state"`
}

// Decode valida o documento contra o schema e materializa a Structure.
func Decode(data []byte) (*Structure, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("documento de estrutura inválido: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("falha ao parsear documento: %w", err)
	}
	return doc.Build()
}

// Build converte o documento em Structure, resolvendo a paleta.
func (d *Document) Build() (*Structure, error) {
	blocks := make([]PlacedBlock, 0, len(d.Blocks))
	for i, b := range d.Blocks {
		if b.State < 0 || b.State >= len(d.Palette) {
			return nil, fmt.Errorf("bloco %d referencia paleta inexistente: %d", i, b.State)
		}
		blocks = append(blocks, PlacedBlock{Pos: b.Pos, State: d.Palette[b.State]})
	}
	return New(d.Size, blocks)
}

// Encode serializa a estrutura de volta ao formato de documento,
// reconstruindo a paleta por ordem de primeira aparição.
func Encode(s *Structure) ([]byte, error) {
	x, y, z := s.Size()
	doc := Document{Size: [3]int{x, y, z}}

	index := make(map[string]int)
	for _, b := range s.Blocks() {
		key := b.State.Key()
		idx, ok := index[key]
		if !ok {
			idx = len(doc.Palette)
			index[key] = idx
			doc.Palette = append(doc.Palette, b.State)
		}
		doc.Blocks = append(doc.Blocks, DocBlock{Pos: b.Pos, State: idx})
	}

	return json.MarshalIndent(&doc, "", "  ")
}

// LoadFile carrega uma estrutura de um arquivo JSON.
func LoadFile(path string) (*Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	return Decode(data)
}

// SaveFile grava a estrutura em disco no formato de documento.
func SaveFile(s *Structure, path string) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
