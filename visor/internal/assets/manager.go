package assets

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"CraftVision/shared/atlas"
	"CraftVision/shared/structure"
	"CraftVision/visor/internal/meshing"
)

// --- Estruturas JSON ---

// Face define a textura de uma direção de um cuboide. Texture referencia
// uma chave do mapa Textures da definição; Tinted aplica o tint do bloco.
type Face struct {
	Texture string `json:"texture"`
	Tinted  bool   `json:"tinted,omitempty"`
}

// Cuboid é um paralelepípedo do modelo, com from/to em dezesseis avos
// do bloco (0..16) e faces nomeadas por direção.
type Cuboid struct {
	From  []float32       `json:"from"`
	To    []float32       `json:"to"`
	Faces map[string]Face `json:"faces"`
}

// BlockDefinition é a regra que conecta um estado de bloco ao seu modelo.
// When filtra por propriedades, com "*" aceitando qualquer valor; uma
// definição sem elements vira um cubo cheio com a textura "all".
type BlockDefinition struct {
	Name     string            `json:"name"`
	When     map[string]string `json:"when,omitempty"`
	Textures map[string]string `json:"textures"`
	Tint     []float32         `json:"tint,omitempty"`
	Elements []Cuboid          `json:"elements,omitempty"`
	Comment  string            `json:"comment,omitempty"`
}

// BlocksConfig é o root do blocks.json
type BlocksConfig struct {
	Blocks []BlockDefinition `json:"blocks"`
}

// --- Manager ---

// resolved guarda o resultado (ou a falha) da resolução de um estado,
// para o rebuild não repetir matching nem reconstruir geometria.
type resolved struct {
	elements []meshing.MeshElement
	err      error
}

// Manager é a estrutura central em memória que responde às consultas do
// assembler: carrega o resource pack, empacota o atlas e resolve estados
// de bloco em elementos de malha.
type Manager struct {
	defs  []BlockDefinition
	atlas *atlas.Atlas
	cache map[string]resolved
}

// Load carrega o resource pack de um diretório: blocks.json na raiz e as
// texturas PNG em textures/.
func Load(packDir string) (*Manager, error) {
	data, err := os.ReadFile(filepath.Join(packDir, "blocks.json"))
	if err != nil {
		return nil, fmt.Errorf("falha ao ler blocks.json: %w", err)
	}
	var conf BlocksConfig
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("falha ao parsear blocks.json: %w", err)
	}

	images, err := loadTextures(filepath.Join(packDir, "textures"))
	if err != nil {
		return nil, err
	}

	m, err := New(conf.Blocks, images)
	if err != nil {
		return nil, err
	}
	log.Printf("[Assets] resource pack carregado: %d definições, %d texturas", len(conf.Blocks), len(images))
	return m, nil
}

// New monta o gerenciador a partir de definições e texturas já em memória.
func New(defs []BlockDefinition, images map[string]*image.RGBA) (*Manager, error) {
	atl, err := atlas.Build(images)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar atlas: %w", err)
	}
	return &Manager{
		defs:  defs,
		atlas: atl,
		cache: make(map[string]resolved),
	}, nil
}

// loadTextures lê todos os PNGs de um diretório, nomeados pelo arquivo
// sem extensão.
func loadTextures(dir string) (map[string]*image.RGBA, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar texturas: %w", err)
	}

	images := make(map[string]*image.RGBA)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir %s: %w", entry.Name(), err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("falha ao decodificar %s: %w", entry.Name(), err)
		}

		rgba, ok := img.(*image.RGBA)
		if !ok {
			rgba = image.NewRGBA(img.Bounds())
			draw.Draw(rgba, img.Bounds(), img, img.Bounds().Min, draw.Src)
		}
		images[strings.TrimSuffix(entry.Name(), ".png")] = rgba
	}
	return images, nil
}

// Atlas expõe o atlas empacotado para upload na GPU.
func (m *Manager) Atlas() *atlas.Atlas {
	return m.atlas
}

// --- Matching ---

// matchWhen compara as propriedades de um estado contra o filtro de uma
// definição. O wildcard '*' em qualquer valor aceita qualquer coisa;
// propriedade ausente do estado só casa com wildcard.
func matchWhen(when map[string]string, st structure.BlockState) bool {
	for prop, want := range when {
		if want == "*" {
			continue
		}
		got, ok := st.Properties[prop]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// specificityScore calcula a "especificidade" de um filtro: quantas
// propriedades NÃO são wildcard. Definição sem filtro tem score zero.
func specificityScore(when map[string]string) int {
	score := 0
	for _, v := range when {
		if v != "*" {
			score++
		}
	}
	return score
}

// lookup encontra a definição mais específica para um estado.
// Devolve nil se nenhuma casar.
func (m *Manager) lookup(st structure.BlockState) *BlockDefinition {
	var bestMatch *BlockDefinition
	bestScore := -1

	for i := range m.defs {
		def := &m.defs[i]
		if def.Name != st.Name {
			continue
		}
		if !matchWhen(def.When, st) {
			continue
		}
		if score := specificityScore(def.When); score > bestScore {
			bestScore = score
			bestMatch = def
		}
	}
	return bestMatch
}

// --- ModelProvider ---

// Resolve implementa meshing.ModelProvider: devolve os elementos de malha
// de um estado, já no espaço UV do atlas. O resultado (sucesso ou falha)
// fica cacheado por estado, então cada estado é resolvido uma única vez
// por vida do pack.
func (m *Manager) Resolve(st structure.BlockState) ([]meshing.MeshElement, error) {
	key := st.Key()
	if r, ok := m.cache[key]; ok {
		return r.elements, r.err
	}

	def := m.lookup(st)
	if def == nil {
		err := fmt.Errorf("%w: %s", meshing.ErrUnknownBlock, key)
		m.cache[key] = resolved{err: err}
		return nil, err
	}

	elements, err := buildElements(def, m.atlas)
	m.cache[key] = resolved{elements: elements, err: err}
	return elements, err
}
