package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"image"
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"CraftVision/visor/internal/meshing"
)

// Renderer é o dono dos recursos de GPU do visor: o shader da estrutura,
// a textura do atlas e o modelo corrente. A malha sobe uma vez por
// rebuild; o frame só desenha.
type Renderer struct {
	Projection *Projection

	StructureShader rl.Shader

	atlasTexture rl.Texture2D
	hasAtlas     bool

	model    rl.Model
	hasModel bool

	grid meshing.GridBuffers
}

// NewRenderer cria o renderizador e compila o shader da estrutura, com as
// localizações de uniform resolvidas uma única vez na carga.
func NewRenderer(width, height int32) *Renderer {
	r := &Renderer{
		Projection: NewProjection(width, height),
	}

	if rl.IsWindowReady() {
		r.StructureShader = rl.LoadShaderFromMemory(structureVertexShader, structureFragmentShader)

		// Locs é um ponteiro bruto (*int32) para um array em C
		locs := unsafe.Slice(r.StructureShader.Locs, 32)
		locs[0] = rl.GetShaderLocation(r.StructureShader, "texture0")    // SHADER_LOC_MAP_DIFFUSE
		locs[12] = rl.GetShaderLocation(r.StructureShader, "colDiffuse") // SHADER_LOC_COLOR_DIFFUSE
	}

	return r
}

// UploadAtlas sobe a imagem do atlas para a GPU com filtro point, para os
// tiles não vazarem uns nos outros.
func (r *Renderer) UploadAtlas(img *image.RGBA) {
	if !rl.IsWindowReady() {
		return
	}
	if r.hasAtlas {
		rl.UnloadTexture(r.atlasTexture)
	}

	rlImg := rl.NewImageFromImage(img)
	r.atlasTexture = rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(r.atlasTexture, rl.FilterPoint)
	r.hasAtlas = true

	log.Printf("[Renderer] atlas %dx%d na GPU", r.atlasTexture.Width, r.atlasTexture.Height)
}

// SetScene troca a cena corrente: descarrega o modelo antigo, sobe a nova
// malha e guarda o grid. Cena vazia só limpa.
func (r *Renderer) SetScene(scene meshing.Scene) {
	if !rl.IsWindowReady() {
		return
	}

	if r.hasModel {
		rl.UnloadModel(r.model)
		r.hasModel = false
	}
	r.grid = scene.Grid

	if scene.Structure.VertexCount() == 0 {
		return
	}

	mesh := r.buffersToMesh(scene.Structure)
	rl.UploadMesh(&mesh, false)
	r.freeMeshRAM(&mesh)

	r.model = rl.LoadModelFromMesh(mesh)
	if r.model.MaterialCount > 0 {
		materials := unsafe.Slice(r.model.Materials, r.model.MaterialCount)
		materials[0].Shader = r.StructureShader
		if r.hasAtlas {
			rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, r.atlasTexture)
		}
	}
	r.hasModel = true

	log.Printf("[Renderer] cena na GPU: %d vértices, %d triângulos",
		scene.Structure.VertexCount(), len(scene.Structure.Index)/3)
}

// buffersToMesh converte os buffers planos em uma malha Raylib indexada,
// com os arrays copiados para memória C.
func (r *Renderer) buffersToMesh(b meshing.StructureBuffers) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(b.VertexCount())
	mesh.TriangleCount = int32(len(b.Index) / 3)

	if len(b.Position) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&b.Position[0]), len(b.Position)*4))
	}
	if len(b.TexCoord) > 0 {
		mesh.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&b.TexCoord[0]), len(b.TexCoord)*4))
	}
	if len(b.TintColor) > 0 {
		colors := tintToRGBA(b.TintColor)
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&colors[0]), len(colors)))
	}
	if len(b.Index) > 0 {
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&b.Index[0]), len(b.Index)*2))
	}
	return mesh
}

// tintToRGBA expande o tint RGB float para as cores RGBA de 8 bits da malha.
func tintToRGBA(tints []float32) []uint8 {
	out := make([]uint8, 0, len(tints)/3*4)
	for i := 0; i+2 < len(tints); i += 3 {
		out = append(out,
			uint8(tints[i]*255),
			uint8(tints[i+1]*255),
			uint8(tints[i+2]*255),
			255)
	}
	return out
}

func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a cópia em RAM após o upload para a GPU.
func (r *Renderer) freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
	if mesh.Colors != nil {
		C.free(unsafe.Pointer(mesh.Colors))
		mesh.Colors = nil
	}
	if mesh.Indices != nil {
		C.free(unsafe.Pointer(mesh.Indices))
		mesh.Indices = nil
	}
}

// Resize mantém a projeção analítica em sincronia com a janela. O
// desenho em si já acompanha o tamanho da tela via raylib.
func (r *Renderer) Resize(width, height int32) {
	r.Projection.SetViewport(width, height)
}

// Draw desenha a cena corrente dentro de um BeginMode3D já aberto:
// primeiro o grid opaco, depois a estrutura texturizada.
func (r *Renderer) Draw(showGrid bool) {
	if showGrid {
		r.drawGrid()
	}

	if r.hasModel && r.model.MeshCount > 0 {
		rl.DrawModel(r.model, rl.Vector3{}, 1.0, rl.White)
	}
}

// drawGrid desenha os segmentos do overlay com a cor de cada vértice.
func (r *Renderer) drawGrid() {
	for i := 0; i+5 < len(r.grid.Position); i += 6 {
		start := rl.Vector3{X: r.grid.Position[i], Y: r.grid.Position[i+1], Z: r.grid.Position[i+2]}
		end := rl.Vector3{X: r.grid.Position[i+3], Y: r.grid.Position[i+4], Z: r.grid.Position[i+5]}
		c := rl.Color{
			R: uint8(r.grid.Color[i] * 255),
			G: uint8(r.grid.Color[i+1] * 255),
			B: uint8(r.grid.Color[i+2] * 255),
			A: 255,
		}
		rl.DrawLine3D(start, end, c)
	}
}

// Unload descarrega todos os recursos de GPU.
func (r *Renderer) Unload() {
	if r.hasModel {
		rl.UnloadModel(r.model)
		r.hasModel = false
	}
	if r.hasAtlas {
		rl.UnloadTexture(r.atlasTexture)
		r.hasAtlas = false
	}
	if r.StructureShader.ID != 0 {
		rl.UnloadShader(r.StructureShader)
	}
}
