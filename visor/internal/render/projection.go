package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Parâmetros fixos da câmera de perspectiva.
const (
	defaultFovY = 70.0
	nearPlane   = 0.1
	farPlane    = 100.0
)

// Projection guarda os parâmetros de projeção perspectiva do visor.
//
// No caminho de desenho quem monta a projeção é o próprio raylib, a
// partir do Fovy da Camera3D e do tamanho corrente da tela, com os
// planos de corte padrão dele. FovY é a parte consumida pelo desenho;
// Matrix é a forma analítica da mesma projeção, usada em testes e em
// cálculos fora da GPU (picking, enquadramento).
type Projection struct {
	fovY   float32
	near   float32
	far    float32
	width  int32
	height int32
}

// NewProjection cria a projeção para o viewport inicial.
func NewProjection(width, height int32) *Projection {
	p := &Projection{fovY: defaultFovY, near: nearPlane, far: farPlane}
	p.SetViewport(width, height)
	return p
}

// SetViewport atualiza as dimensões do viewport. Chamado no resize.
func (p *Projection) SetViewport(width, height int32) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	p.width = width
	p.height = height
}

// Aspect devolve a razão largura/altura corrente.
func (p *Projection) Aspect() float32 {
	return float32(p.width) / float32(p.height)
}

// FovY devolve o campo de visão vertical em graus, como a Camera3D espera.
func (p *Projection) FovY() float32 {
	return p.fovY
}

// Matrix devolve a matriz de projeção perspectiva corrente.
func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.fovY), p.Aspect(), p.near, p.far)
}
