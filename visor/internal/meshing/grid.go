package meshing

// Cores do overlay de grid.
var (
	axisXColor = [3]float32{0.9, 0.2, 0.2}
	axisZColor = [3]float32{0.2, 0.4, 0.9}
	gridColor  = [3]float32{0.45, 0.45, 0.45}
)

// BuildGrid gera o overlay de debug para um footprint x×y×z, na ordem:
// eixos, caixa envolvente, linhas internas do chão.
//
// São dois eixos coloridos no chão (X em vermelho, Z em azul; o eixo Y
// não é emitido), oito arestas da caixa (quatro verticais e quatro do
// topo) e x+z linhas internas fechando o grid do chão junto com os
// eixos. Total de segmentos: 10 + x + z.
func BuildGrid(x, y, z int) GridBuffers {
	fx, fy, fz := float32(x), float32(y), float32(z)

	var g GridBuffers

	// Eixos no chão, partindo da origem.
	g.addLine(0, 0, 0, fx, 0, 0, axisXColor[0], axisXColor[1], axisXColor[2])
	g.addLine(0, 0, 0, 0, 0, fz, axisZColor[0], axisZColor[1], axisZColor[2])

	// Verticais da caixa.
	g.addLine(0, 0, 0, 0, fy, 0, gridColor[0], gridColor[1], gridColor[2])
	g.addLine(fx, 0, 0, fx, fy, 0, gridColor[0], gridColor[1], gridColor[2])
	g.addLine(0, 0, fz, 0, fy, fz, gridColor[0], gridColor[1], gridColor[2])
	g.addLine(fx, 0, fz, fx, fy, fz, gridColor[0], gridColor[1], gridColor[2])

	// Arestas do topo.
	g.addLine(0, fy, 0, fx, fy, 0, gridColor[0], gridColor[1], gridColor[2])
	g.addLine(0, fy, fz, fx, fy, fz, gridColor[0], gridColor[1], gridColor[2])
	g.addLine(0, fy, 0, 0, fy, fz, gridColor[0], gridColor[1], gridColor[2])
	g.addLine(fx, fy, 0, fx, fy, fz, gridColor[0], gridColor[1], gridColor[2])

	// Linhas internas do chão. Começam em 1: as bordas em x=0 e z=0 são
	// os próprios eixos; as bordas opostas entram aqui.
	for gx := 1; gx <= x; gx++ {
		g.addLine(float32(gx), 0, 0, float32(gx), 0, fz, gridColor[0], gridColor[1], gridColor[2])
	}
	for gz := 1; gz <= z; gz++ {
		g.addLine(0, 0, float32(gz), fx, 0, float32(gz), gridColor[0], gridColor[1], gridColor[2])
	}

	return g
}
