package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleKeys processa os atalhos de teclado do visor.
func (a *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Recarrega a estrutura do disco sob demanda
	if rl.IsKeyPressed(rl.KeyR) {
		a.loadInitialStructure()
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
}
