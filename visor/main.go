package main

import (
	"flag"
	"log"
	"runtime"

	"CraftVision/shared/config"
	"CraftVision/visor/internal/app"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	structurePath := flag.String("structure", "", "Arquivo de estrutura a carregar")
	resourceDir := flag.String("resources", "", "Diretório do resource pack")
	serverURL := flag.String("server", "", "URL do servidor de live reload (ex: ws://localhost:8080/ws)")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("[CraftVision] Visor de estruturas v0.1.0")

	cfg := config.Load()

	// Flags de linha de comando sobrescrevem o config salvo
	if *structurePath != "" {
		cfg.StructurePath = *structurePath
	}
	if *resourceDir != "" {
		cfg.ResourceDir = *resourceDir
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	application := app.New(cfg)
	application.Run()
}
