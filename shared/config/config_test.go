package config

import (
	"encoding/json"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Errorf("janela padrão = %dx%d, esperava 1280x720", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Fullscreen {
		t.Error("Fullscreen deveria começar desligado")
	}
	if cfg.StructurePath == "" || cfg.ResourceDir == "" {
		t.Error("caminhos de conteúdo padrão não podem ser vazios")
	}
	if !cfg.ShowGrid {
		t.Error("ShowGrid deveria começar ligado")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fullscreen = true
	cfg.WindowWidth = 1920
	cfg.ServerURL = "ws://localhost:8080/ws"

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	loaded := DefaultConfig()
	if err := json.Unmarshal(data, loaded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if !loaded.Fullscreen {
		t.Error("Fullscreen não sobreviveu ao round-trip")
	}
	if loaded.WindowWidth != 1920 {
		t.Errorf("WindowWidth = %d, esperava 1920", loaded.WindowWidth)
	}
	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("ServerURL = %q, esperava %q", loaded.ServerURL, cfg.ServerURL)
	}
}
