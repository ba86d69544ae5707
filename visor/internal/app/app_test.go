package app

import (
	"fmt"
	"sync"
	"testing"

	"CraftVision/shared/config"
)

func TestWatchingBase(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"sem anúncio", "", ""},
		{"caminho relativo", "structures/torre.json", "torre"},
		{"só o nome", "casa.json", "casa"},
		{"sem extensão", "structures/rascunho", "rascunho"},
	}

	for _, tt := range tests {
		a := New(config.DefaultConfig())
		a.setWatching(tt.path)
		if got := a.watchingBase(); got != tt.want {
			t.Errorf("%s: watchingBase = %q, esperava %q", tt.name, got, tt.want)
		}
	}
}

func TestWatchingConcurrentAccess(t *testing.T) {
	// O caminho observado chega pela goroutine do websocket enquanto o
	// loop principal lê o nome de exibição. Rodar com -race cobre a
	// exclusão mútua.
	a := New(config.DefaultConfig())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			a.setWatching(fmt.Sprintf("structures/snapshot_%d.json", i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = a.watchingBase()
		}
	}()
	wg.Wait()

	if got := a.watchingBase(); got != "snapshot_999" {
		t.Errorf("watchingBase final = %q, esperava %q", got, "snapshot_999")
	}
}
