package app

import (
	"log"
	"path/filepath"
	"strings"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"CraftVision/shared/config"
	"CraftVision/shared/structure"
	"CraftVision/visor/internal/assets"
	"CraftVision/visor/internal/camera"
	"CraftVision/visor/internal/client"
	"CraftVision/visor/internal/meshing"
	"CraftVision/visor/internal/render"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateLoading AppState = iota // Carregando resource pack e estrutura
	StateViewing                 // Visualizando a estrutura
)

// App é a aplicação principal do visor.
type App struct {
	Config *config.Config
	State  AppState

	Cam *camera.Controller

	assetMgr *assets.Manager
	renderer *render.Renderer

	// Estrutura corrente e seu nome de exibição
	current     *structure.Structure
	currentName string

	// Biblioteca de snapshots (SQLite)
	library *structure.Library

	// Live reload. watching chega pela goroutine de leitura do
	// websocket e é lido no loop principal, por isso o mutex.
	netClient *client.NetworkClient
	incoming  chan *structure.Structure
	mu        sync.Mutex
	watching  string

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config:   cfg,
		State:    StateLoading,
		incoming: make(chan *structure.Structure, 1),
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetTargetFPS(a.Config.TargetFPS)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	log.Printf("[App] Janela inicializada: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.renderer = render.NewRenderer(a.Config.WindowWidth, a.Config.WindowHeight)
	a.Cam = camera.New(a.renderer.Projection.FovY(),
		a.Config.CameraSpeed, a.Config.CameraSensitivity, a.Config.ZoomSpeed)

	if err := a.loadAssets(); err != nil {
		log.Printf("[App] ERRO CRÍTICO no resource pack: %v", err)
		rl.CloseWindow()
		return
	}

	a.openLibrary()
	a.loadInitialStructure()
	a.connectServer()

	a.State = StateViewing

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// loadAssets carrega o resource pack e sobe o atlas para a GPU.
func (a *App) loadAssets() error {
	mgr, err := assets.Load(a.Config.ResourceDir)
	if err != nil {
		return err
	}
	a.assetMgr = mgr
	a.renderer.UploadAtlas(mgr.Atlas().Image())
	return nil
}

// openLibrary abre a biblioteca de snapshots. Falha não é fatal: o visor
// funciona sem persistência.
func (a *App) openLibrary() {
	lib, err := structure.OpenLibrary(a.Config.LibraryDir)
	if err != nil {
		log.Printf("[App] Biblioteca indisponível: %v", err)
		return
	}
	a.library = lib
}

// loadInitialStructure carrega a estrutura do arquivo configurado. Se o
// arquivo estiver ausente ou inválido, reabre o snapshot mais recente da
// biblioteca.
func (a *App) loadInitialStructure() {
	s, err := structure.LoadFile(a.Config.StructurePath)
	if err == nil {
		name := strings.TrimSuffix(filepath.Base(a.Config.StructurePath), ".json")
		a.setStructure(s, name)
		return
	}
	log.Printf("[App] Falha ao carregar %s: %v", a.Config.StructurePath, err)

	if a.library == nil {
		return
	}
	names, err := a.library.List()
	if err != nil || len(names) == 0 {
		return
	}
	s, err = a.library.Load(names[0])
	if err != nil {
		log.Printf("[App] Falha ao reabrir %q da biblioteca: %v", names[0], err)
		return
	}
	log.Printf("[App] Reabrindo último snapshot da biblioteca: %q", names[0])
	a.setStructure(s, names[0])
}

// connectServer conecta ao servidor de live reload em background.
func (a *App) connectServer() {
	if a.Config.ServerURL == "" {
		return
	}

	a.netClient = client.NewNetworkClient(a.Config.ServerURL)
	a.netClient.OnStructure = func(s *structure.Structure) {
		// Mantém só o snapshot mais novo se o visor estiver atrasado
		select {
		case a.incoming <- s:
		default:
			select {
			case <-a.incoming:
			default:
			}
			a.incoming <- s
		}
	}
	a.netClient.OnStatus = func(msg, watching string) {
		log.Printf("[App] Servidor: %s (observando %s)", msg, watching)
		a.setWatching(watching)
	}

	go func() {
		if err := a.netClient.Connect(); err != nil {
			log.Printf("[App] Live reload desativado: %v", err)
		}
	}()
}

// setWatching registra o arquivo que o servidor observa. Chamado pela
// goroutine de leitura do websocket.
func (a *App) setWatching(path string) {
	a.mu.Lock()
	a.watching = path
	a.mu.Unlock()
}

// watchingBase devolve o nome de exibição derivado do arquivo observado,
// ou vazio se o servidor ainda não anunciou nenhum.
func (a *App) watchingBase() string {
	a.mu.Lock()
	watching := a.watching
	a.mu.Unlock()

	if watching == "" {
		return ""
	}
	return strings.TrimSuffix(filepath.Base(watching), ".json")
}

// setStructure troca a estrutura corrente: remonta a cena, sobe para a
// GPU, enquadra a câmera e arquiva o snapshot na biblioteca.
func (a *App) setStructure(s *structure.Structure, name string) {
	a.current = s
	a.currentName = name

	scene := meshing.Assemble(s, a.assetMgr)
	a.renderer.SetScene(scene)

	x, y, z := s.Size()
	a.Cam.FitStructure(x, y, z)

	log.Printf("[App] Estrutura %q: %dx%dx%d, %d blocos", name, x, y, z, s.Len())

	if a.library != nil {
		if err := a.library.Save(name, s); err != nil {
			log.Printf("[App] Falha ao arquivar %q: %v", name, err)
		}
	}
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	if rl.IsWindowResized() {
		a.renderer.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}

	// Snapshot novo vindo do servidor
	select {
	case s := <-a.incoming:
		name := a.currentName
		if base := a.watchingBase(); base != "" {
			name = base
		}
		a.setStructure(s, name)
	default:
	}

	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)
	a.handleKeys()
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.netClient != nil {
		a.netClient.Close()
	}
	if a.library != nil {
		a.library.Close()
	}
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
