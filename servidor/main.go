package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"CraftVision/shared/proto/cvnet"
	"CraftVision/shared/structure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub gerencia as conexões WebSocket ativas e replica cada snapshot novo
// para todos os visores conectados.
type Hub struct {
	clients   map[*websocket.Conn]*sync.Mutex
	broadcast chan []byte
	register  chan *websocket.Conn
	mu        sync.Mutex

	// Último snapshot serializado, para entregar a quem conectar depois
	lastSnapshot []byte
	watching     string
}

func newHub(watching string) *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]*sync.Mutex),
		broadcast: make(chan []byte, 64),
		register:  make(chan *websocket.Conn),
		watching:  watching,
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			snapshot := h.lastSnapshot
			h.mu.Unlock()
			log.Printf("[Hub] Cliente registrado: %s", client.RemoteAddr())

			h.sendStatus(client)
			if snapshot != nil {
				if err := h.writeSafe(client, snapshot); err != nil {
					log.Printf("[Hub] Falha no snapshot inicial: %v", err)
				}
			}

		case message := <-h.broadcast:
			h.mu.Lock()
			h.lastSnapshot = message
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.BinaryMessage, message)
				target.lock.Unlock()
				if err != nil {
					log.Printf("[Hub] Erro ao enviar para %s: %v", target.conn.RemoteAddr(), err)
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
			}
		}
	}
}

// writeSafe garante que apenas uma goroutine escreva por conexão.
func (h *Hub) writeSafe(conn *websocket.Conn, data []byte) error {
	h.mu.Lock()
	lock, ok := h.clients[conn]
	h.mu.Unlock()
	if !ok {
		return nil
	}

	lock.Lock()
	defer lock.Unlock()
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

func (h *Hub) sendStatus(conn *websocket.Conn) {
	status := &cvnet.StatusMessage{Message: "observando", Watching: h.watching}
	env := &cvnet.Envelope{Type: cvnet.TypeStatus, Payload: status.Marshal()}
	if err := h.writeSafe(conn, env.Marshal()); err != nil {
		log.Printf("[Hub] Falha ao enviar status: %v", err)
	}
}

// BroadcastStructure serializa um snapshot e replica para todos.
func (h *Hub) BroadcastStructure(s *structure.Structure) {
	msg := cvnet.FromStructure(s)
	env := &cvnet.Envelope{Type: cvnet.TypeStructure, Payload: msg.Marshal()}
	h.broadcast <- env.Marshal()
}

// watchFile observa o mtime do arquivo de estrutura e dispara um
// broadcast a cada mudança válida. Arquivo quebrado no meio de um save é
// só logado; o último snapshot bom continua valendo.
func watchFile(path string, interval time.Duration, hub *Hub) {
	var lastMod time.Time

	for {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("[Watcher] %s indisponível: %v", path, err)
			time.Sleep(interval)
			continue
		}

		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()

			s, err := structure.LoadFile(path)
			if err != nil {
				log.Printf("[Watcher] %s inválido: %v", path, err)
			} else {
				x, y, z := s.Size()
				log.Printf("[Watcher] %s mudou: %dx%dx%d, %d blocos", path, x, y, z, s.Len())
				hub.BroadcastStructure(s)
			}
		}

		time.Sleep(interval)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "Endereço de escuta do servidor")
	file := flag.String("file", "structures/casa.json", "Arquivo de estrutura observado")
	interval := flag.Duration("interval", 500*time.Millisecond, "Intervalo de verificação do arquivo")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Printf("[Servidor] CraftVision observando %s em %s", *file, *addr)

	hub := newHub(*file)
	go hub.run()
	go watchFile(*file, *interval, hub)

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("[Servidor] Upgrade falhou: %v", err)
			return
		}
		hub.register <- conn

		// Drena mensagens do cliente só para detectar a desconexão
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					hub.mu.Lock()
					delete(hub.clients, conn)
					hub.mu.Unlock()
					conn.Close()
					return
				}
			}
		}()
	})

	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("[Servidor] %v", err)
	}
}
