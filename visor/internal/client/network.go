package client

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"CraftVision/shared/proto/cvnet"
	"CraftVision/shared/structure"
)

// NetworkClient lida com a comunicação com o servidor de live reload:
// conecta, lê envelopes e entrega snapshots de estrutura aos callbacks.
type NetworkClient struct {
	conn      *websocket.Conn
	url       string
	connected bool
	mu        sync.RWMutex

	// Callbacks para o App
	OnStructure func(s *structure.Structure)
	OnStatus    func(msg string, watching string)
}

func NewNetworkClient(url string) *NetworkClient {
	return &NetworkClient{url: url}
}

// Connect tenta o handshake algumas vezes antes de desistir, para o visor
// poder subir antes do servidor.
func (c *NetworkClient) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}

	var err error
	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		log.Printf("[Network] Tentativa de conexão %d/%d em %s...", i+1, maxRetries, c.url)
		c.conn, _, err = dialer.Dial(c.url, nil)
		if err == nil {
			break
		}
		log.Printf("[Network] Servidor ainda não está pronto: %v. Aguardando...", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Printf("[Network] ERRO CRÍTICO após %d tentativas: %v", maxRetries, err)
		return err
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	go c.readLoop()
	return nil
}

func (c *NetworkClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Close encerra a conexão; o readLoop termina sozinho em seguida.
func (c *NetworkClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.connected = false
}

func (c *NetworkClient) readLoop() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		if c.conn != nil {
			c.conn.Close()
		}
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[Network] Conexão perdida: %v", err)
			break
		}

		var env cvnet.Envelope
		if err := env.Unmarshal(message); err != nil {
			log.Printf("[Network] Erro ao desempacotar envelope: %v", err)
			continue
		}

		c.handleMessage(&env)
	}
}

func (c *NetworkClient) handleMessage(env *cvnet.Envelope) {
	switch env.Type {
	case cvnet.TypeStatus:
		var status cvnet.StatusMessage
		if err := status.Unmarshal(env.Payload); err != nil {
			log.Printf("[Network] Status malformado: %v", err)
			return
		}
		if c.OnStatus != nil {
			c.OnStatus(status.Message, status.Watching)
		}

	case cvnet.TypeStructure:
		var msg cvnet.StructureMessage
		if err := msg.Unmarshal(env.Payload); err != nil {
			log.Printf("[Network] Estrutura malformada: %v", err)
			return
		}
		s, err := msg.Structure()
		if err != nil {
			log.Printf("[Network] Estrutura inválida: %v", err)
			return
		}
		log.Printf("[Network] Estrutura recebida: %d blocos", s.Len())
		if c.OnStructure != nil {
			c.OnStructure(s)
		}

	default:
		log.Printf("[Network] Tipo de mensagem desconhecido: %d", env.Type)
	}
}
