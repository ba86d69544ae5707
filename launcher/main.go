package main

import (
	"flag"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Launcher de conveniência: sobe o servidor de live reload e abre o visor
// já apontando para ele.
func main() {
	file := flag.String("file", "structures/casa.json", "Arquivo de estrutura observado")
	addr := flag.String("addr", ":8080", "Endereço do servidor")
	flag.Parse()

	fmt.Println("CraftVision Launcher")

	serverBin := binName("servidor")
	visorBin := binName("visor")

	fmt.Println("[1/2] Iniciando servidor...")
	serverCmd := exec.Command(serverBin, "-addr", *addr, "-file", *file)
	if err := serverCmd.Start(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	// Dá tempo do servidor abrir a porta antes do visor tentar conectar
	time.Sleep(1 * time.Second)

	fmt.Println("[2/2] Abrindo visor...")
	visorPath, err := filepath.Abs(visorBin)
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do visor: %v", err)
	}

	visorCmd := exec.Command(visorPath, "-server", "ws://localhost"+*addr+"/ws", "-structure", *file)
	if err := visorCmd.Start(); err != nil {
		serverCmd.Process.Kill()
		log.Fatalf("Erro ao abrir visor em %s: %v", visorPath, err)
	}

	fmt.Println("CraftVision iniciado. Edite o arquivo de estrutura para ver o live reload.")

	// Quando o visor fecha, derruba o servidor junto
	visorCmd.Wait()
	serverCmd.Process.Kill()
}

func binName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return "./" + name
}
