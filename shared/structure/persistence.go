package structure

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SnapshotModel representa o esquema do banco para um snapshot de estrutura.
type SnapshotModel struct {
	Name                string `gorm:"primaryKey"`
	SizeX, SizeY, SizeZ int
	BlockCount          int
	Data                []byte    // Documento JSON comprimido com zstd
	UpdatedAt           time.Time // Controle interno do GORM
}

// LibraryMetadata armazena informações globais da biblioteca no banco.
type LibraryMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// Library é a biblioteca local de estruturas: snapshots nomeados em SQLite.
type Library struct {
	DB  *gorm.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// OpenLibrary abre (ou cria) o banco SQLite da biblioteca e roda migrações.
func OpenLibrary(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "library.cv")

	// Logger silencioso em produção
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotModel{}, &LibraryMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	db.Save(&LibraryMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Biblioteca] Banco SQLite aberto: %s", dbPath)
	return &Library{DB: db, enc: enc, dec: dec}, nil
}

// Save grava (upsert) um snapshot nomeado da estrutura.
func (l *Library) Save(name string, s *Structure) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	x, y, z := s.Size()
	model := SnapshotModel{
		Name:       name,
		SizeX:      x,
		SizeY:      y,
		SizeZ:      z,
		BlockCount: s.Len(),
		Data:       l.enc.EncodeAll(data, nil),
	}

	if err := l.DB.Save(&model).Error; err != nil {
		log.Printf("[Biblioteca] ERRO ao salvar snapshot %q: %v", name, err)
		return err
	}
	return nil
}

// Load carrega um snapshot nomeado do banco.
func (l *Library) Load(name string) (*Structure, error) {
	var model SnapshotModel
	if err := l.DB.First(&model, "name = ?", name).Error; err != nil {
		return nil, err
	}

	data, err := l.dec.DecodeAll(model.Data, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q corrompido: %w", name, err)
	}
	return Decode(data)
}

// List devolve os nomes dos snapshots, mais recente primeiro.
func (l *Library) List() ([]string, error) {
	var names []string
	err := l.DB.Model(&SnapshotModel{}).
		Order("updated_at desc").
		Pluck("name", &names).Error
	return names, err
}

// Close libera os recursos de compressão e a conexão.
func (l *Library) Close() error {
	l.enc.Close()
	l.dec.Close()
	sqlDB, err := l.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
