// Package cvnet define o protocolo binário entre o servidor de live reload
// e o visor, sobre o wire format do protobuf (encoding/protowire).
package cvnet

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"CraftVision/shared/structure"
)

// Tipos de mensagem do envelope.
const (
	TypeStatus    = 1
	TypeStructure = 2
)

// Envelope embrulha qualquer mensagem do protocolo com seu tipo.
type Envelope struct {
	Type    uint64
	Payload []byte
}

func (e *Envelope) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, e.Type)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, e.Payload)
	return b
}

func (e *Envelope) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			e.Type = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			e.Payload = append([]byte(nil), v...)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// StatusMessage informa o estado do servidor ao visor.
type StatusMessage struct {
	Message  string
	Watching string // Caminho do arquivo observado
}

func (m *StatusMessage) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, m.Message)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, m.Watching)
	return b
}

func (m *StatusMessage) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Message = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			m.Watching = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// StructureMessage carrega um snapshot completo de estrutura.
type StructureMessage struct {
	SizeX, SizeY, SizeZ uint64
	Palette             []StateEntry
	Blocks              []BlockEntry
}

// StateEntry é um estado da paleta no protocolo.
type StateEntry struct {
	Name  string
	Props []PropEntry
}

// PropEntry é um par propriedade=valor.
type PropEntry struct {
	Key, Value string
}

// BlockEntry é um bloco posicionado referenciando a paleta por índice.
type BlockEntry struct {
	X, Y, Z uint64
	State   uint64
}

func (p *PropEntry) marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, p.Key)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, p.Value)
	return b
}

func (p *PropEntry) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			p.Key = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			p.Value = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

func (s *StateEntry) marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, s.Name)
	for i := range s.Props {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, s.Props[i].marshal())
	}
	return b
}

func (s *StateEntry) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			s.Name = v
			data = data[n:]
		case 2:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			var p PropEntry
			if err := p.unmarshal(v); err != nil {
				return err
			}
			s.Props = append(s.Props, p)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

func (b *BlockEntry) marshal() []byte {
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, b.X)
	buf = protowire.AppendTag(buf, 2, protowire.VarintType)
	buf = protowire.AppendVarint(buf, b.Y)
	buf = protowire.AppendTag(buf, 3, protowire.VarintType)
	buf = protowire.AppendVarint(buf, b.Z)
	buf = protowire.AppendTag(buf, 4, protowire.VarintType)
	buf = protowire.AppendVarint(buf, b.State)
	return buf
}

func (b *BlockEntry) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		v, vn := protowire.ConsumeVarint(data)
		switch num {
		case 1, 2, 3, 4:
			if vn < 0 {
				return protowire.ParseError(vn)
			}
			switch num {
			case 1:
				b.X = v
			case 2:
				b.Y = v
			case 3:
				b.Z = v
			case 4:
				b.State = v
			}
			data = data[vn:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

func (m *StructureMessage) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, m.SizeX)
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, m.SizeY)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, m.SizeZ)
	for i := range m.Palette {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Palette[i].marshal())
	}
	for i := range m.Blocks {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Blocks[i].marshal())
	}
	return b
}

func (m *StructureMessage) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		switch num {
		case 1, 2, 3:
			v, vn := protowire.ConsumeVarint(data)
			if vn < 0 {
				return protowire.ParseError(vn)
			}
			switch num {
			case 1:
				m.SizeX = v
			case 2:
				m.SizeY = v
			case 3:
				m.SizeZ = v
			}
			data = data[vn:]
		case 4:
			v, vn := protowire.ConsumeBytes(data)
			if vn < 0 {
				return protowire.ParseError(vn)
			}
			var s StateEntry
			if err := s.unmarshal(v); err != nil {
				return err
			}
			m.Palette = append(m.Palette, s)
			data = data[vn:]
		case 5:
			v, vn := protowire.ConsumeBytes(data)
			if vn < 0 {
				return protowire.ParseError(vn)
			}
			var blk BlockEntry
			if err := blk.unmarshal(v); err != nil {
				return err
			}
			m.Blocks = append(m.Blocks, blk)
			data = data[vn:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return nil
}

// FromStructure converte um snapshot para a mensagem do protocolo.
func FromStructure(s *structure.Structure) *StructureMessage {
	x, y, z := s.Size()
	m := &StructureMessage{SizeX: uint64(x), SizeY: uint64(y), SizeZ: uint64(z)}

	index := make(map[string]uint64)
	for _, b := range s.Blocks() {
		key := b.State.Key()
		idx, ok := index[key]
		if !ok {
			idx = uint64(len(m.Palette))
			index[key] = idx
			entry := StateEntry{Name: b.State.Name}
			for k, v := range b.State.Properties {
				entry.Props = append(entry.Props, PropEntry{Key: k, Value: v})
			}
			m.Palette = append(m.Palette, entry)
		}
		m.Blocks = append(m.Blocks, BlockEntry{
			X: uint64(b.Pos[0]), Y: uint64(b.Pos[1]), Z: uint64(b.Pos[2]),
			State: idx,
		})
	}
	return m
}

// Structure materializa a mensagem de volta em um snapshot validado.
func (m *StructureMessage) Structure() (*structure.Structure, error) {
	palette := make([]structure.BlockState, len(m.Palette))
	for i, e := range m.Palette {
		st := structure.BlockState{Name: e.Name}
		if len(e.Props) > 0 {
			st.Properties = make(map[string]string, len(e.Props))
			for _, p := range e.Props {
				st.Properties[p.Key] = p.Value
			}
		}
		palette[i] = st
	}

	blocks := make([]structure.PlacedBlock, 0, len(m.Blocks))
	for i, b := range m.Blocks {
		if b.State >= uint64(len(palette)) {
			return nil, fmt.Errorf("cvnet: bloco %d referencia paleta inexistente: %d", i, b.State)
		}
		blocks = append(blocks, structure.PlacedBlock{
			Pos:   [3]int{int(b.X), int(b.Y), int(b.Z)},
			State: palette[b.State],
		})
	}
	return structure.New([3]int{int(m.SizeX), int(m.SizeY), int(m.SizeZ)}, blocks)
}
