package cvnet

import (
	"testing"

	"CraftVision/shared/structure"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	env := &Envelope{Type: TypeStructure, Payload: []byte{0x01, 0x02, 0x03}}

	data := env.Marshal()

	var back Envelope
	if err := back.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Type != TypeStructure {
		t.Errorf("Type = %d, esperava %d", back.Type, TypeStructure)
	}
	if len(back.Payload) != 3 || back.Payload[2] != 0x03 {
		t.Errorf("Payload divergente: %v", back.Payload)
	}
}

func TestStructureMessageRoundTrip(t *testing.T) {
	s, err := structure.New([3]int{2, 2, 2}, []structure.PlacedBlock{
		{Pos: [3]int{0, 0, 0}, State: structure.BlockState{Name: "stone"}},
		{Pos: [3]int{1, 1, 1}, State: structure.BlockState{
			Name:       "oak_log",
			Properties: map[string]string{"axis": "y"},
		}},
		{Pos: [3]int{0, 1, 0}, State: structure.BlockState{Name: "stone"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	msg := FromStructure(s)
	if len(msg.Palette) != 2 {
		t.Errorf("paleta com %d entradas, esperava 2", len(msg.Palette))
	}

	data := msg.Marshal()

	var back StructureMessage
	if err := back.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	restored, err := back.Structure()
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}

	if restored.Len() != s.Len() {
		t.Fatalf("blocos: veio %d, esperava %d", restored.Len(), s.Len())
	}
	for i, b := range restored.Blocks() {
		orig := s.Blocks()[i]
		if b.Pos != orig.Pos || !b.State.Equals(orig.State) {
			t.Errorf("bloco %d divergiu: %+v vs %+v", i, b, orig)
		}
	}
}

func TestStructureMessageRejectsBadPaletteIndex(t *testing.T) {
	msg := &StructureMessage{
		SizeX: 1, SizeY: 1, SizeZ: 1,
		Palette: []StateEntry{{Name: "stone"}},
		Blocks:  []BlockEntry{{X: 0, Y: 0, Z: 0, State: 9}},
	}

	var back StructureMessage
	if err := back.Unmarshal(msg.Marshal()); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, err := back.Structure(); err == nil {
		t.Error("esperava erro de índice de paleta, veio nil")
	}
}

func TestStatusMessageRoundTrip(t *testing.T) {
	msg := &StatusMessage{Message: "observando", Watching: "casa.json"}

	var back StatusMessage
	if err := back.Unmarshal(msg.Marshal()); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Message != msg.Message || back.Watching != msg.Watching {
		t.Errorf("round trip divergiu: %+v vs %+v", back, msg)
	}
}
