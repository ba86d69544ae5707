package structure

import "testing"

func testStructure(t *testing.T) *Structure {
	t.Helper()
	s, err := New([3]int{2, 2, 1}, []PlacedBlock{
		{Pos: [3]int{0, 0, 0}, State: BlockState{Name: "stone"}},
		{Pos: [3]int{1, 0, 0}, State: BlockState{Name: "grass_block", Properties: map[string]string{"snowy": "false"}}},
		{Pos: [3]int{0, 1, 0}, State: BlockState{Name: "stone"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestDocumentRoundTrip(t *testing.T) {
	s := testStructure(t)

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	x, y, z := back.Size()
	if x != 2 || y != 2 || z != 1 {
		t.Errorf("dimensões erradas após round trip: (%d,%d,%d)", x, y, z)
	}
	if back.Len() != s.Len() {
		t.Fatalf("quantidade de blocos: veio %d, esperava %d", back.Len(), s.Len())
	}
	for i, b := range back.Blocks() {
		orig := s.Blocks()[i]
		if b.Pos != orig.Pos || !b.State.Equals(orig.State) {
			t.Errorf("bloco %d divergiu: %v vs %v", i, b, orig)
		}
	}
}

func TestEncodeDeduplicatesPalette(t *testing.T) {
	s := testStructure(t)

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// 3 blocos, 2 estados distintos: "stone" aparece duas vezes.
	var count int
	for i := 0; i+7 < len(data); i++ {
		if string(data[i:i+7]) == `"stone"` {
			count++
		}
	}
	if count != 1 {
		t.Errorf("paleta deveria ter uma única entrada \"stone\", encontradas %d", count)
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"JSON inválido", `{`},
		{"size com 2 dimensões", `{"size":[1,1],"palette":[],"blocks":[]}`},
		{"size zero", `{"size":[0,1,1],"palette":[],"blocks":[]}`},
		{"sem palette", `{"size":[1,1,1],"blocks":[]}`},
		{"estado negativo", `{"size":[1,1,1],"palette":[{"name":"stone"}],"blocks":[{"pos":[0,0,0],"state":-1}]}`},
		{"índice de paleta inexistente", `{"size":[1,1,1],"palette":[{"name":"stone"}],"blocks":[{"pos":[0,0,0],"state":3}]}`},
		{"bloco fora dos limites", `{"size":[1,1,1],"palette":[{"name":"stone"}],"blocks":[{"pos":[0,5,0],"state":0}]}`},
	}

	for _, tt := range tests {
		if _, err := Decode([]byte(tt.data)); err == nil {
			t.Errorf("%s: esperava erro, veio nil", tt.name)
		}
	}
}
