package structure

import "testing"

func TestBlockStateKey(t *testing.T) {
	tests := []struct {
		state BlockState
		want  string
	}{
		{BlockState{Name: "stone"}, "stone"},
		{BlockState{Name: "oak_log", Properties: map[string]string{"axis": "y"}}, "oak_log[axis=y]"},
		{
			BlockState{Name: "grass_block", Properties: map[string]string{"snowy": "false", "level": "2"}},
			"grass_block[level=2,snowy=false]",
		},
	}

	for _, tt := range tests {
		got := tt.state.Key()
		if got != tt.want {
			t.Errorf("Key(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestBlockStateEquals(t *testing.T) {
	a := BlockState{Name: "oak_log", Properties: map[string]string{"axis": "y"}}
	b := BlockState{Name: "oak_log", Properties: map[string]string{"axis": "y"}}
	c := BlockState{Name: "oak_log", Properties: map[string]string{"axis": "x"}}
	d := BlockState{Name: "oak_log"}

	if !a.Equals(b) {
		t.Error("estados idênticos deveriam ser iguais")
	}
	if a.Equals(c) {
		t.Error("propriedades diferentes não deveriam ser iguais")
	}
	if a.Equals(d) {
		t.Error("contagem de propriedades diferente não deveria ser igual")
	}
}

func TestNewRejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		size   [3]int
		blocks []PlacedBlock
	}{
		{"dimensão zero", [3]int{0, 1, 1}, nil},
		{"pos negativa", [3]int{2, 2, 2}, []PlacedBlock{{Pos: [3]int{-1, 0, 0}, State: BlockState{Name: "stone"}}}},
		{"pos além do limite", [3]int{2, 2, 2}, []PlacedBlock{{Pos: [3]int{0, 2, 0}, State: BlockState{Name: "stone"}}}},
		{"estado sem nome", [3]int{2, 2, 2}, []PlacedBlock{{Pos: [3]int{0, 0, 0}}}},
	}

	for _, tt := range tests {
		if _, err := New(tt.size, tt.blocks); err == nil {
			t.Errorf("%s: esperava erro, veio nil", tt.name)
		}
	}
}

func TestNewCopiesBlocks(t *testing.T) {
	blocks := []PlacedBlock{{Pos: [3]int{0, 0, 0}, State: BlockState{Name: "stone"}}}
	s, err := New([3]int{1, 1, 1}, blocks)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	blocks[0].State.Name = "dirt"
	if s.Blocks()[0].State.Name != "stone" {
		t.Error("snapshot não deveria compartilhar o slice do chamador")
	}
}
