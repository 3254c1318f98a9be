package spawn

import "testing"

func TestTableScenarioHoleBar(t *testing.T) {
	table, err := NewTable(
		Structure{Name: "hole", Weight: 7, Offsets: []Offset{{Kind: KindHole}}},
		Structure{Name: "bar", Weight: 19, Offsets: []Offset{{Kind: KindEnergyBar}}},
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cum := table.Cumulative()
	if len(cum) != 2 || cum[0] != 7 || cum[1] != 26 {
		t.Fatalf("Expected cumulative [7 26], got %v", cum)
	}

	s, ok := table.Sample(0)
	if !ok {
		t.Fatal("Expected a structure for draw 0")
	}
	if s.Offsets[0].Kind != KindHole {
		t.Errorf("Expected Hole for draw 0, got %s", s.Offsets[0].Kind)
	}

	s, _ = table.Sample(table.Total())
	if s.Offsets[0].Kind != KindEnergyBar {
		t.Errorf("Expected last structure for draw == total, got %s", s.Offsets[0].Kind)
	}
}

func TestDefaultTableTotals(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if table.Total() != 200 {
		t.Errorf("Expected default total 200, got %f", table.Total())
	}

	kinds := make(map[EnemyKind]float64)
	for _, s := range table.Structures() {
		for _, o := range s.Offsets {
			kinds[o.Kind] += s.Weight
		}
	}

	want := map[EnemyKind]float64{
		KindHole:      10,
		KindEnergyBar: 10,
		KindRainbow:   1,
		KindPlane:     39,
		KindPlanet:    20,
		KindBasic:     120,
	}
	for k, w := range want {
		if kinds[k] != w {
			t.Errorf("Expected weight %f for %s, got %f", w, k, kinds[k])
		}
	}
}

func TestDefaultTableWithExtra(t *testing.T) {
	extra := Structure{Name: "wall", Weight: 5, Offsets: []Offset{{Kind: KindPlanet, X: Int(0)}}}
	table, err := DefaultTable(extra)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if table.Total() != 205 {
		t.Errorf("Expected total 205, got %f", table.Total())
	}
	s, _ := table.Sample(table.Total())
	if s.Name != "wall" {
		t.Errorf("Expected appended structure last, got %s", s.Name)
	}
}

func TestTableStructuresIsCopy(t *testing.T) {
	table, _ := NewTable(Structure{Name: "a", Weight: 1})
	list := table.Structures()
	list[0].Name = "mutated"

	s, _ := table.Sample(0)
	if s.Name != "a" {
		t.Errorf("Expected table to be immutable, got %s", s.Name)
	}
}
