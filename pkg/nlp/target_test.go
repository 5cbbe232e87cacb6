package nlp

import (
	"strings"
	"testing"

	"SakuBot/internal/entity"
)

func TestExtractTargetsTwoItems(t *testing.T) {
	targets := ExtractTargets("laptop 7jt dan hp 4jt")
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d: %+v", len(targets), targets)
	}

	var total int64
	for _, target := range targets {
		total += target.Amount
	}
	if total != 11_000_000 {
		t.Errorf("total = %d, want 11000000", total)
	}
}

func TestExtractTargetsModifierRetained(t *testing.T) {
	targets := ExtractTargets("ipad 7jt dan macbook m3 pro 20jt")
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d: %+v", len(targets), targets)
	}

	byName := func(fragment string) (int64, bool) {
		for _, target := range targets {
			if strings.Contains(target.Name, fragment) {
				return target.Amount, true
			}
		}
		return 0, false
	}

	if amount, ok := byName("ipad"); !ok || amount != 7_000_000 {
		t.Errorf("ipad target = %d (found=%v), want 7000000", amount, ok)
	}
	if amount, ok := byName("macbook"); !ok || amount != 20_000_000 {
		t.Errorf("macbook target = %d (found=%v), want 20000000", amount, ok)
	}
}

func TestExtractTargetsStripsAllowanceWords(t *testing.T) {
	targets := ExtractTargets("mau beli motor dengan harga 25jt")
	if len(targets) != 1 {
		t.Fatalf("expected 1 target, got %d: %+v", len(targets), targets)
	}

	if targets[0].Name != "motor" {
		t.Errorf("name = %q, want %q", targets[0].Name, "motor")
	}
	if targets[0].Amount != 25_000_000 {
		t.Errorf("amount = %d, want 25000000", targets[0].Amount)
	}
}

func TestDedupeTargetsBySubstring(t *testing.T) {
	targets := dedupeTargets([]entity.Target{
		{Name: "laptop", Amount: 0},
		{Name: "laptop gaming", Amount: 12_000_000},
	})

	if len(targets) != 1 {
		t.Fatalf("expected 1 target after dedupe, got %d", len(targets))
	}
	if targets[0].Name != "laptop gaming" || targets[0].Amount != 12_000_000 {
		t.Errorf("got %+v, want laptop gaming / 12000000", targets[0])
	}
}

func TestExtractTargetsSlotFallback(t *testing.T) {
	// No noun-amount pair in range, but the slot extractor still finds a
	// target amount via the "harga" keyword.
	targets := ExtractTargets("barang incaran saya harga 2jt")
	if len(targets) != 1 {
		t.Fatalf("expected 1 fallback target, got %d: %+v", len(targets), targets)
	}
	if targets[0].Name != "target" {
		t.Errorf("name = %q, want generic %q", targets[0].Name, "target")
	}
	if targets[0].Amount != 2_000_000 {
		t.Errorf("amount = %d, want 2000000", targets[0].Amount)
	}
}

func TestExtractTargetsIdempotent(t *testing.T) {
	message := "ipad 7jt dan macbook m3 pro 20jt"
	first := ExtractTargets(message)
	second := ExtractTargets(message)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("target %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
