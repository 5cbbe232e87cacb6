package nlp

import "testing"

func TestExtractSlotsTargetThenAllowance(t *testing.T) {
	slots := ExtractSlots("saya ingin beli laptop harga 15jt, uang jajan sebulan 2jt")

	if slots.Target != 15_000_000 {
		t.Errorf("target = %d, want 15000000", slots.Target)
	}
	if slots.Monthly != 2_000_000 {
		t.Errorf("monthly = %d, want 2000000", slots.Monthly)
	}
	if slots.Weekly != 0 {
		t.Errorf("weekly = %d, want empty", slots.Weekly)
	}
}

func TestExtractSlotsAllowanceThenTarget(t *testing.T) {
	// Keyword-before-mention resolution must not depend on clause order.
	slots := ExtractSlots("uang jajan saya 3jt sebulan, pengen beli motor 25jt")

	if slots.Target != 25_000_000 {
		t.Errorf("target = %d, want 25000000", slots.Target)
	}
	if slots.Monthly != 3_000_000 {
		t.Errorf("monthly = %d, want 3000000", slots.Monthly)
	}
	if slots.Weekly != 0 {
		t.Errorf("weekly = %d, want empty", slots.Weekly)
	}
}

func TestExtractSlotsWeekly(t *testing.T) {
	slots := ExtractSlots("uang jajan per minggu 500rb, mau beli sepatu 1jt")

	if slots.Weekly != 500_000 {
		t.Errorf("weekly = %d, want 500000", slots.Weekly)
	}
	if slots.Target != 1_000_000 {
		t.Errorf("target = %d, want 1000000", slots.Target)
	}
}

func TestExtractSlotsPositionalFallback(t *testing.T) {
	// No role keywords at all: mentions fill target, then monthly.
	slots := ExtractSlots("20jt terus 2jt gimana")

	if slots.Target != 20_000_000 {
		t.Errorf("target = %d, want 20000000", slots.Target)
	}
	if slots.Monthly != 2_000_000 {
		t.Errorf("monthly = %d, want 2000000", slots.Monthly)
	}
}

func TestExtractSlotsKeywordTooFar(t *testing.T) {
	// The keyword ends more than 50 characters before the mention, so the
	// mention falls back to positional assignment.
	message := "harga barang yang sudah lama sekali saya incar dan saya tunggu tunggu itu 5jt"
	slots := ExtractSlots(message)

	if slots.Target != 5_000_000 {
		t.Errorf("target = %d, want 5000000 via fallback", slots.Target)
	}
}

func TestExtractSlotsIdempotent(t *testing.T) {
	message := "beli hp 4jt, gaji 3jt"
	first := ExtractSlots(message)
	second := ExtractSlots(message)

	if first != second {
		t.Errorf("ExtractSlots not idempotent: %+v vs %+v", first, second)
	}
}
