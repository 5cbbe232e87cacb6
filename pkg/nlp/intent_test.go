package nlp

import "testing"

func TestDetectIntentsGoalSimulationExclusive(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("ingin beli laptop 15jt dengan uang jajan 2jt sebulan, berapa lama")
	if len(intents) != 1 {
		t.Fatalf("expected exclusive goal_simulation, got %d intents: %+v", len(intents), intents)
	}
	if intents[0].Type != IntentGoalSimulation {
		t.Errorf("type = %s, want goal_simulation", intents[0].Type)
	}
}

func TestDetectIntentsGoalWithoutStrongKeyword(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("mau beli motor 25jt kapan bisa kebeli ya")
	if len(intents) != 1 || intents[0].Type != IntentGoalSimulation {
		t.Fatalf("expected goal_simulation, got %+v", intents)
	}
}

func TestDetectIntentsReportOrderFollowsPosition(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("saldo saya dan pengeluaran")
	if len(intents) != 2 {
		t.Fatalf("expected 2 intents, got %d: %+v", len(intents), intents)
	}
	if intents[0].Type != IntentReportSaldo || intents[1].Type != IntentReportPengeluaran {
		t.Errorf("order = %s, %s; want report_saldo, report_pengeluaran", intents[0].Type, intents[1].Type)
	}

	reversed := c.DetectIntents("pengeluaran dan saldo saya")
	if reversed[0].Type != IntentReportPengeluaran || reversed[1].Type != IntentReportSaldo {
		t.Errorf("reversed order = %s, %s; want report_pengeluaran, report_saldo",
			reversed[0].Type, reversed[1].Type)
	}
}

func TestDetectIntentsSearchKeywordForUnofficialCategory(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("pengeluaran bensin bulan ini")
	if len(intents) != 1 || intents[0].Type != IntentReportPengeluaran {
		t.Fatalf("expected report_pengeluaran, got %+v", intents)
	}
	if intents[0].Category != "" {
		t.Errorf("category = %q, want empty (bensin is not an official category)", intents[0].Category)
	}
	if intents[0].SearchKeyword != "bensin" {
		t.Errorf("search keyword = %q, want %q", intents[0].SearchKeyword, "bensin")
	}
}

func TestDetectIntentsOfficialCategory(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("pengeluaran makan bulan ini")
	if len(intents) != 1 || intents[0].Type != IntentReportPengeluaran {
		t.Fatalf("expected report_pengeluaran, got %+v", intents)
	}
	if intents[0].Category != "Makan" {
		t.Errorf("category = %q, want Makan", intents[0].Category)
	}
	if intents[0].SearchKeyword != "" {
		t.Errorf("search keyword = %q, want empty", intents[0].SearchKeyword)
	}
}

func TestDetectIntentsFutureBudgetPlanning(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("atur uang makan saya 2 minggu ke depan dengan saldo saya")
	if len(intents) != 1 {
		t.Fatalf("expected exclusive future_budget_planning, got %+v", intents)
	}

	intent := intents[0]
	if intent.Type != IntentFutureBudget {
		t.Fatalf("type = %s, want future_budget_planning", intent.Type)
	}
	if intent.Category != "Makan" {
		t.Errorf("category = %q, want Makan", intent.Category)
	}
	if intent.Period != "minggu" || intent.PeriodCount != 2 {
		t.Errorf("period = %s x%d, want minggu x2", intent.Period, intent.PeriodCount)
	}
	if !intent.UseBalance {
		t.Error("use_balance = false, want true")
	}
}

func TestDetectIntentsDurationQuestionIsNotPlanning(t *testing.T) {
	c := NewClassifier()

	// "berapa lama" is reserved for goal simulation even when future-time
	// words appear.
	intents := c.DetectIntents("rencana nabung 5jt berapa lama ya")
	if len(intents) != 1 || intents[0].Type != IntentGoalSimulation {
		t.Fatalf("expected goal_simulation, got %+v", intents)
	}
}

func TestDetectIntentsGreetingOnly(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("halo")
	if len(intents) != 1 || intents[0].Type != IntentGreeting {
		t.Fatalf("expected greeting, got %+v", intents)
	}

	// A long message that merely starts with a greeting is not greeting-only.
	long := c.DetectIntents("halo, tolong tampilkan pengeluaran saya bulan ini dong ya")
	for _, intent := range long {
		if intent.Type == IntentGreeting {
			t.Errorf("long message classified as greeting: %+v", long)
		}
	}
}

func TestDetectIntentsHelpOnly(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("bisa apa aja?")
	if len(intents) != 1 || intents[0].Type != IntentHelp {
		t.Fatalf("expected help, got %+v", intents)
	}
}

func TestDetectIntentsDefaultRecommendation(t *testing.T) {
	c := NewClassifier()

	intents := c.DetectIntents("hmm ok lanjutkan begitu saja ygy")
	if len(intents) != 1 || intents[0].Type != IntentRecommendation {
		t.Fatalf("expected recommendation fallback, got %+v", intents)
	}
}

func TestDetectIntentsIdempotent(t *testing.T) {
	c := NewClassifier()
	message := "saldo saya dan pengeluaran makan"

	first := c.DetectIntents(message)
	second := c.DetectIntents(message)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("intent %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDetectWithDetailsExposesMatches(t *testing.T) {
	c := NewClassifier()

	details := c.DetectWithDetails("ingin beli laptop harga 15jt, uang jajan sebulan 2jt")
	if len(details.Mentions) != 2 {
		t.Fatalf("expected 2 money mentions, got %d", len(details.Mentions))
	}
	if details.Slots.Target != 15_000_000 || details.Slots.Monthly != 2_000_000 {
		t.Errorf("slots = %+v, want target 15jt / monthly 2jt", details.Slots)
	}
	if len(details.MatchedKeywords["monthly"]) == 0 {
		t.Error("expected monthly keyword matches in details")
	}
}
