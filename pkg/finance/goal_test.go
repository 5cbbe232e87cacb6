package finance

import (
	"math/rand"
	"strings"
	"testing"

	"SakuBot/internal/entity"
)

func newTestEngine() *GoalEngine {
	return NewGoalEngine(rand.New(rand.NewSource(1)))
}

func TestSimulateClarifiesOnMissingNumbers(t *testing.T) {
	engine := newTestEngine()

	if got := engine.Simulate(10_000_000, 0, nil); got != clarifyGoalMessage {
		t.Errorf("zero allowance: expected clarification message, got %q", got)
	}
	if got := engine.Simulate(0, 2_000_000, nil); got != clarifyGoalMessage {
		t.Errorf("zero target: expected clarification message, got %q", got)
	}
}

func TestSimulateInfeasiblePlan(t *testing.T) {
	engine := newTestEngine()

	categories := []entity.CategorySummary{
		{Name: "Makan", Total: 900_000},
		{Name: "Transport", Total: 400_000},
	}

	got := engine.Simulate(5_000_000, 1_000_000, categories)
	if got != infeasiblePlanMessage {
		t.Fatalf("essential cost above allowance: expected infeasible message, got %q", got)
	}
	if strings.Contains(got, "-") && strings.Contains(got, "bulan ke") {
		t.Error("infeasible plan must not render a negative duration")
	}
}

func TestSimulateDefaultEssentialShare(t *testing.T) {
	engine := newTestEngine()

	// No category data: essentials default to 65% of the allowance,
	// leaving 700_000/month, so 7_000_000 takes 10 months.
	got := engine.Simulate(7_000_000, 2_000_000, nil)

	if !strings.Contains(got, "10 bulan") {
		t.Errorf("expected 10 month duration, got:\n%s", got)
	}
	if !strings.Contains(got, "Rp700.000") {
		t.Errorf("expected monthly saving Rp700.000, got:\n%s", got)
	}
	if !strings.Contains(got, "Milestone") || !strings.Contains(got, "25%") {
		t.Errorf("durations between 2 and 24 months should include milestones, got:\n%s", got)
	}
}

func TestSimulateEssentialFloor(t *testing.T) {
	engine := newTestEngine()

	// Reported essentials (500_000) sit below the 40% floor of a
	// 2_000_000 allowance, so the floor (800_000) wins.
	categories := []entity.CategorySummary{{Name: "Makan", Total: 500_000}}
	got := engine.Simulate(2_400_000, 2_000_000, categories)

	if !strings.Contains(got, "Rp1.200.000") {
		t.Errorf("expected monthly saving Rp1.200.000 after floor clamp, got:\n%s", got)
	}
	if !strings.Contains(got, "2 bulan") {
		t.Errorf("expected 2 month duration, got:\n%s", got)
	}
}

func TestSimulateLongPlanAddsAcceleratedScenarios(t *testing.T) {
	engine := newTestEngine()

	// 30_000_000 at 700_000/month is 43 months: beyond a year, so the
	// accelerated scenarios appear and the milestone table does not.
	got := engine.Simulate(30_000_000, 2_000_000, nil)

	if !strings.Contains(got, "Biar lebih cepat") {
		t.Errorf("expected accelerated scenarios for plans over a year, got:\n%s", got)
	}
	if strings.Contains(got, "Milestone") {
		t.Errorf("milestones cap at 24 months, got:\n%s", got)
	}
	if !strings.Contains(got, "3 tahun 7 bulan") {
		t.Errorf("expected base duration 3 tahun 7 bulan, got:\n%s", got)
	}
}

func TestSimulateDeterministicWithSeededSource(t *testing.T) {
	first := NewGoalEngine(rand.New(rand.NewSource(42))).Simulate(7_000_000, 2_000_000, nil)
	second := NewGoalEngine(rand.New(rand.NewSource(42))).Simulate(7_000_000, 2_000_000, nil)

	if first != second {
		t.Error("same seed and input should reproduce the same response")
	}
}

func TestSimulateMultipleTimeline(t *testing.T) {
	engine := newTestEngine()

	targets := []entity.Target{
		{Name: "laptop", Amount: 7_000_000},
		{Name: "hp", Amount: 4_000_000},
	}

	got := engine.SimulateMultiple(targets, 2_000_000, nil)

	// 700_000/month of saving capacity: laptop affordable at month 10,
	// both at month 16.
	if !strings.Contains(got, "laptop (Rp7.000.000) → bulan ke-10") {
		t.Errorf("expected laptop timeline entry, got:\n%s", got)
	}
	if !strings.Contains(got, "hp (Rp4.000.000) → bulan ke-16") {
		t.Errorf("expected hp timeline entry, got:\n%s", got)
	}
	if !strings.Contains(got, "1 tahun 4 bulan") {
		t.Errorf("expected combined duration 1 tahun 4 bulan, got:\n%s", got)
	}
}

func TestSimulateMultipleSingleTargetDelegates(t *testing.T) {
	engine := newTestEngine()

	targets := []entity.Target{{Name: "motor", Amount: 7_000_000}}
	got := engine.SimulateMultiple(targets, 2_000_000, nil)

	if strings.Contains(got, "Multi Target") {
		t.Errorf("single target should use the plain simulation, got:\n%s", got)
	}
	if !strings.Contains(got, "10 bulan") {
		t.Errorf("expected 10 month duration, got:\n%s", got)
	}
}

func TestSimulateMultipleEmptyTargets(t *testing.T) {
	engine := newTestEngine()

	if got := engine.SimulateMultiple(nil, 2_000_000, nil); got != clarifyGoalMessage {
		t.Errorf("empty target list: expected clarification message, got %q", got)
	}
}

func TestSimulateWeeklyConvertsAllowance(t *testing.T) {
	engine := newTestEngine()

	got := engine.SimulateWeekly(7_000_000, 500_000, nil)

	// 500_000 weekly scales by 4.33 to a 2_165_000 monthly allowance.
	if !strings.Contains(got, "Rp2.165.000") {
		t.Errorf("expected converted monthly allowance Rp2.165.000, got:\n%s", got)
	}

	if got := engine.SimulateWeekly(7_000_000, 0, nil); got != clarifyGoalMessage {
		t.Errorf("zero weekly allowance: expected clarification message, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{1, "1 bulan"},
		{11, "11 bulan"},
		{12, "1 tahun"},
		{16, "1 tahun 4 bulan"},
		{24, "2 tahun"},
		{43, "3 tahun 7 bulan"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.months); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
