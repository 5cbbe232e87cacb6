package entity

import (
	"time"
)

// Target is a named purchase goal extracted from a chat message,
// e.g. "macbook m3 pro" with amount 20000000.
type Target struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// DialogueState is the only cross-turn mutable state of the assistant.
// It lives in Redis keyed by user ID and is cleared once a pending goal
// simulation completes or the user moves on to another topic.
type DialogueState struct {
	UserID              string    `json:"user_id"`
	AwaitingIncomeInput bool      `json:"awaiting_income_input"`
	PendingTargets      []Target  `json:"pending_targets"`
	LastIntent          string    `json:"last_intent"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (s *DialogueState) SavePendingGoalSimulation(targets []Target) {
	s.PendingTargets = targets
	s.AwaitingIncomeInput = true
	s.LastIntent = "goal_simulation"
	s.UpdatedAt = time.Now()
}

func (s *DialogueState) HasPendingGoalSimulation() bool {
	return s.AwaitingIncomeInput && len(s.PendingTargets) > 0
}

func (s *DialogueState) PendingTargetTotal() int64 {
	var total int64
	for _, t := range s.PendingTargets {
		total += t.Amount
	}
	return total
}

func (s *DialogueState) ClearPendingState() {
	s.AwaitingIncomeInput = false
	s.PendingTargets = nil
	s.LastIntent = ""
	s.UpdatedAt = time.Now()
}

// CategorySummary is a pre-aggregated per-category expense total.
type CategorySummary struct {
	Name  string  `json:"name" db:"category"`
	Total float64 `json:"total" db:"total"`
	Count int     `json:"count" db:"count"`
}

// FinancialContext carries the pre-aggregated ledger figures a single chat
// turn needs. It is assembled by the budget service before the assistant
// runs; a failed ledger read degrades to the zero value instead of failing
// the turn.
type FinancialContext struct {
	Balance          float64           `json:"balance"`
	MonthlyAllowance float64           `json:"monthly_allowance"`
	WeeklyAllowance  float64           `json:"weekly_allowance"`
	FinancialGoal    string            `json:"financial_goal"`
	MonthlyIncome    float64           `json:"monthly_income"`
	MonthlyExpense   float64           `json:"monthly_expense"`
	WeeklyExpense    float64           `json:"weekly_expense"`
	Categories       []CategorySummary `json:"category_breakdown"`
	SavingGoals      []SavingGoal      `json:"saving_goals"`
}

// SavingGoal is a long-running savings target tracked in the ledger.
type SavingGoal struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Target    float64    `json:"target" db:"target"`
	Current   float64    `json:"current" db:"current"`
	Deadline  *time.Time `json:"deadline,omitempty" db:"deadline"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

func (g SavingGoal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	p := g.Current / g.Target * 100
	if p > 100 {
		return 100
	}
	return p
}

// ChatMessage is one stored turn of the assistant conversation.
type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	Intents   string    `json:"intents" db:"intents"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
