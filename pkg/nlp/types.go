package nlp

import "SakuBot/internal/entity"

type IntentType string

const (
	IntentGoalSimulation    IntentType = "goal_simulation"
	IntentFutureBudget      IntentType = "future_budget_planning"
	IntentReportSaldo       IntentType = "report_saldo"
	IntentReportPengeluaran IntentType = "report_pengeluaran"
	IntentReportPemasukan   IntentType = "report_pemasukan"
	IntentReportKategori    IntentType = "report_kategori"
	IntentRecommendation    IntentType = "recommendation"
	IntentGreeting          IntentType = "greeting"
	IntentHelp              IntentType = "help"
)

// Intent is one classified purpose of a user message. Optional fields are
// only set for the intent types that carry them.
type Intent struct {
	Type          IntentType `json:"type"`
	Category      string     `json:"category,omitempty"`
	SearchKeyword string     `json:"search_keyword,omitempty"`
	Period        string     `json:"period,omitempty"`
	PeriodCount   int        `json:"period_count,omitempty"`
	UseBalance    bool       `json:"use_balance,omitempty"`

	// Position is the offset of the first keyword hit, used to order
	// co-occurring report intents.
	Position int `json:"position"`
}

// MoneyMention is a located, parsed money amount inside a message.
type MoneyMention struct {
	RawText  string `json:"raw_text"`
	Position int    `json:"position"`
	Value    int64  `json:"value"`
}

// SlotResult maps extracted money mentions to their semantic roles.
// A zero value means the slot stayed empty.
type SlotResult struct {
	Target  int64 `json:"target"`
	Monthly int64 `json:"monthly"`
	Weekly  int64 `json:"weekly"`
}

// DetectionDetails is the debug view of a classification run, exposed on
// the NLP test endpoint so tuning the keyword tables stays verifiable.
type DetectionDetails struct {
	Normalized      string              `json:"normalized"`
	Intents         []Intent            `json:"intents"`
	MatchedKeywords map[string][]string `json:"matched_keywords"`
	Mentions        []MoneyMention      `json:"money_mentions"`
	Slots           SlotResult          `json:"slots"`
	Targets         []entity.Target     `json:"targets"`
}

type IClassifier interface {
	DetectIntents(message string) []Intent
	DetectWithDetails(message string) *DetectionDetails
}
