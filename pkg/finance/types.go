package finance

// PeriodSummary carries the pre-aggregated totals for one budgeting
// period. For weekly/monthly modes the day counts come from calendar
// boundaries; simulation mode supplies them directly.
type PeriodSummary struct {
	Income        float64 `json:"income"`
	Expense       float64 `json:"expense"`
	DaysElapsed   int     `json:"days_elapsed"`
	DaysRemaining int     `json:"days_remaining"`
	Simulation    bool    `json:"simulation"`
}

func (p PeriodSummary) TotalDays() int {
	return p.DaysElapsed + p.DaysRemaining
}

type PeriodStatus string

const (
	StatusNoIncome    PeriodStatus = "no_income"
	StatusExceeded    PeriodStatus = "exceeded"
	StatusOverBudget  PeriodStatus = "over_budget"
	StatusWarning     PeriodStatus = "warning"
	StatusOnTrack     PeriodStatus = "on_track"
	StatusUnderBudget PeriodStatus = "under_budget"
)

type CategoryStatus string

const (
	CategoryUnder CategoryStatus = "under"
	CategoryOK    CategoryStatus = "ok"
	CategoryOver  CategoryStatus = "over"
)

// CategoryRecommendation compares a category's actual daily spending
// against the share of the recommended daily budget it has earned.
type CategoryRecommendation struct {
	Name             string         `json:"name"`
	Share            float64        `json:"share"`
	RecommendedDaily float64        `json:"recommended_daily"`
	ActualDaily      float64        `json:"actual_daily"`
	Status           CategoryStatus `json:"status"`
}

type Consistency string

const (
	ConsistencyStable      Consistency = "stable"
	ConsistencyModerate    Consistency = "moderate"
	ConsistencyFluctuating Consistency = "fluctuating"
)

// DailyPattern summarizes how spending is distributed across the
// elapsed days of the period.
type DailyPattern struct {
	Mean                   float64     `json:"mean"`
	Max                    float64     `json:"max"`
	Min                    float64     `json:"min"`
	CoefficientOfVariation float64     `json:"coefficient_of_variation"`
	SpendingConsistency    Consistency `json:"spending_consistency"`
	EarlyPeriodHeavy       bool        `json:"early_period_heavy"`
	HasUnusualSpike        bool        `json:"has_unusual_spike"`
}

type TrendBucket string

const (
	TrendSpike      TrendBucket = "spike"
	TrendIncreasing TrendBucket = "increasing"
	TrendDecreasing TrendBucket = "decreasing"
	TrendStable     TrendBucket = "stable"
)

// Trend compares the period's expense against the previous
// equal-length period.
type Trend struct {
	ChangePercent float64     `json:"change_percent"`
	Bucket        TrendBucket `json:"bucket"`
}

const (
	AdviceCritical = "critical"
	AdviceWarning  = "warning"
	AdviceInfo     = "info"
)

// Advice is a single warning or insight rendered to the user.
type Advice struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// PeriodAnalysis is the full output of the period engine.
type PeriodAnalysis struct {
	Summary          PeriodSummary            `json:"summary"`
	RemainingBudget  float64                  `json:"remaining_budget"`
	ExpenseRatio     float64                  `json:"expense_ratio"`
	TimeRatio        float64                  `json:"time_ratio"`
	SpendingSpeed    float64                  `json:"spending_speed"`
	Status           PeriodStatus             `json:"status"`
	RecommendedDaily float64                  `json:"recommended_daily"`
	Categories       []CategoryRecommendation `json:"categories,omitempty"`
	Daily            *DailyPattern            `json:"daily,omitempty"`
	Trend            *Trend                   `json:"trend,omitempty"`
	Health           HealthScore              `json:"health"`
	Warnings         []Advice                 `json:"warnings,omitempty"`
	Insights         []Advice                 `json:"insights,omitempty"`
}

// DimensionScore is one weighted component of the health score.
type DimensionScore struct {
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Detail string `json:"detail"`
}

// HealthScore is the 0-100 composite with its label and color band.
type HealthScore struct {
	Score     int                       `json:"score"`
	Label     string                    `json:"label"`
	Color     string                    `json:"color"`
	Breakdown map[string]DimensionScore `json:"breakdown"`
}
