package model

// CategoryTotal is the summed balance of one category in the latest snapshot.
type CategoryTotal struct {
	Category string `json:"category"`
	Balance  Money  `json:"balance"`
}

// HealthLevel buckets a diversification score for display.
type HealthLevel string

const (
	HealthGood HealthLevel = "good"
	HealthFair HealthLevel = "fair"
	HealthPoor HealthLevel = "poor"
)

// HealthReport is the diversification score of a portfolio.
type HealthReport struct {
	Score  int         `json:"score"` // 0..100
	Advice string      `json:"advice"`
	Level  HealthLevel `json:"level"`
}

// Income is the estimated passive income from the assumed per-category yields.
type Income struct {
	Annual  Money `json:"annual"`
	Monthly Money `json:"monthly"`
	Daily   Money `json:"daily"`
}

// RebalanceStatus classifies how far a category is from its target weight.
type RebalanceStatus string

const (
	RebalancePerfect RebalanceStatus = "perfect"
	RebalanceOver    RebalanceStatus = "over"
	RebalanceUnder   RebalanceStatus = "under"
)

// RebalanceEntry compares one category to its allocation target.
// DiffAmount is positive when money must be added to reach the target and
// negative when the category holds a surplus.
type RebalanceEntry struct {
	Category          string          `json:"category"`
	CurrentWeight     float64         `json:"currentWeight"`
	TargetWeight      float64         `json:"targetWeight"`
	DiffPercentPoints float64         `json:"diffPercentPoints"`
	DiffAmount        Money           `json:"diffAmount"`
	Status            RebalanceStatus `json:"status"`
}

// RebalanceReport is the per-category comparison plus the total amount to
// invest to bring every underweight category up to target.
type RebalanceReport struct {
	Entries        []RebalanceEntry `json:"entries"`
	TotalShortfall Money            `json:"totalShortfall"`
}

// ForecastType tells recorded months from months still ahead.
type ForecastType string

const (
	ForecastActual    ForecastType = "actual"
	ForecastProjected ForecastType = "projected"
)

// ForecastPoint is the total recorded for one month of the cash-flow window.
type ForecastPoint struct {
	Month  YearMonth    `json:"month"`
	Amount Money        `json:"amount"`
	Type   ForecastType `json:"type"`
}

// ProjectionParams are the user-tunable inputs of a growth projection.
// They are always passed together so a projection never mixes stale and
// fresh values.
type ProjectionParams struct {
	MonthlySavings   Money   `json:"monthlySavings"`
	AnnualReturnRate float64 `json:"annualReturnRate"` // fraction, 0.05 = 5%
	HorizonYears     int     `json:"horizonYears"`
}

// ProjectionPoint is the projected portfolio value yearOffset years from now.
type ProjectionPoint struct {
	YearOffset  int   `json:"yearOffset"`
	Median      Money `json:"median"`
	Optimistic  Money `json:"optimistic"`
	Pessimistic Money `json:"pessimistic"`
}

// GoalProgress is a goal with the share of its target already reached.
type GoalProgress struct {
	Goal
	Percent int `json:"percent"` // 0..100
}

// Dashboard gathers every figure the dashboard renders for one snapshot.
type Dashboard struct {
	LatestMonth      YearMonth       `json:"latestMonth"`
	TotalAssets      Money           `json:"totalAssets"`
	Categories       []CategoryTotal `json:"categories"`
	Holdings         []HoldingRecord `json:"holdings"`
	Health           HealthReport    `json:"health"`
	Income           Income          `json:"income"`
	Rebalance        RebalanceReport `json:"rebalance"`
	Goals            []GoalProgress  `json:"goals"`
	MainGoalProgress int             `json:"mainGoalProgress"`
	Forecast         []ForecastPoint `json:"forecast"`
}
