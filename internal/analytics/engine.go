package analytics

import "github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"

// Tables holds the fixed configuration of the engine.
type Tables struct {
	Yields     YieldAssumptions
	Targets    AllocationTargets
	Volatility float64
}

// DefaultTables returns the built-in yield assumptions and allocation
// targets for the dashboard's asset categories.
func DefaultTables() Tables {
	return Tables{
		Yields: YieldAssumptions{
			"現預金":   0.001,
			"証券口座":  0.02,
			"仮想通貨":  0,
			"保険・年金": 0.005,
		},
		Targets: AllocationTargets{
			"現預金":   0.2,
			"証券口座":  0.5,
			"仮想通貨":  0.1,
			"保険・年金": 0.2,
		},
		Volatility: DefaultVolatility,
	}
}

// Engine runs every analysis of the dashboard with one set of tables.
// It is immutable after construction.
type Engine struct {
	yields    *YieldEstimator
	rebalance *RebalanceAnalyzer
	forecast  *CashFlowForecaster
	projector *GrowthProjector
}

// NewEngine builds an Engine from tables.
func NewEngine(tables Tables) *Engine {
	return &Engine{
		yields:    NewYieldEstimator(tables.Yields),
		rebalance: NewRebalanceAnalyzer(tables.Targets),
		forecast:  NewCashFlowForecaster(DefaultForecastHorizon),
		projector: NewGrowthProjector(tables.Volatility),
	}
}

// Dashboard computes every figure for snapshot. currentMonth anchors the
// cash-flow window and is normally the calendar month of the request.
func (e *Engine) Dashboard(snapshot model.Snapshot, currentMonth model.YearMonth) model.Dashboard {
	totals, total := Aggregate(snapshot.LatestHoldings)
	goals := TrackGoals(snapshot.Goals, total)

	mainGoal := 0
	if len(goals) > 0 {
		mainGoal = goals[0].Percent
	}

	holdings := snapshot.LatestHoldings
	if holdings == nil {
		holdings = []model.HoldingRecord{}
	}

	return model.Dashboard{
		LatestMonth:      snapshot.LatestMonth,
		TotalAssets:      total,
		Categories:       totals,
		Holdings:         holdings,
		Health:           ScoreDiversification(totals, total),
		Income:           e.yields.Estimate(totals),
		Rebalance:        e.rebalance.Analyze(totals, total),
		Goals:            goals,
		MainGoalProgress: mainGoal,
		Forecast:         e.forecast.Forecast(snapshot.HistoricalHoldings, currentMonth, total),
	}
}

// Project runs the growth projection from totalAssets.
func (e *Engine) Project(totalAssets model.Money, params model.ProjectionParams) []model.ProjectionPoint {
	return e.projector.Project(totalAssets, params)
}
