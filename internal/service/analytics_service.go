package service

import (
	"context"
	"time"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// DashboardResult is the dashboard plus the context it was computed in.
type DashboardResult struct {
	model.Dashboard
	Currency           string `json:"currency"`
	TotalAssetsDisplay string `json:"totalAssetsDisplay"`
	Demo               bool   `json:"demo"`
}

// ProjectionRow is one projection point labelled with its calendar year.
type ProjectionRow struct {
	Year int `json:"year"`
	model.ProjectionPoint
}

// ProjectionResult is a projection and the parameters it was computed with.
type ProjectionResult struct {
	Params      model.ProjectionParams `json:"params"`
	TotalAssets model.Money            `json:"totalAssets"`
	Rows        []ProjectionRow        `json:"rows"`
	Demo        bool                   `json:"demo"`
}

// AnalyticsService runs the analytics engine over the current snapshot.
type AnalyticsService struct {
	snapshots *SnapshotService
	engine    *analytics.Engine
	currency  string
	now       func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService reporting amounts in currency.
func NewAnalyticsService(snapshots *SnapshotService, engine *analytics.Engine, currency string) *AnalyticsService {
	return &AnalyticsService{
		snapshots: snapshots,
		engine:    engine,
		currency:  currency,
		now:       time.Now,
	}
}

// Dashboard computes every dashboard figure. The cash-flow window starts at
// the current calendar month.
func (s *AnalyticsService) Dashboard(ctx context.Context) (DashboardResult, error) {
	loaded, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return DashboardResult{}, err
	}

	dashboard := s.engine.Dashboard(loaded.Snapshot, model.YearMonthOf(s.now()))

	return DashboardResult{
		Dashboard:          dashboard,
		Currency:           s.currency,
		TotalAssetsDisplay: dashboard.TotalAssets.Display(s.currency),
		Demo:               loaded.Demo,
	}, nil
}

// Projection runs the growth projection from the current portfolio total.
// Year offset 0 is the current calendar year.
func (s *AnalyticsService) Projection(ctx context.Context, params model.ProjectionParams) (ProjectionResult, error) {
	loaded, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return ProjectionResult{}, err
	}

	_, total := analytics.Aggregate(loaded.Snapshot.LatestHoldings)
	points := s.engine.Project(total, params)

	year := s.now().Year()
	rows := make([]ProjectionRow, len(points))
	for i, p := range points {
		rows[i] = ProjectionRow{Year: year + p.YearOffset, ProjectionPoint: p}
	}

	return ProjectionResult{
		Params:      params,
		TotalAssets: total,
		Rows:        rows,
		Demo:        loaded.Demo,
	}, nil
}
