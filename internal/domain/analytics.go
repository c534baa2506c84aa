package domain

import (
	"github.com/shopspring/decimal"
)

// MetricWithTrend é o formato canônico de toda métrica comparativa
type MetricWithTrend struct {
	Current      decimal.Decimal `json:"current"`
	Previous     decimal.Decimal `json:"previous"`
	TrendPercent int64           `json:"trend_percent"`
}

type RevenuePoint struct {
	Date    string          `json:"date"` // Formato yyyy-mm-dd
	Revenue decimal.Decimal `json:"revenue"`
	Deals   int             `json:"deals"`
}

type RevenueData struct {
	Period   Period          `json:"period"`
	Range    DateRange       `json:"range"`
	Realized decimal.Decimal `json:"realized"`
	Expected decimal.Decimal `json:"expected"`
	Series   []RevenuePoint  `json:"series"`
	Trend    MetricWithTrend `json:"trend"`
}

type StageDistribution struct {
	StageID        string          `json:"stage_id"`
	Name           string          `json:"name"`
	Color          string          `json:"color"`
	Order          int             `json:"order"`
	Count          int             `json:"count"`
	TotalValue     decimal.Decimal `json:"total_value"`
	PercentOfTotal decimal.Decimal `json:"percent_of_total"`
}

type PipelineTotal struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type PipelineDistribution struct {
	Stages []StageDistribution `json:"stages"`
	Total  PipelineTotal       `json:"total"`
}

type PerformanceMetrics struct {
	Range         DateRange       `json:"range"`
	WinRate       MetricWithTrend `json:"win_rate"`
	AverageTicket MetricWithTrend `json:"average_ticket"`
	AverageCycle  MetricWithTrend `json:"average_cycle"`
}

type ScenarioLabel string

const (
	ScenarioPessimistic ScenarioLabel = "pessimistic"
	ScenarioRealistic   ScenarioLabel = "realistic"
	ScenarioOptimistic  ScenarioLabel = "optimistic"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

type ForecastScenario struct {
	Label          ScenarioLabel   `json:"label"`
	ProjectedValue decimal.Decimal `json:"projected_value"`
	MonthIndex     int             `json:"month_index"`
	Month          string          `json:"month"` // Formato yyyy-mm
}

type ScenarioTotal struct {
	Label ScenarioLabel   `json:"label"`
	Value decimal.Decimal `json:"value"`
}

type ForecastBasis struct {
	DealsInPipeline int        `json:"deals_in_pipeline"`
	Confidence      Confidence `json:"confidence"`
}

type ForecastData struct {
	Months     int                `json:"months"`
	Scenarios  []ForecastScenario `json:"scenarios"`
	Totals     []ScenarioTotal    `json:"totals"`
	Basis      ForecastBasis      `json:"basis"`
	Confidence Confidence         `json:"confidence"`
}

type MonthlyRevenue struct {
	Month   string          `json:"month"` // Formato yyyy-mm
	Revenue decimal.Decimal `json:"revenue"`
	Deals   int             `json:"deals"`
	Growth  MetricWithTrend `json:"growth"`
}

type YearOverYear struct {
	CurrentYear   int             `json:"current_year"`
	PreviousYear  int             `json:"previous_year"`
	CurrentTotal  decimal.Decimal `json:"current_total"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	Trend         MetricWithTrend `json:"trend"`
}

type TrendsData struct {
	MonthOverMonth []MonthlyRevenue `json:"month_over_month"`
	YearOverYear   YearOverYear     `json:"year_over_year"`
}
