package domain

// SuddenDrop flags an account whose latest daily ROAS fell well below its
// recent baseline.
type SuddenDrop struct {
	CID          string  `json:"cid"`
	AccountName  string  `json:"accountName"`
	Manager      string  `json:"pm"`
	CurrentROAS  float64 `json:"currentRoas"`
	BaselineROAS float64 `json:"baselineRoas"`
	DropPct      float64 `json:"dropPct"`
}

// HiddenGem flags a low-spend account beating its target by a wide margin,
// i.e. a scaling opportunity.
type HiddenGem struct {
	CID         string  `json:"cid"`
	AccountName string  `json:"accountName"`
	Manager     string  `json:"pm"`
	CurrentROAS float64 `json:"currentRoas"`
	TargetROAS  float64 `json:"targetRoas"`
	Spend       float64 `json:"spend"`
}

// AnomalyReport bundles both detector outputs. Advisory only; nothing
// downstream mutates on it.
type AnomalyReport struct {
	SuddenDrops []SuddenDrop `json:"suddenDrops"`
	HiddenGems  []HiddenGem  `json:"hiddenGems"`
}

// ManagerScore is one manager's portfolio row. Count and sum fields are
// period-averaged when more than one month is selected; the derived
// percentages and scores are computed from the raw tallies before
// averaging, so they are unaffected by the divisor.
type ManagerScore struct {
	Manager string `json:"pm"`

	Accounts     float64 `json:"accounts"`
	ROASAccounts float64 `json:"roasAccounts"`
	Critical     float64 `json:"critical"`
	Low          float64 `json:"low"`
	OnTrack      float64 `json:"onTrack"`
	TotalBudget  float64 `json:"totalBudget"`
	TotalCost    float64 `json:"totalCost"`
	TotalIssues  float64 `json:"totalIssues"`

	OnTrackPct        float64 `json:"onTrackPct"`
	LowPct            float64 `json:"lowPct"`
	CriticalPct       float64 `json:"criticalPct"`
	AvgHealth         float64 `json:"avgHealth"`
	WorkloadIntensity float64 `json:"workloadIntensity"`
	AvgIssues         float64 `json:"avgIssues"`
	AuditHealth       float64 `json:"auditHealth"`
	GlobalScore       float64 `json:"globalScore"`

	// Trend holds the single-month On-Track percentage for each selected
	// period in chronological order, for sparkline display.
	Trend []float64 `json:"trend"`
}

// FleetTrendPoint is one month of the portfolio-wide health series.
type FleetTrendPoint struct {
	Month    string  `json:"month"`
	Health   float64 `json:"health"`
	Accounts int     `json:"accounts"`
}

// IssueCount is one labelled bucket in the top-issues widget.
type IssueCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// KpiSummary is the headline tally over a filtered, classified record set.
type KpiSummary struct {
	Total    int `json:"total"`
	Projects int `json:"projects"`
	Managers int `json:"pms"`
	Critical int `json:"critical"`
	Low      int `json:"low"`
	OnTrack  int `json:"onTrack"`
}

// GroupKpiSummary is a KPI tally grouped by manager or team.
type GroupKpiSummary struct {
	Label       string  `json:"label"`
	Total       int     `json:"total"`
	Critical    int     `json:"critical"`
	Low         int     `json:"low"`
	OnTrack     int     `json:"onTrack"`
	CriticalPct float64 `json:"criticalPct"`
	LowPct      float64 `json:"lowPct"`
	OnTrackPct  float64 `json:"onTrackPct"`
}

// MonthTrendPoint is one month of the KPI status trend chart.
type MonthTrendPoint struct {
	Month    string `json:"month"`
	Critical int    `json:"critical"`
	Low      int    `json:"low"`
	OnTrack  int    `json:"onTrack"`
	Total    int    `json:"total"`
}

// Heatmap is the manager × month budget-exhaustion matrix. Cells is keyed
// by manager, then by short month label; MaxCount is the largest visible
// cell (minimum 1) for the caller's color scale.
type Heatmap struct {
	Managers []string                  `json:"pms"`
	Months   []string                  `json:"months"`
	Cells    map[string]map[string]int `json:"cells"`
	MaxCount int                       `json:"maxCount"`
}

// ExhaustionSummary is one manager's row of the budget summary table.
type ExhaustionSummary struct {
	Manager          string `json:"pm"`
	Exhaustions      int    `json:"exhaustions"`
	DistinctAccounts int    `json:"distinctAccounts"`
}
