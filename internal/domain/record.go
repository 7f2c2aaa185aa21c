package domain

// KpiStatus is the three-valued performance classification attached to a
// performance record.
type KpiStatus string

const (
	StatusCritical KpiStatus = "Critical"
	StatusLow      KpiStatus = "Low"
	StatusOnTrack  KpiStatus = "On Track"
)

// ObjectiveROAS marks accounts managed against a return-on-ad-spend target.
// Only these participate in portfolio scoring.
const ObjectiveROAS = "ROAS"

// UnknownManager is the sentinel bucket for rows whose CID has no match in
// the management sheet. Flagged issues are preserved under it rather than
// dropped.
const UnknownManager = "Unknown"

// ExcludedManagers are the placeholder labels used in the management sheet
// for unmanaged or parked accounts. Rows resolving to one of these never
// count in any audit, classification or scoring output.
var ExcludedManagers = map[string]struct{}{
	"Google Ads Account in No Use": {},
	"Not Managed by EME":           {},
	"Paused/Ended":                 {},
}

// IsExcludedManager reports whether a canonical manager name is one of the
// placeholder labels.
func IsExcludedManager(manager string) bool {
	_, ok := ExcludedManagers[manager]
	return ok
}

// AccountRecord is one row of the management sheet. Identity is the CID;
// all fields stay in their display form until a computation needs them.
type AccountRecord struct {
	CID                      string `json:"cid"`
	Manager                  string `json:"pm"`
	Email                    string `json:"email,omitempty"`
	AccountName              string `json:"accountName"`
	MonthlyBudget            string `json:"monthlyBudget,omitempty"`
	WeeklyBudget             string `json:"weeklyBudget,omitempty"`
	ConversionSource         string `json:"conversionSource,omitempty"`
	CampaignConversionAction string `json:"campaignConversionAction,omitempty"`
	TargetROAS               string `json:"targetRoas,omitempty"`
	Objective                string `json:"objective,omitempty"`
	Strategist               string `json:"strategist,omitempty"`
	ClientAccount            string `json:"clientAccount,omitempty"`
	Team                     string `json:"team,omitempty"`
	Type                     string `json:"type,omitempty"`
	Country                  string `json:"country,omitempty"`
	Status                   string `json:"status,omitempty"`
}

// PerformanceRecord is one monthly or daily KPI row. Period carries the
// sheet's M/D/YYYY label (a month anchor for monthly rows, a calendar day
// for daily rows). Numeric fields keep their "$"/","-formatted form and are
// parsed on demand; actual ROAS is always derived, never stored.
type PerformanceRecord struct {
	AccountRecord

	Period          string `json:"month"`
	Impressions     string `json:"impressions"`
	Clicks          string `json:"clicks"`
	Cost            string `json:"cost"`
	Conversions     string `json:"conversions"`
	ConversionValue string `json:"conversionValue"`
}

// BudgetRecord is one budget-exhaustion event: a shared budget that ran out
// during its window. One row counts as one exhaustion.
type BudgetRecord struct {
	CurrentDate  string `json:"currentDate,omitempty"`
	CID          string `json:"cid"`
	AccountName  string `json:"accountName"`
	BudgetName   string `json:"budgetName,omitempty"`
	AmountSpent  string `json:"amountSpent,omitempty"`
	BudgetAmount string `json:"budgetAmount,omitempty"`
	Currency     string `json:"currency,omitempty"`
	PercentSpent string `json:"percentSpent,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	Manager      string `json:"pm"`
	Email        string `json:"email,omitempty"`
}

// ManagerStatus is one row of the manager roster tab.
type ManagerStatus struct {
	Manager string `json:"pm"`
	Status  string `json:"status"`
}
