package domain

// AudienceAuditRow is one audience-configuration snapshot row, keyed by
// CID + snapshot date. Several snapshot dates coexist in one loaded set.
type AudienceAuditRow struct {
	Date             string `json:"date"`
	CID              string `json:"cid"`
	AccountName      string `json:"accountName"`
	CampaignName     string `json:"campaignName"`
	Audience         string `json:"audience"`
	AudienceSetting  string `json:"audienceSetting"`
	AudienceSource   string `json:"audienceSource,omitempty"`
	SearchSize       string `json:"searchSize"`
	DisplaySize      string `json:"displaySize,omitempty"`
	MembershipStatus string `json:"membershipStatus"`
}

// CampaignAuditRow is one campaign-settings snapshot row.
type CampaignAuditRow struct {
	Date              string `json:"date"`
	CID               string `json:"cid"`
	AccountName       string `json:"accountName"`
	CampaignName      string `json:"campaignName"`
	CampaignStatus    string `json:"campaignStatus"`
	DailyBudget       string `json:"dailyBudget"`
	DeviceAdjustment  string `json:"deviceAdjustment"`
	AdRotation        string `json:"adRotation"`
	MaxCPC            string `json:"maxCpc"`
	OptimizationScore string `json:"optimizationScore"`
	CampaignType      string `json:"campaignType"`
	DisplaySelect     string `json:"displaySelect"`
	DisapprovedAds    string `json:"disapprovedAds"`
	ActiveAds         string `json:"activeAds"`
	Language          string `json:"language"`
}

// FlaggedCampaign is a campaign row that matched an audit rule, joined to
// its manager and carrying the human-readable reason for the flag.
type FlaggedCampaign struct {
	CampaignAuditRow

	Manager string `json:"pm"`
	Reason  string `json:"reason"`
}

// FlaggedAudience is an audience row that matched an audit rule.
type FlaggedAudience struct {
	AudienceAuditRow

	Manager string `json:"pm"`
}

// CampaignBucketCounts tallies flags per campaign-audit rule bucket.
type CampaignBucketCounts struct {
	Budget      int `json:"budget"`
	Device      int `json:"device"`
	Rotate      int `json:"rotate"`
	CPC         int `json:"cpc"`
	Opti        int `json:"opti"`
	Display     int `json:"display"`
	Disapproved int `json:"disapproved"`
	Ads         int `json:"ads"`
	Lang        int `json:"lang"`
}

// Total is the combined flag count across buckets, the sort key for
// manager summaries.
func (c CampaignBucketCounts) Total() int {
	return c.Budget + c.Device + c.Rotate + c.CPC + c.Opti +
		c.Display + c.Disapproved + c.Ads + c.Lang
}

// CampaignManagerSummary is one manager's row in the campaign audit table.
// TotalCampaigns counts every enabled latest-date campaign evaluated for
// the manager, flagged or not.
type CampaignManagerSummary struct {
	Manager        string `json:"pm"`
	TotalCampaigns int    `json:"totalCampaigns"`

	CampaignBucketCounts
}

// CampaignAuditResult is the full campaign-hygiene bundle for one audit
// run: flagged rows per bucket for the latest snapshot date, bucket counts
// for the previous date, per-manager summaries and per-account issue
// totals.
type CampaignAuditResult struct {
	LatestDate     string   `json:"latestDate"`
	PreviousDate   string   `json:"previousDate,omitempty"`
	AvailableDates []string `json:"availableDates"`

	UnderBudget      []FlaggedCampaign `json:"underBudget"`
	DeviceNegatives  []FlaggedCampaign `json:"deviceNegatives"`
	RotateForever    []FlaggedCampaign `json:"rotateForever"`
	LowCPC           []FlaggedCampaign `json:"lowCpc"`
	LowOptiScore     []FlaggedCampaign `json:"lowOpti"`
	DisplaySelect    []FlaggedCampaign `json:"displaySelect"`
	Disapproved      []FlaggedCampaign `json:"disapproved"`
	ZeroAds          []FlaggedCampaign `json:"zeroAds"`
	LanguageMismatch []FlaggedCampaign `json:"langMismatch"`

	PrevCounts     CampaignBucketCounts     `json:"prevCounts"`
	ManagerSummary []CampaignManagerSummary `json:"pmSummary"`
	AccountIssues  map[string]int           `json:"accountIssues"`
}

// AudienceBucketCounts tallies flags per audience-audit rule bucket.
type AudienceBucketCounts struct {
	Zero        int `json:"zero"`
	Targeting   int `json:"targeting"`
	NoAudience  int `json:"noAudience"`
	Observation int `json:"observation"`
	Closed      int `json:"closed"`
}

func (c AudienceBucketCounts) Total() int {
	return c.Zero + c.Targeting + c.NoAudience + c.Observation + c.Closed
}

// AudienceManagerSummary is one manager's row in the audience audit table.
type AudienceManagerSummary struct {
	Manager string `json:"pm"`

	AudienceBucketCounts
}

// AudienceAuditResult is the audience-hygiene bundle for one audit run.
type AudienceAuditResult struct {
	LatestDate     string   `json:"latestDate"`
	PreviousDate   string   `json:"previousDate,omitempty"`
	AvailableDates []string `json:"availableDates"`

	SearchSizeZero              []FlaggedAudience `json:"searchSizeZero"`
	TargetingWithoutRemarketing []FlaggedAudience `json:"targetingWithoutRemarketing"`
	NoAudienceAdded             []FlaggedAudience `json:"noAudienceAdded"`
	ObservationWithRLSA         []FlaggedAudience `json:"observationWithRlsa"`
	ClosedMembership            []FlaggedAudience `json:"closedMembership"`

	PrevCounts     AudienceBucketCounts     `json:"prevCounts"`
	ManagerSummary []AudienceManagerSummary `json:"pmSummary"`
	AccountIssues  map[string]int           `json:"accountIssues"`
}
