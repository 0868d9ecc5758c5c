package model

// Config holds all runtime configuration for the analysis pipeline
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" mapstructure:"analysis"`
	Validation  ValidationConfig  `yaml:"validation" mapstructure:"validation"`
	Risk        RiskConfig        `yaml:"risk" mapstructure:"risk"`
	Benchmarks  BenchmarksConfig  `yaml:"benchmarks" mapstructure:"benchmarks"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AnalysisConfig controls projection assumptions used by derived metrics
type AnalysisConfig struct {
	// DefaultAssetClass selects the benchmark taxonomy when the caller does
	// not pass one. Must name an asset class in the benchmark table.
	DefaultAssetClass string `yaml:"default_asset_class" mapstructure:"default_asset_class"`

	// DefaultSubclass narrows the benchmark lookup; empty falls back to the
	// first subclass registered for the asset class
	DefaultSubclass string `yaml:"default_subclass" mapstructure:"default_subclass"`

	// NOIGrowthRate is the assumed annual NOI growth for exit projections
	NOIGrowthRate float64 `yaml:"noi_growth_rate" mapstructure:"noi_growth_rate"`

	// RemainingBalanceFactor approximates the loan balance at exit as a
	// fraction of the original loan (no full amortization schedule)
	RemainingBalanceFactor float64 `yaml:"remaining_balance_factor" mapstructure:"remaining_balance_factor"`

	// DefaultHoldYears is used for exit projections when no hold period was extracted
	DefaultHoldYears float64 `yaml:"default_hold_years" mapstructure:"default_hold_years"`

	// DefaultAmortYears is assumed when a loan has a rate but no stated amortization
	DefaultAmortYears float64 `yaml:"default_amort_years" mapstructure:"default_amort_years"`
}

// ValidationConfig holds cross-validation tolerances
type ValidationConfig struct {
	// CapRateTolerance is the relative variance above which a cap-rate/NOI
	// mismatch warning fires (HIGH severity at 2x this value)
	CapRateTolerance float64 `yaml:"cap_rate_tolerance" mapstructure:"cap_rate_tolerance"`

	// LTVTolerance is the relative variance for LTV-implied loan checks,
	// tighter than the cap-rate tolerance
	LTVTolerance float64 `yaml:"ltv_tolerance" mapstructure:"ltv_tolerance"`

	// DSCRTolerance is the relative variance for stated-vs-computed DSCR
	DSCRTolerance float64 `yaml:"dscr_tolerance" mapstructure:"dscr_tolerance"`

	// MinPlausibleOccupancy flags occupancy below this fraction as suspect
	MinPlausibleOccupancy float64 `yaml:"min_plausible_occupancy" mapstructure:"min_plausible_occupancy"`
}

// RiskConfig holds the quantification constants for mitigation rules.
// These are market conventions, kept as configuration rather than code.
type RiskConfig struct {
	// ClearHeightStandardFt is the modern logistics clear-height standard
	ClearHeightStandardFt float64 `yaml:"clear_height_standard_ft" mapstructure:"clear_height_standard_ft"`

	// RentDiscountPerFootPct is the rent discount per foot below the standard
	RentDiscountPerFootPct float64 `yaml:"rent_discount_per_foot_pct" mapstructure:"rent_discount_per_foot_pct"`

	// RentDiscountCapPct caps the clear-height rent discount
	RentDiscountCapPct float64 `yaml:"rent_discount_cap_pct" mapstructure:"rent_discount_cap_pct"`

	// DockDoorCost is the installed cost of one additional dock door
	DockDoorCost float64 `yaml:"dock_door_cost" mapstructure:"dock_door_cost"`

	// CoTenancyRentReductionPct is the modeled inline rent reduction when
	// anchor-driven co-tenancy clauses trigger
	CoTenancyRentReductionPct float64 `yaml:"co_tenancy_rent_reduction_pct" mapstructure:"co_tenancy_rent_reduction_pct"`

	// ROFRLegalCost is the legal cost of securing a right of first refusal
	ROFRLegalCost float64 `yaml:"rofr_legal_cost" mapstructure:"rofr_legal_cost"`

	// ExitCapWideningBpsPerGOPPoint widens the exit cap per point of GOP
	// margin shortfall on hospitality assets
	ExitCapWideningBpsPerGOPPoint float64 `yaml:"exit_cap_widening_bps_per_gop_point" mapstructure:"exit_cap_widening_bps_per_gop_point"`

	// PIPCostPerKey is the assumed property improvement plan cost per key
	PIPCostPerKey float64 `yaml:"pip_cost_per_key" mapstructure:"pip_cost_per_key"`

	// OffsiteParkingMonthlyRate prices leased offsite parking per space
	OffsiteParkingMonthlyRate float64 `yaml:"offsite_parking_monthly_rate" mapstructure:"offsite_parking_monthly_rate"`
}

// BenchmarksConfig points at an optional external benchmark band file
type BenchmarksConfig struct {
	// Path to a YAML benchmark table that replaces the built-in bands.
	// Empty means use the compiled-in defaults.
	Path string `yaml:"path" mapstructure:"path"`

	// AliasPath optionally replaces the built-in field alias table
	AliasPath string `yaml:"alias_path" mapstructure:"alias_path"`
}

// LLMConfig configures the optional summary-polish provider
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"`   // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`

	// RequestsPerSecond throttles polish calls per provider
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls caching of polish responses
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir        string `yaml:"dir" mapstructure:"dir"` // Disk layer location; empty disables the disk layer
	TTLMinutes int    `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// ConcurrencyConfig sizes the batch worker pool
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			DefaultAssetClass:      "multifamily",
			NOIGrowthRate:          0.03,
			RemainingBalanceFactor: 0.90,
			DefaultHoldYears:       5,
			DefaultAmortYears:      30,
		},
		Validation: ValidationConfig{
			CapRateTolerance:      0.05,
			LTVTolerance:          0.02,
			DSCRTolerance:         0.05,
			MinPlausibleOccupancy: 0.50,
		},
		Risk: RiskConfig{
			ClearHeightStandardFt:         32,
			RentDiscountPerFootPct:        2,
			RentDiscountCapPct:            15,
			DockDoorCost:                  35000,
			CoTenancyRentReductionPct:     15,
			ROFRLegalCost:                 10000,
			ExitCapWideningBpsPerGOPPoint: 10,
			PIPCostPerKey:                 15000,
			OffsiteParkingMonthlyRate:     150,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Timeout:           30,
			MaxTokens:         200,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 60,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
