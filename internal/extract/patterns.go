package extract

import (
	"regexp"
	"strings"
)

// candidate is one (pattern, unit multiplier) pair tried against the
// normalized text. Candidates are ordered most specific first; the first
// successful match wins.
type candidate struct {
	re   *regexp.Regexp
	mult float64
}

// fieldSpec holds the ordered candidate list for one numeric field
type fieldSpec struct {
	name       string
	candidates []candidate
}

// textFieldSpec holds the ordered pattern list for one text-valued field.
// The first capture group of the first matching pattern is kept verbatim.
type textFieldSpec struct {
	name     string
	patterns []*regexp.Regexp
}

func c(mult float64, expr string) candidate {
	return candidate{re: regexp.MustCompile(`(?i)` + expr), mult: mult}
}

func num(name string, cands ...candidate) fieldSpec {
	return fieldSpec{name: name, candidates: cands}
}

func text(name string, exprs ...string) textFieldSpec {
	spec := textFieldSpec{name: name}
	for _, expr := range exprs {
		spec.patterns = append(spec.patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return spec
}

// Deal & asset identification

var dealAssetTextFields = []textFieldSpec{
	text("property_name",
		`PROPERTY\s*[:]\s*([^,\n]+)`,
		`DEAL\s*[:]\s*([^,\n]+)`,
		`PROJECT\s*[:]\s*([^,\n]+)`,
		`NAME\s*[:]\s*([^,\n]+)`),
	text("street_address",
		`ADDRESS\s*[:]\s*([^,\n]+)`,
		`LOCATION\s*[:]\s*([^,\n]+)`,
		`(\d+\s+[A-Z][A-Z0-9\s]+(?:STREET|ST|AVENUE|AVE|ROAD|RD|BLVD|BOULEVARD|WAY|DRIVE|DR|LANE|LN))`),
	text("construction_class",
		`CLASS\s*[:]\s*([A-C][+\-]?)`,
		`BUILDING\s+CLASS\s*[:]\s*([A-C][+\-]?)`,
		`CONSTRUCTION\s+TYPE\s*[:]\s*([IVX]+|[A-C])`),
	text("anchor_tenant",
		`ANCHOR\s+TENANT\s*[:]\s*([A-Z][A-Z\s&\.\-]+)`,
		`ANCHOR\s*[:]\s*([A-Z][A-Z\s&\.\-]+)`,
		`MAJOR\s+TENANT\s*[:]\s*([A-Z][A-Z\s&\.\-]+)`),
	text("environmental_status",
		`PHASE\s+I\s*[:]\s*([^,\n]+)`,
		`ESA\s*[:]\s*([^,\n]+)`,
		`ENVIRONMENTAL\s*[:]\s*([^,\n]+)`),
}

var dealAssetFields = []fieldSpec{
	num("year_built",
		c(1, `YEAR\s+BUILT\s*[:]\s*(\d{4})`),
		c(1, `BUILT\s*[:]\s*(\d{4})`),
		c(1, `CONSTRUCTION\s+DATE\s*[:]\s*(\d{4})`)),
	num("year_renovated",
		c(1, `RENOVATED\s*[:]\s*(\d{4})`),
		c(1, `RENOVATION\s*[:]\s*(\d{4})`),
		c(1, `GUT\s+REHAB\s*[:]\s*(\d{4})`),
		c(1, `LAST\s+RENOVATION\s*[:]\s*(\d{4})`)),
	num("site_acres",
		c(1, `SITE\s*[:]\s*(\d+(?:\.\d+)?)\s*ACRES?`),
		c(1, `LAND\s*[:]\s*(\d+(?:\.\d+)?)\s*ACRES?`),
		c(1, `(\d+(?:\.\d+)?)\s*ACRE\s+SITE`)),
	num("building_sf",
		c(1, `(\d+(?:\s*,\s*\d{3})*)\s*(?:SF|SQ\.?\s*FT\.?|SQUARE\s+FEET)`),
		c(1, `BUILDING\s+SIZE\s*[:]\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `GLA\s*[:]\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `NRA\s*[:]\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("unit_count",
		c(1, `(\d+)\s*UNITS?`),
		c(1, `UNIT\s+COUNT\s*[:]\s*(\d+)`),
		c(1, `NUMBER\s+OF\s+UNITS\s*[:]\s*(\d+)`)),
	num("parking_spaces",
		c(1, `(\d+)\s*PARKING\s+SPACES?`),
		c(1, `PARKING\s*[:]\s*(\d+)\s*SPACES?`),
		c(1, `(\d+)\s*STALLS?`)),
	num("parking_ratio",
		c(1, `PARKING\s+RATIO\s*[:]\s*(\d+(?:\.\d+)?)`),
		c(1, `(\d+(?:\.\d+)?)\s*/\s*1\s*,?\s*000\s+SF`)),
	num("occupancy_pct",
		c(0.01, `OCCUPANCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+OCCUPIED`),
		c(0.01, `CURRENT\s+OCCUPANCY\s*[:]\s*(\d+(?:\.\d+)?)`)),
	num("walt_years",
		c(1, `WALT\s*[:]\s*(\d+(?:\.\d+)?)\s*(?:YEARS?|YRS?)`),
		c(1, `WEIGHTED\s+AVERAGE\s+LEASE\s+TERM\s*[:]\s*(\d+(?:\.\d+)?)`),
		c(1, `AVG\s+LEASE\s+TERM\s*[:]\s*(\d+(?:\.\d+)?)`)),
	num("num_tenants",
		c(1, `(\d+)\s*TENANTS?`),
		c(1, `NUMBER\s+OF\s+TENANTS\s*[:]\s*(\d+)`),
		c(1, `TENANT\s+COUNT\s*[:]\s*(\d+)`)),
}

// Pricing & exit

var pricingExitFields = []fieldSpec{
	num("purchase_price",
		c(1000000, `PURCHASE\s+PRICE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(?:MM?|MILLION)?`),
		c(1000000, `PRICE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(?:MM?|MILLION)?`),
		c(1000000, `\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(?:MM?|MILLION)\s+PURCHASE`),
		c(1, `ACQUISITION\s+PRICE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("closing_costs",
		c(0.01, `CLOSING\s+COSTS?\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(1, `CLOSING\s+COSTS?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(0.01, `TRANSACTION\s+COSTS?\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("cap_rate",
		c(0.01, `GOING\s*\-?\s*IN\s+CAP\s*(?:RATE)?\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `ENTRY\s+CAP\s*(?:RATE)?\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `IN\s*\-?\s*PLACE\s+CAP\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `CAP\s+RATE\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`)),
	num("exit_cap_rate",
		c(0.01, `EXIT\s+CAP\s*(?:RATE)?\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `TERMINAL\s+CAP\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `REVERSION\s+CAP\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`)),
	num("hold_period_years",
		c(1, `HOLD\s+PERIOD\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `EXIT\s+YEAR\s*[:]\s*(\d+)`),
		c(1, `INVESTMENT\s+HORIZON\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`)),
	num("disposition_fee_pct",
		c(0.01, `DISPOSITION\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `SALE\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `EXIT\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("transfer_tax",
		c(0.01, `TRANSFER\s+TAX\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(1, `TRANSFER\s+TAX\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(0.01, `DOCUMENTARY\s+STAMP\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
}

// Income & operations

var incomeOperationsFields = []fieldSpec{
	num("noi",
		c(1000000, `NOI\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(?:MM?|MILLION)?`),
		c(1, `NET\s+OPERATING\s+INCOME\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `YEAR\s+1\s+NOI\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `STABILIZED\s+NOI\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("gross_income",
		c(1, `EGI\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `EFFECTIVE\s+GROSS\s+INCOME\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `GROSS\s+INCOME\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `T\s*\-\s*12\s+EGI\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("operating_expenses",
		c(1, `OPERATING\s+EXPENSES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `OPEX\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `EXPENSES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `T\s*\-\s*12\s+EXPENSES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("real_estate_taxes",
		c(1, `RE\s+TAXES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `REAL\s+ESTATE\s+TAXES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `PROPERTY\s+TAXES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("insurance_cost",
		c(1, `INSURANCE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `PROPERTY\s+INSURANCE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `LIABILITY\s+INSURANCE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("market_rent",
		c(1, `MARKET\s+RENT\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF`),
		c(1, `\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF\s+MARKET`),
		c(1, `MARKET\s+RATE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)\s*/\s*UNIT`),
		c(1, `\$?\s*(\d+(?:\s*,\s*\d{3})*)\s*/\s*UNIT\s+MARKET`)),
	num("vacancy_rate",
		c(0.01, `VACANCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `VACANCY\s+RATE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+VACANCY`)),
	num("management_fee_pct",
		c(0.01, `MANAGEMENT\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `PM\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `PROPERTY\s+MANAGEMENT\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("replacement_reserves",
		c(1, `RESERVES?\s*[:]\s*\$?\s*(\d+)\s*/\s*UNIT`),
		c(1, `REPLACEMENT\s+RESERVES?\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF`),
		c(1, `CAPEX\s+RESERVES?\s*[:]\s*\$?\s*(\d+)\s*/\s*UNIT`)),
}

// Asset-class operating metrics (industrial, hospitality, retail)

var assetOperationsFields = []fieldSpec{
	num("clear_height_ft",
		c(1, `CLEAR\s+HEIGHT\s*[:]\s*(\d+(?:\.\d+)?)\s*(?:FT|FEET|')?`),
		c(1, `(\d+(?:\.\d+)?)\s*(?:FT|FEET|')\s+CLEAR`)),
	num("dock_doors_count",
		c(1, `DOCK\s+(?:HIGH\s+)?DOORS?\s*[:]\s*(\d+)`),
		c(1, `(\d+)\s*DOCK\s+(?:HIGH\s+)?DOORS?`),
		c(1, `LOADING\s+DOCKS?\s*[:]\s*(\d+)`)),
	num("keys",
		c(1, `KEYS\s*[:]\s*(\d+)`),
		c(1, `(\d+)\s*KEYS`),
		c(1, `ROOM\s+COUNT\s*[:]\s*(\d+)`),
		c(1, `(\d+)\s*GUEST\s*ROOMS?`)),
	num("adr",
		c(1, `ADR\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`),
		c(1, `AVERAGE\s+DAILY\s+RATE\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`)),
	num("revpar",
		c(1, `REV\s*PAR\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`),
		c(1, `REVENUE\s+PER\s+AVAILABLE\s+ROOM\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`)),
	num("gop_margin_pct",
		c(0.01, `GOP\s+MARGIN\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `GROSS\s+OPERATING\s+PROFIT\s+MARGIN\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `GOP\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("fb_revenue",
		c(1, `F\s*&\s*B\s+REVENUE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `FOOD\s+(?:&|AND)\s+BEVERAGE\s+REVENUE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("sales_psf",
		c(1, `SALES\s+PSF\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`),
		c(1, `(?:TENANT\s+)?SALES\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF`),
		c(1, `SALES\s+PER\s+(?:SQUARE\s+FOOT|SQ\.?\s*FT\.?|SF)\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`)),
	num("anchor_remaining_term_years",
		c(1, `ANCHOR\s+(?:REMAINING\s+)?(?:LEASE\s+)?TERM\s*[:]\s*(\d+(?:\.\d+)?)\s*(?:YEARS?|YRS?)?`),
		c(1, `ANCHOR\s+TERM\s+REMAINING\s*[:]\s*(\d+(?:\.\d+)?)`)),
}

// Leasing (office/retail only)

var leasingFields = []fieldSpec{
	num("ti_allowance_new",
		c(1, `TI\s+ALLOWANCE\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF`),
		c(1, `TENANT\s+IMPROVEMENTS?\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF`),
		c(1, `NEW\s+TI\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`)),
	num("ti_allowance_renewal",
		c(1, `RENEWAL\s+TI\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)\s*/\s*SF`),
		c(1, `TI\s+RENEWAL\s*[:]\s*\$?\s*(\d+(?:\.\d+)?)`)),
	num("leasing_commission_pct",
		c(0.01, `LEASING\s+COMMISSION\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `LC\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `BROKER\s+COMMISSION\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("free_rent_months",
		c(1, `FREE\s+RENT\s*[:]\s*(\d+)\s*MONTHS?`),
		c(1, `(\d+)\s*MONTHS?\s+FREE\s+RENT`),
		c(1, `RENT\s+ABATEMENT\s*[:]\s*(\d+)\s*MONTHS?`)),
	num("renewal_probability_pct",
		c(0.01, `RENEWAL\s+PROBABILITY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `RENEWAL\s+RATE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `RETENTION\s+RATE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("downtime_months",
		c(1, `DOWNTIME\s*[:]\s*(\d+)\s*MONTHS?`),
		c(1, `LEASE\s*\-\s*UP\s+PERIOD\s*[:]\s*(\d+)\s*MONTHS?`),
		c(1, `ABSORPTION\s*[:]\s*(\d+)\s*MONTHS?`)),
}

// Debt & financing

var debtFields = []fieldSpec{
	num("loan_amount",
		c(1000000, `LOAN\s+AMOUNT\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(?:MM?|MILLION)?`),
		c(1000000, `DEBT\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(?:MM?|MILLION)?`),
		c(1, `MORTGAGE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `FINANCING\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("interest_rate",
		c(0.01, `INTEREST\s+RATE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `RATE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `COUPON\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+(?:INTEREST|FIXED)`)),
	num("amort_years",
		c(1, `AMORTIZATION\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `AMORT\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `(\d+)\s*[\-/]\s*YEAR\s+AMORT`)),
	num("io_period_years",
		c(1, `IO\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?|MONTHS?)`),
		c(1, `INTEREST[\s\-]ONLY\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `(\d+)\s*(?:YEARS?|YRS?)\s+IO`),
		c(1.0/12, `IO\s+PERIOD\s*[:]\s*(\d+)\s*MONTHS?`)),
	num("loan_term_years",
		c(1, `TERM\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `LOAN\s+TERM\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `MATURITY\s*[:]\s*(\d+)\s*(?:YEARS?|YRS?)`),
		c(1, `(\d+)\s*[\-/]\s*YEAR\s+TERM`)),
	num("ltv_pct",
		c(0.01, `LTV\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `LOAN[\s\-]TO[\s\-]VALUE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+LTV`)),
	num("dscr",
		c(1, `UNDERWRITTEN\s+DSCR\s*[:]\s*(\d+(?:\.\d+)?)\s*[Xx]?`),
		c(1, `DSCR\s*[:]\s*(\d+(?:\.\d+)?)\s*[Xx]?`),
		c(1, `DEBT\s+SERVICE\s+COVERAGE\s+RATIO\s*[:]\s*(\d+(?:\.\d+)?)\s*[Xx]?`)),
	num("min_dscr",
		c(1, `MIN(?:IMUM)?\s+DSCR\s*[:]\s*(\d+(?:\.\d+)?)`),
		c(1, `DSCR\s+REQUIREMENT\s*[:]\s*(\d+(?:\.\d+)?)`),
		c(1, `DEBT\s+SERVICE\s+COVERAGE\s*[:]\s*(\d+(?:\.\d+)?)`)),
	num("min_debt_yield",
		c(0.01, `DEBT\s+YIELD\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `MIN(?:IMUM)?\s+DEBT\s+YIELD\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+DEBT\s+YIELD`)),
	num("origination_fee_pct",
		c(0.01, `ORIGINATION\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `LOAN\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `POINTS?\s*[:]\s*(\d+(?:\.\d+)?)`)),
	num("rate_cap_strike",
		c(0.01, `RATE\s+CAP\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `CAP\s+STRIKE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `HEDGE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("extension_fee_pct",
		c(0.01, `EXTENSION\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+EXTENSION\s+FEE`),
		c(0.01, `OPTION\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("interest_reserve",
		c(1, `INTEREST\s+RESERVE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `DEBT\s+SERVICE\s+RESERVE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `(\d+)\s+MONTHS?\s+RESERVES?`)),
	num("ti_lc_reserve",
		c(1, `TI[/\\]LC\s+RESERVE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `TENANT\s+IMPROVEMENT\s+RESERVE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
}

// Refinance assumptions

var refinanceFields = []fieldSpec{
	num("refi_cap_rate",
		c(0.01, `REFI(?:NANCE)?\s+CAP\s*(?:RATE)?\s*[:]\s*(\d+(?:\.\d+)?)\s*%?`),
		c(0.01, `MARKET\s+CAP\s+(?:RATE\s+)?FOR\s+REFI\s*[:]\s*(\d+(?:\.\d+)?)`),
		c(0.01, `REFINANCE\s+AT\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("refi_ltv_target",
		c(0.01, `REFI(?:NANCE)?\s+LTV\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `TARGET\s+LTV\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `NEW\s+LOAN\s+LTV\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
	num("underwriting_vacancy",
		c(0.01, `UNDERWRITING\s+VACANCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `LENDER\s+VACANCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `UW\s+VACANCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`)),
}

// Development & construction (gated pass)

var developmentFields = []fieldSpec{
	num("land_cost",
		c(1, `LAND\s+(?:COST|PRICE)\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `SITE\s+ACQUISITION\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `LAND\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("hard_costs",
		c(1, `HARD\s+COSTS?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `CONSTRUCTION\s+COSTS?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `DIRECT\s+COSTS?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `GMP\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("soft_costs",
		c(1, `SOFT\s+COSTS?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `INDIRECT\s+COSTS?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `PROFESSIONAL\s+FEES?\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("developer_fee",
		c(0.01, `DEVELOPER\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `DEV\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `SPONSOR\s+FEE\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(1, `DEVELOPER\s+FEE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("contingency_pct",
		c(0.01, `CONTINGENCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `HARD\s+COST\s+CONTINGENCY\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+CONTINGENCY`)),
	num("preleasing_pct",
		c(0.01, `PRE[\s\-]LEASING\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `PRE[\s\-]LEASED\s*[:]\s*(\d+(?:\.\d+)?)\s*%`),
		c(0.01, `(\d+(?:\.\d+)?)\s*%\s+PRE[\s\-]LEASED`)),
	num("interest_reserve_months",
		c(1, `INTEREST\s+RESERVE\s*[:]\s*(\d+)\s*MONTHS?`),
		c(1, `CARRY\s*[:]\s*(\d+)\s*MONTHS?`),
		c(1, `(\d+)\s*MONTHS?\s+(?:OF\s+)?INTEREST\s+RESERVE`)),
}

var developmentTextFields = []textFieldSpec{
	text("general_contractor",
		`GENERAL\s+CONTRACTOR\s*[:]\s*([A-Z][A-Z\s&\.\-]+)`,
		`GC\s*[:]\s*([A-Z][A-Z\s&\.\-]+)`,
		`CONTRACTOR\s*[:]\s*([A-Z][A-Z\s&\.\-]+)`),
}

// Insurance & legal

var insuranceLegalFields = []fieldSpec{
	num("insurance_coverage_limit",
		c(1, `INSURANCE\s+COVERAGE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `LIABILITY\s+LIMIT\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `COVERAGE\s+LIMIT\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
	num("insurance_deductible",
		c(1, `DEDUCTIBLE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `INSURANCE\s+DEDUCTIBLE\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
}

var groundLeaseFields = []fieldSpec{
	num("ground_lease_term_years",
		c(1, `GROUND\s+LEASE\s+TERM\s*[:]\s*(\d+)\s*YEARS?`),
		c(1, `LEASE\s+EXPIRES?\s*[:]\s*(\d{4})`),
		c(1, `(\d+)\s*YEAR\s+GROUND\s+LEASE`)),
	num("ground_rent_annual",
		c(1, `GROUND\s+RENT\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`),
		c(1, `ANNUAL\s+GROUND\s+RENT\s*[:]\s*\$?\s*(\d+(?:\s*,\s*\d{3})*)`)),
}

// Keyword vocabularies and special-case patterns

var (
	leasingGateWords     = []string{"OFFICE", "RETAIL", "SHOPPING", "STRIP"}
	developmentGateWords = []string{"DEVELOPMENT", "CONSTRUCTION", "BUILD", "GROUND-UP", "GROUND - UP"}

	prepaymentTypes  = []string{"OPEN", "LOCKOUT", "YIELD MAINTENANCE", "DEFEASANCE"}
	contractTypes    = []string{"GMP", "GUARANTEED MAXIMUM PRICE", "COST-PLUS", "COST - PLUS", "COST PLUS", "DESIGN-BUILD", "DESIGN - BUILD", "DESIGN BUILD", "FIXED PRICE", "LUMP SUM"}
	litigationWords  = []string{"LITIGATION", "LAWSUIT", "LEGAL ACTION", "COURT", "DISPUTE"}
	permitKeywordRes []*regexp.Regexp
	permitKeywords   = []string{`PERMITS?\s+APPROVED`, `PERMITS?\s+IN\s+HAND`, `PERMITS?\s+OBTAINED`, `PERMITS?\s+PENDING`, `PERMITS?\s+IN\s+PROCESS`}

	cityStateZipRe = regexp.MustCompile(`([A-Z][A-Z\s]+)\s*,\s*([A-Z]{2})\s+(\d{5}(?:\-\d{4})?)`)
	tenantRosterRe = regexp.MustCompile(`([A-Z][A-Z\s&\.\-]+(?:LLC|INC|CORP|LP|LLP)?)\s*[\(\-]\s*(\d+(?:\s*,\s*\d{3})*)\s*(?:SF|SQ\.?\s*FT\.?)`)
	rateSpreadRe   = regexp.MustCompile(`(?i)(?:SOFR|LIBOR|PRIME|BASE\s+RATE)\s*\+\s*(\d+(?:\.\d+)?)\s*(?:%|BPS|BASIS\s+POINTS?)?`)
	extensionRe    = regexp.MustCompile(`(\d+)\s*[Xx]\s*(\d+)\s*MO(?:NTH)?S?\s+(?:EXTENSION|OPTION)`)
	deliveryRe     = regexp.MustCompile(`(?:DELIVERY|COMPLETION|COO?)\s*[:]\s*([QJF][1-4]?\s*\d{4}|\d{1,2}/\d{1,2}/\d{2,4}|[A-Z]+\s+\d{4})`)
)

func init() {
	for _, kw := range permitKeywords {
		permitKeywordRes = append(permitKeywordRes, regexp.MustCompile(kw))
	}
}

// Alias-driven fallback matching. A field the primary patterns miss gets one
// more chance through its label synonyms, matched as "LABEL : VALUE" pairs.

// synonymTarget binds an alias-table key to an extraction field and the unit
// multiplier for values quoted under that label
type synonymTarget struct {
	canonical string
	field     string
	mult      float64
}

var synonymTargets = []synonymTarget{
	{"purchase_price", "purchase_price", 1},
	{"noi", "noi", 1},
	{"loan_amount", "loan_amount", 1},
	{"cap_rate", "cap_rate", 0.01},
	{"interest_rate", "interest_rate", 0.01},
	{"dscr", "dscr", 1},
	{"ltv", "ltv_pct", 0.01},
	{"occupancy", "occupancy_pct", 0.01},
	{"walt", "walt_years", 1},
	{"square_feet", "building_sf", 1},
	{"keys", "keys", 1},
	{"adr", "adr", 1},
	{"revpar", "revpar", 1},
	{"clear_height", "clear_height_ft", 1},
	{"dock_doors", "dock_doors_count", 1},
	{"sales_psf", "sales_psf", 1},
	{"parking_ratio", "parking_ratio", 1},
}

// synonymValueRe compiles one label variant into a "LABEL : $VALUE" matcher.
// The label is normalized first so its spacing matches the prepared text.
func synonymValueRe(label string) *regexp.Regexp {
	expr := strings.ReplaceAll(regexp.QuoteMeta(Normalize(label)), " ", `\s+`)
	return regexp.MustCompile(`\b` + expr + `\s*[:=]?\s*\$?\s*(\d+(?:\s*,\s*\d{3})*(?:\.\d+)?)\s*(MM?|MILLION)?`)
}
