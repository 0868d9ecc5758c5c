package metrics

import (
	"math"

	"github.com/crelens/dealsense/internal/model"
)

// CashFlows projects annual after-debt-service cash flows over the hold
// period, with net sale proceeds folded into the final year. Returns nil
// when NOI is unknown.
func (c *Calculator) CashFlows(fields map[string]model.ExtractedField, derived map[string]model.DerivedMetric) []float64 {
	d := &derivation{fields: fields, out: derived}

	noi, ok := d.num("noi")
	if !ok {
		return nil
	}
	hold := int(d.numOr("hold_period_years", c.cfg.DefaultHoldYears))
	if hold <= 0 {
		return nil
	}
	ads, _ := d.derived("annual_debt_service")

	flows := make([]float64, 0, hold)
	for year := 1; year <= hold; year++ {
		annualNOI := noi * math.Pow(1+c.cfg.NOIGrowthRate, float64(year))
		flows = append(flows, annualNOI-ads)
	}
	if proceeds, ok := d.derived("net_sale_proceeds"); ok {
		flows[len(flows)-1] += proceeds
	}
	return flows
}
