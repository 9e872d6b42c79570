package retrofit

import (
	"math"
	"strings"

	"retrofit-tracker/internal/models"
)

// ASHRAE 62.2-2016 constants.
const (
	wsf             = 0.56 // weather/shielding infiltration factor
	infilCoeff      = 0.052
	refHeight       = 8.2 // ft, normalization height in the infiltration credit
	areaRate        = 0.03
	bedroomRate     = 7.5
	kitchenRequired = 100.0 // CFM
	bathRequired    = 50.0  // CFM
	windowCredit    = 20.0  // flat CFM credit for an operable window
	intermittentFac = 0.25  // intermittent-to-continuous conversion
)

// FanSettings are the discrete capacities of the continuous ventilation fan.
var FanSettings = []float64{50, 80, 110}

type FixtureReading struct {
	CFM       string `json:"cfm"` // blank means no fan installed, "0" means fan measured zero
	HasWindow bool   `json:"hasWindow"`
}

type FixtureResult struct {
	Present  bool    `json:"present"`
	Required float64 `json:"required"`
	Credit   float64 `json:"credit"`
	Deficit  float64 `json:"deficit"`
}

type VentilationInput struct {
	FloorArea string            `json:"floorArea"`
	Bedrooms  string            `json:"bedrooms"`
	CFM50     string            `json:"cfm50"`
	Stories   string            `json:"stories"`
	Kitchen   FixtureReading    `json:"kitchen"`
	Baths     [3]FixtureReading `json:"baths"`
}

type VentilationResult struct {
	Qtot           float64          `json:"qtot"` // total required ventilation, CFM
	Qinf           float64          `json:"qinf"` // infiltration credit, CFM
	Qfan           float64          `json:"qfan"` // required continuous fan flow, CFM
	TotalDeficit   float64          `json:"totalDeficit"`
	Supplement     float64          `json:"supplement"`
	Kitchen        FixtureResult    `json:"kitchen"`
	Baths          [3]FixtureResult `json:"baths"`
	FanSetting     float64          `json:"fanSetting"`     // recommended discrete capacity
	RuntimeMinutes float64          `json:"runtimeMinutes"` // minutes per hour at that capacity
}

// CalcVentilation evaluates the ASHRAE 62.2-2016 formula set. Pure
// arithmetic; blank inputs read as absent, never as errors.
func CalcVentilation(in VentilationInput) VentilationResult {
	var res VentilationResult

	res.Qtot = areaRate*num(in.FloorArea) + bedroomRate*(num(in.Bedrooms)+1)

	if strings.TrimSpace(in.CFM50) != "" {
		h := dwellingHeight(num(in.Stories))
		res.Qinf = infilCoeff * num(in.CFM50) * wsf * math.Pow(h/refHeight, 0.4)
	}

	res.Kitchen = fixtureDeficit(in.Kitchen, kitchenRequired)
	res.TotalDeficit = res.Kitchen.Deficit
	for i, b := range in.Baths {
		res.Baths[i] = fixtureDeficit(b, bathRequired)
		res.TotalDeficit += res.Baths[i].Deficit
	}

	res.Supplement = res.TotalDeficit * intermittentFac
	res.Qfan = res.Qtot + res.Supplement - res.Qinf

	res.FanSetting = recommendedSetting(res.Qfan)
	res.RuntimeMinutes = runtimeMinutes(res.Qfan, res.FanSetting)
	return res
}

// VentilationInputs builds the pre- and post-retrofit calculator inputs from
// a project record; only the blower door reading differs between the two.
func VentilationInputs(p *models.RetrofitProject) (pre, post VentilationInput) {
	base := VentilationInput{
		FloorArea: p.Audit.FloorArea,
		Bedrooms:  p.Audit.Bedrooms,
		Stories:   p.Stories,
		Kitchen:   FixtureReading{CFM: p.Audit.KitchenFanCFM, HasWindow: p.Audit.KitchenWindow},
		Baths: [3]FixtureReading{
			{CFM: p.Audit.Bath1FanCFM, HasWindow: p.Audit.Bath1Window},
			{CFM: p.Audit.Bath2FanCFM, HasWindow: p.Audit.Bath2Window},
			{CFM: p.Audit.Bath3FanCFM, HasWindow: p.Audit.Bath3Window},
		},
	}
	pre, post = base, base
	pre.CFM50 = p.Audit.PreCFM50
	post.CFM50 = p.QAQC.PostCFM50
	return pre, post
}

func dwellingHeight(stories float64) float64 {
	switch {
	case stories >= 2:
		return 16
	case stories >= 1.5:
		return 14
	default:
		return 8
	}
}

// fixtureDeficit applies the per-fixture exhaust requirement. A blank
// reading means no fan is installed and no requirement applies; a literal
// zero reading means a fan exists and the full requirement is unmet. An
// operable window yields the flat 20 CFM credit regardless of measured flow.
func fixtureDeficit(r FixtureReading, required float64) FixtureResult {
	if strings.TrimSpace(r.CFM) == "" {
		return FixtureResult{}
	}
	credit := num(r.CFM)
	if r.HasWindow {
		credit = windowCredit
	}
	return FixtureResult{
		Present:  true,
		Required: required,
		Credit:   credit,
		Deficit:  math.Max(0, required-credit),
	}
}

// recommendedSetting picks the lowest discrete capacity covering qfan, or
// the largest when none does.
func recommendedSetting(qfan float64) float64 {
	for _, s := range FanSettings {
		if s >= qfan {
			return s
		}
	}
	return FanSettings[len(FanSettings)-1]
}

func runtimeMinutes(qfan, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	m := math.Round(qfan/capacity*60*100) / 100
	if m < 0 {
		return 0
	}
	if m > 60 {
		return 60
	}
	return m
}
