package retrofit

import (
	"math"
	"strconv"
	"strings"

	"retrofit-tracker/internal/models"
)

// Measure names are a fixed catalog; quantities and units key off the exact
// strings, so these must not drift.
const (
	MeasureAtticR11       = "Attic Insulation (0-R11)"
	MeasureAtticR19       = "Attic Insulation (R12-19)"
	MeasureBasementWall   = "Basement Wall Insulation"
	MeasureCrawlWall      = "Crawl Space Wall Insulation"
	MeasureKneeWall       = "Knee Wall Insulation"
	MeasureInjectionFoam  = "Injection Foam Walls"
	MeasureRimJoist       = "Rim Joist Insulation"
	MeasureFurnace        = "Furnace Replacement"
	MeasureBoiler         = "Boiler Replacement"
	MeasureWaterHeater    = "Water Heater Replacement"
	MeasureCentralAC      = "Central AC Replacement"
	MeasureAirSealing     = "Air Sealing"
	MeasureDuctSealing    = "Duct Sealing"
	MeasureCODetectors    = "CO Detectors"
	MeasureSmokeDetectors = "Smoke Detectors"
	MeasureDoorSweeps     = "Door Sweeps"
	MeasureFlueRepair     = "Flue Repair"
)

// Net factors for injection foam wall sections, modeling window/door area
// deducted from gross square footage.
const (
	foamNetFactorFloor1 = 0.84
	foamNetFactorFloor2 = 0.86
)

// Catalog lists every selectable measure. Measures without an auto rule are
// quantified by hand through the override map.
var Catalog = []string{
	MeasureAtticR11,
	MeasureAtticR19,
	MeasureBasementWall,
	MeasureCrawlWall,
	MeasureKneeWall,
	MeasureInjectionFoam,
	MeasureRimJoist,
	"Wall Insulation (Dense Pack)",
	"Floor Insulation",
	"Duct Insulation",
	"Pipe Insulation",
	"Attic Hatch Insulation",
	MeasureFurnace,
	MeasureBoiler,
	MeasureWaterHeater,
	MeasureCentralAC,
	"Heat Pump Installation",
	"Thermostat",
	MeasureAirSealing,
	MeasureDuctSealing,
	"Weatherstripping",
	MeasureDoorSweeps,
	"Bath Exhaust Fan",
	"Kitchen Exhaust Fan",
	"Dryer Vent",
	"Crawl Vapor Barrier",
}

// HealthSafetyCatalog lists the health & safety items tracked separately
// from the retrofit measures.
var HealthSafetyCatalog = []string{
	MeasureCODetectors,
	MeasureSmokeDetectors,
	MeasureFlueRepair,
	"Knob & Tube Remediation",
	"Electrical Repair",
	"Gas Leak Repair",
	"Mold Remediation",
	"Asbestos Abatement",
}

// ResolveQuantity resolves the displayed quantity for a measure: an explicit
// user override wins, else the auto rule's default if it fires, else empty.
// There is no stored canonical value; this runs on every read.
func ResolveQuantity(p *models.RetrofitProject, measure string) string {
	if v, ok := p.MeasureQty[measure]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if q, ok := AutoQuantities(&p.Scope)[measure]; ok {
		return q
	}
	return ""
}

// AutoQuantities evaluates the trigger rules against the scope form and
// returns defaults for every measure whose rule fires. All parsing is
// permissive: blank or junk input reads as zero and a rule simply does not
// fire; nothing here errors.
func AutoQuantities(s *models.ScopeRecord) map[string]string {
	q := map[string]string{}
	add := func(measure string, n float64) {
		q[measure] = fmtQty(num(q[measure]) + n)
	}

	// Attic: bucket by pre-existing R against the 11/19 thresholds.
	if num(s.AtticAddR) > 0 && strings.TrimSpace(s.AtticSqft) != "" {
		preR := num(s.AtticPreR)
		switch {
		case preR <= 11:
			add(MeasureAtticR11, num(s.AtticSqft))
		case preR <= 19:
			add(MeasureAtticR19, num(s.AtticSqft))
		}
	}

	// Collar beam and outer ceiling joists both land in the R12-19 bucket.
	if num(s.CollarAddR) > 0 {
		add(MeasureAtticR19, num(s.CollarSqft))
	}
	if num(s.OuterJoistAddR) > 0 {
		add(MeasureAtticR19, num(s.OuterJoistSqft))
	}

	if bsmt := num(s.BasementAboveSqft) + num(s.BasementBelowSqft); num(s.BasementAddR) > 0 ||
		(num(s.BasementPreR) == 0 && bsmt > 0) {
		if bsmt > 0 {
			add(MeasureBasementWall, bsmt)
		}
	}

	if crawl := num(s.CrawlAboveSqft) + num(s.CrawlBelowSqft); num(s.CrawlPreR) == 0 && crawl > 0 {
		add(MeasureCrawlWall, crawl)
	}

	if num(s.KneeAddR) > 0 && strings.TrimSpace(s.KneeSqft) != "" {
		add(MeasureKneeWall, num(s.KneeSqft))
	}

	// Injection foam: two independent wall sections, each net of openings.
	foam := 0.0
	if num(s.ExtWall1AddR) > 0 {
		foam += math.Round(num(s.ExtWall1Sqft) * foamNetFactorFloor1)
	}
	if num(s.ExtWall2AddR) > 0 {
		foam += math.Round(num(s.ExtWall2Sqft) * foamNetFactorFloor2)
	}
	if foam > 0 {
		add(MeasureInjectionFoam, foam)
	}

	// Rim joist: main band and crawl band sum into one total.
	rim := 0.0
	if s.RimAccess && num(s.RimPreR) == 0 {
		rim += num(s.RimLF)
	}
	if s.CrawlRimAccess && num(s.CrawlRimPreR) == 0 {
		rim += num(s.CrawlRimLF)
	}
	if rim > 0 {
		add(MeasureRimJoist, rim)
	}

	if s.HeatingReplace {
		if s.HeatingType == "Boiler" {
			add(MeasureBoiler, 1)
		} else {
			add(MeasureFurnace, 1)
		}
	}
	if s.WaterHeaterReplace {
		add(MeasureWaterHeater, 1)
	}
	if s.CentralACReplace {
		add(MeasureCentralAC, 1)
	}

	// Every project gets air sealed.
	add(MeasureAirSealing, 1)

	if s.DuctsInAttic || s.DuctsInCollar || s.DuctsInCrawl {
		add(MeasureDuctSealing, 1)
	}

	if n := num(s.CODetectorsNeeded); n > 0 {
		add(MeasureCODetectors, n)
	}
	if n := num(s.SmokeDetectorsNeeded); n > 0 {
		add(MeasureSmokeDetectors, n)
	}
	if n := num(s.DoorSweepsNeeded); n > 0 {
		add(MeasureDoorSweeps, n)
	}

	if s.FlueRepair {
		add(MeasureFlueRepair, 1)
	}

	return q
}

// UnitFor derives the display unit from the measure name.
func UnitFor(measure string) string {
	switch {
	case strings.Contains(measure, "Rim Joist"):
		return "ln ft"
	case strings.Contains(measure, "Insulation"):
		return "sq ft"
	case strings.Contains(measure, "Foam Walls"):
		return "sq ft"
	default:
		return "each"
	}
}

// num coerces a form value to a number, zero on anything unparseable.
func num(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func fmtQty(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
