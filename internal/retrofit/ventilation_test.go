package retrofit

import (
	"testing"

	"retrofit-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCalcVentilationSingleStory(t *testing.T) {
	in := VentilationInput{
		FloorArea: "1800",
		Bedrooms:  "3",
		CFM50:     "2000",
		Stories:   "1",
	}
	res := CalcVentilation(in)

	require.InDelta(t, 84.0, res.Qtot, 0.001) // 0.03*1800 + 7.5*4
	require.InDelta(t, 57.67, res.Qinf, 0.01)
	require.InDelta(t, 26.33, res.Qfan, 0.01)
	require.Equal(t, 50.0, res.FanSetting)
	require.InDelta(t, 31.6, res.RuntimeMinutes, 0.01)
}

func TestCalcVentilationBlankBlowerDoorGetsNoCredit(t *testing.T) {
	in := VentilationInput{FloorArea: "1800", Bedrooms: "3"}
	res := CalcVentilation(in)

	require.Zero(t, res.Qinf)
	require.InDelta(t, res.Qtot, res.Qfan, 0.001)
}

func TestCalcVentilationHeightByStories(t *testing.T) {
	in := VentilationInput{FloorArea: "1800", Bedrooms: "3", CFM50: "2000"}

	in.Stories = "1"
	one := CalcVentilation(in).Qinf
	in.Stories = "1.5"
	oneHalf := CalcVentilation(in).Qinf
	in.Stories = "2"
	two := CalcVentilation(in).Qinf

	require.Less(t, one, oneHalf)
	require.Less(t, oneHalf, two)
}

func TestFixtureDeficits(t *testing.T) {
	in := VentilationInput{
		FloorArea: "1500",
		Bedrooms:  "2",
		Kitchen:   FixtureReading{CFM: "60"},
		Baths: [3]FixtureReading{
			{CFM: "0"},                  // fan measured at zero
			{CFM: "0", HasWindow: true}, // window supplies the flat credit
			{},                          // no fixture at all
		},
	}
	res := CalcVentilation(in)

	require.True(t, res.Kitchen.Present)
	require.InDelta(t, 40.0, res.Kitchen.Deficit, 0.001)

	require.True(t, res.Baths[0].Present)
	require.InDelta(t, 50.0, res.Baths[0].Deficit, 0.001)

	require.True(t, res.Baths[1].Present)
	require.InDelta(t, 20.0, res.Baths[1].Credit, 0.001)
	require.InDelta(t, 30.0, res.Baths[1].Deficit, 0.001)

	require.False(t, res.Baths[2].Present)
	require.Zero(t, res.Baths[2].Deficit)

	require.InDelta(t, 120.0, res.TotalDeficit, 0.001)
	require.InDelta(t, 30.0, res.Supplement, 0.001)
}

func TestFixtureCreditNeverExceedsRequirement(t *testing.T) {
	res := fixtureDeficit(FixtureReading{CFM: "140"}, kitchenRequired)
	require.Zero(t, res.Deficit, "overperforming fan has no negative deficit")
}

func TestWindowCreditOverridesMeasuredFlow(t *testing.T) {
	res := fixtureDeficit(FixtureReading{CFM: "90", HasWindow: true}, kitchenRequired)
	require.InDelta(t, 20.0, res.Credit, 0.001)
	require.InDelta(t, 80.0, res.Deficit, 0.001)
}

func TestRecommendedSetting(t *testing.T) {
	require.Equal(t, 50.0, recommendedSetting(0))
	require.Equal(t, 50.0, recommendedSetting(49))
	require.Equal(t, 50.0, recommendedSetting(50))
	require.Equal(t, 80.0, recommendedSetting(50.1))
	require.Equal(t, 80.0, recommendedSetting(80))
	require.Equal(t, 110.0, recommendedSetting(81))
	require.Equal(t, 110.0, recommendedSetting(200), "caps at the largest setting")
}

func TestRuntimeMinutes(t *testing.T) {
	require.InDelta(t, 52.5, runtimeMinutes(70, 80), 0.001)
	require.Zero(t, runtimeMinutes(-10, 50), "infiltration surplus needs no fan")
	require.Equal(t, 60.0, runtimeMinutes(200, 110), "never more than continuous")
}

func TestVentilationInputsSplitOnBlowerDoor(t *testing.T) {
	p := &models.RetrofitProject{Stories: "2"}
	p.Audit.FloorArea = "1800"
	p.Audit.Bedrooms = "3"
	p.Audit.PreCFM50 = "2750"
	p.Audit.KitchenFanCFM = "60"
	p.QAQC.PostCFM50 = "1900"

	pre, post := VentilationInputs(p)
	require.Equal(t, "2750", pre.CFM50)
	require.Equal(t, "1900", post.CFM50)
	require.Equal(t, pre.FloorArea, post.FloorArea)
	require.Equal(t, pre.Kitchen, post.Kitchen)

	preRes, postRes := CalcVentilation(pre), CalcVentilation(post)
	require.Greater(t, preRes.Qinf, postRes.Qinf, "tightened house earns less credit")
	require.Less(t, preRes.Qfan, postRes.Qfan)
}
