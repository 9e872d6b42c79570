package retrofit

import (
	"testing"

	"retrofit-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

func alertMessages(alerts []Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Message)
	}
	return out
}

func TestAlertsAdvanceSuggestion(t *testing.T) {
	p := &models.RetrofitProject{CustomerName: "A", Address: "B", CurrentStage: StageIntake}
	p.Audit.AssessmentScheduled = true

	alerts := Alerts(p)
	require.NotEmpty(t, alerts)
	require.Equal(t, AlertAdvance, alerts[0].Type)
	require.Equal(t, "Ready to advance to Assess", alerts[0].Message)
	require.NotNil(t, alerts[0].TargetStage)
	require.Equal(t, StageAssess, *alerts[0].TargetStage)
}

func TestAlertsNoAdvanceWhenCaughtUp(t *testing.T) {
	p := &models.RetrofitProject{CustomerName: "A", Address: "B", CurrentStage: StageAssess}
	p.Audit.AssessmentScheduled = true

	for _, a := range Alerts(p) {
		require.NotEqual(t, AlertAdvance, a.Type)
	}
}

func TestAlertsNeedsAssessmentScheduling(t *testing.T) {
	p := &models.RetrofitProject{CustomerName: "A", Address: "B", CurrentStage: StageSchedule}
	require.Contains(t, alertMessages(Alerts(p)), "Needs assessment scheduling")

	p.Audit.AssessmentScheduled = true
	require.NotContains(t, alertMessages(Alerts(p)), "Needs assessment scheduling")
}

func TestAlertsNeedsInstallScheduling(t *testing.T) {
	p := &models.RetrofitProject{CustomerName: "A", Address: "B", CurrentStage: StageApprove}
	p.Audit.AssessmentScheduled = true
	p.Scope.ScopeApproved = true
	require.Contains(t, alertMessages(Alerts(p)), "Needs install scheduling")

	p.Scope.InstallDate = "2026-09-03"
	require.NotContains(t, alertMessages(Alerts(p)), "Needs install scheduling")
}

func TestAlertsRiseCorrections(t *testing.T) {
	p := &models.RetrofitProject{CurrentStage: StageScope}
	p.Scope.RiseStatus = RiseCorrections

	msgs := alertMessages(Alerts(p))
	require.Contains(t, msgs, "RISE returned corrections on the submitted scope")
}

func TestAlertsMechStatusMissing(t *testing.T) {
	p := &models.RetrofitProject{CurrentStage: StageApprove}
	p.Scope.MechReplaceNeeded = true
	require.Contains(t, alertMessages(Alerts(p)),
		"Mechanical replacement decision needed but has no status")

	p.Scope.MechStatus = "quoted"
	require.NotContains(t, alertMessages(Alerts(p)),
		"Mechanical replacement decision needed but has no status")
}

func TestAlertsPendingChangeOrders(t *testing.T) {
	p := &models.RetrofitProject{CurrentStage: StageInstall}
	p.Scope.InstallScheduled = true
	p.Scope.InstallDate = "2026-09-03"
	p.ChangeOrders = models.ChangeOrderList{
		{ID: "1", Status: "pending"},
		{ID: "2", Status: "approved"},
		{ID: "3", Status: "pending"},
	}

	require.Contains(t, alertMessages(Alerts(p)), "2 pending change order(s)")
}

func TestAlertsIndependentRulesStack(t *testing.T) {
	p := &models.RetrofitProject{CustomerName: "A", Address: "B", CurrentStage: StageScope}
	p.Scope.RiseStatus = RiseCorrections
	p.Scope.MechReplaceNeeded = true

	msgs := alertMessages(Alerts(p))
	require.Contains(t, msgs, "RISE returned corrections on the submitted scope")
	require.Contains(t, msgs, "Mechanical replacement decision needed but has no status")
}
