package tracker

import (
	"testing"

	"retrofit-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

const testToday = "2026-08-28"

func TestAutoStagePrecedence(t *testing.T) {
	p := &models.TrackerProject{}
	p.LeadDate = "2026-07-02"
	require.Equal(t, StageLead, AutoStage(p, testToday))

	p.AssessmentDate = "2026-09-10"
	require.Equal(t, StageAssessScheduled, AutoStage(p, testToday), "future assessment")

	p.AssessmentDate = "2026-08-12"
	require.Equal(t, StageAssessComplete, AutoStage(p, testToday), "past assessment")

	p.RiseSubmitDate = "2026-08-13"
	require.Equal(t, StageScopeSubmitted, AutoStage(p, testToday))

	p.RiApprovedDate = "2026-08-18"
	require.Equal(t, StageRIApproved, AutoStage(p, testToday))

	p.NextInstallDate = "2026-09-03"
	require.Equal(t, StageInstallScheduled, AutoStage(p, testToday))

	p.LastInstallDate = "2026-09-05"
	require.Equal(t, StageInstallScheduled, AutoStage(p, testToday), "last install still upcoming")

	p.LastInstallDate = "2026-08-25"
	require.Equal(t, StageInstallComplete, AutoStage(p, testToday))

	p.InvoiceSubmittedDate = "2026-08-27"
	require.Equal(t, StageClosed, AutoStage(p, testToday))
}

func TestAutoStageAssessmentTodayIsScheduled(t *testing.T) {
	p := &models.TrackerProject{AssessmentDate: testToday}
	require.Equal(t, StageAssessScheduled, AutoStage(p, testToday))
}

func TestAutoStageFallback(t *testing.T) {
	p := &models.TrackerProject{Stage: StageRIApproved}
	require.Equal(t, StageRIApproved, AutoStage(p, testToday), "no dates keeps the stored stage")
}

func TestApplyAutoStage(t *testing.T) {
	p := &models.TrackerProject{
		Stage:        StageLead,
		LeadDate:     "2026-07-02",
		StageHistory: models.TrackerStageLog{{Stage: StageLead, Date: "2026-07-02"}},
	}

	require.False(t, ApplyAutoStage(p, testToday), "nothing changed")
	require.Len(t, p.StageHistory, 1)

	p.AssessmentDate = "2026-08-12"
	require.True(t, ApplyAutoStage(p, testToday))
	require.Equal(t, StageAssessComplete, p.Stage)
	require.Len(t, p.StageHistory, 2)
	require.Equal(t, models.TrackerStageEntry{Stage: StageAssessComplete, Date: testToday},
		p.StageHistory[1])

	require.False(t, ApplyAutoStage(p, testToday), "idempotent on re-run")
	require.Len(t, p.StageHistory, 2)
}
