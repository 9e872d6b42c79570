package tracker

import (
	"testing"

	"retrofit-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

// 2026-08-28 is a Friday; all business-day math below keys off that.
func kpiFixture() []models.TrackerProject {
	return []models.TrackerProject{
		{
			// clean end-to-end closed job
			PublicID: "p1", Program: models.ProgramWHE, CustomerName: "Alice",
			Type: models.TypeComprehensive, Stage: StageClosed,
			LeadDate:             "2026-08-03",
			AssessmentDate:       "2026-08-05", // Wednesday
			RiseSubmitDate:       "2026-08-07", // Friday, 2 business days later
			RiApprovedDate:       "2026-08-10",
			InstallDate:          "2026-08-18",
			LastInstallDate:      "2026-08-20",
			InvoiceSubmittedDate: "2026-08-25",
			TotalJobPrice:        "$10,000",
		},
		{
			// slow RISE submission, permit pending, upcoming install
			PublicID: "p2", Program: models.ProgramWHE, CustomerName: "Bob",
			Type: models.TypeDeferred, Stage: StageScopeSubmitted,
			AssessmentDate:  "2026-08-18", // Tuesday
			RiseSubmitDate:  "2026-08-24", // Monday, 4 business days later
			NextInstallDate: "2026-09-02",
			TotalJobPrice:   "5,000",
			PermitStatus:    "Applied",
		},
		{
			// assessment done, RISE submission overdue, invoice overdue, on hold
			PublicID: "p3", Program: models.ProgramWHE, CustomerName: "Carol",
			Stage:           StageInstallComplete,
			AssessmentDate:  "2026-08-24", // Monday, 4 business days before today
			InstallDate:     "2026-08-19",
			LastInstallDate: "2026-08-20",
			Invoiceable:     true,
			TotalJobPrice:   "2000",
			OnHold:          true, HoldParty: "Customer",
		},
		{
			// different program, must not bleed into the WHE report
			PublicID: "p4", Program: models.ProgramHES, CustomerName: "Dave",
			Stage: StageLead, LeadDate: "2026-08-26", TotalJobPrice: "$99,999",
		},
	}
}

func TestProgramReportCounts(t *testing.T) {
	r := ProgramReport(kpiFixture(), models.ProgramWHE, testToday)

	require.Equal(t, models.ProgramWHE, r.Program)
	require.Equal(t, 3, r.Total)
	require.Equal(t, 1, r.Comprehensive)
	require.Equal(t, 1, r.Deferred)
	require.Equal(t, 1, r.Closed)
	require.NotNil(t, r.CompletionRate)
	require.Equal(t, 33, *r.CompletionRate)
}

func TestProgramReportCycleTimes(t *testing.T) {
	r := ProgramReport(kpiFixture(), models.ProgramWHE, testToday)

	require.NotNil(t, r.LeadToAssessDays)
	require.Equal(t, 2.0, *r.LeadToAssessDays)

	require.NotNil(t, r.AssessToRiseBizDays)
	require.Equal(t, 3.0, *r.AssessToRiseBizDays, "mean of 2 and 4 business days")

	require.NotNil(t, r.RiseToApprovalDays)
	require.Equal(t, 3.0, *r.RiseToApprovalDays)

	require.NotNil(t, r.ApprovalToInstallDays)
	require.Equal(t, 10.0, *r.ApprovalToInstallDays)

	require.NotNil(t, r.InstallToInvoiceDays)
	require.Equal(t, 5.0, *r.InstallToInvoiceDays)

	require.NotNil(t, r.LeadToCloseDays)
	require.Equal(t, 22, *r.LeadToCloseDays)
	require.NotNil(t, r.AssessToCloseDays)
	require.Equal(t, 20, *r.AssessToCloseDays)
}

func TestProgramReportRise48Compliance(t *testing.T) {
	r := ProgramReport(kpiFixture(), models.ProgramWHE, testToday)

	require.NotNil(t, r.Rise48Rate)
	require.Equal(t, 50, *r.Rise48Rate, "one of two tracked submissions made the window")
	require.Equal(t, []string{"Carol"}, r.Rise48Overdue)
}

func TestProgramReportRevenueAndInvoices(t *testing.T) {
	r := ProgramReport(kpiFixture(), models.ProgramWHE, testToday)

	require.Equal(t, 1, r.OverdueInvoices)
	require.InDelta(t, 17000.0, r.TotalRevenue, 0.001)
	require.InDelta(t, 2000.0, r.InvoiceableRevenue, 0.001)
}

func TestProgramReportInstallAndHoldTracking(t *testing.T) {
	r := ProgramReport(kpiFixture(), models.ProgramWHE, testToday)

	require.Equal(t, 2, r.Installed)
	require.Equal(t, 1, r.PendingInstall)
	require.Equal(t, 1, r.Invoiced)
	require.Equal(t, 1, r.NeedsInvoice)
	require.Equal(t, 1, r.PermitPending)
	require.Equal(t, 1, r.OnHold)
	require.Equal(t, 1, r.CustomerWait)

	require.Len(t, r.Upcoming, 1)
	require.Equal(t, "Bob", r.Upcoming[0].CustomerName)
	require.Equal(t, "2026-09-02", r.Upcoming[0].NextInstallDate)
}

func TestProgramReportEmptyProgram(t *testing.T) {
	r := ProgramReport(kpiFixture(), models.ProgramASI, testToday)

	require.Zero(t, r.Total)
	require.Nil(t, r.LeadToAssessDays)
	require.Nil(t, r.Rise48Rate)
	require.Nil(t, r.CompletionRate)
	require.Empty(t, r.Rise48Overdue)
	require.Empty(t, r.Upcoming)
}

func TestProgramReportUpcomingCapAndOrder(t *testing.T) {
	var ps []models.TrackerProject
	dates := []string{"2026-09-07", "2026-09-01", "2026-09-04", "2026-09-02", "2026-09-06", "2026-09-03"}
	for i, d := range dates {
		ps = append(ps, models.TrackerProject{
			PublicID: string(rune('a' + i)), Program: models.ProgramASI,
			CustomerName: d, NextInstallDate: d,
		})
	}

	r := ProgramReport(ps, models.ProgramASI, testToday)
	require.Len(t, r.Upcoming, 5)
	require.Equal(t, "2026-09-01", r.Upcoming[0].NextInstallDate)
	require.Equal(t, "2026-09-06", r.Upcoming[4].NextInstallDate)
}

func TestFunnel(t *testing.T) {
	counts := Funnel(kpiFixture())
	require.Len(t, counts, len(Stages))

	byStage := map[string]int{}
	for _, c := range counts {
		byStage[c.Stage] = c.Count
	}
	require.Equal(t, 1, byStage[StageLead])
	require.Equal(t, 1, byStage[StageScopeSubmitted])
	require.Equal(t, 1, byStage[StageInstallComplete])
	require.Equal(t, 1, byStage[StageClosed])
	require.Zero(t, byStage[StageRIApproved])
}

func TestRiseBadge(t *testing.T) {
	p := &models.TrackerProject{}
	require.Empty(t, RiseBadge(p, testToday), "no assessment yet")

	p.AssessmentDate = "2026-08-05"
	p.RiseSubmitDate = "2026-08-05"
	require.Equal(t, "same day", RiseBadge(p, testToday))

	p.RiseSubmitDate = "2026-08-07"
	require.Equal(t, "2 bd", RiseBadge(p, testToday))

	p.RiseSubmitDate = "2026-08-12"
	require.Equal(t, "5 bd (late)", RiseBadge(p, testToday))

	p.RiseSubmitDate = ""
	p.AssessmentDate = "2026-08-27" // Thursday, one business day before today
	require.Equal(t, "due", RiseBadge(p, testToday))

	p.AssessmentDate = "2026-08-24"
	require.Equal(t, "overdue (4 bd)", RiseBadge(p, testToday))
}

func TestParseMoney(t *testing.T) {
	require.Equal(t, 14250.0, parseMoney("$14,250"))
	require.Equal(t, 6800.5, parseMoney(" 6,800.50 "))
	require.Zero(t, parseMoney(""))
	require.Zero(t, parseMoney("TBD"))
}
