package tracker

import "retrofit-tracker/internal/models"

// Stages is the ordered ladder for WHE SF and HES IE projects. ASI projects
// carry a stage value but it is not surfaced.
var Stages = []string{
	"Lead",
	"Assessment Scheduled",
	"Assessment Complete",
	"Scope Submitted to RISE",
	"RI Approved",
	"Install Scheduled",
	"Install Complete",
	"Closed",
}

const (
	StageLead             = "Lead"
	StageAssessScheduled  = "Assessment Scheduled"
	StageAssessComplete   = "Assessment Complete"
	StageScopeSubmitted   = "Scope Submitted to RISE"
	StageRIApproved       = "RI Approved"
	StageInstallScheduled = "Install Scheduled"
	StageInstallComplete  = "Install Complete"
	StageClosed           = "Closed"
)

// AutoStage infers the stage from the dates entered on a project. today is
// the caller's ISO date so the "install complete" and "assessment complete"
// cutoffs are testable. Falls back to the stored stage when no date is set.
func AutoStage(p *models.TrackerProject, today string) string {
	switch {
	case p.InvoiceSubmittedDate != "":
		return StageClosed
	case p.LastInstallDate != "" && p.LastInstallDate <= today:
		return StageInstallComplete
	case p.InstallDate != "" || p.NextInstallDate != "" || p.LastInstallDate != "":
		return StageInstallScheduled
	case p.RiApprovedDate != "":
		return StageRIApproved
	case p.RiseSubmitDate != "":
		return StageScopeSubmitted
	case p.AssessmentDate != "":
		if p.AssessmentDate < today {
			return StageAssessComplete
		}
		return StageAssessScheduled
	case p.LeadDate != "":
		return StageLead
	}
	return p.Stage
}

// ApplyAutoStage recomputes the stage and appends to the stage history when
// it changed. Returns true when the project was modified.
func ApplyAutoStage(p *models.TrackerProject, today string) bool {
	next := AutoStage(p, today)
	if next == p.Stage {
		return false
	}
	p.Stage = next
	p.StageHistory = append(p.StageHistory, models.TrackerStageEntry{Stage: next, Date: today})
	return true
}
