package retrofit

import (
	"strings"

	"retrofit-tracker/internal/models"
)

// Workflow stages, ordered. A project is terminal at Closeout.
const (
	StageIntake = iota
	StageSchedule
	StageAssess
	StageScope
	StageApprove
	StageInstall
	StagePostQC
	StageCloseout
)

var StageNames = [...]string{
	"Intake",
	"Schedule",
	"Assess",
	"Scope",
	"Approve",
	"Install",
	"Post-QC",
	"Closeout",
}

func StageName(stage int) string {
	if stage < 0 || stage >= len(StageNames) {
		return "Unknown"
	}
	return StageNames[stage]
}

// InferStage computes the stage a project's current field values put it in.
// Predicates run from most complete to least complete; the first match wins.
// Blanking a field can legitimately move the result backward — callers decide
// whether to accept a regression.
func InferStage(p *models.RetrofitProject) int {
	if p.FI.FinalPassed && p.FI.CustomerSignoff && p.FI.PaymentSubmitted {
		return StageCloseout
	}
	if strings.TrimSpace(p.QAQC.PostCFM50) != "" {
		return StagePostQC
	}
	if p.Scope.InstallScheduled && p.Scope.InstallDate != "" {
		return StageInstall
	}
	// A pending mechanical-replacement decision is a sub-state of Approve;
	// only the alerts differ.
	if p.Scope.ScopeApproved || p.Scope.RiseStatus == RiseApproved {
		return StageApprove
	}
	if p.Scope.RiseStatus == RisePending ||
		len(p.Measures) > 0 ||
		strings.TrimSpace(p.Audit.PreCFM50) != "" ||
		filledPhotoSlots(p) > 5 {
		return StageScope
	}
	if p.Audit.AssessmentScheduled || p.Audit.AssessmentDate != "" {
		return StageAssess
	}
	if p.CustomerName != "" && p.Address != "" {
		return StageSchedule
	}
	return StageIntake
}

// RISE submission statuses tracked as opaque strings from the administrator.
const (
	RisePending     = "pending"
	RiseApproved    = "approved"
	RiseCorrections = "corrections"
)

func filledPhotoSlots(p *models.RetrofitProject) int {
	n := 0
	for _, photos := range p.Photos {
		if len(photos) > 0 {
			n++
		}
	}
	return n
}
