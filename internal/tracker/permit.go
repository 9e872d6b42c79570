package tracker

import (
	"fmt"

	"retrofit-tracker/internal/models"
)

// PermitStatuses in ladder order; "N/A" sits outside the ladder.
var PermitStatuses = []string{
	"N/A",
	"Not Applied",
	"Applied",
	"Approved",
	"Issued",
	"Final Inspection",
	"Closed",
}

var permitLadder = []string{"Not Applied", "Applied", "Approved", "Issued", "Final Inspection", "Closed"}

func permitStageIndex(status string) int {
	for i, s := range permitLadder {
		if s == status {
			return i
		}
	}
	return -1
}

// PermitProgress returns percent complete through the permit ladder.
func PermitProgress(status string) int {
	if status == "N/A" {
		return 0
	}
	idx := permitStageIndex(status)
	if idx < 0 {
		return 0
	}
	return int(float64(idx+1)/float64(len(permitLadder))*100 + 0.5)
}

// PermitPending reports whether a permit is applied for but not yet issued.
func PermitPending(status string) bool {
	return status == "Applied" || status == "Approved"
}

// Aging thresholds in calendar days.
const (
	permitIssueAgingDays      = 14
	permitInspectionAgingDays = 30
)

// PermitAging returns aging notices for a project's permit: applied too long
// without issuance, or issued too long without inspection.
func PermitAging(p *models.TrackerProject, today string) []string {
	var notes []string
	if p.PermitAppliedDate != "" && p.PermitIssuedDate == "" {
		if d, ok := DaysSince(p.PermitAppliedDate, today); ok && d > permitIssueAgingDays {
			notes = append(notes, fmt.Sprintf("%d days since applied, not yet issued", d))
		}
	}
	if p.PermitIssuedDate != "" && p.PermitInspectionDate == "" && p.PermitStatus != "Closed" {
		if d, ok := DaysSince(p.PermitIssuedDate, today); ok && d > permitInspectionAgingDays {
			notes = append(notes, fmt.Sprintf("%d days since issued, inspection pending", d))
		}
	}
	return notes
}
