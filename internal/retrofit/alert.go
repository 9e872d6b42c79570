package retrofit

import (
	"fmt"

	"retrofit-tracker/internal/models"
)

type AlertType string

const (
	AlertAdvance  AlertType = "advance"
	AlertReminder AlertType = "reminder"
	AlertWarning  AlertType = "warning"
)

type Alert struct {
	Type        AlertType `json:"type"`
	Message     string    `json:"message"`
	TargetStage *int      `json:"targetStage,omitempty"`
}

// Alerts derives the advisory notices for a project. Rules are independent
// and non-exclusive; several can fire at once. Recomputed on every access.
func Alerts(p *models.RetrofitProject) []Alert {
	alerts := []Alert{}

	if inferred := InferStage(p); inferred > p.CurrentStage {
		target := inferred
		alerts = append(alerts, Alert{
			Type:        AlertAdvance,
			Message:     fmt.Sprintf("Ready to advance to %s", StageName(inferred)),
			TargetStage: &target,
		})
	}

	if p.CustomerName != "" && p.Address != "" &&
		!p.Audit.AssessmentScheduled && p.Audit.AssessmentDate == "" &&
		p.CurrentStage < StageAssess {
		alerts = append(alerts, Alert{
			Type:    AlertReminder,
			Message: "Needs assessment scheduling",
		})
	}

	if p.Scope.ScopeApproved &&
		!p.Scope.InstallScheduled && p.Scope.InstallDate == "" &&
		p.CurrentStage < StageInstall {
		alerts = append(alerts, Alert{
			Type:    AlertReminder,
			Message: "Needs install scheduling",
		})
	}

	if p.Scope.RiseStatus == RiseCorrections {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Message: "RISE returned corrections on the submitted scope",
		})
	}

	if p.Scope.MechReplaceNeeded && p.Scope.MechStatus == "" {
		alerts = append(alerts, Alert{
			Type:    AlertWarning,
			Message: "Mechanical replacement decision needed but has no status",
		})
	}

	if n := pendingChangeOrders(p); n > 0 {
		alerts = append(alerts, Alert{
			Type:    AlertReminder,
			Message: fmt.Sprintf("%d pending change order(s)", n),
		})
	}

	return alerts
}

func pendingChangeOrders(p *models.RetrofitProject) int {
	n := 0
	for _, co := range p.ChangeOrders {
		if co.Status == "pending" {
			n++
		}
	}
	return n
}
