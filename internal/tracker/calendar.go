package tracker

import "retrofit-tracker/internal/models"

// Event types extracted from a project's date fields, in display order.
var EventTypes = []string{
	"lead",
	"assessment",
	"riseSubmit",
	"riApproved",
	"install",
	"lastInstall",
	"nextInstall",
	"invoice",
	"permitApplied",
	"permitIssued",
	"permitInspection",
	"permitClosed",
}

var eventLabels = map[string]string{
	"lead":             "Lead",
	"assessment":       "Assessment",
	"riseSubmit":       "RISE Submitted",
	"riApproved":       "RI Approved",
	"install":          "Install",
	"lastInstall":      "Last Install",
	"nextInstall":      "Next Install",
	"invoice":          "Invoice Submitted",
	"permitApplied":    "Permit Applied",
	"permitIssued":     "Permit Issued",
	"permitInspection": "Permit Inspection",
	"permitClosed":     "Permit Closed",
}

func EventLabel(eventType string) string { return eventLabels[eventType] }

type Event struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	ProjectID    string `json:"projectId"`
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Program      string `json:"program"`
	Stage        string `json:"stage"`
}

// Events extracts typed calendar events from every set date field.
// program filters to one program when non-empty; types, when non-empty,
// whitelists event types.
func Events(projects []models.TrackerProject, program string, types map[string]bool) []Event {
	var events []Event
	for i := range projects {
		p := &projects[i]
		if program != "" && p.Program != program {
			continue
		}
		for _, f := range []struct {
			date string
			typ  string
		}{
			{p.LeadDate, "lead"},
			{p.AssessmentDate, "assessment"},
			{p.RiseSubmitDate, "riseSubmit"},
			{p.RiApprovedDate, "riApproved"},
			{p.InstallDate, "install"},
			{p.LastInstallDate, "lastInstall"},
			{p.NextInstallDate, "nextInstall"},
			{p.InvoiceSubmittedDate, "invoice"},
			{p.PermitAppliedDate, "permitApplied"},
			{p.PermitIssuedDate, "permitIssued"},
			{p.PermitInspectionDate, "permitInspection"},
			{p.PermitClosedDate, "permitClosed"},
		} {
			if f.date == "" {
				continue
			}
			if types != nil && !types[f.typ] {
				continue
			}
			name := p.CustomerName
			if name == "" {
				name = "Unnamed"
			}
			events = append(events, Event{
				Date:         f.date,
				Type:         f.typ,
				ProjectID:    p.PublicID,
				CustomerName: name,
				Address:      p.Address,
				Program:      p.Program,
				Stage:        p.Stage,
			})
		}
	}
	return events
}

// MonthEvents filters events to one calendar month and tallies them by type.
func MonthEvents(events []Event, year int, month int) (inMonth []Event, byType map[string]int) {
	byType = map[string]int{}
	for _, e := range events {
		t, ok := parseDay(e.Date)
		if !ok {
			continue
		}
		if t.Year() == year && int(t.Month()) == month {
			inMonth = append(inMonth, e)
			byType[e.Type]++
		}
	}
	return inMonth, byType
}
