package tracker

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"retrofit-tracker/internal/models"
)

// ProgramKPIs is the per-program quarterly performance report. Averages are
// nil when no project pair has both dates tracked.
type ProgramKPIs struct {
	Program string `json:"program"`

	Total         int `json:"total"`
	Comprehensive int `json:"comprehensive"`
	Deferred      int `json:"deferred"`
	Closed        int `json:"closed"`

	LeadToAssessDays      *float64 `json:"leadToAssessDays"`
	AssessToRiseBizDays   *float64 `json:"assessToRiseBizDays"`
	RiseToApprovalDays    *float64 `json:"riseToApprovalDays"`
	ApprovalToInstallDays *float64 `json:"approvalToInstallDays"`
	InstallToInvoiceDays  *float64 `json:"installToInvoiceDays"`

	Rise48Rate    *int     `json:"rise48Rate"` // percent submitted within 2 business days
	Rise48Overdue []string `json:"rise48Overdue"`

	LeadToCloseDays   *int `json:"leadToCloseDays"`
	AssessToCloseDays *int `json:"assessToCloseDays"`
	CompletionRate    *int `json:"completionRate"`

	OverdueInvoices    int     `json:"overdueInvoices"`
	TotalRevenue       float64 `json:"totalRevenue"`
	InvoiceableRevenue float64 `json:"invoiceableRevenue"`

	PermitPending int `json:"permitPending"`
	OnHold        int `json:"onHold"`
	CustomerWait  int `json:"customerWait"`

	// ASI-style install tracking.
	Installed      int `json:"installed"`
	PendingInstall int `json:"pendingInstall"`
	Invoiced       int `json:"invoiced"`
	NeedsInvoice   int `json:"needsInvoice"`

	Upcoming []UpcomingInstall `json:"upcoming"`
}

type UpcomingInstall struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customerName"`
	NextInstallDate string `json:"nextInstallDate"`
}

const rise48WindowBizDays = 2

// RiseBadge describes a project's RISE submission timing for list rows.
// Empty when no assessment has happened yet.
func RiseBadge(p *models.TrackerProject, today string) string {
	if p.AssessmentDate == "" {
		return ""
	}
	if p.RiseSubmitDate != "" {
		d, ok := DiffBizDays(p.AssessmentDate, p.RiseSubmitDate)
		if !ok {
			return ""
		}
		switch {
		case d <= 0:
			return "same day"
		case d <= rise48WindowBizDays:
			return fmt.Sprintf("%d bd", d)
		default:
			return fmt.Sprintf("%d bd (late)", d)
		}
	}
	if d, ok := BizDaysSince(p.AssessmentDate, today); ok && d > rise48WindowBizDays {
		return fmt.Sprintf("overdue (%d bd)", d)
	}
	return "due"
}

// ProgramReport computes the KPI block for one program.
func ProgramReport(projects []models.TrackerProject, program, today string) ProgramKPIs {
	r := ProgramKPIs{Program: program, Rise48Overdue: []string{}, Upcoming: []UpcomingInstall{}}

	var ps []models.TrackerProject
	for _, p := range projects {
		if p.Program == program {
			ps = append(ps, p)
		}
	}
	r.Total = len(ps)

	var leadAssess, assessRise, riseApproval, approvalInstall, installInvoice avg
	var leadClose, assessClose avg
	rise48Tracked, rise48OK := 0, 0

	for _, p := range ps {
		switch p.Type {
		case models.TypeComprehensive:
			r.Comprehensive++
		case models.TypeDeferred:
			r.Deferred++
		}
		if p.Stage == StageClosed {
			r.Closed++
		}

		if d, ok := DiffDays(p.LeadDate, p.AssessmentDate); ok {
			leadAssess.add(float64(d))
		}
		if d, ok := DiffBizDays(p.AssessmentDate, p.RiseSubmitDate); ok {
			assessRise.add(float64(d))
			rise48Tracked++
			if d <= rise48WindowBizDays {
				rise48OK++
			}
		}
		if p.AssessmentDate != "" && p.RiseSubmitDate == "" {
			if d, ok := BizDaysSince(p.AssessmentDate, today); ok && d > rise48WindowBizDays {
				name := p.CustomerName
				if name == "" {
					name = p.Address
				}
				if name == "" {
					name = "Unnamed"
				}
				r.Rise48Overdue = append(r.Rise48Overdue, name)
			}
		}
		if d, ok := DiffDays(p.RiseSubmitDate, p.RiApprovedDate); ok {
			riseApproval.add(float64(d))
		}
		if d, ok := DiffDays(p.RiApprovedDate, p.LastInstallDate); ok {
			approvalInstall.add(float64(d))
		}
		if d, ok := DiffDays(p.LastInstallDate, p.InvoiceSubmittedDate); ok {
			installInvoice.add(float64(d))
		}
		if p.Stage == StageClosed {
			if d, ok := DiffDays(p.AssessmentDate, p.InvoiceSubmittedDate); ok {
				assessClose.add(float64(d))
			}
			if d, ok := DiffDays(p.LeadDate, p.InvoiceSubmittedDate); ok {
				leadClose.add(float64(d))
			}
		}

		if overdueInvoice(&p, today) {
			r.OverdueInvoices++
			r.InvoiceableRevenue += price(&p)
		}
		r.TotalRevenue += price(&p)

		if PermitPending(p.PermitStatus) {
			r.PermitPending++
		}
		if p.OnHold {
			r.OnHold++
		}
		if p.NextActionOwner == "Customer" || p.HoldParty == "Customer" {
			r.CustomerWait++
		}

		if p.InstallDate != "" || p.LastInstallDate != "" {
			r.Installed++
		}
		if p.InvoiceSubmittedDate != "" {
			r.Invoiced++
		}
		if p.InstallDate != "" && p.InvoiceSubmittedDate == "" {
			r.NeedsInvoice++
		}

		if p.NextInstallDate != "" && p.NextInstallDate >= today {
			r.Upcoming = append(r.Upcoming, UpcomingInstall{
				ID:              p.PublicID,
				CustomerName:    p.CustomerName,
				NextInstallDate: p.NextInstallDate,
			})
		}
	}

	r.PendingInstall = r.Total - r.Installed

	r.LeadToAssessDays = leadAssess.tenths()
	r.AssessToRiseBizDays = assessRise.tenths()
	r.RiseToApprovalDays = riseApproval.tenths()
	r.ApprovalToInstallDays = approvalInstall.tenths()
	r.InstallToInvoiceDays = installInvoice.tenths()
	r.LeadToCloseDays = leadClose.whole()
	r.AssessToCloseDays = assessClose.whole()

	if rise48Tracked > 0 {
		rate := int(math.Round(float64(rise48OK) / float64(rise48Tracked) * 100))
		r.Rise48Rate = &rate
	}
	if r.Total > 0 {
		rate := int(math.Round(float64(r.Closed) / float64(r.Total) * 100))
		r.CompletionRate = &rate
	}

	sort.Slice(r.Upcoming, func(i, j int) bool {
		return r.Upcoming[i].NextInstallDate < r.Upcoming[j].NextInstallDate
	})
	if len(r.Upcoming) > 5 {
		r.Upcoming = r.Upcoming[:5]
	}

	return r
}

// Funnel counts projects per stage across all programs, in ladder order.
func Funnel(projects []models.TrackerProject) []StageCount {
	counts := make([]StageCount, len(Stages))
	for i, s := range Stages {
		counts[i].Stage = s
	}
	for _, p := range projects {
		for i := range counts {
			if counts[i].Stage == p.Stage {
				counts[i].Count++
			}
		}
	}
	return counts
}

type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// overdueInvoice reports a project flagged invoiceable whose last install
// date has passed without an invoice going out.
func overdueInvoice(p *models.TrackerProject, today string) bool {
	return p.Invoiceable && p.LastInstallDate != "" && p.LastInstallDate <= today &&
		p.InvoiceSubmittedDate == ""
}

func price(p *models.TrackerProject) float64 {
	return parseMoney(p.TotalJobPrice)
}

// parseMoney coerces a job-price form value, zero on junk.
func parseMoney(s string) float64 {
	s = strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(s))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

type avg struct {
	sum float64
	n   int
}

func (a *avg) add(v float64) { a.sum += v; a.n++ }

// tenths returns the mean rounded to one decimal, nil when empty.
func (a *avg) tenths() *float64 {
	if a.n == 0 {
		return nil
	}
	v := math.Round(a.sum/float64(a.n)*10) / 10
	return &v
}

// whole returns the mean rounded to the nearest day, nil when empty.
func (a *avg) whole() *int {
	if a.n == 0 {
		return nil
	}
	v := int(math.Round(a.sum / float64(a.n)))
	return &v
}
