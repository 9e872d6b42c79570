package models

import (
	"database/sql/driver"

	"gorm.io/gorm"
)

// Program names for the incentive tracker app.
const (
	ProgramWHE = "WHE SF"
	ProgramHES = "HES IE"
	ProgramASI = "ASI"
)

const (
	TypeComprehensive = "Comprehensive"
	TypeDeferred      = "Deferred"
)

// TrackerProject is the incentive-program tracker record. It is a separate
// shape from RetrofitProject; the two apps share nothing but naming habits.
// Dates are ISO yyyy-mm-dd strings so ordering is plain string comparison.
type TrackerProject struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"id"`

	Program      string `gorm:"size:20;not null" json:"program"`
	CustomerName string `gorm:"size:255" json:"customerName"`
	Address      string `gorm:"size:255" json:"address"`
	Stage        string `gorm:"size:50" json:"stage"`
	Type         string `gorm:"size:20" json:"type"`

	LeadDate             string `gorm:"size:10" json:"leadDate"`
	AssessmentDate       string `gorm:"size:10" json:"assessmentDate"`
	RiseSubmitDate       string `gorm:"size:10" json:"riseSubmitDate"`
	RiApprovedDate       string `gorm:"size:10" json:"riApprovedDate"`
	InstallDate          string `gorm:"size:10" json:"installDate"`
	LastInstallDate      string `gorm:"size:10" json:"lastInstallDate"`
	NextInstallDate      string `gorm:"size:10" json:"nextInstallDate"`
	InvoiceSubmittedDate string `gorm:"size:10" json:"invoiceSubmittedDate"`

	TotalJobPrice string `gorm:"size:20" json:"totalJobPrice"`
	Invoiceable   bool   `json:"invoiceable"`

	PermitStatus         string `gorm:"size:30" json:"permitStatus"`
	PermitNumber         string `gorm:"size:50" json:"permitNumber"`
	PermitJurisdiction   string `gorm:"size:100" json:"permitJurisdiction"`
	PermitAppliedDate    string `gorm:"size:10" json:"permitAppliedDate"`
	PermitIssuedDate     string `gorm:"size:10" json:"permitIssuedDate"`
	PermitInspectionDate string `gorm:"size:10" json:"permitInspectionDate"`
	PermitClosedDate     string `gorm:"size:10" json:"permitClosedDate"`
	PermitNotes          string `gorm:"type:text" json:"permitNotes"`

	Docs         DocsMap         `gorm:"type:jsonb" json:"docs"`
	StageHistory TrackerStageLog `gorm:"type:jsonb" json:"stageHistory"`
	Notes        string          `gorm:"type:text" json:"notes"`

	OnHold     bool   `json:"onHold"`
	HoldReason string `gorm:"size:255" json:"holdReason"`
	HoldDate   string `gorm:"size:10" json:"holdDate"`
	HoldParty  string `gorm:"size:50" json:"holdParty"` // Us / Customer / Utility / ...

	NextAction      string `gorm:"size:255" json:"nextAction"`
	NextActionDate  string `gorm:"size:10" json:"nextActionDate"`
	NextActionOwner string `gorm:"size:50" json:"nextActionOwner"`
}

type TrackerStageEntry struct {
	Stage string `json:"stage"`
	Date  string `json:"date"`
}

type TrackerStageLog []TrackerStageEntry

func (l TrackerStageLog) Value() (driver.Value, error) {
	if l == nil {
		l = TrackerStageLog{}
	}
	return jsonValue(l)
}
func (l *TrackerStageLog) Scan(src interface{}) error { return jsonScan(l, src) }
