package models

import (
	"database/sql/driver"

	"gorm.io/gorm"
)

// RetrofitProject is the aggregate record for the retrofit workflow app.
// The phase sub-records and collections are stored as jsonb columns so the
// full record round-trips the same shape the export templates consume.
type RetrofitProject struct {
	gorm.Model
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"id"`

	CustomerName  string `gorm:"size:255" json:"customerName"`
	Address       string `gorm:"size:255" json:"address"`
	Phone         string `gorm:"size:50" json:"phone"`
	Email         string `gorm:"size:255" json:"email"`
	SquareFootage string `gorm:"size:20" json:"squareFootage"`
	Stories       string `gorm:"size:20" json:"stories"`
	YearBuilt     string `gorm:"size:20" json:"yearBuilt"`

	CurrentStage int      `gorm:"not null;default:0" json:"currentStage"`
	StageHistory StageLog `gorm:"type:jsonb" json:"stageHistory"` // append-only

	Audit AuditRecord `gorm:"type:jsonb" json:"audit"`
	Scope ScopeRecord `gorm:"type:jsonb;column:scope2026" json:"scope2026"`
	FI    FIRecord    `gorm:"type:jsonb" json:"fi"`
	QAQC  QAQCRecord  `gorm:"type:jsonb" json:"qaqc"`

	Measures     StringList      `gorm:"type:jsonb" json:"measures"`
	HealthSafety StringList      `gorm:"type:jsonb" json:"healthSafety"`
	MeasureQty   QtyMap          `gorm:"type:jsonb" json:"measureQty"` // measure name -> override quantity
	Photos       PhotoMap        `gorm:"type:jsonb" json:"photos"`     // slot id -> photos
	ChangeOrders ChangeOrderList `gorm:"type:jsonb" json:"changeOrders"`
	ActivityLog  ActivityList    `gorm:"type:jsonb" json:"activityLog"` // newest first
}

type StageEntry struct {
	Stage int    `json:"stage"`
	Date  string `json:"date"`
}

type StageLog []StageEntry

func (l StageLog) Value() (driver.Value, error) {
	if l == nil {
		l = StageLog{}
	}
	return jsonValue(l)
}
func (l *StageLog) Scan(src interface{}) error { return jsonScan(l, src) }

// AuditRecord holds the assessment-visit form: scheduling, the pre-retrofit
// blower door reading and the ventilation calculator inputs.
type AuditRecord struct {
	AssessmentScheduled bool   `json:"assessmentScheduled"`
	AssessmentDate      string `json:"assessmentDate"`
	PreCFM50            string `json:"preCFM50"`

	FloorArea string `json:"floorArea"`
	Bedrooms  string `json:"bedrooms"`

	KitchenFanCFM string `json:"kitchenFanCFM"`
	KitchenWindow bool   `json:"kitchenWindow"`
	Bath1FanCFM   string `json:"bath1FanCFM"`
	Bath1Window   bool   `json:"bath1Window"`
	Bath2FanCFM   string `json:"bath2FanCFM"`
	Bath2Window   bool   `json:"bath2Window"`
	Bath3FanCFM   string `json:"bath3FanCFM"`
	Bath3Window   bool   `json:"bath3Window"`

	Notes string `json:"notes"`
}

func (r AuditRecord) Value() (driver.Value, error) { return jsonValue(r) }
func (r *AuditRecord) Scan(src interface{}) error  { return jsonScan(r, src) }

// ScopeRecord is the scope-of-work form: RISE submission state, install
// scheduling and every input the measure quantity rules read.
type ScopeRecord struct {
	RiseStatus    string `json:"riseStatus"` // "", pending, approved, corrections
	ScopeApproved bool   `json:"scopeApproved"`

	InstallScheduled bool   `json:"installScheduled"`
	InstallDate      string `json:"installDate"`

	MechReplaceNeeded bool   `json:"mechReplaceNeeded"`
	MechStatus        string `json:"mechStatus"`

	AtticPreR      string `json:"atticPreR"`
	AtticAddR      string `json:"atticAddR"`
	AtticSqft      string `json:"atticSqft"`
	CollarAddR     string `json:"collarAddR"`
	CollarSqft     string `json:"collarSqft"`
	OuterJoistAddR string `json:"outerJoistAddR"`
	OuterJoistSqft string `json:"outerJoistSqft"`

	KneeAddR string `json:"kneeAddR"`
	KneeSqft string `json:"kneeSqft"`

	BasementPreR      string `json:"basementPreR"`
	BasementAddR      string `json:"basementAddR"`
	BasementAboveSqft string `json:"basementAboveSqft"`
	BasementBelowSqft string `json:"basementBelowSqft"`

	CrawlPreR      string `json:"crawlPreR"`
	CrawlAboveSqft string `json:"crawlAboveSqft"`
	CrawlBelowSqft string `json:"crawlBelowSqft"`

	ExtWall1Sqft string `json:"extWall1Sqft"` // 1st floor section
	ExtWall1AddR string `json:"extWall1AddR"`
	ExtWall2Sqft string `json:"extWall2Sqft"` // 2nd floor section
	ExtWall2AddR string `json:"extWall2AddR"`

	RimAccess      bool   `json:"rimAccess"`
	RimPreR        string `json:"rimPreR"`
	RimLF          string `json:"rimLF"`
	CrawlRimAccess bool   `json:"crawlRimAccess"`
	CrawlRimPreR   string `json:"crawlRimPreR"`
	CrawlRimLF     string `json:"crawlRimLF"`

	HeatingType        string `json:"heatingType"` // "Boiler" selects the boiler measure
	HeatingReplace     bool   `json:"heatingReplace"`
	WaterHeaterReplace bool   `json:"waterHeaterReplace"`
	CentralACReplace   bool   `json:"centralACReplace"`

	DuctsInAttic  bool `json:"ductsInAttic"`
	DuctsInCollar bool `json:"ductsInCollar"`
	DuctsInCrawl  bool `json:"ductsInCrawl"`

	CODetectorsNeeded    string `json:"coDetectorsNeeded"`
	SmokeDetectorsNeeded string `json:"smokeDetectorsNeeded"`
	DoorSweepsNeeded     string `json:"doorSweepsNeeded"`
	FlueRepair           bool   `json:"flueRepair"`

	Notes string `json:"notes"`
}

func (r ScopeRecord) Value() (driver.Value, error) { return jsonValue(r) }
func (r *ScopeRecord) Scan(src interface{}) error  { return jsonScan(r, src) }

// FIRecord is the final-inspection / closeout paperwork.
type FIRecord struct {
	InspectionDate   string `json:"inspectionDate"`
	FinalPassed      bool   `json:"finalPassed"`
	CustomerSignoff  bool   `json:"customerSignoff"`
	PaymentSubmitted bool   `json:"paymentSubmitted"`
	Notes            string `json:"notes"`
}

func (r FIRecord) Value() (driver.Value, error) { return jsonValue(r) }
func (r *FIRecord) Scan(src interface{}) error  { return jsonScan(r, src) }

// QAQCRecord holds the post-retrofit quality check.
type QAQCRecord struct {
	QCDate    string `json:"qcDate"`
	PostCFM50 string `json:"postCFM50"`
	QCPassed  bool   `json:"qcPassed"`
	Notes     string `json:"notes"`
}

func (r QAQCRecord) Value() (driver.Value, error) { return jsonValue(r) }
func (r *QAQCRecord) Scan(src interface{}) error  { return jsonScan(r, src) }

type Photo struct {
	DataURI string `json:"dataUri"`
	TakenAt string `json:"takenAt"`
	Author  string `json:"author"`
}

type PhotoMap map[string][]Photo

func (m PhotoMap) Value() (driver.Value, error) {
	if m == nil {
		m = PhotoMap{}
	}
	return jsonValue(m)
}
func (m *PhotoMap) Scan(src interface{}) error { return jsonScan(m, src) }

type ChangeOrder struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Status      string `json:"status"` // pending, approved, rejected
	Response    string `json:"response"`
	CreatedAt   string `json:"createdAt"`
	RespondedAt string `json:"respondedAt"`
}

type ChangeOrderList []ChangeOrder

func (l ChangeOrderList) Value() (driver.Value, error) {
	if l == nil {
		l = ChangeOrderList{}
	}
	return jsonValue(l)
}
func (l *ChangeOrderList) Scan(src interface{}) error { return jsonScan(l, src) }

type ActivityEntry struct {
	At     string `json:"at"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

type ActivityList []ActivityEntry

func (l ActivityList) Value() (driver.Value, error) {
	if l == nil {
		l = ActivityList{}
	}
	return jsonValue(l)
}
func (l *ActivityList) Scan(src interface{}) error { return jsonScan(l, src) }
