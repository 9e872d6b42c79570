// Command seed loads demo projects from a YAML fixture into the database.
// Useful for standing up a demo environment or a fresh local install.
//
//	go run ./cmd/seed -file seed.example.yaml
package main

import (
	"flag"
	"log"
	"os"

	"retrofit-tracker/internal/config"
	"retrofit-tracker/internal/database"
	"retrofit-tracker/internal/models"
	"retrofit-tracker/internal/retrofit"
	"retrofit-tracker/internal/tracker"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	Retrofit []retrofitSeed `yaml:"retrofit"`
	Tracker  []trackerSeed  `yaml:"tracker"`
}

type retrofitSeed struct {
	CustomerName  string `yaml:"customerName"`
	Address       string `yaml:"address"`
	Phone         string `yaml:"phone"`
	Email         string `yaml:"email"`
	SquareFootage string `yaml:"squareFootage"`
	Stories       string `yaml:"stories"`
	YearBuilt     string `yaml:"yearBuilt"`
	Stage         int    `yaml:"stage"`

	AssessmentScheduled bool   `yaml:"assessmentScheduled"`
	AssessmentDate      string `yaml:"assessmentDate"`
	PreCFM50            string `yaml:"preCFM50"`
	FloorArea           string `yaml:"floorArea"`
	Bedrooms            string `yaml:"bedrooms"`
}

type trackerSeed struct {
	Program        string `yaml:"program"`
	CustomerName   string `yaml:"customerName"`
	Address        string `yaml:"address"`
	Type           string `yaml:"type"`
	LeadDate       string `yaml:"leadDate"`
	AssessmentDate string `yaml:"assessmentDate"`
	RiseSubmitDate string `yaml:"riseSubmitDate"`
	RiApprovedDate string `yaml:"riApprovedDate"`
	InstallDate    string `yaml:"installDate"`
	TotalJobPrice  string `yaml:"totalJobPrice"`
	Invoiceable    bool   `yaml:"invoiceable"`
	PermitStatus   string `yaml:"permitStatus"`
}

func main() {
	file := flag.String("file", "seed.example.yaml", "fixture file to load")
	flag.Parse()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read fixture: %v", err)
	}

	var fix fixture
	if err := yaml.Unmarshal(raw, &fix); err != nil {
		log.Fatalf("failed to parse fixture: %v", err)
	}

	cfg := config.Load()
	database.Init(cfg.DBDSN)

	today := tracker.Today()

	for _, s := range fix.Retrofit {
		p := models.RetrofitProject{
			PublicID:      uuid.NewString(),
			CustomerName:  s.CustomerName,
			Address:       s.Address,
			Phone:         s.Phone,
			Email:         s.Email,
			SquareFootage: s.SquareFootage,
			Stories:       s.Stories,
			YearBuilt:     s.YearBuilt,
			CurrentStage:  s.Stage,
			Audit: models.AuditRecord{
				AssessmentScheduled: s.AssessmentScheduled,
				AssessmentDate:      s.AssessmentDate,
				PreCFM50:            s.PreCFM50,
				FloorArea:           s.FloorArea,
				Bedrooms:            s.Bedrooms,
			},
			StageHistory: models.StageLog{{Stage: s.Stage, Date: today}},
		}
		if p.CurrentStage < retrofit.StageIntake || p.CurrentStage > retrofit.StageCloseout {
			p.CurrentStage = retrofit.StageIntake
		}
		if err := database.DB.Create(&p).Error; err != nil {
			log.Fatalf("failed to seed retrofit project %q: %v", s.CustomerName, err)
		}
		log.Printf("seeded retrofit project: %s", s.CustomerName)
	}

	for _, s := range fix.Tracker {
		p := models.TrackerProject{
			PublicID:       uuid.NewString(),
			Program:        s.Program,
			CustomerName:   s.CustomerName,
			Address:        s.Address,
			Type:           s.Type,
			LeadDate:       s.LeadDate,
			AssessmentDate: s.AssessmentDate,
			RiseSubmitDate: s.RiseSubmitDate,
			RiApprovedDate: s.RiApprovedDate,
			InstallDate:    s.InstallDate,
			TotalJobPrice:  s.TotalJobPrice,
			Invoiceable:    s.Invoiceable,
			PermitStatus:   s.PermitStatus,
		}
		p.Stage = tracker.AutoStage(&p, today)
		p.StageHistory = models.TrackerStageLog{{Stage: p.Stage, Date: today}}
		if err := database.DB.Create(&p).Error; err != nil {
			log.Fatalf("failed to seed tracker project %q: %v", s.CustomerName, err)
		}
		log.Printf("seeded tracker project: %s (%s)", s.CustomerName, s.Program)
	}

	log.Printf("done: %d retrofit, %d tracker", len(fix.Retrofit), len(fix.Tracker))
}
