package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"retrofit-tracker/internal/database"
	"retrofit-tracker/internal/models"
	"retrofit-tracker/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type trackerSummary struct {
	models.TrackerProject
	AutoStage      string   `json:"autoStage"`
	DocsDone       int      `json:"docsDone"`
	DocsTotal      int      `json:"docsTotal"`
	PermitProgress int      `json:"permitProgress"`
	PermitAlerts   []string `json:"permitAlerts"`
	RiseBadge      string   `json:"riseBadge"`
}

func trackerRow(p *models.TrackerProject, today string) trackerSummary {
	done, total := tracker.DocsCheck(p)
	return trackerSummary{
		TrackerProject: *p,
		AutoStage:      tracker.AutoStage(p, today),
		DocsDone:       done,
		DocsTotal:      total,
		PermitProgress: tracker.PermitProgress(p.PermitStatus),
		PermitAlerts:   tracker.PermitAging(p, today),
		RiseBadge:      tracker.RiseBadge(p, today),
	}
}

func ListTrackerProjects(c *gin.Context) {
	program := c.Query("program")
	stage := c.Query("stage")
	projType := c.Query("type")
	search := strings.TrimSpace(c.Query("q"))

	dbq := database.DB.Model(&models.TrackerProject{})
	if program != "" {
		dbq = dbq.Where("program = ?", program)
	}
	if stage != "" {
		dbq = dbq.Where("stage = ?", stage)
	}
	if projType != "" {
		dbq = dbq.Where("type = ?", projType)
	}
	if hold := c.Query("hold"); hold != "" {
		dbq = dbq.Where("on_hold = ?", hold == "true")
	}
	if search != "" {
		like := "%" + search + "%"
		dbq = dbq.Where("customer_name ILIKE ? OR address ILIKE ?", like, like)
	}

	var projects []models.TrackerProject
	if err := dbq.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	// soonest next install first, undated projects sink to the bottom
	sort.SliceStable(projects, func(i, j int) bool {
		return installSortKey(&projects[i]) < installSortKey(&projects[j])
	})

	today := tracker.Today()
	out := make([]trackerSummary, 0, len(projects))
	for i := range projects {
		out = append(out, trackerRow(&projects[i], today))
	}
	c.JSON(http.StatusOK, out)
}

func installSortKey(p *models.TrackerProject) string {
	if p.NextInstallDate == "" {
		return "9999"
	}
	return p.NextInstallDate
}

func CreateTrackerProject(c *gin.Context) {
	var payload models.TrackerProject
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if payload.Program != models.ProgramWHE && payload.Program != models.ProgramHES &&
		payload.Program != models.ProgramASI {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown program"})
		return
	}

	today := tracker.Today()
	payload.ID = 0
	payload.PublicID = uuid.NewString()
	if payload.Stage == "" {
		payload.Stage = tracker.StageLead
	}
	if payload.LeadDate == "" {
		payload.LeadDate = today
	}
	payload.StageHistory = models.TrackerStageLog{{Stage: payload.Stage, Date: today}}
	tracker.ApplyAutoStage(&payload, today)

	if err := database.DB.Create(&payload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}

	user, _ := currentUser(c)
	database.CreateAuditLog(user.ID, "tracker_project", payload.ID, "create",
		"New "+payload.Program+" project: "+payload.CustomerName)

	c.JSON(http.StatusCreated, trackerRow(&payload, today))
}

func GetTrackerProject(c *gin.Context) {
	project, ok := findTrackerProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, trackerRow(project, tracker.Today()))
}

func UpdateTrackerProject(c *gin.Context) {
	project, ok := findTrackerProject(c)
	if !ok {
		return
	}

	var payload models.TrackerProject
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// last write wins across the whole record; identity and the stage
	// journal stay server-owned
	payload.Model = project.Model
	payload.PublicID = project.PublicID
	payload.StageHistory = project.StageHistory
	if payload.Stage != project.Stage {
		payload.StageHistory = append(payload.StageHistory, models.TrackerStageEntry{
			Stage: payload.Stage,
			Date:  tracker.Today(),
		})
	}
	*project = payload

	today := tracker.Today()
	tracker.ApplyAutoStage(project, today)

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}

	user, _ := currentUser(c)
	database.CreateAuditLog(user.ID, "tracker_project", project.ID, "update",
		"Project updated: "+project.CustomerName)

	c.JSON(http.StatusOK, trackerRow(project, today))
}

func DeleteTrackerProject(c *gin.Context) {
	project, ok := findTrackerProject(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	user, _ := currentUser(c)
	database.CreateAuditLog(user.ID, "tracker_project", project.ID, "delete",
		"Deleted project: "+project.CustomerName)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RefreshTrackerStages recomputes the date-driven stage for every project
// and persists the ones that moved.
func RefreshTrackerStages(c *gin.Context) {
	var projects []models.TrackerProject
	if err := database.DB.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	today := tracker.Today()
	changed := 0
	for i := range projects {
		if tracker.ApplyAutoStage(&projects[i], today) {
			if err := database.DB.Save(&projects[i]).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
				return
			}
			changed++
		}
	}

	c.JSON(http.StatusOK, gin.H{"checked": len(projects), "updated": changed})
}

func TrackerKPIs(c *gin.Context) {
	var projects []models.TrackerProject
	if err := database.DB.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	today := tracker.Today()
	c.JSON(http.StatusOK, gin.H{
		"whe":    tracker.ProgramReport(projects, models.ProgramWHE, today),
		"hes":    tracker.ProgramReport(projects, models.ProgramHES, today),
		"asi":    tracker.ProgramReport(projects, models.ProgramASI, today),
		"funnel": tracker.Funnel(projects),
	})
}

func TrackerCalendar(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		year = y
	}
	if m, err := strconv.Atoi(c.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}

	types := map[string]bool{}
	if raw := c.Query("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			types[t] = true
		}
	} else {
		for _, t := range tracker.EventTypes {
			types[t] = true
		}
	}

	var projects []models.TrackerProject
	if err := database.DB.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	events := tracker.Events(projects, c.Query("program"), types)
	inMonth, byType := tracker.MonthEvents(events, year, month)

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"month":  month,
		"events": inMonth,
		"byType": byType,
	})
}

func findTrackerProject(c *gin.Context) (*models.TrackerProject, bool) {
	var project models.TrackerProject
	if err := database.DB.Where("public_id = ?", c.Param("id")).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return nil, false
	}
	return &project, true
}
