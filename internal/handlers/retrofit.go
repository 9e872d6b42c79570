package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"retrofit-tracker/internal/database"
	"retrofit-tracker/internal/models"
	"retrofit-tracker/internal/retrofit"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//
// RETROFIT PROJECT LIST
//

type retrofitSummary struct {
	models.RetrofitProject
	InferredStage int             `json:"inferredStage"`
	StageName     string          `json:"stageName"`
	Alerts        []retrofit.Alert `json:"alerts"`
}

func ListRetrofitProjects(c *gin.Context) {
	stageStr := c.Query("stage")
	search := strings.TrimSpace(c.Query("q"))

	dbq := database.DB.Order("created_at desc")

	if stageStr != "" {
		if stage, err := strconv.Atoi(stageStr); err == nil {
			dbq = dbq.Where("current_stage = ?", stage)
		}
	}
	if search != "" {
		like := "%" + search + "%"
		dbq = dbq.Where("customer_name ILIKE ? OR address ILIKE ?", like, like)
	}

	var projects []models.RetrofitProject
	if err := dbq.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	out := make([]retrofitSummary, 0, len(projects))
	for i := range projects {
		out = append(out, summarize(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

func summarize(p *models.RetrofitProject) retrofitSummary {
	inferred := retrofit.InferStage(p)
	return retrofitSummary{
		RetrofitProject: *p,
		InferredStage:   inferred,
		StageName:       retrofit.StageName(p.CurrentStage),
		Alerts:          retrofit.Alerts(p),
	}
}

//
// CREATE (new lead)
//

type newLeadForm struct {
	CustomerName  string `json:"customerName"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	SquareFootage string `json:"squareFootage"`
	Stories       string `json:"stories"`
	YearBuilt     string `json:"yearBuilt"`
}

func CreateRetrofitProject(c *gin.Context) {
	var form newLeadForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, _ := currentUser(c)
	now := time.Now().Format(time.RFC3339)

	project := models.RetrofitProject{
		PublicID:      uuid.NewString(),
		CustomerName:  strings.TrimSpace(form.CustomerName),
		Address:       strings.TrimSpace(form.Address),
		Phone:         form.Phone,
		Email:         form.Email,
		SquareFootage: form.SquareFootage,
		Stories:       form.Stories,
		YearBuilt:     form.YearBuilt,
		CurrentStage:  retrofit.StageIntake,
		StageHistory:  models.StageLog{{Stage: retrofit.StageIntake, Date: now}},
		ActivityLog: models.ActivityList{{
			At:     now,
			Text:   "New lead created",
			Author: user.Username,
			Role:   string(user.Role),
		}},
	}

	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}

	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "create",
		"New lead: "+project.CustomerName)

	c.JSON(http.StatusCreated, summarize(&project))
}

//
// DETAIL
//

func GetRetrofitProject(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	pre, post := retrofit.VentilationInputs(project)

	c.JSON(http.StatusOK, gin.H{
		"project":  summarize(project),
		"measures": measureTable(project),
		"ventilation": gin.H{
			"pre":  retrofit.CalcVentilation(pre),
			"post": retrofit.CalcVentilation(post),
		},
	})
}

//
// UPDATE (full record, last write wins)
//

func UpdateRetrofitProject(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var payload models.RetrofitProject
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// workflow state, change orders and the activity log are owned by their
	// own endpoints; everything else is replaced wholesale
	project.CustomerName = payload.CustomerName
	project.Address = payload.Address
	project.Phone = payload.Phone
	project.Email = payload.Email
	project.SquareFootage = payload.SquareFootage
	project.Stories = payload.Stories
	project.YearBuilt = payload.YearBuilt
	project.Audit = payload.Audit
	project.Scope = payload.Scope
	project.FI = payload.FI
	project.QAQC = payload.QAQC
	project.Measures = payload.Measures
	project.HealthSafety = payload.HealthSafety
	project.MeasureQty = payload.MeasureQty
	project.Photos = payload.Photos

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}

	user, _ := currentUser(c)
	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "update",
		"Project updated: "+project.CustomerName)

	c.JSON(http.StatusOK, summarize(project))
}

//
// STAGE CHANGE
//

type stageForm struct {
	Stage int `json:"stage"`
}

// ChangeRetrofitStage applies an explicit, user-confirmed stage change.
// Inference only suggests; nothing moves the stored stage but this endpoint.
func ChangeRetrofitStage(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var form stageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if form.Stage < retrofit.StageIntake || form.Stage > retrofit.StageCloseout {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}
	if form.Stage == project.CurrentStage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project is already in that stage"})
		return
	}

	direction := "Advanced"
	if form.Stage < project.CurrentStage {
		direction = "Reverted"
	}

	user, _ := currentUser(c)
	now := time.Now().Format(time.RFC3339)

	project.CurrentStage = form.Stage
	project.StageHistory = append(project.StageHistory, models.StageEntry{
		Stage: form.Stage,
		Date:  now,
	})
	project.ActivityLog = append(models.ActivityList{{
		At:     now,
		Text:   fmt.Sprintf("%s to %s", direction, retrofit.StageName(form.Stage)),
		Author: user.Username,
		Role:   string(user.Role),
	}}, project.ActivityLog...)

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update stage"})
		return
	}

	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "stage_change",
		fmt.Sprintf("%s to stage %d (%s)", direction, form.Stage, retrofit.StageName(form.Stage)))

	c.JSON(http.StatusOK, summarize(project))
}

//
// DELETE
//

func DeleteRetrofitProject(c *gin.Context) {
	sess := sessions.Default(c)
	roleStr, _ := sess.Get("role").(string)
	if models.UserRole(roleStr) != models.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}

	user, _ := currentUser(c)
	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "delete",
		"Deleted project: "+project.CustomerName)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

//
// HISTORY (audit journal rows for one project)
//

func RetrofitProjectHistory(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var logs []models.AuditLog
	database.DB.Where("entity = ? AND entity_id = ?", "retrofit_project", project.ID).
		Preload("User").
		Order("created_at asc").
		Find(&logs)

	c.JSON(http.StatusOK, gin.H{
		"project": gin.H{"id": project.PublicID, "customerName": project.CustomerName},
		"logs":    logs,
	})
}

func findRetrofitProject(c *gin.Context) (*models.RetrofitProject, bool) {
	var project models.RetrofitProject
	if err := database.DB.Where("public_id = ?", c.Param("id")).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return nil, false
	}
	return &project, true
}
