package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"retrofit-tracker/internal/database"
	"retrofit-tracker/internal/models"
	"retrofit-tracker/internal/retrofit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//
// ALERTS
//

func GetRetrofitAlerts(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"currentStage":  project.CurrentStage,
		"inferredStage": retrofit.InferStage(project),
		"alerts":        retrofit.Alerts(project),
	})
}

//
// MEASURES
//

type measureRow struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Selected bool   `json:"selected"`
	Quantity string `json:"quantity"`
	Auto     string `json:"auto"`
	Override string `json:"override"`
}

func measureTable(p *models.RetrofitProject) gin.H {
	auto := retrofit.AutoQuantities(&p.Scope)

	rows := func(catalog []string, selected models.StringList) []measureRow {
		out := make([]measureRow, 0, len(catalog))
		for _, name := range catalog {
			out = append(out, measureRow{
				Name:     name,
				Unit:     retrofit.UnitFor(name),
				Selected: contains(selected, name),
				Quantity: retrofit.ResolveQuantity(p, name),
				Auto:     auto[name],
				Override: p.MeasureQty[name],
			})
		}
		return out
	}

	return gin.H{
		"measures":     rows(retrofit.Catalog, p.Measures),
		"healthSafety": rows(retrofit.HealthSafetyCatalog, p.HealthSafety),
	}
}

func GetRetrofitMeasures(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, measureTable(project))
}

type measuresForm struct {
	Measures     []string          `json:"measures"`
	HealthSafety []string          `json:"healthSafety"`
	MeasureQty   map[string]string `json:"measureQty"`
}

func UpdateRetrofitMeasures(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var form measuresForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project.Measures = form.Measures
	project.HealthSafety = form.HealthSafety
	project.MeasureQty = form.MeasureQty

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save measures"})
		return
	}

	user, _ := currentUser(c)
	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "update",
		"Measure selections updated")

	c.JSON(http.StatusOK, measureTable(project))
}

//
// VENTILATION
//

func GetRetrofitVentilation(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	pre, post := retrofit.VentilationInputs(project)
	c.JSON(http.StatusOK, gin.H{
		"pre":  gin.H{"input": pre, "result": retrofit.CalcVentilation(pre)},
		"post": gin.H{"input": post, "result": retrofit.CalcVentilation(post)},
	})
}

//
// CHANGE ORDERS
//

type changeOrderForm struct {
	Text string `json:"text"`
}

func AddChangeOrder(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var form changeOrderForm
	if err := c.ShouldBindJSON(&form); err != nil || strings.TrimSpace(form.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "change order text is required"})
		return
	}

	user, _ := currentUser(c)
	order := models.ChangeOrder{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(form.Text),
		Status:    "pending",
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	project.ChangeOrders = append(project.ChangeOrders, order)
	appendActivity(project, user, "Change order submitted: "+order.Text)

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save change order"})
		return
	}

	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "change_order",
		"Change order submitted")

	c.JSON(http.StatusCreated, order)
}

type changeOrderResponseForm struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

func RespondChangeOrder(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var form changeOrderResponseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if form.Status != "approved" && form.Status != "rejected" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	orderID := c.Param("orderId")
	idx := -1
	for i := range project.ChangeOrders {
		if project.ChangeOrders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "change order not found"})
		return
	}

	user, _ := currentUser(c)
	project.ChangeOrders[idx].Status = form.Status
	project.ChangeOrders[idx].Response = form.Response
	project.ChangeOrders[idx].RespondedAt = time.Now().Format(time.RFC3339)
	appendActivity(project, user, "Change order "+form.Status)

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save change order"})
		return
	}

	database.CreateAuditLog(user.ID, "retrofit_project", project.ID, "change_order",
		"Change order "+form.Status)

	c.JSON(http.StatusOK, project.ChangeOrders[idx])
}

//
// PHOTOS
//

type photoForm struct {
	DataURI string `json:"dataUri"`
}

func AddRetrofitPhoto(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	slot := c.Param("slot")
	var form photoForm
	if err := c.ShouldBindJSON(&form); err != nil || form.DataURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo data is required"})
		return
	}

	user, _ := currentUser(c)
	if project.Photos == nil {
		project.Photos = models.PhotoMap{}
	}
	project.Photos[slot] = append(project.Photos[slot], models.Photo{
		DataURI: form.DataURI,
		TakenAt: time.Now().Format(time.RFC3339),
		Author:  user.Username,
	})
	appendActivity(project, user, "Photo added to "+slot)

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slot": slot, "count": len(project.Photos[slot])})
}

func DeleteRetrofitPhoto(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	slot := c.Param("slot")
	idx, err := strconv.Atoi(c.Param("index"))
	photos := project.Photos[slot]
	if err != nil || idx < 0 || idx >= len(photos) {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}

	project.Photos[slot] = append(photos[:idx], photos[idx+1:]...)
	user, _ := currentUser(c)
	appendActivity(project, user, "Photo removed from "+slot)

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slot": slot, "count": len(project.Photos[slot])})
}

//
// ACTIVITY LOG
//

type activityForm struct {
	Text string `json:"text"`
}

func AddRetrofitActivity(c *gin.Context) {
	project, ok := findRetrofitProject(c)
	if !ok {
		return
	}

	var form activityForm
	if err := c.ShouldBindJSON(&form); err != nil || strings.TrimSpace(form.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity text is required"})
		return
	}

	user, _ := currentUser(c)
	appendActivity(project, user, strings.TrimSpace(form.Text))

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save activity"})
		return
	}

	c.JSON(http.StatusCreated, project.ActivityLog[0])
}

// appendActivity prepends, newest first.
func appendActivity(p *models.RetrofitProject, user models.User, text string) {
	p.ActivityLog = append(models.ActivityList{{
		At:     time.Now().Format(time.RFC3339),
		Text:   text,
		Author: user.Username,
		Role:   string(user.Role),
	}}, p.ActivityLog...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
