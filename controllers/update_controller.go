package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motohub-api/jobs"
	"motohub-api/models"
)

type UpdateController struct {
	db  *gorm.DB
	job *jobs.DailyUpdateJob
}

func NewUpdateController(db *gorm.DB, job *jobs.DailyUpdateJob) *UpdateController {
	return &UpdateController{
		db:  db,
		job: job,
	}
}

// RunDailyUpdate handles POST /update-system/run-daily-update. The run
// happens in the background; the response carries the job id to poll.
func (uc *UpdateController) RunDailyUpdate(c *gin.Context) {
	jobID, err := uc.job.Trigger("manual")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start update job"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Daily update started",
		"job_id":  jobID,
	})
}

// JobStatus handles GET /update-system/job-status/:id
func (uc *UpdateController) JobStatus(c *gin.Context) {
	var job models.UpdateJob
	if err := uc.db.First(&job, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}
