package controller_project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Super-Badmen-Viper/NineSongProject/api/controller"
	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	uc domain_project.ProjectUsecase
}

func NewProjectController(uc domain_project.ProjectUsecase) *ProjectController {
	return &ProjectController{uc: uc}
}

func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	var req domain_project.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	id, err := ctrl.uc.CreateProject(c.Request.Context(), req)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "PROJECT_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project created",
		"id":      id,
	})
}

func (ctrl *ProjectController) ListProjects(c *gin.Context) {
	var order domain.SortOrder
	if err := c.ShouldBindQuery(&order); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	projects, err := ctrl.uc.ListProjects(c.Request.Context(), order)
	if err != nil {
		controller.ErrorResponse(c, http.StatusInternalServerError, "PROJECT_ERROR", err.Error())
		return
	}

	// 空列表时返回对象，非空时直接返回数组
	if len(projects) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"projects": []*domain_project.Project{},
		})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (ctrl *ProjectController) GetProject(c *gin.Context) {
	project, err := ctrl.uc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) UpdateProject(c *gin.Context) {
	var updates map[string]json.RawMessage
	if err := c.ShouldBindJSON(&updates); err != nil {
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	project, err := ctrl.uc.UpdateProject(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated",
		"project": project,
	})
}

func (ctrl *ProjectController) DeleteProject(c *gin.Context) {
	id := c.Param("id")

	report, err := ctrl.uc.DeleteProject(c.Request.Context(), id)
	if err != nil {
		var cascadeErr *domain_project.CascadeError
		if errors.As(err, &cascadeErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "CASCADE_INCOMPLETE",
				"message": err.Error(),
				"step":    cascadeErr.Step,
				"removed": cascadeErr.Report,
			})
			return
		}
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted",
		"id":      id,
		"removed": report,
	})
}

func (ctrl *ProjectController) GetLyrics(c *gin.Context) {
	lyrics, err := ctrl.uc.GetLyrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lyrics)
}

func (ctrl *ProjectController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain_project.ErrProjectNotFound):
		controller.NotFoundText(c, domain_project.MsgProjectNotFound)
	case errors.Is(err, domain_project.ErrAudioNotFound):
		controller.NotFoundText(c, domain_project.MsgAudioNotFound)
	case errors.Is(err, domain_project.ErrLyricsNotFound):
		controller.NotFoundText(c, domain_project.MsgLyricsNotFound)
	case errors.Is(err, domain_project.ErrMalformedInput):
		controller.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		controller.ErrorResponse(c, http.StatusInternalServerError, "PROJECT_ERROR", err.Error())
	}
}
