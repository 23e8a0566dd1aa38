package controller_project

import (
	"errors"
	"net/http"

	"github.com/Super-Badmen-Viper/NineSongProject/api/controller"
	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
	"github.com/gin-gonic/gin"
)

type ProjectMediaController struct {
	uc domain_project.ProjectMediaUsecase
}

func NewProjectMediaController(uc domain_project.ProjectMediaUsecase) *ProjectMediaController {
	return &ProjectMediaController{uc: uc}
}

func (ctrl *ProjectMediaController) AudioHandler(c *gin.Context) {
	media, err := ctrl.uc.GetAudio(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleMediaError(c, err)
		return
	}
	c.Data(http.StatusOK, media.ContentType, media.Data)
}

func (ctrl *ProjectMediaController) CoverArtHandler(c *gin.Context) {
	media, err := ctrl.uc.GetCoverArt(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleMediaError(c, err)
		return
	}
	c.Data(http.StatusOK, media.ContentType, media.Data)
}

func (ctrl *ProjectMediaController) AudioTagsHandler(c *gin.Context) {
	tags, err := ctrl.uc.GetAudioTags(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func handleMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain_project.ErrProjectNotFound):
		controller.NotFoundText(c, domain_project.MsgProjectNotFound)
	case errors.Is(err, domain_project.ErrAudioNotFound):
		controller.NotFoundText(c, domain_project.MsgAudioNotFound)
	case errors.Is(err, domain_project.ErrMediaNotFound):
		controller.NotFoundText(c, domain_project.MsgMediaNotFound)
	case errors.Is(err, domain_project.ErrUnreadableTags):
		controller.ErrorResponse(c, http.StatusUnprocessableEntity, "TAGS_UNREADABLE", err.Error())
	default:
		controller.ErrorResponse(c, http.StatusInternalServerError, "MEDIA_ERROR", err.Error())
	}
}
