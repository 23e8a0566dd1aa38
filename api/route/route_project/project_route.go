package route_project

import (
	"time"

	"github.com/Super-Badmen-Viper/NineSongProject/api/controller/controller_project"
	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/usecase/usecase_project"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewProjectRouter(
	timeout time.Duration,
	kv domain.KVStore,
	blob domain.BlobStore,
	cascadeDelete bool,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	uc := usecase_project.NewProjectUsecase(kv, blob, timeout, cascadeDelete, logger)
	ctrl := controller_project.NewProjectController(uc)

	group.POST("/project", ctrl.CreateProject)
	group.GET("/projects", ctrl.ListProjects)
	group.GET("/project/:id", ctrl.GetProject)
	group.PUT("/project/:id", ctrl.UpdateProject)
	group.DELETE("/project/:id", ctrl.DeleteProject)
	group.GET("/lyrics/:id", ctrl.GetLyrics)
}

func NewProjectMediaRouter(
	timeout time.Duration,
	kv domain.KVStore,
	blob domain.BlobStore,
	logger *zap.Logger,
	group *gin.RouterGroup,
) {
	uc := usecase_project.NewProjectMediaUsecase(kv, blob, timeout, logger)
	ctrl := controller_project.NewProjectMediaController(uc)

	mediaGroup := group.Group("/project/:id")
	{
		mediaGroup.GET("/audio", ctrl.AudioHandler)
		mediaGroup.GET("/audio/tags", ctrl.AudioTagsHandler)
		mediaGroup.GET("/cover", ctrl.CoverArtHandler)
	}
}
