package route

import (
	"time"

	"github.com/Super-Badmen-Viper/NineSongProject/api/middleware"
	"github.com/Super-Badmen-Viper/NineSongProject/api/route/route_project"
	"github.com/Super-Badmen-Viper/NineSongProject/bootstrap"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
)

func Setup(app *bootstrap.Application, timeout time.Duration, engine *gin.Engine) {
	metrics := middleware.NewMetrics()

	engine.Use(ginzap.Ginzap(app.Logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(app.Logger, true))
	engine.Use(cors.Default())
	engine.Use(metrics.Middleware())

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	publicRouter := engine.Group("")
	route_project.NewProjectRouter(timeout, app.KV, app.Blob, app.Env.CascadeDelete, app.Logger, publicRouter)
	route_project.NewProjectMediaRouter(timeout, app.KV, app.Blob, app.Logger, publicRouter)
}
