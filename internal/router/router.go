package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ideahub-dev/ideahub/internal/handlers"
	"github.com/ideahub-dev/ideahub/internal/store"
	"gorm.io/gorm"
)

// NewRouter wires stores and handlers around the injected store client and
// registers the route table.
func NewRouter(gdb *gorm.DB, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	users := handlers.NewUserHandler(store.NewUserStore(gdb))
	projects := handlers.NewProjectHandler(store.NewProjectStore(gdb))

	r.GET("/health", handlers.HealthCheck)

	r.GET("/user/:external_id", users.GetUser)
	r.GET("/user/username/:username", users.GetUserByUsername)
	r.POST("/signup", users.Signup)
	r.POST("/login", users.Login)

	r.GET("/project/:project_id", projects.GetProject)
	r.GET("/user/project/:external_id", projects.ListUserProjects)
	r.GET("/user/project/:external_id/:project_name", projects.GetUserProjectByName)
	r.POST("/create/:external_owner_id", projects.CreateProject)
	r.POST("/update/:project_id", projects.UpdateProject)
	r.POST("/adduser/:project_id", projects.AddOwner)

	return r
}
