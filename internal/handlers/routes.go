package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/middlewares"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/service"
	"github.com/amrenderatomar-prog/Task-Management-API/pkg/auth"
)

// SetupRoutes wires every endpoint group onto the engine. main and the
// handler tests share this so the route table only exists once.
func SetupRoutes(r *gin.Engine, tokens *auth.TokenService, users service.UserStore,
	authSvc *service.AuthSvc, taskSvc *service.TaskSvc, adminSvc *service.AdminSvc) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	protected := middlewares.JWTAuth(tokens, users)
	v1 := r.Group("/api/v1")

	ah := NewAuthHandler(authSvc)
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ah.Register)
		authGroup.POST("/login", ah.Login)
		authGroup.POST("/refresh", ah.Refresh)
		authGroup.POST("/logout", protected, ah.Logout)
		authGroup.GET("/profile", protected, ah.Profile)
	}

	th := NewTaskHandler(taskSvc)
	tasks := v1.Group("/tasks")
	tasks.Use(protected)
	{
		tasks.GET("", th.List)
		tasks.POST("", th.Create)
		tasks.GET("/stats", th.Stats)
		tasks.GET("/:id", th.Get)
		tasks.PUT("/:id", th.Update)
		tasks.DELETE("/:id", th.Delete)
	}

	adh := NewAdminHandler(adminSvc)
	admin := v1.Group("/admin")
	admin.Use(protected, middlewares.RequireRole(domain.RoleAdmin))
	{
		admin.GET("", adh.ListUsers)
		admin.PUT("/:id/role", adh.UpdateRole)
		admin.DELETE("/:id", adh.DeleteUser)
	}
}
