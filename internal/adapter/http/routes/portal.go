package routes

import (
	"fenceworks/internal/adapter/http/middleware"
	"fenceworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathProducts = "/products"
	PathCustomer = "/customer"
	PathAdmin    = "/admin"
)

func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", h.Auth.SignUp)
		auth.POST("/signin", h.Auth.SignIn)
		auth.POST("/signout", h.Auth.SignOut)
		auth.POST("/password-reset", h.Auth.RequestPasswordReset)
		auth.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.Products.List)
		products.GET("/:id", h.Products.Get)
	}

	rg.POST("/estimates", h.Estimate.Calculate)

	profile := rg.Group("/profile", middleware.RequireAuth())
	{
		profile.GET("", h.Accounts.GetProfile)
		profile.PUT("", h.Accounts.UpdateProfile)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h Handlers) {
	customer := rg.Group(PathCustomer, middleware.RequireRole(entities.RoleCustomer))
	{
		customer.GET("/dashboard", h.Reports.CustomerDashboard)

		customer.POST("/quotes", h.Quotes.SubmitQuote)
		customer.GET("/quotes", h.Quotes.ListMine)
		customer.GET("/quotes/stream", h.Quotes.StreamMine)
		customer.GET("/quotes/:id", h.Quotes.GetMine)

		customer.GET("/projects", h.Projects.ListMine)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/dashboard", h.Reports.AdminDashboard)

		admin.GET("/quotes", h.Quotes.ListAll)
		admin.GET("/quotes/stream", h.Quotes.StreamAll)
		admin.GET("/quotes/:id", h.Quotes.Get)
		admin.PATCH("/quotes/:id", h.Quotes.EditDetails)
		admin.PATCH("/quotes/:id/status", h.Quotes.Transition)
		admin.PATCH("/quotes/:id/approve", h.Quotes.Approve)
		admin.PATCH("/quotes/:id/reject", h.Quotes.Reject)
		admin.PATCH("/quotes/:id/reset", h.Quotes.Reset)
		admin.PATCH("/quotes/:id/read", h.Quotes.MarkRead)

		admin.POST("/products", h.Products.Create)
		admin.PUT("/products/:id", h.Products.Update)
		admin.DELETE("/products/:id", h.Products.Delete)

		admin.POST("/projects", h.Projects.Create)
		admin.GET("/projects", h.Projects.ListAll)
		admin.GET("/projects/:id", h.Projects.Get)
		admin.PATCH("/projects/:id", h.Projects.Update)

		admin.GET("/users", h.Accounts.ListUsers)
		admin.POST("/users", h.Auth.CreateUser)
		admin.GET("/settings", h.Accounts.GetSettings)
		admin.PUT("/settings", h.Accounts.UpdateSettings)

		admin.GET("/reports/summary", h.Reports.Summary)
		admin.GET("/reports/quotes.xlsx", h.Reports.ExportQuotes)
	}
}
