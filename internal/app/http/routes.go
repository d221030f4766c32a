package routes

import (
	adminapi "quoteform-app/internal/api/admin"
	authapi "quoteform-app/internal/api/auth"
	clientsapi "quoteform-app/internal/api/clients"
	"quoteform-app/internal/api/dashboard"
	"quoteform-app/internal/api/formbuilder"
	formsapi "quoteform-app/internal/api/forms"
	productsapi "quoteform-app/internal/api/products"
	"quoteform-app/internal/api/publicforms"
	quotesapi "quoteform-app/internal/api/quotes"
	"quoteform-app/internal/api/users"
	"quoteform-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, input-sanitized
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/forms/:slug", publicforms.GetPublishedForm)
	public.POST("/forms/:slug/submit", publicforms.SubmitQuote)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/dashboard", dashboard.Dashboard)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)

	admin.GET("/forms", formsapi.ListForms)
	admin.POST("/forms", formsapi.CreateForm)
	admin.GET("/forms/:id", formsapi.GetForm)
	admin.PUT("/forms/:id", formsapi.UpdateForm)
	admin.DELETE("/forms/:id", formsapi.DeleteForm)
	admin.POST("/forms/:id/publish", formsapi.Publish)
	admin.POST("/forms/:id/unpublish", formsapi.Unpublish)
	admin.GET("/forms/:id/preview", formsapi.Preview)
	admin.POST("/forms/:id/duplicate", formsapi.Duplicate)

	admin.POST("/forms/:id/builder", formbuilder.OpenBuilder)
	admin.DELETE("/forms/:id/builder", formbuilder.CloseBuilder)
	admin.POST("/forms/:id/builder/fields", formbuilder.AddField)
	admin.PATCH("/forms/:id/builder/fields/:pos", formbuilder.UpdateField)
	admin.DELETE("/forms/:id/builder/fields/:pos", formbuilder.RemoveField)
	admin.PUT("/forms/:id/builder/reorder", formbuilder.Reorder)
	admin.PUT("/forms/:id/builder/settings", formbuilder.UpdateSettings)
	admin.POST("/forms/:id/builder/save", formbuilder.SaveBuilder)

	admin.GET("/products", productsapi.ListProducts)
	admin.POST("/products", productsapi.CreateProduct)
	admin.PUT("/products/:id", productsapi.UpdateProduct)
	admin.DELETE("/products/:id", productsapi.DeleteProduct)
	admin.POST("/products/import", productsapi.BulkImport)

	admin.GET("/clients", clientsapi.ListClients)
	admin.POST("/clients", clientsapi.CreateClient)
	admin.GET("/clients/:id", clientsapi.GetClient)
	admin.PUT("/clients/:id", clientsapi.UpdateClient)
	admin.DELETE("/clients/:id", clientsapi.DeleteClient)

	admin.GET("/quotes", quotesapi.ListQuotes)
	admin.GET("/quotes/:id", quotesapi.GetQuote)
	admin.PUT("/quotes/:id/status", quotesapi.UpdateQuoteStatus)
	admin.DELETE("/quotes/:id", quotesapi.DeleteQuote)
}
