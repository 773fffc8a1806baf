package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up read-only routes that need no session token
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog Handler endpoints
		r.Get("/blogs", handlers.blogHandler.listBlogs())
		r.Get("/blog/{blogID}", handlers.blogHandler.getBlog())
		r.Get("/blogs/slug/{slug}", handlers.blogHandler.getBlogBySlug())

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/projects/slug/{slug}", handlers.projectHandler.getProjectBySlug())

		// Category and Tag Handler endpoints
		r.Get("/categories", handlers.categoryHandler.listCategories())
		r.Get("/tags", handlers.tagHandler.listTags())

		// Dashboard Handler endpoints
		r.Get("/dashboard/kpis", handlers.dashboardHandler.getKPIs())
		r.Get("/dashboard/kpis/blogs", handlers.dashboardHandler.getBlogKPIs())
		r.Get("/dashboard/kpis/categories", handlers.dashboardHandler.getCategoryKPIs())
		r.Get("/dashboard/kpis/tags", handlers.dashboardHandler.getTagKPIs())

		// Account Handler endpoints
		r.Post("/auth/login", handlers.accountHandler.login())
	})
}

// setupAdminRoutes sets up all mutation routes behind authentication
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog Handler endpoints
		r.Post("/blog", handlers.blogHandler.createBlog())
		r.Put("/blog/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/blog/{blogID}", handlers.blogHandler.deleteBlog())

		// Project Handler endpoints
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Category Handler endpoints
		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())

		// Tag Handler endpoints
		r.Post("/tag", handlers.tagHandler.createTag())
		r.Put("/tag/{tagID}", handlers.tagHandler.updateTag())
		r.Delete("/tag/{tagID}", handlers.tagHandler.deleteTag())

		// Upload Handler endpoints
		r.Post("/upload", handlers.uploadHandler.uploadImage())
		r.Post("/delete-image", handlers.uploadHandler.deleteImage())

		// Account Handler endpoints
		r.Post("/account/password", handlers.accountHandler.updatePassword())
	})
}
