package api

import (
	"github.com/rvieira/portfolio-cms/auth"
	"github.com/rvieira/portfolio-cms/content"
	"github.com/rvieira/portfolio-cms/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store ObjectStore, cleaner content.Cleaner, tokens auth.TokenService) *routeHandlers {
	blogManager := content.NewBlogManager(database.BlogRepo(), cleaner)
	projectManager := content.NewProjectManager(
		database.ProjectRepo(),
		database.ProjectTagRepo(),
		database.ProjectCategoryRepo(),
		cleaner,
	)

	return &routeHandlers{
		blogHandler:      newBlogHandler(blogManager, database.BlogRepo()),
		projectHandler:   newProjectHandler(projectManager, database.ProjectRepo()),
		categoryHandler:  newCategoryHandler(database.CategoryRepo(), database.BlogRepo()),
		tagHandler:       newTagHandler(database.TagRepo()),
		uploadHandler:    newUploadHandler(store, cleaner),
		dashboardHandler: newDashboardHandler(database.BlogRepo(), database.ProjectRepo(), database.CategoryRepo(), database.TagRepo()),
		accountHandler:   newAccountHandler(database.UserRepo(), tokens),
	}
}
