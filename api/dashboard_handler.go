package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/models"
)

type dashboardHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogRepo     *database.BlogRepo
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
	tagRepo      *database.TagRepo
}

func newDashboardHandler(
	blogRepo *database.BlogRepo,
	projectRepo *database.ProjectRepo,
	categoryRepo *database.CategoryRepo,
	tagRepo *database.TagRepo,
) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogRepo:     blogRepo,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// DashboardKPIs are the headline counts shown on the dashboard landing page
type DashboardKPIs struct {
	TotalBlogs      int64 `json:"totalBlogs"`
	TotalProjects   int64 `json:"totalProjects"`
	TotalCategories int64 `json:"totalCategories"`
	TotalTags       int64 `json:"totalTags"`
}

// BlogKPIs break blog totals down by publication status
type BlogKPIs struct {
	TotalBlogs       int64 `json:"totalBlogs"`
	PublishedBlogs   int64 `json:"publishedBlogs"`
	UnpublishedBlogs int64 `json:"unpublishedBlogs"`
}

// getKPIs retrieves the headline entity counts. The counts are unrelated
// reads, so they run concurrently.
// @Summary Dashboard KPIs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardKPIs "Entity counts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error counting entities"
// @Router /dashboard/kpis [get]
func (h dashboardHandler) getKPIs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var kpis DashboardKPIs

		var g errgroup.Group
		g.Go(func() (err error) {
			kpis.TotalBlogs, err = h.blogRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			kpis.TotalProjects, err = h.projectRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			kpis.TotalCategories, err = h.categoryRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			kpis.TotalTags, err = h.tagRepo.Count()
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "dashboard entities", err))
			return
		}

		h.responder.WriteJSON(w, kpis)
	}
}

// getBlogKPIs retrieves blog counts broken down by status
// @Summary Blog KPIs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} BlogKPIs "Blog counts by status"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error counting blogs"
// @Router /dashboard/kpis/blogs [get]
func (h dashboardHandler) getBlogKPIs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var kpis BlogKPIs

		var g errgroup.Group
		g.Go(func() (err error) {
			kpis.TotalBlogs, err = h.blogRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			kpis.PublishedBlogs, err = h.blogRepo.CountByStatus(models.BlogStatusPublished)
			return err
		})
		g.Go(func() (err error) {
			kpis.UnpublishedBlogs, err = h.blogRepo.CountByStatus(models.BlogStatusUnpublished)
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, kpis)
	}
}

// getCategoryKPIs retrieves category and blog totals
// @Summary Category KPIs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]int64 "Category and blog totals"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error counting categories"
// @Router /dashboard/kpis/categories [get]
func (h dashboardHandler) getCategoryKPIs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var totalCategories, totalBlogs int64

		var g errgroup.Group
		g.Go(func() (err error) {
			totalCategories, err = h.categoryRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			totalBlogs, err = h.blogRepo.Count()
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int64{
			"totalCategories": totalCategories,
			"totalBlogs":      totalBlogs,
		})
	}
}

// getTagKPIs retrieves tag and blog totals
// @Summary Tag KPIs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]int64 "Tag and blog totals"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error counting tags"
// @Router /dashboard/kpis/tags [get]
func (h dashboardHandler) getTagKPIs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var totalTags, totalBlogs int64

		var g errgroup.Group
		g.Go(func() (err error) {
			totalTags, err = h.tagRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			totalBlogs, err = h.blogRepo.Count()
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "tags", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int64{
			"totalTags":  totalTags,
			"totalBlogs": totalBlogs,
		})
	}
}
