package database

import (
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type Database struct {
	blogRepo            *BlogRepo
	projectRepo         *ProjectRepo
	projectTagRepo      *ProjectTagRepo
	projectCategoryRepo *ProjectCategoryRepo
	categoryRepo        *CategoryRepo
	tagRepo             *TagRepo
	userRepo            *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogRepo:            NewBlogRepo(db),
		projectRepo:         NewProjectRepo(db),
		projectTagRepo:      NewProjectTagRepo(db),
		projectCategoryRepo: NewProjectCategoryRepo(db),
		categoryRepo:        NewCategoryRepo(db),
		tagRepo:             NewTagRepo(db),
		userRepo:            NewUserRepo(db),
	}
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
		&models.Project{},
		&models.ProjectTag{},
		&models.ProjectCategory{},
		&models.User{},
	)
}

// Accessor methods for each repository

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectTagRepo() *ProjectTagRepo {
	return d.projectTagRepo
}

func (d Database) ProjectCategoryRepo() *ProjectCategoryRepo {
	return d.projectCategoryRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
