package models

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogStatusPublished   BlogStatus = "PUBLISHED"
	BlogStatusUnpublished BlogStatus = "UNPUBLISHED"
)

// NormalizeBlogStatus maps arbitrary client input onto a known status.
// Anything absent or unrecognized falls back to UNPUBLISHED so a draft is
// never published by accident.
func NormalizeBlogStatus(s string) BlogStatus {
	switch BlogStatus(s) {
	case BlogStatusPublished, BlogStatusUnpublished:
		return BlogStatus(s)
	default:
		return BlogStatusUnpublished
	}
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// NormalizeProjectStatus maps arbitrary client input onto a known status,
// defaulting to active.
func NormalizeProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(s) {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return ProjectStatus(s)
	default:
		return ProjectStatusActive
	}
}
