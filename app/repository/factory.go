package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository implementations.
type Repositories struct {
	Course   CourseRepository
	Access   AccessRepository
	Progress ProgressRepository
}

// NewRepositories creates all repositories from a shared DB handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Course:   NewCourseRepository(db),
		Access:   NewAccessRepository(db),
		Progress: NewProgressRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons.
// It is constructed once at process start and handed to the router; there is
// no package-level instance.
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetCourseRepository returns the course repository instance
func (f *Factory) GetCourseRepository() CourseRepository {
	return f.GetRepositories().Course
}

// GetAccessRepository returns the access repository instance
func (f *Factory) GetAccessRepository() AccessRepository {
	return f.GetRepositories().Access
}

// GetProgressRepository returns the progress repository instance
func (f *Factory) GetProgressRepository() ProgressRepository {
	return f.GetRepositories().Progress
}
