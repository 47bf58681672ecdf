package repositories

import (
	"github.com/erdem/tamatch/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CourseRepository      *CourseRepository
	ApplicationRepository *ApplicationRepository
	ExperienceRepository  *ExperienceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database.Pool),
		CourseRepository:      NewCourseRepository(database.Pool),
		ApplicationRepository: NewApplicationRepository(database),
		ExperienceRepository:  NewExperienceRepository(database.Pool),
	}
}
