package services_test

import (
	"context"

	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

// In-memory fakes for the repository interfaces. IDs are assigned
// sequentially per fake; error behavior mirrors the real repositories.

func newFakeRepos() (*fakeUserRepo, *fakeCourseRepo, *fakeApplicationRepo, *fakeExperienceRepo) {
	userRepo := newFakeUserRepo()
	courseRepo := newFakeCourseRepo()
	appRepo := newFakeApplicationRepo(courseRepo)
	expRepo := newFakeExperienceRepo()
	courseRepo.apps = appRepo
	courseRepo.exps = expRepo
	return userRepo, courseRepo, appRepo, expRepo
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64

	updateLastLoginErr error
	lastLoginCalls     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) addUser(u *models.User) *models.User {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	stored := *user
	r.addUser(&stored)
	return stored.ID, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	r.lastLoginCalls++
	if r.updateLastLoginErr != nil {
		return r.updateLastLoginErr
	}
	if _, ok := r.users[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64

	// Wired by the fixtures so Delete can model the ON DELETE CASCADE
	// foreign keys of the real schema.
	apps *fakeApplicationRepo
	exps *fakeExperienceRepo
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int64]*models.Course{}, nextID: 1}
}

func (r *fakeCourseRepo) addCourse(c *models.Course) *models.Course {
	c.ID = r.nextID
	r.nextID++
	r.courses[c.ID] = c
	return c
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	stored := *course
	r.addCourse(&stored)
	return stored.ID, nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	r.courses[course.ID] = &stored
	return nil
}

// Delete removes the course and, like the real schema's cascading foreign
// keys, every application and experience referencing it.
func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)

	if r.apps != nil {
		for appID, a := range r.apps.apps {
			if a.CourseID == id {
				delete(r.apps.apps, appID)
			}
		}
	}
	if r.exps != nil {
		for expID, e := range r.exps.exps {
			if e.CourseID == id {
				delete(r.exps.exps, expID)
			}
		}
	}
	return nil
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.courses))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.courses[id]; ok {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByProfessorID(_ context.Context, professorID int64) ([]*models.Course, error) {
	out := []*models.Course{}
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.courses[id]; ok && c.ProfessorID == professorID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps    map[int64]*models.Application
	nextID  int64
	courses *fakeCourseRepo
}

func newFakeApplicationRepo(courses *fakeCourseRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[int64]*models.Application{}, nextID: 1, courses: courses}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) (int64, error) {
	stored := *app
	stored.ID = r.nextID
	r.nextID++
	r.apps[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.apps[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.Application, error) {
	out := []*models.Application{}
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.apps[id]; ok && a.CourseID == courseID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.Application, error) {
	out := []*models.Application{}
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.apps[id]; ok && a.StudentID == studentID {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

// Assign mirrors the transactional capacity check of the real repository:
// accepting may never exceed the course position count.
func (r *fakeApplicationRepo) Assign(_ context.Context, id int64) error {
	app, ok := r.apps[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}

	course, ok := r.courses.courses[app.CourseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}

	accepted := 0
	for _, a := range r.apps {
		if a.CourseID == app.CourseID && a.Accepted && a.ID != id {
			accepted++
		}
	}
	if accepted >= course.PositionCount {
		return apperrors.ErrCapacityExceeded
	}

	app.Accepted = true
	return nil
}

func (r *fakeApplicationRepo) Unassign(_ context.Context, id int64) error {
	app, ok := r.apps[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	app.Accepted = false
	return nil
}

type fakeExperienceRepo struct {
	exps   map[int64]*models.Experience
	nextID int64
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{exps: map[int64]*models.Experience{}, nextID: 1}
}

func (r *fakeExperienceRepo) Create(_ context.Context, exp *models.Experience) (int64, error) {
	stored := *exp
	stored.ID = r.nextID
	r.nextID++
	r.exps[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeExperienceRepo) GetByID(_ context.Context, id int64) (*models.Experience, error) {
	e, ok := r.exps[id]
	if !ok {
		return nil, apperrors.ErrExperienceNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExperienceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.exps[id]; !ok {
		return apperrors.ErrExperienceNotFound
	}
	delete(r.exps, id)
	return nil
}

func (r *fakeExperienceRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.Experience, error) {
	out := []*models.Experience{}
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.exps[id]; ok && e.StudentID == studentID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}
