package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"recipehub/models"
)

// ErrReloadFailed marks a mutation the server accepted whose follow-up
// Reload failed. The cache is then unloaded and refetched on next use.
var ErrReloadFailed = errors.New("enrollment view reload failed")

// EnrollmentView is a read-through cache of the caller's enrollment list.
// The server stays authoritative: mutations go to the API and are followed
// by a Reload, the cached list is never patched locally.
type EnrollmentView struct {
	api *Client

	mu      sync.Mutex
	loaded  bool
	courses []models.UserCourse
}

func NewEnrollmentView(api *Client) *EnrollmentView {
	return &EnrollmentView{api: api}
}

// Courses returns the cached list, fetching it on first use.
func (v *EnrollmentView) Courses(ctx context.Context) ([]models.UserCourse, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		if err := v.reloadLocked(ctx); err != nil {
			return nil, err
		}
	}
	return append([]models.UserCourse(nil), v.courses...), nil
}

// IsEnrolled reports whether courseID is in the cached list.
func (v *EnrollmentView) IsEnrolled(ctx context.Context, courseID uint) (bool, error) {
	courses, err := v.Courses(ctx)
	if err != nil {
		return false, err
	}
	for _, uc := range courses {
		if uc.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// Reload discards the cache and fetches the list again.
func (v *EnrollmentView) Reload(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.reloadLocked(ctx)
}

func (v *EnrollmentView) reloadLocked(ctx context.Context) error {
	courses, err := v.api.MyCourses(ctx)
	if err != nil {
		v.loaded = false
		return err
	}
	v.courses = courses
	v.loaded = true
	return nil
}

// Register enrolls the caller and reloads the cache. When only the reload
// fails, the result is still returned along with an error wrapping
// ErrReloadFailed.
func (v *EnrollmentView) Register(ctx context.Context, courseID uint) (*RegisterResult, error) {
	res, err := v.api.Register(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := v.Reload(ctx); err != nil {
		return res, fmt.Errorf("registered, %w: %w", ErrReloadFailed, err)
	}
	return res, nil
}

// Unregister follows the same error contract as Register.
func (v *EnrollmentView) Unregister(ctx context.Context, courseID uint) error {
	if _, err := v.api.Unregister(ctx, courseID); err != nil {
		return err
	}
	if err := v.Reload(ctx); err != nil {
		return fmt.Errorf("unregistered, %w: %w", ErrReloadFailed, err)
	}
	return nil
}
