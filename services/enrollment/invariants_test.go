package enrollment

import (
	"errors"
	"testing"

	"recipehub/models"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// checkInvariants asserts capacity, uniqueness and two-sided agreement for
// the given courses.
func checkInvariants(t require.TestingT, f *fixture, courseIDs []uint) {
	for _, id := range courseIDs {
		var course models.Course
		require.NoError(t, f.db.First(&course, id).Error)

		var participants []models.CourseParticipant
		require.NoError(t, f.db.Where("course_id = ?", id).Find(&participants).Error)
		require.LessOrEqual(t, len(participants), course.MaxSeats, "course %d over capacity", id)
		require.Equal(t, len(participants), course.ParticipantCount, "course %d counter drifted", id)

		seen := map[uint]bool{}
		for _, p := range participants {
			require.False(t, seen[p.UserID], "user %d listed twice on course %d", p.UserID, id)
			seen[p.UserID] = true
		}

		var entries []models.UserCourse
		require.NoError(t, f.db.Where("course_id = ?", id).Find(&entries).Error)
		require.Len(t, entries, len(participants), "course %d sides disagree", id)
		for _, e := range entries {
			require.True(t, seen[e.UserID], "user %d lists course %d without being a participant", e.UserID, id)
		}
	}
}

// TestProperty_EnrollmentInvariants drives random register/unregister
// sequences and checks every invariant after each step.
func TestProperty_EnrollmentInvariants(t *testing.T) {
	f := newFixture(t)

	rapid.Check(t, func(rt *rapid.T) {
		numCourses := rapid.IntRange(1, 3).Draw(rt, "numCourses")
		numUsers := rapid.IntRange(1, 5).Draw(rt, "numUsers")

		courseIDs := make([]uint, numCourses)
		for i := range courseIDs {
			seats := rapid.IntRange(1, 3).Draw(rt, "seats")
			c, err := f.svc.CreateCourse(f.ctx, admin, CourseInput{Title: "Pasta", Location: "Haifa", MaxSeats: seats})
			require.NoError(rt, err)
			courseIDs[i] = c.ID
		}
		userIDs := make([]uint, numUsers)
		for i := range userIDs {
			userIDs[i] = f.user(t, "prop").ID
		}

		steps := rapid.IntRange(1, 15).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			u := userIDs[rapid.IntRange(0, numUsers-1).Draw(rt, "user")]
			c := courseIDs[rapid.IntRange(0, numCourses-1).Draw(rt, "course")]

			if rapid.Bool().Draw(rt, "register") {
				_, err := f.svc.Register(f.ctx, u, c)
				if err != nil && !errors.Is(err, ErrCourseFull) {
					rt.Fatalf("register: %v", err)
				}
			} else {
				_, err := f.svc.Unregister(f.ctx, u, c)
				require.NoError(rt, err)
			}
			checkInvariants(rt, f, courseIDs)
		}
	})
}

// TestProperty_RegisterIdempotent checks that a repeated Register leaves the
// same state as a single one.
func TestProperty_RegisterIdempotent(t *testing.T) {
	f := newFixture(t)

	rapid.Check(t, func(rt *rapid.T) {
		seats := rapid.IntRange(1, 4).Draw(rt, "seats")
		repeats := rapid.IntRange(2, 4).Draw(rt, "repeats")

		c, err := f.svc.CreateCourse(f.ctx, admin, CourseInput{Title: "Sushi", Location: "Eilat", MaxSeats: seats})
		require.NoError(rt, err)
		u := f.user(t, "idem")

		for i := 0; i < repeats; i++ {
			res, err := f.svc.Register(f.ctx, u.ID, c.ID)
			require.NoError(rt, err)
			require.Equal(rt, i > 0, res.AlreadyEnrolled)
			require.Equal(rt, 1, res.Course.ParticipantCount)
			require.Len(rt, res.UserCourses, 1)
		}
		checkInvariants(rt, f, []uint{c.ID})
	})
}
