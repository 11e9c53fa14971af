package postgres

import (
	"testing"

	"jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestSearchConditions(t *testing.T) {
	t.Run("Empty filter keeps only the visibility gate", func(t *testing.T) {
		where, args := searchConditions(domain.SearchFilter{})

		assert.Equal(t, "status = 'active' AND moderation_status = 'approved'", where)
		assert.Empty(t, args)
	})

	t.Run("Minimum salary filters with a greater-or-equal bound", func(t *testing.T) {
		where, args := searchConditions(domain.SearchFilter{SalaryMin: int64Ptr(120000)})

		assert.Contains(t, where, "salary_min >= $1")
		assert.Equal(t, []interface{}{int64(120000)}, args)
	})

	t.Run("Text filters are parameterized with wildcard wrapping", func(t *testing.T) {
		where, args := searchConditions(domain.SearchFilter{
			Title:    "python",
			Location: "remote",
			Skills:   "django",
		})

		assert.Contains(t, where, "title ILIKE $1")
		assert.Contains(t, where, "location ILIKE $2")
		assert.Contains(t, where, "required_skills ILIKE $3")
		assert.Equal(t, []interface{}{"%python%", "%remote%", "%django%"}, args)
	})

	t.Run("Boolean filters add fixed predicates without placeholders", func(t *testing.T) {
		where, args := searchConditions(domain.SearchFilter{RemoteOnly: true, VisaOnly: true})

		assert.Contains(t, where, "is_remote = TRUE")
		assert.Contains(t, where, "visa_sponsorship = TRUE")
		assert.Empty(t, args)
	})

	t.Run("Placeholders stay in sync when filters are combined", func(t *testing.T) {
		where, args := searchConditions(domain.SearchFilter{
			Title:      "engineer",
			SalaryMin:  int64Ptr(100000),
			RemoteOnly: true,
		})

		assert.Contains(t, where, "title ILIKE $1")
		assert.Contains(t, where, "salary_min >= $2")
		assert.Equal(t, []interface{}{"%engineer%", int64(100000)}, args)
	})
}
