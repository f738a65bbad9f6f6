package student

import "github.com/uptrace/bun"

// NotDeleted restricts q to rows whose is_deleted flag is not true. Every
// read path goes through it; extra criteria are AND-ed on top.
func NotDeleted(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Where("?TableAlias.is_deleted IS NOT TRUE")
}

// Filter holds optional equality criteria for listing students. Zero
// values are ignored.
type Filter struct {
	ID         string
	Email      string
	Gender     Gender
	BloodGroup BloodGroup
	IsActive   Status
}

// Apply adds the criteria to q together with the soft-delete predicate.
func (f Filter) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	q = NotDeleted(q)
	if f.ID != "" {
		q = q.Where("?TableAlias.id = ?", f.ID)
	}
	if f.Email != "" {
		q = q.Where("?TableAlias.email = ?", f.Email)
	}
	if f.Gender != "" {
		q = q.Where("?TableAlias.gender = ?", f.Gender)
	}
	if f.BloodGroup != "" {
		q = q.Where("?TableAlias.blood_group = ?", f.BloodGroup)
	}
	if f.IsActive != "" {
		q = q.Where("?TableAlias.is_active = ?", f.IsActive)
	}
	return q
}
