package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"student-service/internal/metrics"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Stage is one step of an aggregation built on top of the students table.
type Stage func(q *bun.SelectQuery) *bun.SelectQuery

type Repository interface {
	Create(ctx context.Context, student *Student) (*Student, error)
	Find(ctx context.Context, filter Filter) ([]Student, error)
	FindOne(ctx context.Context, filter Filter) (*Student, error)
	IsUserExists(ctx context.Context, id string) (*Student, error)
	Aggregate(ctx context.Context, dest any, stages ...Stage) error
	Update(ctx context.Context, student *Student) (*Student, error)
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db      *bun.DB
	hooks   *Hooks
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, hooks *Hooks, m *metrics.Metrics) Repository {
	return &repository{
		db:      db,
		hooks:   hooks,
		metrics: m,
	}
}

func (r *repository) Create(ctx context.Context, student *Student) (*Student, error) {
	if err := r.hooks.BeforeSave(student); err != nil {
		return nil, err
	}

	start := time.Now()
	_, err := r.db.NewInsert().Model(student).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "students", time.Since(start), err)

	if err != nil {
		return nil, mapWriteError(err)
	}

	r.hooks.AfterSave(student)
	return student, nil
}

func (r *repository) Find(ctx context.Context, filter Filter) ([]Student, error) {
	start := time.Now()
	var students []Student
	err := filter.Apply(r.selectStudents(&students)).
		OrderExpr("?TableAlias.created_at ASC, ?TableAlias.id ASC").
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "students", time.Since(start), err)

	return students, err
}

func (r *repository) FindOne(ctx context.Context, filter Filter) (*Student, error) {
	start := time.Now()
	student := new(Student)
	err := filter.Apply(r.selectStudents(student)).Limit(1).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "students", time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// IsUserExists returns the live student with the given id or
// ErrStudentNotFound.
func (r *repository) IsUserExists(ctx context.Context, id string) (*Student, error) {
	return r.FindOne(ctx, Filter{ID: id})
}

// Aggregate runs the stages over non-deleted students and scans the result
// into dest.
func (r *repository) Aggregate(ctx context.Context, dest any, stages ...Stage) error {
	start := time.Now()
	q := NotDeleted(r.db.NewSelect().Model((*Student)(nil)))
	for _, stage := range stages {
		q = stage(q)
	}
	err := q.Scan(ctx, dest)

	r.metrics.Database.RecordQuery(ctx, "aggregate", "students", time.Since(start), err)

	return err
}

// Update saves the whole document of a live student. The password is
// re-hashed and the deletion flag is never written.
func (r *repository) Update(ctx context.Context, student *Student) (*Student, error) {
	if err := r.hooks.BeforeSave(student); err != nil {
		return nil, err
	}
	student.UpdatedAt = time.Now()

	start := time.Now()
	result, err := r.db.NewUpdate().
		Model(student).
		ExcludeColumn("created_at", "is_deleted").
		WherePK().
		Where("?TableAlias.is_deleted IS NOT TRUE").
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "students", time.Since(start), err)

	if err != nil {
		return nil, mapWriteError(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrStudentNotFound
	}

	r.hooks.AfterSave(student)
	return student, nil
}

// SoftDelete flags a live student as deleted. Rows are never removed.
func (r *repository) SoftDelete(ctx context.Context, id string) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model((*Student)(nil)).
		Set("is_deleted = TRUE").
		Set("updated_at = current_timestamp").
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.is_deleted IS NOT TRUE").
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "soft_delete", "students", time.Since(start), err)

	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (r *repository) selectStudents(model any) *bun.SelectQuery {
	return r.db.NewSelect().Model(model).ExcludeColumn("password")
}

// mapWriteError turns a unique violation on id or email into
// ErrStudentExists.
func mapWriteError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == "23505" {
		return fmt.Errorf("%w: %s", ErrStudentExists, pgErr.Field('n'))
	}
	return err
}
