package student

import (
	"context"
	"errors"
	"log/slog"

	"student-service/internal/events"
	"student-service/internal/metrics"

	"github.com/uptrace/bun"
)

type GroupCount struct {
	Key   string `bun:"key" json:"key"`
	Count int    `bun:"count" json:"count"`
}

type Stats struct {
	Total        int          `json:"total"`
	ByGender     []GroupCount `json:"byGender"`
	ByBloodGroup []GroupCount `json:"byBloodGroup"`
}

type Service interface {
	CreateStudent(ctx context.Context, req *CreateStudentRequest) (*Student, error)
	GetAllStudents(ctx context.Context, filter Filter) ([]Student, error)
	GetStudent(ctx context.Context, id string) (*Student, error)
	UpdateStudent(ctx context.Context, id string, req *CreateStudentRequest) (*Student, error)
	DeleteStudent(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo      Repository
	input     *InputSchema
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewService(repo Repository, publisher events.Publisher, logger *slog.Logger, m *metrics.Metrics) Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &service{
		repo:      repo,
		input:     NewInputSchema(),
		publisher: publisher,
		logger:    logger,
		metrics:   m,
	}
}

func (s *service) CreateStudent(ctx context.Context, req *CreateStudentRequest) (*Student, error) {
	student, err := s.input.Parse(req)
	if err != nil {
		s.metrics.RecordValidationFailure(ctx, "input")
		return nil, err
	}

	if _, err := s.repo.IsUserExists(ctx, student.ID); err == nil {
		return nil, ErrStudentExists
	} else if !errors.Is(err, ErrStudentNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		s.recordStorageFailure(ctx, err)
		return nil, err
	}

	s.metrics.RecordStudentCreated(ctx)
	s.publish(ctx, events.StudentCreated, created)
	return created, nil
}

func (s *service) GetAllStudents(ctx context.Context, filter Filter) ([]Student, error) {
	return s.repo.Find(ctx, filter)
}

func (s *service) GetStudent(ctx context.Context, id string) (*Student, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindOne(ctx, Filter{ID: id})
}

// UpdateStudent replaces the whole document of a live student. The payload
// goes through the same input rules as a create and may not change the id.
func (s *service) UpdateStudent(ctx context.Context, id string, req *CreateStudentRequest) (*Student, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	student, err := s.input.Parse(req)
	if err != nil {
		s.metrics.RecordValidationFailure(ctx, "input")
		return nil, err
	}
	if student.ID != id {
		s.metrics.RecordValidationFailure(ctx, "input")
		return nil, &InputValidationError{Issues: []Issue{{Path: "id", Message: "Student ID can not be changed"}}}
	}

	if _, err := s.repo.Update(ctx, student); err != nil {
		s.recordStorageFailure(ctx, err)
		return nil, err
	}

	updated, err := s.repo.FindOne(ctx, Filter{ID: id})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordStudentUpdated(ctx)
	s.publish(ctx, events.StudentUpdated, updated)
	return updated, nil
}

func (s *service) DeleteStudent(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.metrics.RecordStudentDeleted(ctx)
	s.publish(ctx, events.StudentDeleted, &Student{ID: id})
	return nil
}

// GetStats counts live students overall, per gender and per blood group.
func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var total int
	if err := s.repo.Aggregate(ctx, &total, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.ColumnExpr("count(*)")
	}); err != nil {
		return nil, err
	}
	stats.Total = total

	if err := s.repo.Aggregate(ctx, &stats.ByGender, groupCount("gender")); err != nil {
		return nil, err
	}
	if err := s.repo.Aggregate(ctx, &stats.ByBloodGroup, groupCount("blood_group")); err != nil {
		return nil, err
	}
	return stats, nil
}

// groupCount groups by column; rows with no value are reported under "".
func groupCount(column string) Stage {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			ColumnExpr("COALESCE(?TableAlias.?, '') AS key", bun.Ident(column)).
			ColumnExpr("count(*) AS count").
			GroupExpr("key").
			OrderExpr("key ASC")
	}
}

func (s *service) recordStorageFailure(ctx context.Context, err error) {
	var storageErr *StorageValidationError
	if errors.As(err, &storageErr) {
		s.metrics.RecordValidationFailure(ctx, "storage")
	}
}

func (s *service) publish(ctx context.Context, t events.Type, student *Student) {
	event := events.NewStudentEvent(t, student.ID, student.Email)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish student event",
			"event_type", t,
			"student_id", student.ID,
			"error", err,
		)
	}
}
