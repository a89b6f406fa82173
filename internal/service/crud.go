package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Publisher emits a change event after a successful mutation. Failures are
// logged and swallowed; the write already happened.
type Publisher interface {
	Publish(ctx context.Context, entity, action string, id int64) error
}

// ListParams carries the caller-facing pagination convention. ProfileID nil
// means "no profile filter": the equality predicate is omitted entirely,
// never built from an absent value. Skill, where a resource supports it,
// narrows the list to rows whose skills array contains the value.
type ListParams struct {
	ProfileID *int64
	Skill     *string
	Page      int
	PerPage   int
}

func (p ListParams) offsetLimit() (offset, limit uint64) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	limit = uint64(min(perPage, maxPerPage))
	offset = uint64(page-1) * limit
	return offset, limit
}

// CRUD is the service every dependent resource endpoint talks to: the
// repository contract plus logging, pagination arithmetic and change events.
type CRUD[T domain.Entity] struct {
	name   string
	repo   domain.Repository[T]
	events Publisher
	logger logger.Logger
}

func NewCRUD[T domain.Entity](name string, repo domain.Repository[T], events Publisher, log logger.Logger) *CRUD[T] {
	return &CRUD[T]{name: name, repo: repo, events: events, logger: log}
}

func (s *CRUD[T]) List(ctx context.Context, params ListParams) ([]*T, error) {
	offset, limit := params.offsetLimit()

	var filters []domain.Filter
	if params.ProfileID != nil {
		filters = append(filters, domain.Filter{Column: "profile_id", Value: *params.ProfileID})
	}
	if params.Skill != nil {
		filters = append(filters, domain.Filter{Column: "skills", Value: *params.Skill, Contains: true})
	}

	s.logger.Info("list "+s.name,
		zap.Int64p("profile_id", params.ProfileID),
		zap.Stringp("skill", params.Skill),
		zap.Uint64("offset", offset),
		zap.Uint64("limit", limit),
	)
	return s.repo.List(ctx, filters, offset, limit)
}

func (s *CRUD[T]) Get(ctx context.Context, id int64) (*T, error) {
	s.logger.Info("get "+s.name, zap.Int64("id", id))
	return s.repo.GetByID(ctx, id)
}

func (s *CRUD[T]) Create(ctx context.Context, fields domain.Fields) (*T, error) {
	s.logger.Info("create "+s.name)
	entity, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "created", (*entity).EntityID())
	return entity, nil
}

func (s *CRUD[T]) Update(ctx context.Context, id int64, fields domain.Fields) (*T, error) {
	s.logger.Info("update "+s.name, zap.Int64("id", id))
	entity, err := s.repo.UpdateByID(ctx, id, fields)
	if err != nil || entity == nil {
		return nil, err
	}
	s.publish(ctx, "updated", id)
	return entity, nil
}

func (s *CRUD[T]) Delete(ctx context.Context, id int64) (bool, error) {
	s.logger.Info("delete "+s.name, zap.Int64("id", id))
	ok, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.publish(ctx, "deleted", id)
	}
	return ok, nil
}

func (s *CRUD[T]) publish(ctx context.Context, action string, id int64) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, s.name, action, id); err != nil {
		s.logger.Warn("failed to publish "+s.name+" event",
			zap.String("action", action), zap.Int64("id", id), zap.Error(err))
	}
}
