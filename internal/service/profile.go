package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

// DependentRepos bundles the repositories of the eleven collections owned by
// a profile.
type DependentRepos struct {
	Projects       domain.Repository[domain.Project]
	Experiences    domain.Repository[domain.Experience]
	Educations     domain.Repository[domain.Education]
	Certifications domain.Repository[domain.Certification]
	Awards         domain.Repository[domain.Award]
	Publications   domain.Repository[domain.Publication]
	Contacts       domain.Repository[domain.Contact]
	SocialLinks    domain.Repository[domain.SocialLink]
	PortfolioItems domain.Repository[domain.PortfolioItem]
	References     domain.Repository[domain.Reference]
	Skills         domain.Repository[domain.Skill]
}

// Profiles serves the profile resource: plain CRUD on the profile row plus
// the aggregate read that pulls in every dependent collection.
type Profiles struct {
	*CRUD[domain.Profile]
	sessions domain.Sessions
	deps     DependentRepos
}

func NewProfiles(sessions domain.Sessions, repo domain.Repository[domain.Profile], deps DependentRepos, events Publisher, log logger.Logger) *Profiles {
	return &Profiles{
		CRUD:     NewCRUD("profile", repo, events, log),
		sessions: sessions,
		deps:     deps,
	}
}

// GetProfile returns the profile and all eleven dependent collections, read
// inside one transaction so the aggregate is a consistent snapshot. Absent
// profile means no dependent query is issued at all.
func (s *Profiles) GetProfile(ctx context.Context, id int64) (*domain.AggregatedProfile, error) {
	s.logger.Info("get aggregated profile", zap.Int64("id", id))

	var agg *domain.AggregatedProfile
	err := s.sessions.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		agg, err = s.aggregate(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return agg, nil
}

// UpdateProfile applies a partial update to the profile row and re-reads the
// whole aggregate in the same transaction. It never patches a previously
// assembled aggregate; dependent collections are always re-fetched.
func (s *Profiles) UpdateProfile(ctx context.Context, id int64, fields domain.Fields) (*domain.AggregatedProfile, error) {
	s.logger.Info("update aggregated profile", zap.Int64("id", id))

	var agg *domain.AggregatedProfile
	err := s.sessions.WithinTx(ctx, func(ctx context.Context) error {
		updated, err := s.repo.UpdateByID(ctx, id, fields)
		if err != nil || updated == nil {
			return err
		}
		agg, err = s.aggregate(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if agg != nil {
		s.publish(ctx, "updated", id)
	}
	return agg, nil
}

func (s *Profiles) aggregate(ctx context.Context, id int64) (*domain.AggregatedProfile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil || profile == nil {
		return nil, err
	}

	agg := &domain.AggregatedProfile{Profile: *profile}
	owned := []domain.Filter{{Column: "profile_id", Value: id}}

	if agg.Projects, err = s.deps.Projects.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.Experiences, err = s.deps.Experiences.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.Educations, err = s.deps.Educations.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.Certifications, err = s.deps.Certifications.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.Awards, err = s.deps.Awards.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.Publications, err = s.deps.Publications.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.Contacts, err = s.deps.Contacts.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.SocialLinks, err = s.deps.SocialLinks.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.PortfolioItems, err = s.deps.PortfolioItems.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.References, err = s.deps.References.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}
	if agg.SkillItems, err = s.deps.Skills.List(ctx, owned, 0, 0); err != nil {
		return nil, err
	}

	return agg, nil
}
