package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/logger"
)

type fakeSessions struct {
	txCount int
}

func (s *fakeSessions) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txCount++
	return fn(ctx)
}

type profileFixture struct {
	sessions *fakeSessions
	profiles *fakeRepo[domain.Profile]
	deps     struct {
		projects       *fakeRepo[domain.Project]
		experiences    *fakeRepo[domain.Experience]
		educations     *fakeRepo[domain.Education]
		certifications *fakeRepo[domain.Certification]
		awards         *fakeRepo[domain.Award]
		publications   *fakeRepo[domain.Publication]
		contacts       *fakeRepo[domain.Contact]
		socialLinks    *fakeRepo[domain.SocialLink]
		portfolioItems *fakeRepo[domain.PortfolioItem]
		references     *fakeRepo[domain.Reference]
		skills         *fakeRepo[domain.Skill]
	}
	svc *Profiles
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		sessions: &fakeSessions{},
		profiles: &fakeRepo[domain.Profile]{},
	}
	f.deps.projects = &fakeRepo[domain.Project]{}
	f.deps.experiences = &fakeRepo[domain.Experience]{}
	f.deps.educations = &fakeRepo[domain.Education]{}
	f.deps.certifications = &fakeRepo[domain.Certification]{}
	f.deps.awards = &fakeRepo[domain.Award]{}
	f.deps.publications = &fakeRepo[domain.Publication]{}
	f.deps.contacts = &fakeRepo[domain.Contact]{}
	f.deps.socialLinks = &fakeRepo[domain.SocialLink]{}
	f.deps.portfolioItems = &fakeRepo[domain.PortfolioItem]{}
	f.deps.references = &fakeRepo[domain.Reference]{}
	f.deps.skills = &fakeRepo[domain.Skill]{}

	f.svc = NewProfiles(f.sessions, f.profiles, DependentRepos{
		Projects:       f.deps.projects,
		Experiences:    f.deps.experiences,
		Educations:     f.deps.educations,
		Certifications: f.deps.certifications,
		Awards:         f.deps.awards,
		Publications:   f.deps.publications,
		Contacts:       f.deps.contacts,
		SocialLinks:    f.deps.socialLinks,
		PortfolioItems: f.deps.portfolioItems,
		References:     f.deps.references,
		Skills:         f.deps.skills,
	}, nil, logger.NewNop())
	return f
}

func (f *profileFixture) dependentListCalls() int {
	return f.deps.projects.listCalls +
		f.deps.experiences.listCalls +
		f.deps.educations.listCalls +
		f.deps.certifications.listCalls +
		f.deps.awards.listCalls +
		f.deps.publications.listCalls +
		f.deps.contacts.listCalls +
		f.deps.socialLinks.listCalls +
		f.deps.portfolioItems.listCalls +
		f.deps.references.listCalls +
		f.deps.skills.listCalls
}

func TestGetProfileAbsentIssuesNoDependentQueries(t *testing.T) {
	f := newProfileFixture()
	f.profiles.getResult = nil

	agg, err := f.svc.GetProfile(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, agg)
	assert.Equal(t, 0, f.dependentListCalls())
}

func TestGetProfileAggregatesAllCollections(t *testing.T) {
	f := newProfileFixture()
	f.profiles.getResult = &domain.Profile{ID: 1, Name: "A", Skills: []string{"go"}}
	f.deps.experiences.listResult = []*domain.Experience{
		{ID: 10, ProfileID: 1, Company: "Acme", Role: "Eng"},
	}

	agg, err := f.svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, agg)

	assert.Equal(t, "A", agg.Name)
	require.Len(t, agg.Experiences, 1)
	assert.Equal(t, "Acme", agg.Experiences[0].Company)

	assert.Empty(t, agg.Projects)
	assert.Empty(t, agg.Educations)
	assert.Empty(t, agg.Certifications)
	assert.Empty(t, agg.Awards)
	assert.Empty(t, agg.Publications)
	assert.Empty(t, agg.Contacts)
	assert.Empty(t, agg.SocialLinks)
	assert.Empty(t, agg.PortfolioItems)
	assert.Empty(t, agg.References)
	assert.Empty(t, agg.SkillItems)

	// Every collection is fetched exactly once, filtered by the profile id.
	assert.Equal(t, 11, f.dependentListCalls())
	require.Len(t, f.deps.experiences.lastFilters, 1)
	assert.Equal(t, "profile_id", f.deps.experiences.lastFilters[0].Column)
	assert.Equal(t, int64(1), f.deps.experiences.lastFilters[0].Value)
}

func TestGetProfileRunsInsideOneTransaction(t *testing.T) {
	f := newProfileFixture()
	f.profiles.getResult = &domain.Profile{ID: 1, Name: "A"}

	_, err := f.svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.sessions.txCount)
}

func TestUpdateProfileAbsentLeavesDependentsAlone(t *testing.T) {
	f := newProfileFixture()
	f.profiles.updateResult = nil

	agg, err := f.svc.UpdateProfile(context.Background(), 999, domain.Fields{"summary": "new"})
	require.NoError(t, err)
	assert.Nil(t, agg)
	assert.Equal(t, 0, f.dependentListCalls())
	assert.Equal(t, 0, f.profiles.getCalls)
}

func TestUpdateProfileRefetchesAggregate(t *testing.T) {
	f := newProfileFixture()
	summary := "new"
	f.profiles.updateResult = &domain.Profile{ID: 1, Name: "A", Summary: &summary}
	f.profiles.getResult = &domain.Profile{ID: 1, Name: "A", Summary: &summary}

	agg, err := f.svc.UpdateProfile(context.Background(), 1, domain.Fields{"summary": summary})
	require.NoError(t, err)
	require.NotNil(t, agg)

	require.NotNil(t, agg.Summary)
	assert.Equal(t, "new", *agg.Summary)
	// The aggregate is re-read, never patched in place.
	assert.Equal(t, 1, f.profiles.getCalls)
	assert.Equal(t, 11, f.dependentListCalls())
	assert.Equal(t, 1, f.sessions.txCount)
}
