package main

import (
	"log"

	"github.com/predusk/profile-api/adapters/event"
	httpAdapter "github.com/predusk/profile-api/adapters/http"
	"github.com/predusk/profile-api/adapters/persistence"
	"github.com/predusk/profile-api/internal/config"
	"github.com/predusk/profile-api/internal/service"
	"github.com/predusk/profile-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Profile API server...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect to Postgres", err)
	}
	defer dbPool.Close()

	producer := event.NewProducer(cfg, appLogger)
	defer producer.Close()

	sessions := persistence.NewTxManager(dbPool, appLogger)

	deps := service.DependentRepos{
		Projects:       persistence.NewProjectStore(dbPool, appLogger),
		Experiences:    persistence.NewExperienceStore(dbPool, appLogger),
		Educations:     persistence.NewEducationStore(dbPool, appLogger),
		Certifications: persistence.NewCertificationStore(dbPool, appLogger),
		Awards:         persistence.NewAwardStore(dbPool, appLogger),
		Publications:   persistence.NewPublicationStore(dbPool, appLogger),
		Contacts:       persistence.NewContactStore(dbPool, appLogger),
		SocialLinks:    persistence.NewSocialLinkStore(dbPool, appLogger),
		PortfolioItems: persistence.NewPortfolioItemStore(dbPool, appLogger),
		References:     persistence.NewReferenceStore(dbPool, appLogger),
		Skills:         persistence.NewSkillStore(dbPool, appLogger),
	}

	services := httpAdapter.Services{
		Profiles:       service.NewProfiles(sessions, persistence.NewProfileStore(dbPool, appLogger), deps, producer, appLogger),
		Projects:       service.NewCRUD("project", deps.Projects, producer, appLogger),
		Experiences:    service.NewCRUD("experience", deps.Experiences, producer, appLogger),
		Educations:     service.NewCRUD("education", deps.Educations, producer, appLogger),
		Certifications: service.NewCRUD("certification", deps.Certifications, producer, appLogger),
		Awards:         service.NewCRUD("award", deps.Awards, producer, appLogger),
		Publications:   service.NewCRUD("publication", deps.Publications, producer, appLogger),
		Contacts:       service.NewCRUD("contact", deps.Contacts, producer, appLogger),
		SocialLinks:    service.NewCRUD("social_link", deps.SocialLinks, producer, appLogger),
		PortfolioItems: service.NewCRUD("portfolio_item", deps.PortfolioItems, producer, appLogger),
		References:     service.NewCRUD("reference", deps.References, producer, appLogger),
		Skills:         service.NewCRUD("skill", deps.Skills, producer, appLogger),
	}

	router := httpAdapter.NewRouter(services, appLogger)

	addr := ":" + cfg.App.Port
	appLogger.Info("Listening on " + addr)
	if err := router.Run(addr); err != nil {
		appLogger.Fatal("server stopped", err)
	}
}
