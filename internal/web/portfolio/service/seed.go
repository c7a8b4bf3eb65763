package service

import (
	"context"
	"os"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gutils "github.com/Laisky/go-utils/v6"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/Laisky/zap"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// Seed bootstrap the database with the admin account and sample content.
// Safe to call repeatedly; every document is keyed on a natural key
// (email, slug, title, name) and only inserted when absent.
func (s *Portfolio) Seed(ctx context.Context) (created map[string]int, err error) {
	created = map[string]int{}

	n, err := s.seedAdminUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "seed admin user")
	}
	created["users"] = n

	for _, step := range []struct {
		name string
		run  func(context.Context) (int, error)
	}{
		{"technologies", s.seedTechnologies},
		{"projects", s.seedProjects},
		{"blogs", s.seedBlogs},
		{"case_studies", s.seedCaseStudies},
		{"success_stories", s.seedSuccessStories},
		{"our_story", s.seedOurStory},
		{"gallery", s.seedGallery},
		{"resume", s.seedResume},
	} {
		if n, err = step.run(ctx); err != nil {
			return nil, errors.Wrapf(err, "seed %s", step.name)
		}

		created[step.name] = n
	}

	s.logger.Info("seeded database", zap.Any("created", created))
	return created, nil
}

func adminCredentials() (email, password string) {
	email = gconfig.Shared.GetString("settings.admin.email")
	if email == "" {
		email = os.Getenv("ADMIN_EMAIL")
	}
	if email == "" {
		email = "admin@example.com"
	}

	password = gconfig.Shared.GetString("settings.admin.password")
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}
	if password == "" {
		password = "admin123"
	}

	return email, password
}

func (s *Portfolio) seedAdminUser(ctx context.Context) (int, error) {
	email, password := adminCredentials()
	if _, err := s.dao.GetUserByEmail(ctx, email); err == nil {
		return 0, nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return 0, errors.Wrapf(err, "find user %q", email)
	}

	hashed, err := gcrypto.PasswordHash([]byte(password), gutils.HashTypeSha256)
	if err != nil {
		return 0, errors.Wrapf(err, "generate password hash for %q", email)
	}

	u := model.NewUser()
	u.Email = email
	u.Password = hashed
	u.Role = model.UserRoleAdmin

	if err := s.dao.CreateUser(ctx, u); err != nil {
		return 0, errors.Wrapf(err, "create user %q", email)
	}

	s.logger.Info("created admin user", zap.String("email", email))
	return 1, nil
}

// The sample builders return fresh structs on every call. Create paths
// write ids, slugs, and timestamps into the documents they receive, so
// concurrent seed runs must never share them.

func sampleTechnologies() []*model.Technology {
	return []*model.Technology{
		{
			Name:              "Go",
			Category:          model.TechnologyCategoryLanguage,
			Proficiency:       9,
			Description:       "Primary backend language for services and tooling",
			YearsOfExperience: 6,
		},
		{
			Name:              "Python",
			Category:          model.TechnologyCategoryLanguage,
			Proficiency:       9,
			Description:       "Machine learning pipelines and data tooling",
			YearsOfExperience: 8,
		},
		{
			Name:              "TypeScript",
			Category:          model.TechnologyCategoryLanguage,
			Proficiency:       8,
			Description:       "Frontend applications and Node services",
			YearsOfExperience: 5,
		},
		{
			Name:              "MongoDB",
			Category:          model.TechnologyCategoryDatabase,
			Proficiency:       8,
			Description:       "Primary document store",
			YearsOfExperience: 6,
		},
		{
			Name:              "Docker",
			Category:          model.TechnologyCategoryTool,
			Proficiency:       8,
			Description:       "Packaging and deployment",
			YearsOfExperience: 7,
		},
		{
			Name:              "AWS",
			Category:          model.TechnologyCategoryCloud,
			Proficiency:       7,
			Description:       "Compute, storage, and managed ML services",
			YearsOfExperience: 5,
		},
	}
}

func sampleProjects() []*model.Project {
	return []*model.Project{
		{
			Title:       "Realtime Recommendation Engine",
			Description: "Low-latency recommendation service personalizing content for millions of users",
			LongDescription: "A streaming recommendation pipeline combining collaborative " +
				"filtering with content embeddings. Model scores are served from an " +
				"in-memory feature store with p99 latency under 30ms.",
			Technologies: []string{"Go", "Python", "Redis", "Kafka"},
			Category:     model.ProjectCategoryAIML,
			Featured:     true,
			Status:       model.ProjectStatusCompleted,
		},
		{
			Title:        "Portfolio Content API",
			Description:  "REST backend powering this site, with an integrated admin panel",
			Technologies: []string{"Go", "MongoDB", "Docker"},
			Category:     model.ProjectCategoryBackend,
			Featured:     true,
			Status:       model.ProjectStatusCompleted,
		},
		{
			Title:        "Document Intelligence Platform",
			Description:  "Pipeline extracting structured data from scanned contracts",
			Technologies: []string{"Python", "PostgreSQL", "AWS"},
			Category:     model.ProjectCategoryFullStack,
			Status:       model.ProjectStatusInProgress,
		},
	}
}

func sampleBlogs() []*model.Blog {
	return []*model.Blog{
		{
			Title:   "Getting Started with Machine Learning",
			Excerpt: "A practical roadmap for engineers moving into ML, from fundamentals to first deployment.",
			Content: "## Why start now\n\nMachine learning is no longer a research-only " +
				"discipline. This post walks through the path from classical models to " +
				"production pipelines, with concrete exercises at every step.\n\n" +
				"## The fundamentals\n\nStart with linear models and work up. " +
				"Understanding the loss surface of simple models pays off when " +
				"debugging large ones.",
			Tags:      []string{"machine-learning", "career"},
			Category:  model.BlogCategoryAIML,
			Published: true,
		},
		{
			Title:   "Designing REST APIs That Age Well",
			Excerpt: "Versioning, partial updates, and the small decisions that keep an API maintainable.",
			Content: "## Contracts outlive code\n\nEvery field you expose is a promise. " +
				"This post covers the conventions that make breaking changes rare: " +
				"additive evolution, explicit status enums, and honest error envelopes.",
			Tags:      []string{"api-design", "backend"},
			Category:  model.BlogCategoryBackend,
			Published: true,
		},
	}
}

func sampleCaseStudies() []*model.CaseStudy {
	return []*model.CaseStudy{
		{
			Title:    "Scaling Search for an E-commerce Marketplace",
			Client:   "Confidential retail client",
			Duration: "4 months",
			Overview: "Rebuilt product search for a marketplace serving two million " +
				"daily queries, replacing a strained SQL LIKE pipeline.",
			Challenge: "Search latency exceeded three seconds at peak and relevance " +
				"was poor enough that a third of sessions ended without a click.",
			Solution: "Introduced an inverted index with learned ranking signals, " +
				"fed by a change-data-capture stream so the index never lags the " +
				"catalog by more than a few seconds.",
			Results: "p95 latency dropped to 80ms and click-through on the first " +
				"results page rose 42%.",
			Technologies: []string{"Go", "Elasticsearch", "Kafka"},
			Category:     model.CaseStudyCategoryBackend,
			Featured:     true,
		},
	}
}

func sampleSuccessStories() []*model.SuccessStory {
	return []*model.SuccessStory{
		{
			Title:       "Search latency cut by 97%",
			Description: "Marketplace search rebuilt on an inverted index with learned ranking",
			Metric:      "97%",
			Category:    model.SuccessStoryCategoryPerformance,
		},
		{
			Title:       "Inference cost halved",
			Description: "Batched GPU serving and distillation brought model serving cost down",
			Metric:      "50%",
			Category:    model.SuccessStoryCategoryCostReduction,
		},
	}
}

func sampleStorySections() []*model.OurStory {
	return []*model.OurStory{
		{
			Title:   "How it started",
			Content: "What began as weekend experiments with neural networks turned into a career building production ML systems.",
			Section: model.OurStorySectionIntroduction,
			Order:   1,
		},
		{
			Title:   "The journey so far",
			Content: "From early backend roles to leading ML platform work, each step added a layer: reliability, scale, and finally learning systems.",
			Section: model.OurStorySectionJourney,
			Order:   2,
		},
		{
			Title:   "What drives the work",
			Content: "Shipping models is easy; shipping models that stay correct under drift is the real craft. That gap is the mission.",
			Section: model.OurStorySectionMission,
			Order:   3,
		},
	}
}

func sampleGalleryItems() []*model.Gallery {
	return []*model.Gallery{
		{
			Title:       "Conference talk on streaming ML",
			Description: "Presenting the realtime recommendation pipeline",
			Image:       "/images/gallery/conference-talk.jpg",
			Category:    model.GalleryCategoryEvent,
			Featured:    true,
			Order:       1,
		},
		{
			Title:       "Hackathon winning team",
			Description: "First place at the company-wide ML hackathon",
			Image:       "/images/gallery/hackathon.jpg",
			Category:    model.GalleryCategoryAchievement,
			Order:       2,
		},
	}
}

func sampleResume() *model.Resume {
	return &model.Resume{
		PersonalInfo: model.PersonalInfo{
			FullName: "Alex Chen",
			Title:    "Machine Learning Engineer",
			Email:    "alex@example.com",
			Location: "San Francisco, CA",
			Website:  "https://example.com",
			Github:   "https://github.com/example",
		},
		Summary: "Engineer with eight years across backend systems and production " +
			"machine learning, focused on recommendation systems and ML infrastructure.",
		Experience: []model.Experience{
			{
				Company:     "Acme AI",
				Position:    "Senior ML Engineer",
				Duration:    "2021 - Present",
				Description: "Own the realtime recommendation platform end to end.",
				Achievements: []string{
					"Cut feature pipeline lag from hours to seconds",
					"Halved GPU serving cost with batched inference",
				},
				Technologies: []string{"Go", "Python", "Kafka"},
			},
			{
				Company:      "Northwind Labs",
				Position:     "Backend Engineer",
				Duration:     "2017 - 2021",
				Description:  "Built and operated high-traffic REST services.",
				Achievements: []string{"Led the migration to a document store"},
				Technologies: []string{"Go", "MongoDB"},
			},
		},
		Education: []model.Education{
			{
				Institution: "State University",
				Degree:      "B.S.",
				Field:       "Computer Science",
				Duration:    "2013 - 2017",
			},
		},
		Certifications: []model.Certification{
			{
				Name:   "AWS Certified Machine Learning - Specialty",
				Issuer: "Amazon Web Services",
				Date:   "2023",
			},
		},
		Skills: model.Skills{
			Technical: []model.SkillGroup{
				{Category: "Languages", Items: []string{"Go", "Python", "TypeScript"}},
				{Category: "Infrastructure", Items: []string{"Docker", "AWS", "Kafka"}},
			},
			Soft: []string{"Mentoring", "Technical writing"},
		},
		Languages: []model.Language{
			{Name: "English", Proficiency: "Native"},
			{Name: "Mandarin", Proficiency: "Professional"},
		},
	}
}

func (s *Portfolio) seedTechnologies(ctx context.Context) (created int, err error) {
	for _, t := range sampleTechnologies() {
		if _, err = s.dao.GetTechnologyByName(ctx, t.Name); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find technology %q", t.Name)
		}

		if _, err = s.CreateTechnology(ctx, t); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedProjects(ctx context.Context) (created int, err error) {
	for _, p := range sampleProjects() {
		if _, err = s.dao.GetProjectByTitle(ctx, p.Title); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find project %q", p.Title)
		}

		if _, err = s.CreateProject(ctx, p); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedBlogs(ctx context.Context) (created int, err error) {
	for _, b := range sampleBlogs() {
		if _, err = s.dao.GetBlogBySlug(ctx, Slugify(b.Title), false); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find blog %q", b.Title)
		}

		if _, err = s.CreateBlog(ctx, b); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedCaseStudies(ctx context.Context) (created int, err error) {
	for _, cs := range sampleCaseStudies() {
		if _, err = s.dao.GetCaseStudyBySlug(ctx, Slugify(cs.Title)); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find case study %q", cs.Title)
		}

		if _, err = s.CreateCaseStudy(ctx, cs); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedSuccessStories(ctx context.Context) (created int, err error) {
	for _, st := range sampleSuccessStories() {
		if _, err = s.dao.GetSuccessStoryByTitle(ctx, st.Title); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find success story %q", st.Title)
		}

		if _, err = s.CreateSuccessStory(ctx, st); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedOurStory(ctx context.Context) (created int, err error) {
	for _, o := range sampleStorySections() {
		if _, err = s.dao.GetOurStoryByTitle(ctx, o.Title); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find story section %q", o.Title)
		}

		if _, err = s.CreateOurStory(ctx, o, false); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedGallery(ctx context.Context) (created int, err error) {
	for _, g := range sampleGalleryItems() {
		if _, err = s.dao.GetGalleryByTitle(ctx, g.Title); err == nil {
			continue
		} else if !errors.Is(err, model.ErrNotFound) {
			return created, errors.Wrapf(err, "find gallery item %q", g.Title)
		}

		if _, err = s.CreateGallery(ctx, g, false); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

func (s *Portfolio) seedResume(ctx context.Context) (int, error) {
	if _, err := s.dao.GetResume(ctx); err == nil {
		return 0, nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return 0, errors.Wrap(err, "find resume")
	}

	if _, err := s.ReplaceResume(ctx, sampleResume()); err != nil {
		return 0, err
	}

	return 1, nil
}
