package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/session"
)

var ErrAdminRequired = errors.New("admin privileges required")

// PrincipalSource reports who the client currently acts as.
type PrincipalSource interface {
	Principal() session.Principal
}

// Admin wraps the /api/admin surface. Every call is refused locally unless
// the current principal is an admin member; the backend still checks.
type Admin struct {
	api client.Doer
	who PrincipalSource
}

func NewAdmin(api client.Doer, who PrincipalSource) *Admin {
	return &Admin{api: api, who: who}
}

func (a *Admin) allowed() error {
	if !session.IsAdmin(a.who.Principal()) {
		return ErrAdminRequired
	}
	return nil
}

func (a *Admin) Stats(ctx context.Context) (models.AdminStats, error) {
	if err := a.allowed(); err != nil {
		return models.AdminStats{}, err
	}
	return client.Get[models.AdminStats](ctx, a.api, "/api/admin/stats")
}

func (a *Admin) CreateGalaxy(ctx context.Context, in models.GalaxyInput) (models.Galaxy, error) {
	if err := a.check(in); err != nil {
		return models.Galaxy{}, err
	}
	return client.Post[models.Galaxy](ctx, a.api, "/api/admin/galaxies", in)
}

func (a *Admin) UpdateGalaxy(ctx context.Context, id string, in models.GalaxyInput) (models.Galaxy, error) {
	if err := a.check(in); err != nil {
		return models.Galaxy{}, err
	}
	return client.Put[models.Galaxy](ctx, a.api, resource("/api/admin/galaxies", id), in)
}

func (a *Admin) DeleteGalaxy(ctx context.Context, id string) (models.Message, error) {
	if err := a.allowed(); err != nil {
		return models.Message{}, err
	}
	return client.Delete[models.Message](ctx, a.api, resource("/api/admin/galaxies", id))
}

func (a *Admin) CreateSolarSystem(ctx context.Context, in models.SolarSystemInput) (models.SolarSystem, error) {
	if err := a.check(in); err != nil {
		return models.SolarSystem{}, err
	}
	return client.Post[models.SolarSystem](ctx, a.api, "/api/admin/solar-systems", in)
}

func (a *Admin) UpdateSolarSystem(ctx context.Context, id string, in models.SolarSystemInput) (models.SolarSystem, error) {
	if err := a.check(in); err != nil {
		return models.SolarSystem{}, err
	}
	return client.Put[models.SolarSystem](ctx, a.api, resource("/api/admin/solar-systems", id), in)
}

func (a *Admin) DeleteSolarSystem(ctx context.Context, id string) (models.Message, error) {
	if err := a.allowed(); err != nil {
		return models.Message{}, err
	}
	return client.Delete[models.Message](ctx, a.api, resource("/api/admin/solar-systems", id))
}

func (a *Admin) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	if err := a.check(in); err != nil {
		return models.Project{}, err
	}
	return client.Post[models.Project](ctx, a.api, "/api/admin/projects", in)
}

func (a *Admin) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (models.Project, error) {
	if err := a.check(in); err != nil {
		return models.Project{}, err
	}
	return client.Put[models.Project](ctx, a.api, resource("/api/admin/projects", id), in)
}

func (a *Admin) DeleteProject(ctx context.Context, id string) (models.Message, error) {
	if err := a.allowed(); err != nil {
		return models.Message{}, err
	}
	return client.Delete[models.Message](ctx, a.api, resource("/api/admin/projects", id))
}

func (a *Admin) Submissions(ctx context.Context, status models.SubmissionStatus, page PageQuery) (models.Page[models.Submission], error) {
	if err := a.allowed(); err != nil {
		return models.Page[models.Submission]{}, err
	}
	v := url.Values{}
	setIf(v, "status", string(status))
	page.apply(v)
	return client.Get[models.Page[models.Submission]](ctx, a.api, withQuery("/api/admin/submissions", v))
}

// ReviewSubmission sets a submission's status. The backend takes the
// review as query parameters, not a body.
func (a *Admin) ReviewSubmission(ctx context.Context, id string, in models.SubmissionReview) (models.Submission, error) {
	if err := a.check(in); err != nil {
		return models.Submission{}, err
	}
	v := url.Values{}
	v.Set("status", string(in.Status))
	setIf(v, "review_notes", in.ReviewNotes)
	return client.Put[models.Submission](ctx, a.api, withQuery(resource("/api/admin/submissions", id), v), nil)
}

func (a *Admin) Ideas(ctx context.Context, status models.ProjectStatus, page PageQuery) (models.Page[models.ProjectIdea], error) {
	if err := a.allowed(); err != nil {
		return models.Page[models.ProjectIdea]{}, err
	}
	v := url.Values{}
	setIf(v, "status", string(status))
	page.apply(v)
	return client.Get[models.Page[models.ProjectIdea]](ctx, a.api, withQuery("/api/admin/project-ideas", v))
}

func (a *Admin) ModerateIdea(ctx context.Context, id string, in models.ProjectIdeaModeration) (models.ProjectIdea, error) {
	if err := a.check(in); err != nil {
		return models.ProjectIdea{}, err
	}
	return client.Put[models.ProjectIdea](ctx, a.api, resource("/api/admin/project-ideas", id), in)
}

func (a *Admin) check(in any) error {
	if err := a.allowed(); err != nil {
		return err
	}
	return checkInput(in)
}
