package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
)

// Catalog reads the galaxy → solar system → project hierarchy and badges.
type Catalog struct {
	api client.Doer
}

func NewCatalog(api client.Doer) *Catalog {
	return &Catalog{api: api}
}

func (c *Catalog) Galaxies(ctx context.Context) ([]models.Galaxy, error) {
	return client.Get[[]models.Galaxy](ctx, c.api, "/api/galaxies")
}

func (c *Catalog) Galaxy(ctx context.Context, id string) (models.Galaxy, error) {
	return client.Get[models.Galaxy](ctx, c.api, resource("/api/galaxies", id))
}

func (c *Catalog) UnlockGalaxy(ctx context.Context, id string) (models.Message, error) {
	return client.Post[models.Message](ctx, c.api, resource("/api/galaxies", id, "unlock"), nil)
}

// UnlockRandomGalaxy asks the backend to unlock one locked galaxy of its
// choosing.
func (c *Catalog) UnlockRandomGalaxy(ctx context.Context) (models.Message, error) {
	return client.Post[models.Message](ctx, c.api, "/api/galaxies/unlock-random", nil)
}

// SolarSystems lists solar systems, all of them when galaxyID is empty.
func (c *Catalog) SolarSystems(ctx context.Context, galaxyID string) ([]models.SolarSystem, error) {
	v := url.Values{}
	setIf(v, "galaxy_id", galaxyID)
	return client.Get[[]models.SolarSystem](ctx, c.api, withQuery("/api/solar-systems", v))
}

func (c *Catalog) SolarSystem(ctx context.Context, id string) (models.SolarSystem, error) {
	return client.Get[models.SolarSystem](ctx, c.api, resource("/api/solar-systems", id))
}

type ProjectQuery struct {
	SolarSystemID string
	Difficulty    string
	Tags          []string
}

func (c *Catalog) Projects(ctx context.Context, q ProjectQuery) ([]models.Project, error) {
	v := url.Values{}
	setIf(v, "solar_system_id", q.SolarSystemID)
	setIf(v, "difficulty", q.Difficulty)
	setIf(v, "tags", strings.Join(q.Tags, ","))
	return client.Get[[]models.Project](ctx, c.api, withQuery("/api/projects", v))
}

func (c *Catalog) Project(ctx context.Context, id string) (models.Project, error) {
	return client.Get[models.Project](ctx, c.api, resource("/api/projects", id))
}

func (c *Catalog) Badges(ctx context.Context, solarSystemID string) ([]models.Badge, error) {
	v := url.Values{}
	setIf(v, "solar_system_id", solarSystemID)
	return client.Get[[]models.Badge](ctx, c.api, withQuery("/api/badges", v))
}

func (c *Catalog) UserBadges(ctx context.Context, userID string) ([]models.Badge, error) {
	return client.Get[[]models.Badge](ctx, c.api, resource("/api/badges/user", userID))
}
