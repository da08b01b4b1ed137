package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/services"
	"github.com/spf13/cobra"
)

func newGalaxiesCmd(app *App, opts *rootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "galaxies [id]",
		Short: "List galaxies, or show one with its solar systems",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				g, err := app.catalog.Galaxy(ctx, args[0])
				if err != nil {
					return err
				}
				systems, err := app.catalog.SolarSystems(ctx, g.ID)
				if err != nil {
					return err
				}
				view := struct {
					models.Galaxy
					SolarSystems []models.SolarSystem `json:"solar_systems"`
				}{g, systems}

				return opts.emit(w, view, func() {
					heading(w, g.Name)
					if g.Description != "" {
						fmt.Fprintln(w, g.Description)
					}
					rows := make([][]string, 0, len(systems))
					for _, s := range systems {
						rows = append(rows, []string{s.ID, s.Name, strings.Join(s.Tags, ", ")})
					}
					renderTable(w, []string{"ID", "SOLAR SYSTEM", "TAGS"}, rows)
				})
			}

			galaxies, err := app.catalog.Galaxies(ctx)
			if err != nil {
				return err
			}
			galaxies = services.SearchGalaxies(galaxies, search)

			return opts.emit(w, galaxies, func() {
				rows := make([][]string, 0, len(galaxies))
				for _, g := range galaxies {
					rows = append(rows, []string{g.ID, g.Name, g.Description})
				}
				renderTable(w, []string{"ID", "GALAXY", "DESCRIPTION"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Filter by name or description")
	return cmd
}

func newProjectsCmd(app *App, opts *rootOptions) *cobra.Command {
	var (
		solarSystem string
		search      string
		tag         string
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.catalog.Projects(cmd.Context(), services.ProjectQuery{SolarSystemID: solarSystem})
			if err != nil {
				return err
			}
			projects = services.SearchProjects(projects, search)
			projects = services.ProjectsWithTag(projects, tag)

			w := cmd.OutOrStdout()
			return opts.emit(w, projects, func() {
				rows := make([][]string, 0, len(projects))
				for _, p := range projects {
					rows = append(rows, []string{p.ID, p.Title, p.Difficulty, strings.Join(p.Tags, ", ")})
				}
				renderTable(w, []string{"ID", "PROJECT", "DIFFICULTY", "TAGS"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&solarSystem, "solar-system", "", "Only projects of this solar system")
	cmd.Flags().StringVar(&search, "search", "", "Filter by title, description or tag")
	cmd.Flags().StringVar(&tag, "tag", "", "Only projects with this tag")
	return cmd
}

func newIdeasCmd(app *App, opts *rootOptions) *cobra.Command {
	var (
		filter      string
		search      string
		solarSystem string
	)

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "List community project ideas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := services.ParseIdeaFilter(filter)
			if err != nil {
				return err
			}

			page, err := app.community.Ideas(cmd.Context(), services.IdeaQuery{
				SolarSystemID: solarSystem,
				PageQuery:     services.PageQuery{Size: 100},
			})
			if err != nil {
				return err
			}
			ideas := services.FilterIdeas(services.SearchIdeas(page.Items, search), f, app.now())

			w := cmd.OutOrStdout()
			return opts.emit(w, ideas, func() {
				rows := make([][]string, 0, len(ideas))
				for _, i := range ideas {
					expires := "-"
					if !i.ExpiresAt.IsZero() {
						expires = i.ExpiresAt.Format("2006-01-02")
					}
					rows = append(rows, []string{i.ID, i.Title, fmt.Sprint(i.Upvotes), expires})
				}
				renderTable(w, []string{"ID", "IDEA", "VOTES", "EXPIRES"}, rows)
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(services.IdeasAll), "all, recent or expiring")
	cmd.Flags().StringVar(&search, "search", "", "Filter by title, description or tag")
	cmd.Flags().StringVar(&solarSystem, "solar-system", "", "Only ideas of this solar system")
	return cmd
}
