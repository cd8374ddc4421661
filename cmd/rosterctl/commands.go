package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rostercore/internal/core"
	"rostercore/internal/search"
	"rostercore/pkg/cow"
	"rostercore/pkg/domain"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Save Boston and David Ortiz, then read the player back with his team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()

			team := core.Team{
				ID:           domain.Ptr(int64(0)),
				City:         domain.Ptr("Boston"),
				NickName:     domain.Ptr("Red Sox"),
				Abbreviation: domain.Ptr("BOS"),
			}
			if err := svc.Teams().Save(ctx, &team); err != nil {
				return fmt.Errorf("save team: %w", err)
			}
			player := svc.Players().NewPlayer(ctx, core.PlayerFields{
				ID:        domain.Ptr(int64(0)),
				FirstName: domain.Ptr("David"),
				LastName:  domain.Ptr("Ortiz"),
				Number:    domain.Ptr(34),
				TeamID:    team.ID,
				Position:  domain.Ptr(domain.PositionDesignatedHitter),
			})
			if err := svc.Players().Save(ctx, &player); err != nil {
				return fmt.Errorf("save player: %w", err)
			}
			got, ok, err := svc.Players().Retrieve(ctx, *player.ID)
			if err != nil {
				return fmt.Errorf("retrieve player: %w", err)
			}
			if !ok {
				return fmt.Errorf("player %d vanished", *player.ID)
			}
			a.printPlayer(got)
			return nil
		},
	}
}

func (a *app) seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML fixture of teams and players and print the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()
			res, err := a.seed(ctx, svc, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "seeded %d teams, %d players\n", res.Teams, res.Players)
			return a.printRoster(ctx, svc)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored team and player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = svc.Close() }()
			if file != "" {
				if _, err := a.seed(ctx, svc, file); err != nil {
					return err
				}
			}
			return a.printRoster(ctx, svc)
		},
	}
	cmd.Flags().StringVar(&file, "seed", "", "optional YAML seed loaded before listing")
	return cmd
}

func (a *app) queueCmd() *cobra.Command {
	var pops int
	cmd := &cobra.Command{
		Use:   "queue [item...]",
		Short: "Show copy-on-write behaviour: pop from a shared copy of a queue",
		RunE: func(_ *cobra.Command, args []string) error {
			original := cow.NewQueue(args...)
			copied := original.Share()
			fmt.Fprintf(a.out, "shared: original unique=%t copy unique=%t\n", original.IsUniquelyHeld(), copied.IsUniquelyHeld())
			for i := 0; i < pops; i++ {
				item, ok := copied.PopFront()
				if !ok {
					fmt.Fprintln(a.out, "copy is empty")
					break
				}
				fmt.Fprintf(a.out, "popped %s\n", item)
			}
			fmt.Fprintf(a.out, "original %s (%d)\n", original, original.Count())
			fmt.Fprintf(a.out, "copy     %s (%d)\n", copied, copied.Count())
			fmt.Fprintf(a.out, "after pop: original unique=%t copy unique=%t\n", original.IsUniquelyHeld(), copied.IsUniquelyHeld())

			if len(args) == 0 {
				return nil
			}
			names := cow.NewList(args...)
			view := names.Share()
			if err := names.Delete(0); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "list after delete %s, shared view %s\n", names, view)
			return nil
		},
	}
	cmd.Flags().IntVarP(&pops, "pop", "n", 1, "items to pop from the shared copy")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Query the catalogue search endpoint once and print matching tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := search.NewHTTPFetcher(a.searchURL, nil)
			if err != nil {
				return err
			}
			body, err := f.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if raw {
				_, err := a.out.Write(body)
				return err
			}
			tracks, err := search.Tracks(body)
			if err != nil {
				return err
			}
			a.logger.Debug("search finished")
			for _, t := range tracks {
				fmt.Fprintf(a.out, "%s - %s (%s)\n", t.Artist, t.Name, t.Collection)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&a.searchURL, "base-url", search.BaseURLFromEnv(), "search endpoint base URL")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the response body unparsed")
	return cmd
}

func (a *app) seed(ctx context.Context, svc *core.Service, file string) (core.SeedResult, error) {
	seed, err := core.LoadSeedFile(file)
	if err != nil {
		return core.SeedResult{}, err
	}
	return svc.Seed(ctx, seed)
}

func (a *app) printRoster(ctx context.Context, svc *core.Service) error {
	teams, err := svc.Teams().RetrieveAll(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	for _, t := range teams {
		fmt.Fprintf(a.out, "team %s: %s\n", formatID(t.ID), t)
	}
	players, err := svc.Players().RetrieveAll(ctx)
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	for _, p := range players {
		a.printPlayer(p)
	}
	return nil
}

func (a *app) printPlayer(p core.Player) {
	team := "no team"
	switch {
	case p.TeamLookupErr() != nil:
		team = "team lookup failed: " + p.TeamLookupErr().Error()
	case p.Team() != nil:
		team = p.Team().String()
	}
	fmt.Fprintf(a.out, "player %s: %s [%s]\n", formatID(p.ID), p, team)
}

func formatID(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}
