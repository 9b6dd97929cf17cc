package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesrace/cmd/salesrace/ui"
	"salesrace/internal/config"
	"salesrace/internal/race"
)

// runRender prints one static frame.
func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sets, err := cmd.Flags().GetStringArray("set")
	if err != nil {
		return err
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}

	store := newStore(cfg)
	if err := applySets(store, sets); err != nil {
		return err
	}
	return renderFrame(cmd.OutOrStdout(), cfg, store.Snapshot(), width)
}

// applySets applies name=value overrides, adding competitors that are not
// on the roster yet. Values go through the same parser as the board input.
func applySets(store *race.Store, sets []string) error {
	for _, kv := range sets {
		name, raw, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid --set %q: want name=value", kv)
		}

		id := 0
		for _, c := range store.Snapshot().Competitors {
			if c.Name == name {
				id = c.ID
				break
			}
		}
		if id == 0 {
			c, added := store.Add()
			if !added {
				return fmt.Errorf("cannot add %q: the track holds %d competitors", name, race.MaxCompetitors)
			}
			id = c.ID
			store.UpdateCompetitor(id, race.NameEdit(name))
		}
		store.UpdateCompetitor(id, race.ValueEdit(race.ParseValue(raw)))
		logger.Debug("override applied", zap.String("name", name), zap.Int("id", id))
	}
	return nil
}

// renderFrame writes every panel for st to w.
func renderFrame(w io.Writer, cfg *config.Config, st race.State, width int) error {
	theme := ui.ThemeFor(cfg.UI.Theme)
	b := ui.Board{
		State:    st,
		Styles:   ui.NewStyles(theme),
		Layout:   ui.NewLayoutConfig(width, 0, cfg.Race.TrackWidth),
		Currency: cfg.Race.Currency,
	}
	if _, err := fmt.Fprintln(w, ui.Render(b)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
