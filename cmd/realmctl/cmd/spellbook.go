package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var spellbookCmd = &cobra.Command{
	Use:   "spellbook",
	Short: "List the spells of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := load(cmd, func() (*model.World, error) { return currentWorld(ctx, c) })
		if err != nil {
			return err
		}

		spells, err := c.Spells(ctx, world.ID)
		if err != nil {
			return err
		}

		characters, err := c.Characters(ctx, world.ID)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		filter := realmclient.Filter{}
		filter.Search, _ = f.GetString("search")
		filter.Kind, _ = f.GetString("school")

		names := present.CharacterNames(characters)
		spells = realmclient.FilterSpells(spells, filter)
		printOut(cmd.OutOrStdout(), present.RenderList(false, spells, "No spells found.", func(s model.Spell) string {
			return present.SpellCard(s, names)
		}))
		return nil
	},
}

var spellbookCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a spell to the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		in := model.InsertSpell{
			WorldID:            model.IntOf(world.ID),
			Level:              flagInt(cmd, "level"),
			CreatorCharacterID: flagInt(cmd, "creator"),
		}
		in.Name, _ = f.GetString("name")
		in.School, _ = f.GetString("school")
		in.CastingTime, _ = f.GetString("casting-time")
		in.Range, _ = f.GetString("range")
		in.Components, _ = f.GetString("components")
		in.Duration, _ = f.GetString("duration")
		in.Description, _ = f.GetString("description")
		in.ImageURL, _ = f.GetString("image-url")

		spell, err := c.CreateSpell(ctx, in)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.SpellCard(*spell, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spellbookCmd)
	spellbookCmd.AddCommand(spellbookCreateCmd)
	spellbookCmd.Flags().String("search", "", "search names and descriptions")
	spellbookCmd.Flags().String("school", realmclient.FilterAll, "only spells of this school")

	f := spellbookCreateCmd.Flags()
	f.String("name", "", "spell name")
	f.Int("level", 0, "spell level, 0 to 9")
	f.String("school", "", "school of magic")
	f.String("casting-time", "", "casting time")
	f.String("range", "", "range")
	f.String("components", "", "components, e.g. V, S, M")
	f.String("duration", "", "duration")
	f.String("description", "", "description")
	f.Int("creator", 0, "id of the character who created the spell")
	f.String("image-url", "", "image URL")
}
