package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var bestiaryCmd = &cobra.Command{
	Use:   "bestiary",
	Short: "List the creatures of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := load(cmd, func() (*model.World, error) { return currentWorld(ctx, c) })
		if err != nil {
			return err
		}

		creatures, err := c.Creatures(ctx, world.ID)
		if err != nil {
			return err
		}

		regions, err := c.Regions(ctx, world.ID)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		filter := realmclient.Filter{}
		filter.Search, _ = f.GetString("search")
		filter.Kind, _ = f.GetString("rarity")

		names := present.RegionNames(regions)
		creatures = realmclient.FilterCreatures(creatures, filter)
		printOut(cmd.OutOrStdout(), present.RenderList(false, creatures, "No creatures found.", func(cr model.Creature) string {
			return present.CreatureCard(cr, names)
		}))
		return nil
	},
}

var bestiaryCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a creature to the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		in := model.InsertCreature{
			WorldID:    model.IntOf(world.ID),
			RegionID:   flagInt(cmd, "region"),
			ArmorClass: flagInt(cmd, "ac"),
		}
		in.Name, _ = f.GetString("name")
		in.Description, _ = f.GetString("description")
		in.CreatureType, _ = f.GetString("type")
		in.Rarity, _ = f.GetString("rarity")
		in.Speed, _ = f.GetString("speed")
		in.ElementType, _ = f.GetString("element")
		in.ImageURL, _ = f.GetString("image-url")

		cr, _ := f.GetString("cr")
		hp, _ := f.GetString("hp")
		abilities, _ := f.GetString("abilities")
		attacks, _ := f.GetString("attacks")
		in.ChallengeRating = model.Text(cr)
		in.HitPoints = model.Text(hp)
		in.Abilities = model.AbilityInput(model.ParseAbilityScores(abilities))
		in.SpecialAttacks = model.SplitList(attacks)

		creature, err := c.CreateCreature(ctx, in)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.CreatureCard(*creature, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bestiaryCmd)
	bestiaryCmd.AddCommand(bestiaryCreateCmd)
	bestiaryCmd.Flags().String("search", "", "search names and descriptions")
	bestiaryCmd.Flags().String("rarity", realmclient.FilterAll, "only common, rare or legendary")

	f := bestiaryCreateCmd.Flags()
	f.String("name", "", "creature name")
	f.String("description", "", "description")
	f.String("type", "", "creature type, e.g. dragon")
	f.String("rarity", model.RarityCommon, "common, rare or legendary")
	f.String("cr", "", "challenge rating, e.g. 1/4 or 5")
	f.Int("ac", 0, "armor class")
	f.String("hp", "", "hit points, e.g. 45 (6d10+12)")
	f.String("speed", "", "speed")
	f.String("abilities", "", `ability scores, e.g. "STR:18, DEX:12"`)
	f.String("attacks", "", "comma separated special attacks")
	f.String("element", "", "element type")
	f.Int("region", 0, "region id")
	f.String("image-url", "", "image URL")
}
