package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the characters of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := load(cmd, func() (*model.World, error) { return currentWorld(ctx, c) })
		if err != nil {
			return err
		}

		characters, err := c.Characters(ctx, world.ID)
		if err != nil {
			return err
		}

		regions, err := c.Regions(ctx, world.ID)
		if err != nil {
			return err
		}

		locations, err := c.Locations(ctx, world.ID)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		filter := realmclient.Filter{}
		filter.Search, _ = f.GetString("search")
		filter.Kind, _ = f.GetString("type")
		filter.RegionID, _ = f.GetInt("region")

		regionNames, locationNames := present.RegionNames(regions), present.LocationNames(locations)
		characters = realmclient.FilterCharacters(characters, filter)
		printOut(cmd.OutOrStdout(), present.RenderList(false, characters, "No characters found.", func(ch model.Character) string {
			return present.CharacterCard(ch, regionNames, locationNames)
		}))
		return nil
	},
}

var charactersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a character to the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		in := model.InsertCharacter{
			WorldID:    model.IntOf(world.ID),
			RegionID:   flagInt(cmd, "region"),
			LocationID: flagInt(cmd, "location"),
		}
		in.Name, _ = f.GetString("name")
		in.Description, _ = f.GetString("description")
		in.Appearance, _ = f.GetString("appearance")
		in.Personality, _ = f.GetString("personality")
		in.Race, _ = f.GetString("race")
		in.CharacterType, _ = f.GetString("type")
		in.ImageURL, _ = f.GetString("image-url")
		abilities, _ := f.GetString("abilities")
		in.Abilities = model.SplitList(abilities)

		character, err := c.CreateCharacter(ctx, in)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.CharacterCard(*character, nil, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(charactersCmd)
	charactersCmd.AddCommand(charactersCreateCmd)
	charactersCmd.Flags().String("search", "", "search names and descriptions")
	charactersCmd.Flags().String("type", realmclient.FilterAll, "only npc, ally or villain")
	charactersCmd.Flags().Int("region", 0, "only characters in this region")

	f := charactersCreateCmd.Flags()
	f.String("name", "", "character name")
	f.String("description", "", "description")
	f.String("appearance", "", "appearance")
	f.String("personality", "", "personality")
	f.String("race", "", "race")
	f.String("type", model.CharacterNPC, "npc, ally or villain")
	f.String("abilities", "", "comma separated abilities")
	f.Int("region", 0, "region id")
	f.Int("location", 0, "location id")
	f.String("image-url", "", "image URL")
}
