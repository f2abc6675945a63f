package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List worlds",
	RunE: func(cmd *cobra.Command, args []string) error {
		worlds, err := load(cmd, func() ([]model.World, error) { return newClient().Worlds(cmd.Context()) })
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.RenderList(false, worlds, "No worlds yet.", present.WorldCard))
		return nil
	},
}

var worldsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show an overview of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := load(cmd, func() (*model.World, error) { return currentWorld(ctx, c) })
		if err != nil {
			return err
		}

		regions, err := c.Regions(ctx, world.ID)
		if err != nil {
			return err
		}

		lore, err := c.Lore(ctx, world.ID)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.Summarize(*world, regions, lore).Render())
		return nil
	},
}

var worldsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a world",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		userID, _ := f.GetInt("user-id")
		in := model.InsertWorld{UserID: model.IntOf(userID)}
		in.Name, _ = f.GetString("name")
		in.Description, _ = f.GetString("description")
		in.ImageURL, _ = f.GetString("image-url")

		world, err := newClient().CreateWorld(cmd.Context(), in)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.WorldCard(*world))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(worldsCmd)
	worldsCmd.AddCommand(worldsSummaryCmd, worldsCreateCmd)

	f := worldsCreateCmd.Flags()
	f.String("name", "", "world name")
	f.String("description", "", "world description")
	f.String("image-url", "", "image URL")
	f.Int("user-id", 1, "owning user (replaced by the API key's user when one is set)")
}
