package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "List the map markers of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := load(cmd, func() (*model.World, error) { return currentWorld(ctx, c) })
		if err != nil {
			return err
		}

		locations, err := c.Locations(ctx, world.ID)
		if err != nil {
			return err
		}

		regions, err := c.Regions(ctx, world.ID)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.RenderMap(false, locations, present.RegionNames(regions)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
