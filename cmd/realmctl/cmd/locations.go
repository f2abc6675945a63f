package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the locations of the current world",
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

		f := cmd.Flags()
		filter := realmclient.Filter{}
		filter.Search, _ = f.GetString("search")
		filter.Kind, _ = f.GetString("type")
		filter.RegionID, _ = f.GetInt("region")

		names := present.RegionNames(regions)
		locations = realmclient.FilterLocations(locations, filter)
		printOut(cmd.OutOrStdout(), present.RenderList(false, locations, "No locations found.", func(l model.Location) string {
			return present.LocationCard(l, names)
		}))
		return nil
	},
}

var locationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a location to a region of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		in := model.InsertLocation{
			RegionID: flagInt(cmd, "region"),
			X:        flagInt(cmd, "x"),
			Y:        flagInt(cmd, "y"),
		}
		in.Name, _ = f.GetString("name")
		in.Description, _ = f.GetString("description")
		in.LocationType, _ = f.GetString("type")
		in.MarkerType, _ = f.GetString("marker")
		in.ImageURL, _ = f.GetString("image-url")

		location, err := c.CreateLocation(ctx, world.ID, in)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.LocationCard(*location, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
	locationsCmd.AddCommand(locationsCreateCmd)
	locationsCmd.Flags().String("search", "", "search names, descriptions and types")
	locationsCmd.Flags().String("type", realmclient.FilterAll, "only locations of this type")
	locationsCmd.Flags().Int("region", 0, "only locations in this region")

	f := locationsCreateCmd.Flags()
	f.String("name", "", "location name")
	f.String("description", "", "location description")
	f.Int("region", 0, "region id")
	f.String("type", "", "location type, e.g. dungeon")
	f.String("marker", model.MarkerStandard, "map marker: standard, quest or danger")
	f.Int("x", 0, "map x position")
	f.Int("y", 0, "map y position")
	f.String("image-url", "", "image URL")
}
