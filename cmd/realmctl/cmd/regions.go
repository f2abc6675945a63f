package cmd

import (
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the regions of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		regions, err := load(cmd, func() ([]model.Region, error) {
			world, err := currentWorld(ctx, c)
			if err != nil {
				return nil, err
			}
			return c.Regions(ctx, world.ID)
		})
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		kind, _ := cmd.Flags().GetString("type")
		regions = realmclient.FilterRegions(regions, realmclient.Filter{Search: search, Kind: kind})
		printOut(cmd.OutOrStdout(), present.RenderList(false, regions, "No regions found.", present.RegionCard))
		return nil
	},
}

var regionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a region to the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		in := model.InsertRegion{WorldID: model.IntOf(world.ID)}
		in.Name, _ = f.GetString("name")
		in.Description, _ = f.GetString("description")
		in.Type, _ = f.GetString("type")
		in.ImageURL, _ = f.GetString("image-url")

		region, err := c.CreateRegion(ctx, in)
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.RegionCard(*region))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
	regionsCmd.AddCommand(regionsCreateCmd)
	regionsCmd.Flags().String("search", "", "search names and descriptions")
	regionsCmd.Flags().String("type", realmclient.FilterAll, "only regions of this type")

	f := regionsCreateCmd.Flags()
	f.String("name", "", "region name")
	f.String("description", "", "region description")
	f.String("type", "", "region type, e.g. forest")
	f.String("image-url", "", "image URL")
}
