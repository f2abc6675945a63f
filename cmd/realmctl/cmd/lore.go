package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
)

var loreCmd = &cobra.Command{
	Use:   "lore",
	Short: "List the lore entries of the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		entries, err := load(cmd, func() ([]model.LoreEntry, error) {
			world, err := currentWorld(ctx, c)
			if err != nil {
				return nil, err
			}
			return c.Lore(ctx, world.ID)
		})
		if err != nil {
			return err
		}

		f := cmd.Flags()
		if showCategories, _ := f.GetBool("categories"); showCategories {
			printOut(cmd.OutOrStdout(), strings.Join(realmclient.LoreCategories(entries), "\n"))
			return nil
		}

		filter := realmclient.Filter{}
		filter.Search, _ = f.GetString("search")
		filter.Kind, _ = f.GetString("category")

		entries = realmclient.FilterLore(entries, filter)
		printOut(cmd.OutOrStdout(), present.RenderList(false, entries, "No lore entries found.", present.LoreCard))
		return nil
	},
}

func loreInput(cmd *cobra.Command, worldID int) model.InsertLoreEntry {
	f := cmd.Flags()
	in := model.InsertLoreEntry{WorldID: model.IntOf(worldID)}
	in.Title, _ = f.GetString("title")
	in.Content, _ = f.GetString("content")
	in.Category, _ = f.GetString("category")
	in.ImageURL, _ = f.GetString("image-url")
	return in
}

var loreCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a lore entry to the current world",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		entry, err := c.CreateLoreEntry(ctx, loreInput(cmd, world.ID))
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.LoreCard(*entry))
		return nil
	},
}

var loreUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a lore entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entryID(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		entry, err := c.UpdateLoreEntry(ctx, id, loreInput(cmd, world.ID))
		if err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), present.LoreCard(*entry))
		return nil
	},
}

var loreDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a lore entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entryID(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		c := newClient()
		world, err := currentWorld(ctx, c)
		if err != nil {
			return err
		}

		if err := c.DeleteLoreEntry(ctx, world.ID, id); err != nil {
			return err
		}

		printOut(cmd.OutOrStdout(), fmt.Sprintf("Deleted lore entry %d", id))
		return nil
	},
}

func entryID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("invalid lore entry id %q", arg)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(loreCmd)
	loreCmd.AddCommand(loreCreateCmd, loreUpdateCmd, loreDeleteCmd)
	loreCmd.Flags().String("search", "", "search titles and content")
	loreCmd.Flags().String("category", realmclient.FilterAll, "only entries in this category")
	loreCmd.Flags().Bool("categories", false, "list the categories instead of the entries")

	for _, c := range []*cobra.Command{loreCreateCmd, loreUpdateCmd} {
		f := c.Flags()
		f.String("title", "", "title")
		f.String("content", "", "content")
		f.String("category", "", "category, e.g. history")
		f.String("image-url", "", "image URL")
	}
}
