package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient"
	"github.com/realmkeeper/realmkeeper/pkg/realmclient/present"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoWorlds = errors.New(`no worlds yet, create one with "realmctl worlds create"`)

// load prints the loading state while fetch runs.
func load[T any](cmd *cobra.Command, fetch func() (T, error)) (T, error) {
	fmt.Fprintln(cmd.ErrOrStderr(), present.LoadingText)
	return fetch()
}

// currentWorld resolves --world, falling back to the first world.
func currentWorld(ctx context.Context, c *realmclient.Client) (*model.World, error) {
	world, err := c.SelectWorld(ctx, viper.GetInt("world"))
	if err != nil {
		return nil, err
	}

	if world == nil {
		return nil, errNoWorlds
	}

	return world, nil
}

func printOut(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

// flagInt is an optional integer flag; unset flags are null.
func flagInt(cmd *cobra.Command, name string) model.NullInt {
	if !cmd.Flags().Changed(name) {
		return model.NullInt{}
	}

	v, _ := cmd.Flags().GetInt(name)
	return model.IntOf(v)
}
