package cmd

import (
	"fmt"
	"os"

	"github.com/realmkeeper/realmkeeper/pkg/rdb/model"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account and print its API key",
	Long: `Create an account and print its API key. The key is only shown once;
put it in $HOME/.realmctl.yaml as "apikey" or export REALMCTL_APIKEY.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = os.Getenv("REALMCTL_PASSWORD")
		}

		user, err := newClient().RegisterUser(cmd.Context(), model.InsertUser{Username: args[0], Password: password})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "user %s (id %d)\napikey: %s\n", user.Username, user.ID, user.APIToken)
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <image file>",
	Short: "Upload an image and print the URL to use as an imageUrl",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		worldID, _ := cmd.Flags().GetInt("world-id")
		url, err := newClient().UploadImage(cmd.Context(), worldID, f.Name(), f)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, uploadCmd)
	registerCmd.Flags().String("password", "", "password (default $REALMCTL_PASSWORD)")
	uploadCmd.Flags().Int("world-id", 0, "world the image belongs to")
}
