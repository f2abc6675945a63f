package cmd

import (
	"github.com/apex/log"
	"github.com/realmkeeper/realmkeeper/pkg/config"
	"github.com/realmkeeper/realmkeeper/pkg/rdb"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.MustLoadFromDotenv()
		db := rdb.MustConnectToDB(c)
		if err := rdb.RunMigrations(db); err != nil {
			log.Fatalf("Migrations failed: %s", err)
		}

		log.Infof("Migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
