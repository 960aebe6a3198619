package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/manager-dashboard/internal/activity"
	"github.com/frahmantamala/manager-dashboard/internal/seed"
	"github.com/frahmantamala/manager-dashboard/internal/settings"
)

var seedSet string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the fixture data every view is seeded with",
	Long:  `Print the fixture data as JSON. Views reseed from it on every mount.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures := map[string]interface{}{
			"workers":      seed.Workers(),
			"activities":   activity.NewFeed(seed.Activities()).All(),
			"dashboard":    seed.Dashboard(),
			"reports":      seed.Reports(),
			"organization": settings.DefaultOrganization(),
			"profile":      settings.DefaultProfile(),
		}

		var out interface{} = fixtures
		if seedSet != "" {
			set, ok := fixtures[seedSet]
			if !ok {
				return fmt.Errorf("unknown fixture set %q", seedSet)
			}
			out = set
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedSet, "set", "", "only print one fixture set (workers, activities, dashboard, reports, organization, profile)")
}
