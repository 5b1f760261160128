package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docswitch/internal/app"
)

type versionsOptions struct {
	Sorted bool
	JSON   bool
}

func newVersionsCommand() *cobra.Command {
	opts := versionsOptions{}
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List the deployed versions of the site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Sorted, "sorted", false, "Order newest first")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Emit JSON")
	_ = viper.BindPFlag("sorted", cmd.Flags().Lookup("sorted"))
	_ = viper.BindPFlag("json", cmd.Flags().Lookup("json"))
	return cmd
}

func runVersions(ctx context.Context, cmd *cobra.Command, opts versionsOptions) error {
	siteBase, err := resolveSiteBase()
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		SiteBase: siteBase,
		Sorted:   resolveBool(cmd, opts.Sorted, "sorted", "sorted"),
	})
	if err != nil {
		return err
	}
	if resolveBool(cmd, opts.JSON, "json", "json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.Versions)
	}
	for _, v := range result.Versions {
		line := v.Version
		if len(v.Aliases) > 0 {
			line += " [" + strings.Join(v.Aliases, ", ") + "]"
		}
		if v.Latest {
			line += " *"
		}
		fmt.Printf("%s\t%s\n", line, v.BaseURL)
	}
	return nil
}
