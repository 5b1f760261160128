package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docswitch/internal/app"
)

type outdatedOptions struct {
	Location       string
	DefaultVersion string
	IgnorePattern  string
	Dismiss        bool
}

func newOutdatedCommand() *cobra.Command {
	opts := outdatedOptions{}
	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "Decide whether the outdated-version banner applies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOutdated(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Location, "location", "", "Absolute URL of the page currently viewed")
	cmd.Flags().StringVar(&opts.DefaultVersion, "default", "", "Default version id or alias (defaults to mkdocs setting, then \"latest\")")
	cmd.Flags().StringVar(&opts.IgnorePattern, "ignore", "", "Case-insensitive pattern of ids/aliases never flagged as outdated")
	cmd.Flags().BoolVar(&opts.Dismiss, "dismiss", false, "Record the banner as dismissed for the current version")
	_ = viper.BindPFlag("outdated_location", cmd.Flags().Lookup("location"))
	_ = viper.BindPFlag("default_version", cmd.Flags().Lookup("default"))
	_ = viper.BindPFlag("ignore_pattern", cmd.Flags().Lookup("ignore"))
	_ = viper.BindPFlag("dismiss", cmd.Flags().Lookup("dismiss"))
	return cmd
}

func runOutdated(ctx context.Context, cmd *cobra.Command, opts outdatedOptions) error {
	siteBase, err := resolveSiteBase()
	if err != nil {
		return err
	}
	emitHints(checkMkdocsHints(flagChanged(cmd, "site"), flagChanged(cmd, "default")))
	service := newAppService()
	result, err := service.Outdated(ctx, app.OutdatedRequest{
		SiteBase:        siteBase,
		CurrentLocation: resolveString(cmd, opts.Location, "outdated_location", "location"),
		DefaultVersion:  resolveDefaultVersion(resolveString(cmd, opts.DefaultVersion, "default_version", "default")),
		IgnorePattern:   resolveString(cmd, opts.IgnorePattern, "ignore_pattern", "ignore"),
		Dismiss:         resolveBool(cmd, opts.Dismiss, "dismiss", "dismiss"),
	})
	if err != nil {
		return err
	}
	state := "current"
	if result.Outdated {
		state = "outdated"
	}
	banner := "hidden"
	if result.ShowBanner {
		banner = "shown"
	}
	fmt.Printf("%s\t%s (default %s)\tbanner %s\n", state, result.CurrentVersion, result.DefaultVersion, banner)
	return nil
}
