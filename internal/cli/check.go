package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docswitch/internal/app"
)

type checkOptions struct {
	Version string
	Page    string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a page exists in a given version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Version, "version", "", "Version id or alias to probe")
	cmd.Flags().StringVar(&opts.Page, "page", "", "Page URL, absolute or relative to the version base")
	_ = viper.BindPFlag("check_version", cmd.Flags().Lookup("version"))
	_ = viper.BindPFlag("page", cmd.Flags().Lookup("page"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	siteBase, err := resolveSiteBase()
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		SiteBase: siteBase,
		Version:  resolveString(cmd, opts.Version, "check_version", "version"),
		Page:     resolveString(cmd, opts.Page, "page", "page"),
	})
	if err != nil {
		return err
	}
	if result.Exists {
		fmt.Printf("present\t%s\n", result.PageURL)
	} else {
		fmt.Printf("absent\t%s\n", result.PageURL)
	}
	return nil
}
