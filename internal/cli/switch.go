package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docswitch/internal/app"
)

type switchOptions struct {
	Location string
	Target   string
}

func newSwitchCommand() *cobra.Command {
	opts := switchOptions{}
	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Resolve the corresponding page URL in another version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSwitch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Location, "location", "", "Absolute URL of the page currently viewed")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Version id or alias to switch to")
	_ = viper.BindPFlag("location", cmd.Flags().Lookup("location"))
	_ = viper.BindPFlag("target", cmd.Flags().Lookup("target"))
	return cmd
}

func runSwitch(ctx context.Context, cmd *cobra.Command, opts switchOptions) error {
	siteBase, err := resolveSiteBase()
	if err != nil {
		return err
	}
	emitHints(checkMkdocsHints(flagChanged(cmd, "site"), false))
	service := newAppService()
	result, err := service.Switch(ctx, app.SwitchRequest{
		SiteBase:        siteBase,
		CurrentLocation: resolveString(cmd, opts.Location, "location", "location"),
		TargetVersion:   resolveString(cmd, opts.Target, "target", "target"),
	})
	if err != nil {
		return err
	}
	if result.Fallback {
		fmt.Printf("%s\t(no corresponding page, falling back to version root)\n", result.TargetURL)
		return nil
	}
	fmt.Println(result.TargetURL)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
