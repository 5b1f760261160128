package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"docswitch/internal/adapters"
)

// mkdocsHint pairs a flag name with the mkdocs.yml key that makes it
// redundant.
type mkdocsHint struct {
	FlagName  string
	ConfigKey string
}

// checkMkdocsHints returns hints for flags whose value is also carried by
// the configured mkdocs.yml. A hint is generated when the user explicitly
// provided the flag and the file carries a non-empty setting.
func checkMkdocsHints(siteProvided bool, defaultProvided bool) []string {
	mkdocsPath := strings.TrimSpace(viper.GetString("mkdocs"))
	if mkdocsPath == "" {
		return nil
	}
	cfg, err := adapters.NewSiteConfigAdapter(mkdocsPath).Load()
	if err != nil {
		return nil
	}

	checks := []struct {
		hint       mkdocsHint
		provided   bool
		hasSetting bool
	}{
		{
			hint:       mkdocsHint{"--site", "site_url"},
			provided:   siteProvided,
			hasSetting: strings.TrimSpace(cfg.SiteURL) != "",
		},
		{
			hint:       mkdocsHint{"--default", "extra.version.default"},
			provided:   defaultProvided,
			hasSetting: strings.TrimSpace(cfg.DefaultVersion) != "",
		},
	}

	var hints []string
	for _, c := range checks {
		if c.provided && c.hasSetting {
			hints = append(hints, fmt.Sprintf(
				"hint: %s is also set in mkdocs.yml (%s); you can omit the flag",
				c.hint.FlagName, c.hint.ConfigKey,
			))
		}
	}
	return hints
}

// emitHints writes hint messages to stderr.
func emitHints(hints []string) {
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
}
