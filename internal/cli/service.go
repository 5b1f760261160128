package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"

	"docswitch/internal/adapters"
	"docswitch/internal/app"
)

func newAppService() app.Service {
	return app.NewService(app.Config{
		Username:         viper.GetString("username"),
		APIKey:           viper.GetString("api_key"),
		HTTPTimeoutSec:   viper.GetInt("http_timeout"),
		HTTPRetries:      viper.GetInt("http_retries"),
		HTTPRetryDelayMs: viper.GetInt("http_retry_delay_ms"),
		BannerStatePath:  viper.GetString("banner_state"),
	})
}

// resolveSiteBase returns the --site value, falling back to the site_url of
// the configured mkdocs.yml.
func resolveSiteBase() (string, error) {
	if site := strings.TrimSpace(viper.GetString("site")); site != "" {
		return site, nil
	}
	mkdocsPath := strings.TrimSpace(viper.GetString("mkdocs"))
	if mkdocsPath == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site base URL is required (--site or --mkdocs)")
	}
	siteConfig, err := adapters.NewSiteConfigAdapter(mkdocsPath).Load()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(siteConfig.SiteURL) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mkdocs.yml has no site_url")
	}
	return siteConfig.SiteURL, nil
}

// resolveDefaultVersion prefers the explicit value over the mkdocs
// extra.version.default setting. Empty means the caller's own fallback
// applies.
func resolveDefaultVersion(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	mkdocsPath := strings.TrimSpace(viper.GetString("mkdocs"))
	if mkdocsPath == "" {
		return ""
	}
	siteConfig, err := adapters.NewSiteConfigAdapter(mkdocsPath).Load()
	if err != nil {
		return ""
	}
	return siteConfig.DefaultVersion
}
