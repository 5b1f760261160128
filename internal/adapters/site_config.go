package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"
)

// SiteConfig carries the switcher-relevant settings of an mkdocs.yml.
type SiteConfig struct {
	SiteURL        string
	Provider       string
	DefaultVersion string
}

// SiteConfigAdapter reads an mkdocs.yml to default CLI inputs: the site
// base URL and the configured default version alias.
type SiteConfigAdapter struct {
	Path string
}

func NewSiteConfigAdapter(path string) SiteConfigAdapter {
	return SiteConfigAdapter{Path: path}
}

type mkdocsFile struct {
	SiteURL string `yaml:"site_url"`
	Extra   struct {
		Version struct {
			Provider string    `yaml:"provider"`
			Default  yaml.Node `yaml:"default"`
		} `yaml:"version"`
	} `yaml:"extra"`
}

func (a SiteConfigAdapter) Load() (SiteConfig, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return SiteConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("site config not found").
			WithCause(err)
	}
	var parsed mkdocsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return SiteConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid site config format").
			WithCause(err)
	}
	return SiteConfig{
		SiteURL:        strings.TrimSpace(parsed.SiteURL),
		Provider:       strings.TrimSpace(parsed.Extra.Version.Provider),
		DefaultVersion: defaultVersionValue(parsed.Extra.Version.Default),
	}, nil
}

// defaultVersionValue accepts the two shapes mkdocs allows for
// extra.version.default: a single alias or a list of aliases, in which
// case the first one wins.
func defaultVersionValue(node yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return strings.TrimSpace(node.Value)
	case yaml.SequenceNode:
		if len(node.Content) > 0 {
			return strings.TrimSpace(node.Content[0].Value)
		}
	}
	return ""
}
