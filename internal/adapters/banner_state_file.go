package adapters

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"docswitch/internal/ports"
)

// bannerStateFile is the on-disk shape of the dismissed-banner record.
type bannerStateFile struct {
	Dismissed []string `yaml:"dismissed"`
}

// BannerStateFileAdapter stores which versions' outdated banners the reader
// dismissed. A missing file means nothing was dismissed.
type BannerStateFileAdapter struct {
	Path string
}

func NewBannerStateFileAdapter(path string) BannerStateFileAdapter {
	return BannerStateFileAdapter{Path: path}
}

func (a BannerStateFileAdapter) Dismissed(version string) (bool, error) {
	state, err := a.load()
	if err != nil {
		return false, err
	}
	for _, entry := range state.Dismissed {
		if entry == version {
			return true, nil
		}
	}
	return false, nil
}

func (a BannerStateFileAdapter) SetDismissed(version string) error {
	state, err := a.load()
	if err != nil {
		return err
	}
	for _, entry := range state.Dismissed {
		if entry == version {
			return nil
		}
	}
	state.Dismissed = append(state.Dismissed, version)
	sort.Strings(state.Dismissed)

	data, err := yaml.Marshal(state)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode banner state").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create banner state directory").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write banner state").
			WithCause(err)
	}
	return nil
}

func (a BannerStateFileAdapter) load() (bannerStateFile, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return bannerStateFile{}, nil
		}
		return bannerStateFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read banner state").
			WithCause(err)
	}
	var state bannerStateFile
	if err := yaml.Unmarshal(data, &state); err != nil {
		return bannerStateFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid banner state format").
			WithCause(err)
	}
	return state, nil
}

var _ ports.BannerStatePort = BannerStateFileAdapter{}
