package ports

// BannerStatePort persists whether the reader dismissed the outdated-version
// banner for a given version, the session-storage analog of the browser UI.
type BannerStatePort interface {
	Dismissed(version string) (bool, error)
	SetDismissed(version string) error
}
