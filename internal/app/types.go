package app

type SwitchRequest struct {
	SiteBase        string
	CurrentLocation string
	TargetVersion   string
}

type SwitchResult struct {
	TargetURL      string
	Fallback       bool
	CurrentVersion string
	TargetVersion  string
}

type ListRequest struct {
	SiteBase string
	Sorted   bool
}

type VersionSummary struct {
	Version string
	Title   string
	Aliases []string
	BaseURL string
	Latest  bool
}

type ListResult struct {
	Versions []VersionSummary
}

type CheckRequest struct {
	SiteBase string
	Version  string
	Page     string
}

type CheckResult struct {
	Version string
	PageURL string
	Exists  bool
}

type OutdatedRequest struct {
	SiteBase        string
	CurrentLocation string
	DefaultVersion  string
	IgnorePattern   string
	Dismiss         bool
}

type OutdatedResult struct {
	CurrentVersion string
	DefaultVersion string
	Outdated       bool
	Dismissed      bool
	ShowBanner     bool
}
