package ports

import (
	"context"

	"docswitch/internal/types"
)

// VersionSourcePort lists the deployed versions of a documentation site as
// published in its version manifest.
type VersionSourcePort interface {
	ListVersions(ctx context.Context, siteBase string) ([]types.Version, error)
}
