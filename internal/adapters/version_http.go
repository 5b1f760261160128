package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"docswitch/internal/ports"
	"docswitch/internal/shared"
	"docswitch/internal/types"
)

// versionManifestFile is the conventional manifest location relative to the
// site base, as published by mike-style deployments.
const versionManifestFile = "versions.json"

// VersionHTTPAdapter fetches the version manifest of a deployed site.
type VersionHTTPAdapter struct {
	Username string
	APIKey   string
	cfg      httpRetryConfig
}

func NewVersionHTTPAdapter(username string, apiKey string, timeoutSec int, retries int, retryDelayMs int) VersionHTTPAdapter {
	return VersionHTTPAdapter{
		Username: username,
		APIKey:   apiKey,
		cfg:      normalizeHTTPConfig(timeoutSec, retries, retryDelayMs),
	}
}

func (a VersionHTTPAdapter) ListVersions(ctx context.Context, siteBase string) ([]types.Version, error) {
	if strings.TrimSpace(siteBase) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site base URL is empty")
	}
	manifestURL := shared.JoinURL(siteBase, versionManifestFile)
	resp, err := doRequest(ctx, manifestURL, a.Username, a.APIKey, a.cfg)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("version manifest not found").
			WithCause(shared.HTTPStatusError(resp.StatusCode, manifestURL))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("version manifest request failed").
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, manifestURL, strings.TrimSpace(string(snippet))))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read version manifest").
			WithCause(err)
	}
	versions, err := decodeVersionManifest(data)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Str("url", manifestURL).Int("versions", len(versions)).Msg("version manifest fetched")
	return versions, nil
}

func decodeVersionManifest(data []byte) ([]types.Version, error) {
	var versions []types.Version
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid version manifest format").
			WithCause(err)
	}
	return versions, nil
}

var _ ports.VersionSourcePort = VersionHTTPAdapter{}
