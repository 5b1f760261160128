package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"docswitch/internal/types"
)

// ValidateManifest checks the structural invariants of a version manifest:
// every entry has an id, ids are unique, and no alias shadows an id or
// another alias.
func ValidateManifest(ctx context.Context, versions []types.Version) error {
	ids := make(map[string]struct{}, len(versions))
	for _, v := range versions {
		assert.NotEmpty(ctx, v.Version, "version id must be set")
		if _, dup := ids[v.Version]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate version id: %s", v.Version))
		}
		ids[v.Version] = struct{}{}
	}

	aliases := map[string]string{}
	for _, v := range versions {
		for _, alias := range v.Aliases {
			if strings.TrimSpace(alias) == "" {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("version %s has an empty alias", v.Version))
			}
			if _, clash := ids[alias]; clash {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("alias %s of version %s shadows a version id", alias, v.Version))
			}
			if owner, dup := aliases[alias]; dup {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("alias %s claimed by both %s and %s", alias, owner, v.Version))
			}
			aliases[alias] = v.Version
		}
	}
	return nil
}
