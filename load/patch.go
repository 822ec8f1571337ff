package load

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/signadot/vnodes/debug"
)

// Patch applies the RFC 6902 patch to doc. Both may be YAML or JSON; the
// result is JSON.
func Patch(doc, patch []byte) ([]byte, error) {
	jDoc, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("could not convert document: %w", err)
	}
	jPatch, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("could not convert patch: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(jPatch)
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("applying %d patch operations\n", len(ops))
	}
	out, err := ops.Apply(jDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return out, nil
}
