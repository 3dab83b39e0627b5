package awx

import (
	"context"

	"github.com/tidwall/gjson"
)

// maxPages bounds one drain; a "next" cursor that never terminates (or points
// back at an earlier page) must not loop forever.
const maxPages = 1000

// FetchAll follows the AWX paginated list envelope, accumulating every page's
// "results" entries by chasing the "next" link until it is null. Endpoints
// that do not return the envelope yield a single-element slice with the body.
// Query parameters apply to the first page only; "next" already carries them.
func FetchAll(ctx context.Context, exec Executor, spec RequestSpec) ([]any, error) {
	var out []any
	seen := make(map[string]bool)

	for page := 0; page < maxPages; page++ {
		res, err := exec.Do(ctx, spec)
		if err != nil {
			return nil, err
		}
		if !res.OK {
			return nil, FromStatus(res.StatusCode, res.Raw)
		}

		parsed := gjson.ParseBytes(res.Raw)
		results := parsed.Get("results")
		if !results.Exists() {
			return []any{res.Body}, nil
		}
		for _, r := range results.Array() {
			out = append(out, r.Value())
		}

		next := parsed.Get("next")
		if !next.Exists() || next.Type == gjson.Null || next.String() == "" {
			return out, nil
		}
		if seen[next.String()] {
			return nil, Networkf("pagination cursor loop at %s", next.String())
		}
		seen[next.String()] = true
		spec = RequestSpec{Method: spec.Method, Path: next.String(), Tool: spec.Tool}
	}
	return nil, Networkf("pagination did not terminate within %d pages", maxPages)
}
