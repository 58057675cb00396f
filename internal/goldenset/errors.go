package goldenset

import "errors"

// ErrCatalog marks fatal golden-set problems. No verdict can be produced when
// the catalog itself is unusable, so callers should abort the campaign on any
// error matching this sentinel.
var ErrCatalog = errors.New("catalog error")
