// Package catalog loads recipe catalogs and summarizes them.
//
// A catalog location is either a local path or an http(s) URL. Remote
// catalogs are downloaded with retries. Documents may be plain JSON or
// compressed with gzip (.gz) or zstd (.zst, .zstd); compression is also
// detected from the leading magic bytes.
//
//	c, err := catalog.LoadAll(ctx, []string{"recipes.json.zst", "https://example.com/extra.json"},
//	    catalog.WithSchemaValidation(true),
//	    catalog.WithTimeout(2*time.Minute),
//	)
//
// With schema validation enabled, the raw document is checked against the
// embedded JSON schema before it is decoded, and violations are reported by
// JSON pointer.
//
// Load durations and recipe counts are exported as Prometheus metrics.
package catalog
