// Package api exposes recipe search and chain calculations over HTTP.
//
// A Handler holds one loaded catalog and is safe for concurrent use: the
// catalog is read-only and the keyword search cache is an expiring LRU.
//
// # Endpoints
//
//	GET  /v1/search?q=KEYWORD
//	GET  /v1/recipes?machine=M&kind=input|output&channel=item|fluid&name=N[&amount=A]
//	GET  /v1/machines
//	GET  /v1/summary
//	POST /v1/balance  {"upstream": REF, "downstream": REF}
//	POST /v1/stats    {"recipes": [REF, ...]}
//
// A REF is either a selector, as a string such as
// "Electrolyzer?out.fluid=Oxygen#0" or as an object with a "machine" key, or
// an inline recipe in catalog form ({"iI": [...], "fO": [...]}).
//
// Responses are JSON unless the client asks for application/yaml. Errors use
// server.ErrorResponse.
//
// # Usage
//
//	h := api.New(cat, api.WithSearchCache(512, 10*time.Minute))
//	cfg := server.NewConfig()
//	cfg.Handlers = h.Routes()
//	err := server.Run(ctx, cfg)
package api
