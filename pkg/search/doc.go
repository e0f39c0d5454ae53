// Package search finds recipes in a catalog.
//
// Two matching modes exist. FilterByIngredient keeps recipes with an
// ingredient whose localized name equals the query name exactly, optionally
// with an exact amount. Search is fuzzy: a recipe matches when any of its
// ingredient names has a Jaro-Winkler similarity above Threshold to the
// keyword.
//
//	results := search.Catalog(c, "Nitric Aci")
//	for _, r := range results {
//	    fmt.Printf("%s: %s\n", r.Machine, r.Recipe)
//	}
//
// Selectors name a single recipe by machine, filters and position, and are
// used by the command line and HTTP API to pick balance and stats inputs:
//
//	sel, err := search.ParseSelector("Large Chemical Reactor?out.fluid=Nitric Acid@2000")
//	r, err := search.Resolve(c, sel)
package search
