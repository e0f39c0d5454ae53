// Package recipe defines the recipe catalog data model.
//
// # Overview
//
// A catalog is a list of sources. Machine-based sources group recipes by the
// machine that processes them. Each recipe consumes and produces ingredients
// on two channels, items and fluids, which are never mixed.
//
//	type Ingredient struct {
//	    Amount          int    // "a"
//	    UnlocalizedName string // "uN", internal id
//	    LocalizedName   string // "lN", display name
//	}
//
// The JSON keys match the compact recipe export format, so a catalog can be
// decoded directly:
//
//	var c recipe.Catalog
//	if err := json.Unmarshal(data, &c); err != nil {
//	    return err
//	}
//	fmt.Println(c.RecipeCount())
//
// # Identity
//
// Two ingredients are the same good when their identities are equal.
// Identity is the unlocalized name when present and the localized name
// otherwise. An ingredient with neither yields ErrMissingIdentity; callers
// never get a panic for malformed data.
//
// Display formatting uses the localized name first:
//
//	ing.Format(recipe.ChannelFluid) // "1000l Nitric Acid"
//	r.String()                      // "3000l Nitrogen Dioxide -> 2000l Nitric Acid"
package recipe
