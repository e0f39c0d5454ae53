// Package calculator reconciles the ingredient flows of recipes.
//
// Three operations are provided:
//
//   - Aggregate sums ingredient amounts by identity across lists.
//   - ComputeBalance computes the net external inputs and outputs of a two-recipe
//     chain after cancelling the intermediate flow from the upstream recipe
//     into the downstream recipe.
//   - ComputeStats computes gross combined totals of any number of recipes.
//
// Items and fluids are processed independently and never mixed. All
// functions are pure; they allocate new slices and never modify their
// arguments, so they are safe to call concurrently on shared catalogs.
//
// Usage:
//
//	b, err := calculator.ComputeBalance(upstream, downstream)
//	if err != nil {
//	    return err // wraps recipe.ErrMissingIdentity
//	}
//	for _, in := range b.InputFluids {
//	    fmt.Println(in.Format(recipe.ChannelFluid))
//	}
package calculator
