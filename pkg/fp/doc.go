// Package fp provides small higher-order helpers used throughout the
// library: identity and constant functions, left-to-right and
// right-to-left composition, currying, and factories for unary
// arithmetic transforms.
//
// Highlights:
// - Identity/Constant: trivial building blocks
// - Pipe/Compose: same-type function composition
// - Curry: turn a binary function into its curried form
// - Add/Sub/Mul/Div: build unary arithmetic transforms as values
package fp
