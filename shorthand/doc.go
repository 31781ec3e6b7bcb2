// Package shorthand parses and formats the CSS font shorthand subset used
// by editor settings:
//
//	[weight] size[/line-height] family[, family]...
//
// Sizes are pixels, with or without the px unit. A unitless line height is
// a multiple of the size; "normal" leaves it unset (0). Family names keep
// their quotes so the result can be handed to library.Library.Resolve.
//
//	d, err := shorthand.Parse(`bold 14px/19px "Fira Code", monospace`)
package shorthand
