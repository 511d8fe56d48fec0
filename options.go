package contour

import "github.com/tsawler/contour/layout"

// ExtractOptions holds configuration for outline extraction. Each component
// of the pipeline carries its own config; the zero value of any field means
// "use that component's default".
type ExtractOptions struct {
	// Component configuration
	assembler  layout.AssemblerConfig
	block      layout.BlockConfig
	pageFilter layout.PageFilterConfig
	heading    layout.HeadingConfig
	title      layout.TitleConfig
	outline    layout.OutlineConfig

	// fallbackOnly skips the glyph-fidelity source entirely and uses the
	// plain-text path directly.
	fallbackOnly bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		assembler:  layout.DefaultAssemblerConfig(),
		block:      layout.DefaultBlockConfig(),
		pageFilter: layout.DefaultPageFilterConfig(),
		heading:    layout.DefaultHeadingConfig(),
		title:      layout.DefaultTitleConfig(),
		outline:    layout.DefaultOutlineConfig(),
	}
}

// clone creates a copy of ExtractOptions. All fields are value types, so a
// plain copy is a deep copy.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
