package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
	Jump  JumpConfig
}

// ListConfig holds todo list pane dimension configuration.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for list rows.
	// Accounts for: input bar (3) + list borders (2) + hint bar (2).
	HeightReduction int

	// MinHeight is the minimum number of visible list rows.
	MinHeight int

	// ContentPadding is subtracted from pane width for row text.
	// Accounts for borders, padding and the selection marker.
	ContentPadding int
}

// ModalConfig holds the confirm dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	TodoCharLimit   int
	FilterCharLimit int

	// Display widths
	StandardWidth int // todo entry and jump inputs
	FilterWidth   int // filter input (narrower)
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// JumpConfig holds jump overlay configuration.
type JumpConfig struct {
	// MaxVisible: max matches shown in the jump result list.
	MaxVisible int

	// HeaderReduction: lines for header, input, hints, padding.
	HeaderReduction int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeightReduction: 7, // input bar (3) + list borders (2) + hint bar (2)
			MinHeight:       3,
			ContentPadding:  6,
		},
		Modal: ModalConfig{
			WidthPercent: 50,
			MinWidth:     30,
			MaxWidth:     60,
		},
		Input: InputConfig{
			TodoCharLimit:   200,
			FilterCharLimit: 50,
			StandardWidth:   40,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
		Jump: JumpConfig{
			MaxVisible:      8,
			HeaderReduction: 6,
		},
	}
}
