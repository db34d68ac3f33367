package dashbar

// MaxPaletteItems is the maximum number of labels shown below the input.
const MaxPaletteItems = 8

// Placeholder is shown while the input is empty.
const Placeholder = "Search actions"
