package grid

var (
	// PlusSignGrid has one across and one down slot crossing in the middle.
	PlusSignGrid = []string{
		`#_#`,
		`___`,
		`#_#`,
	}

	// CornerGrid is the small hook-shaped structure: three slots, two
	// crossings.
	CornerGrid = []string{
		`#___#`,
		`#_###`,
		`#_###`,
		`#____`,
	}

	// LadderGrid is a ring: two across and two down slots crossing at the
	// four corners.
	LadderGrid = []string{
		`______`,
		`_####_`,
		`_####_`,
		`______`,
	}

	// LoneSlotGrid has a single across slot and nothing crossing it.
	LoneSlotGrid = []string{
		`###`,
		`___`,
		`###`,
	}

	// BlockedGrid has open cells but no run longer than one cell, so it
	// produces no variables at all.
	BlockedGrid = []string{
		`_#_`,
		`###`,
		`_#_`,
	}
)
