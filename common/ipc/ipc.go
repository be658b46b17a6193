package ipc

// Types shared between the shell and its tool mode output
// Everything here is plain data so it round-trips through JSON

type (
	// A mode an output supports
	OutputMode struct {
		// Mode width in pixel
		Width int `json:"width"`
		// Mode height in pixel
		Height int `json:"height"`
		// Refresh rate of the mode in millihertz
		RefreshRate int `json:"refresh_rate"`
		// Whether this is the mode the output currently runs at
		Current bool `json:"current"`
	}

	// One output known to the compositor
	OutputInfo struct {
		// Human readable name, built from the advertised make and model
		Name string `json:"name"`
		// Size of the current mode in pixel
		Width  int `json:"width"`
		Height int `json:"height"`
		// Scale factor the compositor applies to this output
		Scale int `json:"scale"`
		// All advertised modes. Only set if modes were requested
		Modes []OutputMode `json:"modes,omitempty"`
	}

	// Report printed by tool mode for the outputs action
	OutputReport struct {
		Outputs []OutputInfo `json:"outputs"`
		// Nr of outputs found
		OutputsFound int `json:"outputs_found"`
	}
)
