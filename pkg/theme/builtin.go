package theme

// Default returns the dark palette of the original device, with the RGB565
// values expanded to 24-bit color.
func Default() Theme {
	return Theme{
		Name: "default",

		Background: rgb(0, 0, 0),
		Text:       rgb(214, 210, 214),
		Subtle:     rgb(132, 130, 132),
		Accent:     rgb(255, 166, 0),

		Sun:       rgb(255, 206, 0),
		Moon:      rgb(156, 154, 156),
		Crater:    rgb(132, 130, 132),
		Cloud:     rgb(140, 142, 140),
		CloudMid:  rgb(107, 109, 107),
		CloudDark: rgb(66, 69, 66),
		Overcast:  rgb(66, 65, 66),
		Rain:      rgb(0, 0, 255),
		Bolt:      rgb(255, 255, 0),
		Snow:      rgb(189, 190, 189),

		Success: rgb(49, 206, 49),
		Error:   rgb(255, 0, 0),
		Extreme: rgb(255, 0, 255),

		Daytime: rgb(255, 248, 220),
		Cold:    rgb(0, 0, 255),
	}
}
