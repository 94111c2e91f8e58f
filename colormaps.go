package scatter

import "github.com/gogpu/gg"

// Builtin colormaps. The ColorBrewer sequential ramps use the standard
// 9-class anchors ordered light to dark, so higher densities map to darker
// colors; the matplotlib perceptual maps use evenly spaced RGB anchors.

func rampFromHex(name string, hexes ...string) *Colormap {
	stops := make([]ColorStop, len(hexes))
	for i, h := range hexes {
		stops[i] = ColorStop{
			Offset: float64(i) / float64(len(hexes)-1),
			Color:  gg.Hex(h),
		}
	}
	return &Colormap{name: name, stops: stops}
}

func rampFromRGB(name string, rgb ...[3]uint8) *Colormap {
	stops := make([]ColorStop, len(rgb))
	for i, c := range rgb {
		stops[i] = ColorStop{
			Offset: float64(i) / float64(len(rgb)-1),
			Color: gg.RGBA{
				R: float64(c[0]) / 255,
				G: float64(c[1]) / 255,
				B: float64(c[2]) / 255,
				A: 1,
			},
		}
	}
	return &Colormap{name: name, stops: stops}
}

func init() {
	builtins := []*Colormap{
		// ColorBrewer sequential, 9-class.
		rampFromHex("Reds",
			"#FFF5F0", "#FEE0D2", "#FCBBA1", "#FC9272", "#FB6A4A",
			"#EF3B2C", "#CB181D", "#A50F15", "#67000D"),
		rampFromHex("Blues",
			"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1", "#6BAED6",
			"#4292C6", "#2171B5", "#08519C", "#08306B"),
		rampFromHex("Greens",
			"#F7FCF5", "#E5F5E0", "#C7E9C0", "#A1D99B", "#74C476",
			"#41AB5D", "#238B45", "#006D2C", "#00441B"),
		rampFromHex("Greys",
			"#FFFFFF", "#F0F0F0", "#D9D9D9", "#BDBDBD", "#969696",
			"#737373", "#525252", "#252525", "#000000"),
		rampFromHex("Oranges",
			"#FFF5EB", "#FEE6CE", "#FDD0A2", "#FDAE6B", "#FD8D3C",
			"#F16913", "#D94801", "#A63603", "#7F2704"),
		rampFromHex("Purples",
			"#FCFBFD", "#EFEDF5", "#DADAEB", "#BCBDDC", "#9E9AC8",
			"#807DBA", "#6A51A3", "#54278F", "#3F007D"),
		rampFromHex("BuGn",
			"#F7FCFD", "#E5F5F9", "#CCECE6", "#99D8C9", "#66C2A4",
			"#41AE76", "#238B45", "#006D2C", "#00441B"),

		// matplotlib perceptually uniform maps.
		rampFromRGB("viridis",
			[3]uint8{68, 1, 84}, [3]uint8{72, 35, 116}, [3]uint8{64, 67, 135},
			[3]uint8{52, 94, 141}, [3]uint8{41, 120, 142}, [3]uint8{32, 144, 140},
			[3]uint8{34, 167, 132}, [3]uint8{68, 190, 112}, [3]uint8{121, 209, 81},
			[3]uint8{189, 222, 38}, [3]uint8{253, 231, 37}),
		rampFromRGB("plasma",
			[3]uint8{13, 8, 135}, [3]uint8{75, 3, 161}, [3]uint8{125, 3, 168},
			[3]uint8{168, 34, 150}, [3]uint8{203, 70, 121}, [3]uint8{229, 107, 93},
			[3]uint8{248, 148, 65}, [3]uint8{253, 195, 40}, [3]uint8{240, 249, 33}),
		rampFromRGB("inferno",
			[3]uint8{0, 0, 4}, [3]uint8{40, 11, 84}, [3]uint8{101, 21, 110},
			[3]uint8{159, 42, 99}, [3]uint8{212, 72, 66}, [3]uint8{245, 125, 21},
			[3]uint8{250, 193, 39}, [3]uint8{252, 255, 164}),
		rampFromRGB("magma",
			[3]uint8{0, 0, 4}, [3]uint8{28, 16, 68}, [3]uint8{79, 18, 123},
			[3]uint8{129, 37, 129}, [3]uint8{181, 54, 122}, [3]uint8{229, 80, 100},
			[3]uint8{251, 135, 97}, [3]uint8{254, 194, 135}, [3]uint8{252, 253, 191}),
	}
	for _, c := range builtins {
		if err := RegisterColormap(c); err != nil {
			panic(err)
		}
	}
}
