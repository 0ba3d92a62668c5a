// Copyright (c) 2025, The Polyscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "image/color"

func init() {
	Register(Viridis)
	Register(CoolWarm)
	Register(Blues)
	Register(Reds)
	Register(Plasma)
	Register(Spectral)
	Register(Turbo)
}

// Viridis is the matplotlib viridis sequential map.
var Viridis = NewMap("viridis",
	color.RGBA{68, 1, 84, 255},
	color.RGBA{72, 35, 116, 255},
	color.RGBA{64, 67, 135, 255},
	color.RGBA{52, 94, 141, 255},
	color.RGBA{41, 120, 142, 255},
	color.RGBA{32, 144, 140, 255},
	color.RGBA{34, 167, 132, 255},
	color.RGBA{68, 190, 112, 255},
	color.RGBA{121, 209, 81, 255},
	color.RGBA{189, 222, 38, 255},
	color.RGBA{253, 231, 37, 255},
)

// CoolWarm is a diverging blue-white-red map, suited to signed data
// centered on zero.
var CoolWarm = NewMap("coolwarm",
	color.RGBA{59, 76, 192, 255},
	color.RGBA{124, 159, 249, 255},
	color.RGBA{192, 212, 245, 255},
	color.RGBA{221, 221, 221, 255},
	color.RGBA{245, 196, 173, 255},
	color.RGBA{238, 132, 104, 255},
	color.RGBA{180, 4, 38, 255},
)

// Blues is a sequential light-to-dark blue map, suited to magnitudes.
var Blues = NewMap("blues",
	color.RGBA{247, 251, 255, 255},
	color.RGBA{198, 219, 239, 255},
	color.RGBA{107, 174, 214, 255},
	color.RGBA{33, 113, 181, 255},
	color.RGBA{8, 48, 107, 255},
)

// Reds is a sequential light-to-dark red map.
var Reds = NewMap("reds",
	color.RGBA{255, 245, 240, 255},
	color.RGBA{252, 187, 161, 255},
	color.RGBA{251, 106, 74, 255},
	color.RGBA{203, 24, 29, 255},
	color.RGBA{103, 0, 13, 255},
)

// Plasma is the matplotlib plasma sequential map.
var Plasma = NewMap("plasma",
	color.RGBA{13, 8, 135, 255},
	color.RGBA{75, 3, 161, 255},
	color.RGBA{125, 3, 168, 255},
	color.RGBA{168, 34, 150, 255},
	color.RGBA{203, 70, 121, 255},
	color.RGBA{229, 107, 93, 255},
	color.RGBA{248, 148, 65, 255},
	color.RGBA{253, 195, 40, 255},
	color.RGBA{240, 249, 33, 255},
)

// Spectral is the diverging ColorBrewer spectral map.
var Spectral = NewMap("spectral",
	color.RGBA{158, 1, 66, 255},
	color.RGBA{213, 62, 79, 255},
	color.RGBA{244, 109, 67, 255},
	color.RGBA{253, 174, 97, 255},
	color.RGBA{254, 224, 139, 255},
	color.RGBA{255, 255, 191, 255},
	color.RGBA{230, 245, 152, 255},
	color.RGBA{171, 221, 164, 255},
	color.RGBA{102, 194, 165, 255},
	color.RGBA{50, 136, 189, 255},
	color.RGBA{94, 79, 162, 255},
)

// Turbo is an improved rainbow map.
var Turbo = NewMap("turbo",
	color.RGBA{48, 18, 59, 255},
	color.RGBA{70, 107, 227, 255},
	color.RGBA{40, 187, 236, 255},
	color.RGBA{28, 215, 182, 255},
	color.RGBA{126, 250, 85, 255},
	color.RGBA{229, 211, 55, 255},
	color.RGBA{253, 124, 38, 255},
	color.RGBA{191, 33, 5, 255},
	color.RGBA{122, 4, 3, 255},
)
