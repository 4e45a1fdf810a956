package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(70, 74, 100)
	RgbWall       = tcell.NewRGBColor(150, 150, 170)
	RgbDoor       = tcell.NewRGBColor(190, 120, 60)
	RgbStair      = tcell.NewRGBColor(255, 255, 0)
	RgbItem       = tcell.NewRGBColor(0, 200, 200)
	RgbItemPile   = tcell.NewRGBColor(100, 230, 230)
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)
	RgbMonster    = tcell.NewRGBColor(255, 80, 80)

	RgbStatusText = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBar  = tcell.NewRGBColor(40, 42, 58)
)
