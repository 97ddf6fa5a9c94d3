// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	GridLimit     = 200.0 // половина стороны сетки, как в исходной сцене
	GridDivisions = 100
	GridSpacing   = GridLimit * 2 / GridDivisions

	CameraHeight = 1.5
	CameraBack   = 2.0
	CameraPitch  = -20 * math.Pi / 180
	CameraFovY   = 75.0

	HUDMargin       = 20
	HealthBarWidth  = 200
	HealthBarHeight = 14
	HUDFontSize     = 18
	BannerFontSize  = 40

	BonusSaturation = 1.0
	BonusLightness  = 0.5
)

var (
	BackgroundColor = color.RGBA{10, 10, 20, 255}
	GridColor       = color.RGBA{40, 60, 255, 255}
	ObstacleColor   = color.RGBA{242, 82, 173, 255} // 0xf252ad
	ShipColor       = color.RGBA{207, 14, 62, 255}  // 0xcf0e3e
	ReactorColor    = color.RGBA{247, 243, 153, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthColor     = color.RGBA{50, 205, 50, 255}
	HealthLowColor  = color.RGBA{220, 60, 60, 255}
	HealthBackColor = color.RGBA{60, 60, 60, 200}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
)
