package render

import (
	"math"

	"go-endless-runner/internal/component"
	"go-endless-runner/internal/config"
)

const nearPlane = 0.1

// Camera - перспективная камера за кораблём, наклонённая вниз.
// Координаты точек задаются относительно игрока: игрок в начале координат.
type Camera struct {
	Position     component.Vec3
	Pitch        float64 // поворот вокруг X, отрицательный смотрит вниз
	FovY         float64 // вертикальный угол обзора в градусах
	ScreenWidth  float64
	ScreenHeight float64

	focal float64
}

// NewCamera создаёт камеру в позиции исходной сцены.
func NewCamera(width, height int) Camera {
	c := Camera{
		Position:     component.Vec3{Y: config.CameraHeight, Z: config.CameraBack},
		Pitch:        config.CameraPitch,
		FovY:         config.CameraFovY,
		ScreenWidth:  float64(width),
		ScreenHeight: float64(height),
	}
	c.focal = (c.ScreenHeight / 2) / math.Tan(c.FovY*math.Pi/360)
	return c
}

// Project переводит точку в экранные координаты.
// depth - расстояние вдоль оси взгляда, ok=false для точек за ближней плоскостью.
func (c Camera) Project(p component.Vec3) (x, y, depth float64, ok bool) {
	dx := p.X - c.Position.X
	dy := p.Y - c.Position.Y
	dz := p.Z - c.Position.Z

	sin, cos := math.Sincos(-c.Pitch)
	vy := dy*cos - dz*sin
	vz := dy*sin + dz*cos
	if vz > -nearPlane {
		return 0, 0, 0, false
	}
	depth = -vz
	x = c.ScreenWidth/2 + dx*c.focal/depth
	y = c.ScreenHeight/2 - vy*c.focal/depth
	return x, y, depth, true
}

// Scale возвращает размер в пикселях объекта размера size на глубине depth.
func (c Camera) Scale(size, depth float64) float64 {
	return size * c.focal / depth
}
