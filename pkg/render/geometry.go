package render

import (
	"math"
	"sort"

	"go-endless-runner/internal/component"
)

const (
	shipLength = 1.0
	shipSpan   = 0.5

	// ShipHeight - высота корабля над плоскостью трассы.
	ShipHeight = 0.25
)

// RelativeToPlayer переводит мировую позицию в систему координат корабля.
// Поле уезжает на +scroll, а корабль смещён на -lateralOffset.
func RelativeToPlayer(p component.Vec3, scroll, lateralOffset float64) component.Vec3 {
	return component.Vec3{X: p.X + lateralOffset, Y: p.Y, Z: p.Z + scroll}
}

// DepthOrder возвращает индексы сущностей от дальних к ближним.
// buf переиспользуется между кадрами.
func DepthOrder(entities []component.Renderable, buf []int) []int {
	buf = buf[:0]
	for i := range entities {
		buf = append(buf, i)
	}
	sort.SliceStable(buf, func(a, b int) bool {
		return entities[buf[a]].Position.Z < entities[buf[b]].Position.Z
	})
	return buf
}

// ShipOutline - треугольник корабля в системе игрока, повёрнутый на крен.
// Нос смотрит в -Z, крыло поворачивается вокруг продольной оси.
func ShipOutline(roll float64) [3]component.Vec3 {
	sin, cos := math.Sincos(roll)
	wing := func(x float64) component.Vec3 {
		return component.Vec3{X: x * cos, Y: ShipHeight + x*sin, Z: 0}
	}
	return [3]component.Vec3{
		{X: 0, Y: ShipHeight, Z: -shipLength},
		wing(shipSpan),
		wing(-shipSpan),
	}
}
