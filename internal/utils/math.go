package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDiff возвращает кратчайшую разницу to - from в диапазоне [-π, π].
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// RotateTowards поворачивает угол from к to не более чем на maxStep радиан,
// выбирая кратчайшее направление.
func RotateTowards(from, to, maxStep float64) float64 {
	diff := AngleDiff(from, to)
	if math.Abs(diff) <= maxStep {
		return NormalizeAngle(to)
	}
	if diff > 0 {
		return NormalizeAngle(from + maxStep)
	}
	return NormalizeAngle(from - maxStep)
}

// Bearing - направление от (x0, y0) на (x1, y1).
func Bearing(x0, y0, x1, y1 float64) float64 {
	return math.Atan2(y1-y0, x1-x0)
}

func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// Direction возвращает вектор длины speed от (x0, y0) к (x1, y1).
// Для совпадающих точек вектор нулевой.
func Direction(x0, y0, x1, y1, speed float64) (float64, float64) {
	dx, dy := x1-x0, y1-y0
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist * speed, dy / dist * speed
}
