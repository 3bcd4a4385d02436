// component/movement.go
package component

// Position - позиция в пикселях.
type Position struct {
	X, Y float64
}

// Velocity - скорость в пикселях за миллисекунду.
type Velocity struct {
	X, Y float64
}
