// internal/component/projectile.go
package component

import "go-creep-defense/internal/types"

// Bullet представляет летящий снаряд.
type Bullet struct {
	ID       types.EntityID
	Position Position
	Velocity Velocity
	Damage   int
	TargetID types.EntityID // цель, может исчезнуть до попадания
	OwnerID  types.EntityID // башня, которой засчитывается убийство
	Age      float64        // ms с момента выстрела
	Lifespan float64        // ms
	Armed    bool           // false в тике выстрела
}

func (b *Bullet) Expired() bool {
	return b.Age >= b.Lifespan
}
