// internal/event/types.go
package event

import "rage-room/internal/defs"

const (
	HitApplied   EventType = "HitApplied"   // Удар нанесён, Data — HitInfo
	RageReleased EventType = "RageReleased" // Надписи выпущены, Data — string
)

// HitInfo — данные события HitApplied
type HitInfo struct {
	Weapon defs.WeaponDefinition
	X, Y   float64
}
