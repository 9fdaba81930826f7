package audio

import (
	"github.com/gopxl/beep"

	"rage-room/internal/defs"
)

// WeaponSound synthesizes the impact sound of a weapon. Unknown weapons
// get the fist thud.
func WeaponSound(id defs.WeaponID) beep.Streamer {
	switch id {
	case defs.WeaponBat:
		return beep.Mix(
			shaped(0, 0, WaveNoise, 60*ms, 1*ms, 50*ms, 0.35),
			shaped(240, 90, WaveSine, 160*ms, 2*ms, 120*ms, 0.6),
		)
	case defs.WeaponHammer:
		return beep.Mix(
			shaped(0, 0, WaveNoise, 90*ms, 1*ms, 70*ms, 0.3),
			shaped(95, 38, WaveSine, 240*ms, 2*ms, 180*ms, 0.65),
		)
	case defs.WeaponKnife:
		return beep.Mix(
			shaped(0, 0, WaveNoise, 180*ms, 60*ms, 110*ms, 0.35),
			shaped(1800, 900, WaveSine, 120*ms, 20*ms, 90*ms, 0.15),
		)
	}
	return beep.Mix(
		shaped(0, 0, WaveNoise, 35*ms, 1*ms, 30*ms, 0.25),
		shaped(150, 60, WaveSine, 130*ms, 2*ms, 100*ms, 0.7),
	)
}

// GroanSound synthesizes the target's pained reaction.
func GroanSound() beep.Streamer {
	return beep.Mix(
		shaped(170, 95, WaveSaw, 600*ms, 60*ms, 300*ms, 0.25),
		shaped(172, 96, WaveSine, 600*ms, 60*ms, 300*ms, 0.3),
	)
}
