// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	TPS          = 60
	MaxDeltaTime = 0.06

	HUDHeight       = 96  // Нижняя панель: оружие, поле ввода, кнопки
	AvatarCardWidth = 420 // Карточка цели по центру поверхности
	AvatarCardTop   = 60

	// Ёмкость последовательностей сущностей (старые вытесняются первыми)
	MaxSplats      = 90
	MaxParticles   = 650
	MaxBruises     = 30
	MaxWounds      = 12
	MaxTags        = 20
	MaxDrips       = 220
	MaxDripSources = 10
	MaxIconFlashes = 8
	TagsPerRelease = 4
	SpikesSoft     = 10
	SpikesHeavy    = 12
	SpikesCrack    = 14
	ShakeFrames    = 10

	// Пятна: медленно «подсыхают», но не исчезают
	SplatDecay      = 0.0008
	SplatAlphaMin   = 0.45
	SplatBlobAlpha  = 0.98
	SplatSlashAlpha = 0.95

	// Брызги
	ParticleDecay  = 0.02
	ParticleMargin = 40.0

	// Источники капель (кровотечение)
	DripSourceRate     = 0.45
	DripSourceLife     = 900
	DripSourceDecay    = 0.9992
	DripSourceMinRate  = 0.04
	DripGravity        = 0.10
	DripDecay          = 0.002
	DripAlpha          = 0.95
	DripFloorFraction  = 0.02
	DripMargin         = 60.0
	DripLandAlpha      = 0.8
	DripPoolIncrement  = 0.003
	WoundDecay         = 0.0012
	WoundAlphaMin      = 0.7
	WoundAlpha         = 0.95
	BruiseAlphaMax     = 0.55
	BruiseDamageFactor = 180.0

	// Надписи ярости
	TagGravity      = 0.02
	TagFadeLife     = 80
	TagDecay        = 0.015
	TagBaseLife     = 220
	TagLifeVariance = 160

	// Точка удара по кнопке HIT, если курсор вне поверхности
	DefaultHitX = 0.5
	DefaultHitY = 0.55
	ReleaseX    = 0.5
	ReleaseY    = 0.78

	PoolHeightFactor = 0.35
	PoolMinHeight    = 3
	DamageMax        = 100.0

	GroanCooldownMs  = 1500
	HitReactSoftMs   = 130
	HitReactHardMs   = 170
	IconFlashFrames  = 24
	AimRingRadius    = 18.0
	AvatarWobblePx   = 9.0
	TextInputMaxRune = 48
)

var (
	BackgroundColor = color.RGBA{14, 12, 14, 255}
	CardColor       = color.RGBA{28, 24, 28, 255}
	CardStroke      = color.RGBA{70, 20, 24, 255}
	HUDColor        = color.NRGBA{20, 18, 22, 235}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 140, 140, 255}
	ButtonColor     = color.RGBA{48, 44, 50, 255}
	ButtonActive    = color.RGBA{200, 20, 30, 255}
	MeterBackColor  = color.RGBA{40, 36, 40, 255}
	MeterFillColor  = color.RGBA{220, 20, 30, 255}
	AimRingColor    = color.NRGBA{255, 255, 255, 46}

	// Цвета крови
	BloodCore   = color.RGBA{255, 0, 0, 255}
	BloodEdge   = color.RGBA{90, 0, 0, 255}
	BloodSlash  = color.RGBA{200, 0, 0, 255}
	BloodBright = color.RGBA{255, 140, 140, 255}
	BruiseColor = color.RGBA{15, 15, 18, 255}

	// Лужа: полупрозрачные цвета без премультипликации
	PoolTop    = color.NRGBA{255, 0, 0, 166}
	PoolMiddle = color.NRGBA{190, 0, 0, 209}
	PoolBottom = color.NRGBA{80, 0, 0, 250}
	PoolStop   = 0.55
	PoolGloss  = color.NRGBA{255, 255, 255, 20}
)
