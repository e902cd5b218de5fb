// Package types defines the domain values carried by level description files.
// This package contains only type definitions: no logic, no methods.
package types

// Color is an RGBA color with channels normalized to 0..1.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Point is a 2D point (texture coordinates, speeds, map positions).
type Point struct {
	X float64
	Y float64
}

// Vec3 is a 3D vector or position in world space.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// ObjectType identifies the kind of a game object (buildings, bots,
// resources, insects, decorations).
type ObjectType int

const (
	ObjectNull ObjectType = 0

	// Buildings.
	ObjectPortico   ObjectType = 2
	ObjectSpaceShip ObjectType = 3
	ObjectDerrick   ObjectType = 4
	ObjectFactory   ObjectType = 5
	ObjectStation   ObjectType = 6
	ObjectConverter ObjectType = 7
	ObjectRepair    ObjectType = 8
	ObjectTower     ObjectType = 9
	ObjectNest      ObjectType = 10
	ObjectResearch  ObjectType = 11
	ObjectRadar     ObjectType = 12
	ObjectEnergy    ObjectType = 13
	ObjectLabo      ObjectType = 14
	ObjectNuclear   ObjectType = 15
	ObjectStartArea ObjectType = 16
	ObjectGoalArea  ObjectType = 17
	ObjectInfo      ObjectType = 18
	ObjectParabolic ObjectType = 19
	ObjectSafe      ObjectType = 21
	ObjectHouston   ObjectType = 22
	ObjectDestroyer ObjectType = 23

	// Resources and items.
	ObjectCargo       ObjectType = 30
	ObjectTitaniumOre ObjectType = 31
	ObjectUraniumOre  ObjectType = 32
	ObjectTitanium    ObjectType = 33
	ObjectPowerCell   ObjectType = 34
	ObjectNuclearCell ObjectType = 35
	ObjectOrgaMatter  ObjectType = 36
	ObjectBlackBox    ObjectType = 37
	ObjectTNT         ObjectType = 38
	ObjectKeyA        ObjectType = 41
	ObjectKeyB        ObjectType = 42
	ObjectKeyC        ObjectType = 43
	ObjectKeyD        ObjectType = 44

	// Bots.
	ObjectWheeledGrabber ObjectType = 100
	ObjectTrackedGrabber ObjectType = 101
	ObjectWingedGrabber  ObjectType = 102
	ObjectLeggedGrabber  ObjectType = 103
	ObjectWheeledShooter ObjectType = 104
	ObjectTrackedShooter ObjectType = 105
	ObjectWingedShooter  ObjectType = 106
	ObjectLeggedShooter  ObjectType = 107
	ObjectWheeledOrga    ObjectType = 108
	ObjectTrackedOrga    ObjectType = 109
	ObjectWingedOrga     ObjectType = 110
	ObjectLeggedOrga     ObjectType = 111
	ObjectWheeledSniffer ObjectType = 112
	ObjectTrackedSniffer ObjectType = 113
	ObjectWingedSniffer  ObjectType = 114
	ObjectLeggedSniffer  ObjectType = 115
	ObjectThumper        ObjectType = 116
	ObjectPhazerShooter  ObjectType = 117
	ObjectRecycler       ObjectType = 118
	ObjectShielder       ObjectType = 119
	ObjectSubber         ObjectType = 120
	ObjectTrainer        ObjectType = 121
	ObjectPracticeBot    ObjectType = 122
	ObjectTargetBot      ObjectType = 123

	// Characters and insects.
	ObjectMe         ObjectType = 200
	ObjectTech       ObjectType = 201
	ObjectAnt        ObjectType = 210
	ObjectSpider     ObjectType = 211
	ObjectWasp       ObjectType = 212
	ObjectWorm       ObjectType = 213
	ObjectAlienQueen ObjectType = 214
	ObjectAlienEgg   ObjectType = 215

	// Decorations.
	ObjectBarrier  ObjectType = 300
	ObjectRuin     ObjectType = 310
	ObjectPlant    ObjectType = 320
	ObjectMushroom ObjectType = 330
	ObjectCrystal  ObjectType = 340
	ObjectTree     ObjectType = 350
	ObjectStone    ObjectType = 360
	ObjectTeenToy  ObjectType = 370
)

// DriveType is the propulsion kind of a bot.
type DriveType int

const (
	DriveOther DriveType = iota
	DriveWheeled
	DriveTracked
	DriveWinged
	DriveLegged
	DriveHeavy
	DriveAmphibious
)

// ToolType is the tool mounted on a bot.
type ToolType int

const (
	ToolOther ToolType = iota
	ToolGrabber
	ToolSniffer
	ToolShooter
	ToolOrganicShooter
)

// WaterType selects the water surface rendering mode.
type WaterType int

const (
	WaterNull WaterType = iota
	WaterTransparentTexture
	WaterTransparentOpaque
	WaterColorTexture
	WaterColorOpaque
)

// TerrainType is the underground resource found under a terrain material.
type TerrainType int

const (
	TerrainNull TerrainType = iota
	TerrainStone
	TerrainUranium
	TerrainPower
	TerrainKeyA
	TerrainKeyB
	TerrainKeyC
	TerrainKeyD
)

// CameraType is the camera mode at mission start.
type CameraType int

const (
	CameraNull CameraType = iota
	CameraFree
	CameraEdit
	CameraOnboard
	CameraBack
	CameraFix
	CameraExplo
	CameraScript
	CameraInfo
	CameraVisit
	CameraDialog
	CameraPlane
)

// MissionType is the rule set a mission is played with.
type MissionType int

const (
	MissionNormal MissionType = iota
	MissionRetro
	MissionCodeBattle
)

// PyroType is a destruction or spawn effect.
type PyroType int

const (
	PyroNull PyroType = iota
	PyroFragT
	PyroFragO
	PyroFragW
	PyroExploT
	PyroExploO
	PyroExploW
	PyroShotT
	PyroShotH
	PyroShotM
	PyroShotW
	PyroEgg
	PyroBurnT
	PyroBurnO
	PyroSpider
	PyroFall
	PyroReset
	PyroWin
	PyroLost
	PyroDeadG
	PyroDeadW
	PyroFlCreate
	PyroFlDelete
	PyroSquash
)

// ResearchFlag is a bitmask of researched technologies.
type ResearchFlag uint32

const (
	ResearchTank     ResearchFlag = 1 << 0
	ResearchFly      ResearchFlag = 1 << 1
	ResearchThump    ResearchFlag = 1 << 2
	ResearchCanon    ResearchFlag = 1 << 3
	ResearchTower    ResearchFlag = 1 << 4
	ResearchPhazer   ResearchFlag = 1 << 5
	ResearchShield   ResearchFlag = 1 << 6
	ResearchAtomic   ResearchFlag = 1 << 7
	ResearchIPaw     ResearchFlag = 1 << 8
	ResearchIGun     ResearchFlag = 1 << 9
	ResearchRecycler ResearchFlag = 1 << 10
	ResearchSubber   ResearchFlag = 1 << 11
	ResearchSniffer  ResearchFlag = 1 << 12
)

// BuildFlag is a bitmask of buildings the player may construct.
type BuildFlag uint32

const (
	BuildFactory    BuildFlag = 1 << 0
	BuildDerrick    BuildFlag = 1 << 1
	BuildConverter  BuildFlag = 1 << 2
	BuildRadar      BuildFlag = 1 << 3
	BuildEnergy     BuildFlag = 1 << 4
	BuildNuclear    BuildFlag = 1 << 5
	BuildStation    BuildFlag = 1 << 6
	BuildRepair     BuildFlag = 1 << 7
	BuildTower      BuildFlag = 1 << 8
	BuildResearch   BuildFlag = 1 << 9
	BuildLabo       BuildFlag = 1 << 10
	BuildParabolic  BuildFlag = 1 << 11
	BuildInfo       BuildFlag = 1 << 12
	BuildDestroyer  BuildFlag = 1 << 13
	BuildFlatGround BuildFlag = 1 << 14
	BuildFlagPole   BuildFlag = 1 << 15
)

// SortType orders entries in the save and mission list menus.
type SortType int

const (
	SortNone SortType = iota
	SortName
	SortDate
	SortIndex
)
