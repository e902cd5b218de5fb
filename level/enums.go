package level

import (
	"strconv"

	"github.com/nathoo/leveldesc/types"
)

type enumValue interface {
	~int | ~uint32
}

// enumName pairs a file literal with its value. When several literals map to
// the same value the first one listed is the one written back.
type enumName[E enumValue] struct {
	name  string
	value E
}

// enumTable resolves case-sensitive literals first and falls back to an
// integer cast.
type enumTable[E enumValue] struct {
	typeName string
	byName   map[string]E
	byValue  map[E]string
	names    []string
}

func newEnumTable[E enumValue](typeName string, entries []enumName[E]) *enumTable[E] {
	t := &enumTable[E]{
		typeName: typeName,
		byName:   make(map[string]E, len(entries)),
		byValue:  make(map[E]string, len(entries)),
		names:    make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		t.byName[e.name] = e.value
		if _, ok := t.byValue[e.value]; !ok {
			t.byValue[e.value] = e.name
		}
		t.names = append(t.names, e.name)
	}
	return t
}

func (t *enumTable[E]) parse(p *Param) (E, error) {
	if p.absent {
		return 0, p.missing()
	}
	if v, ok := t.byName[p.value]; ok {
		return v, nil
	}
	n, err := strconv.ParseInt(p.value, 10, 64)
	if err != nil {
		return 0, p.bad(t.typeName, err)
	}
	return E(n), nil
}

func (t *enumTable[E]) format(v E) string {
	if s, ok := t.byValue[v]; ok {
		return s
	}
	return strconv.FormatInt(int64(v), 10)
}

var objectTypes = newEnumTable("object type", []enumName[types.ObjectType]{
	{"Null", types.ObjectNull},
	{"Portico", types.ObjectPortico},
	{"SpaceShip", types.ObjectSpaceShip},
	{"Derrick", types.ObjectDerrick},
	{"BotFactory", types.ObjectFactory},
	{"PowerStation", types.ObjectStation},
	{"Converter", types.ObjectConverter},
	{"RepairCenter", types.ObjectRepair},
	{"DefenseTower", types.ObjectTower},
	{"AlienNest", types.ObjectNest},
	{"ResearchCenter", types.ObjectResearch},
	{"RadarStation", types.ObjectRadar},
	{"PowerPlant", types.ObjectEnergy},
	{"AutoLab", types.ObjectLabo},
	{"NuclearPlant", types.ObjectNuclear},
	{"StartArea", types.ObjectStartArea},
	{"GoalArea", types.ObjectGoalArea},
	{"ExchangePost", types.ObjectInfo},
	{"PowerCaptor", types.ObjectParabolic},
	{"Vault", types.ObjectSafe},
	{"Houston", types.ObjectHouston},
	{"Destroyer", types.ObjectDestroyer},
	{"Cargo", types.ObjectCargo},
	{"TitaniumOre", types.ObjectTitaniumOre},
	{"UraniumOre", types.ObjectUraniumOre},
	{"Titanium", types.ObjectTitanium},
	{"PowerCell", types.ObjectPowerCell},
	{"NuclearCell", types.ObjectNuclearCell},
	{"OrgaMatter", types.ObjectOrgaMatter},
	{"BlackBox", types.ObjectBlackBox},
	{"TNT", types.ObjectTNT},
	{"KeyA", types.ObjectKeyA},
	{"KeyB", types.ObjectKeyB},
	{"KeyC", types.ObjectKeyC},
	{"KeyD", types.ObjectKeyD},
	{"WheeledGrabber", types.ObjectWheeledGrabber},
	{"TrackedGrabber", types.ObjectTrackedGrabber},
	{"WingedGrabber", types.ObjectWingedGrabber},
	{"LeggedGrabber", types.ObjectLeggedGrabber},
	{"WheeledShooter", types.ObjectWheeledShooter},
	{"TrackedShooter", types.ObjectTrackedShooter},
	{"WingedShooter", types.ObjectWingedShooter},
	{"LeggedShooter", types.ObjectLeggedShooter},
	{"WheeledOrgaShooter", types.ObjectWheeledOrga},
	{"TrackedOrgaShooter", types.ObjectTrackedOrga},
	{"WingedOrgaShooter", types.ObjectWingedOrga},
	{"LeggedOrgaShooter", types.ObjectLeggedOrga},
	{"WheeledSniffer", types.ObjectWheeledSniffer},
	{"TrackedSniffer", types.ObjectTrackedSniffer},
	{"WingedSniffer", types.ObjectWingedSniffer},
	{"LeggedSniffer", types.ObjectLeggedSniffer},
	{"Thumper", types.ObjectThumper},
	{"PhazerShooter", types.ObjectPhazerShooter},
	{"Recycler", types.ObjectRecycler},
	{"Shielder", types.ObjectShielder},
	{"Subber", types.ObjectSubber},
	{"TrainingBot", types.ObjectTrainer},
	{"PracticeBot", types.ObjectPracticeBot},
	{"TargetBot", types.ObjectTargetBot},
	{"Me", types.ObjectMe},
	{"Tech", types.ObjectTech},
	{"AlienAnt", types.ObjectAnt},
	{"AlienSpider", types.ObjectSpider},
	{"AlienWasp", types.ObjectWasp},
	{"AlienWorm", types.ObjectWorm},
	{"AlienQueen", types.ObjectAlienQueen},
	{"AlienEgg", types.ObjectAlienEgg},
	{"Barrier", types.ObjectBarrier},
	{"Ruin", types.ObjectRuin},
	{"Plant", types.ObjectPlant},
	{"Mushroom", types.ObjectMushroom},
	{"Crystal", types.ObjectCrystal},
	{"Tree", types.ObjectTree},
	{"Stone", types.ObjectStone},
	{"TeenToy", types.ObjectTeenToy},
})

var driveTypes = newEnumTable("drive type", []enumName[types.DriveType]{
	{"Other", types.DriveOther},
	{"Wheeled", types.DriveWheeled},
	{"Tracked", types.DriveTracked},
	{"Winged", types.DriveWinged},
	{"Legged", types.DriveLegged},
	{"Heavy", types.DriveHeavy},
	{"Amphibious", types.DriveAmphibious},
})

var toolTypes = newEnumTable("tool type", []enumName[types.ToolType]{
	{"Other", types.ToolOther},
	{"Grabber", types.ToolGrabber},
	{"Sniffer", types.ToolSniffer},
	{"Shooter", types.ToolShooter},
	{"OrganicShooter", types.ToolOrganicShooter},
})

var waterTypes = newEnumTable("water type", []enumName[types.WaterType]{
	{"NULL", types.WaterNull},
	{"TT", types.WaterTransparentTexture},
	{"TO", types.WaterTransparentOpaque},
	{"CT", types.WaterColorTexture},
	{"CO", types.WaterColorOpaque},
})

var terrainTypes = newEnumTable("terrain type", []enumName[types.TerrainType]{
	{"Null", types.TerrainNull},
	{"Stone", types.TerrainStone},
	{"Uranium", types.TerrainUranium},
	{"Power", types.TerrainPower},
	{"KeyA", types.TerrainKeyA},
	{"KeyB", types.TerrainKeyB},
	{"KeyC", types.TerrainKeyC},
	{"KeyD", types.TerrainKeyD},
})

var cameraTypes = newEnumTable("camera type", []enumName[types.CameraType]{
	{"NULL", types.CameraNull},
	{"FREE", types.CameraFree},
	{"EDIT", types.CameraEdit},
	{"ONBOARD", types.CameraOnboard},
	{"BACK", types.CameraBack},
	{"FIX", types.CameraFix},
	{"EXPLO", types.CameraExplo},
	{"SCRIPT", types.CameraScript},
	{"INFO", types.CameraInfo},
	{"VISIT", types.CameraVisit},
	{"DIALOG", types.CameraDialog},
	{"PLANE", types.CameraPlane},
})

var missionTypes = newEnumTable("mission type", []enumName[types.MissionType]{
	{"NORMAL", types.MissionNormal},
	{"RETRO", types.MissionRetro},
	{"CODE_BATTLE", types.MissionCodeBattle},
})

var pyroTypes = newEnumTable("pyro type", []enumName[types.PyroType]{
	{"NULL", types.PyroNull},
	{"FRAGt", types.PyroFragT},
	{"FRAGo", types.PyroFragO},
	{"FRAGw", types.PyroFragW},
	{"EXPLOt", types.PyroExploT},
	{"EXPLOo", types.PyroExploO},
	{"EXPLOw", types.PyroExploW},
	{"SHOTt", types.PyroShotT},
	{"SHOTh", types.PyroShotH},
	{"SHOTm", types.PyroShotM},
	{"SHOTw", types.PyroShotW},
	{"EGG", types.PyroEgg},
	{"BURNt", types.PyroBurnT},
	{"BURNo", types.PyroBurnO},
	{"SPIDER", types.PyroSpider},
	{"FALL", types.PyroFall},
	{"RESET", types.PyroReset},
	{"WIN", types.PyroWin},
	{"LOST", types.PyroLost},
	{"DEADg", types.PyroDeadG},
	{"DEADw", types.PyroDeadW},
	{"FLCREATE", types.PyroFlCreate},
	{"FLDELETE", types.PyroFlDelete},
	{"SQUASH", types.PyroSquash},
})

var researchFlags = newEnumTable("research flag", []enumName[types.ResearchFlag]{
	{"TANK", types.ResearchTank},
	{"FLY", types.ResearchFly},
	{"THUMP", types.ResearchThump},
	{"CANON", types.ResearchCanon},
	{"TOWER", types.ResearchTower},
	{"PHAZER", types.ResearchPhazer},
	{"SHIELD", types.ResearchShield},
	{"ATOMIC", types.ResearchAtomic},
	{"iPAW", types.ResearchIPaw},
	{"iGUN", types.ResearchIGun},
	{"RECYCLER", types.ResearchRecycler},
	{"SUBM", types.ResearchSubber},
	{"SNIFFER", types.ResearchSniffer},
})

var buildFlags = newEnumTable("build flag", []enumName[types.BuildFlag]{
	{"Factory", types.BuildFactory},
	{"Derrick", types.BuildDerrick},
	{"Converter", types.BuildConverter},
	{"Radar", types.BuildRadar},
	{"Energy", types.BuildEnergy},
	{"Nuclear", types.BuildNuclear},
	{"Station", types.BuildStation},
	{"Repair", types.BuildRepair},
	{"Tower", types.BuildTower},
	{"Research", types.BuildResearch},
	{"Labo", types.BuildLabo},
	{"Parabolic", types.BuildParabolic},
	{"Info", types.BuildInfo},
	{"Destroyer", types.BuildDestroyer},
	{"FlatGround", types.BuildFlatGround},
	{"Flag", types.BuildFlagPole},
})

var sortTypes = newEnumTable("sort type", []enumName[types.SortType]{
	{"None", types.SortNone},
	{"Name", types.SortName},
	{"Date", types.SortDate},
	{"Index", types.SortIndex},
})

// AsObjectType reads an object type literal or integer.
func (p *Param) AsObjectType() (types.ObjectType, error) { return objectTypes.parse(p) }

// AsObjectTypeOr returns def if the parameter is absent.
func (p *Param) AsObjectTypeOr(def types.ObjectType) (types.ObjectType, error) {
	return orDefault(p, def, p.AsObjectType)
}

// AsDriveType reads a drive type literal or integer.
func (p *Param) AsDriveType() (types.DriveType, error) { return driveTypes.parse(p) }

// AsDriveTypeOr returns def if the parameter is absent.
func (p *Param) AsDriveTypeOr(def types.DriveType) (types.DriveType, error) {
	return orDefault(p, def, p.AsDriveType)
}

// AsToolType reads a tool type literal or integer.
func (p *Param) AsToolType() (types.ToolType, error) { return toolTypes.parse(p) }

// AsToolTypeOr returns def if the parameter is absent.
func (p *Param) AsToolTypeOr(def types.ToolType) (types.ToolType, error) {
	return orDefault(p, def, p.AsToolType)
}

// AsWaterType reads a water type literal or integer.
func (p *Param) AsWaterType() (types.WaterType, error) { return waterTypes.parse(p) }

// AsWaterTypeOr returns def if the parameter is absent.
func (p *Param) AsWaterTypeOr(def types.WaterType) (types.WaterType, error) {
	return orDefault(p, def, p.AsWaterType)
}

// AsTerrainType reads a terrain resource literal or integer.
func (p *Param) AsTerrainType() (types.TerrainType, error) { return terrainTypes.parse(p) }

// AsTerrainTypeOr returns def if the parameter is absent.
func (p *Param) AsTerrainTypeOr(def types.TerrainType) (types.TerrainType, error) {
	return orDefault(p, def, p.AsTerrainType)
}

// AsCameraType reads a camera type literal or integer.
func (p *Param) AsCameraType() (types.CameraType, error) { return cameraTypes.parse(p) }

// AsCameraTypeOr returns def if the parameter is absent.
func (p *Param) AsCameraTypeOr(def types.CameraType) (types.CameraType, error) {
	return orDefault(p, def, p.AsCameraType)
}

// AsMissionType reads a mission type literal or integer.
func (p *Param) AsMissionType() (types.MissionType, error) { return missionTypes.parse(p) }

// AsMissionTypeOr returns def if the parameter is absent.
func (p *Param) AsMissionTypeOr(def types.MissionType) (types.MissionType, error) {
	return orDefault(p, def, p.AsMissionType)
}

// AsPyroType reads a pyro type literal or integer.
func (p *Param) AsPyroType() (types.PyroType, error) { return pyroTypes.parse(p) }

// AsPyroTypeOr returns def if the parameter is absent.
func (p *Param) AsPyroTypeOr(def types.PyroType) (types.PyroType, error) {
	return orDefault(p, def, p.AsPyroType)
}

// AsResearchFlag reads a single research literal or an integer bitmask.
func (p *Param) AsResearchFlag() (types.ResearchFlag, error) { return researchFlags.parse(p) }

// AsResearchFlagOr returns def if the parameter is absent.
func (p *Param) AsResearchFlagOr(def types.ResearchFlag) (types.ResearchFlag, error) {
	return orDefault(p, def, p.AsResearchFlag)
}

// AsBuildFlag reads a single build literal or an integer bitmask.
func (p *Param) AsBuildFlag() (types.BuildFlag, error) { return buildFlags.parse(p) }

// AsBuildFlagOr returns def if the parameter is absent.
func (p *Param) AsBuildFlagOr(def types.BuildFlag) (types.BuildFlag, error) {
	return orDefault(p, def, p.AsBuildFlag)
}

// AsSortType reads a sort type literal or integer.
func (p *Param) AsSortType() (types.SortType, error) { return sortTypes.parse(p) }

// AsSortTypeOr returns def if the parameter is absent.
func (p *Param) AsSortTypeOr(def types.SortType) (types.SortType, error) {
	return orDefault(p, def, p.AsSortType)
}

// NewObjectType writes an object type by its name.
func NewObjectType(name string, v types.ObjectType) *Param {
	return newParam(name, objectTypes.format(v))
}

// NewDriveType writes a drive type by its name.
func NewDriveType(name string, v types.DriveType) *Param {
	return newParam(name, driveTypes.format(v))
}

// NewToolType writes a tool type by its name.
func NewToolType(name string, v types.ToolType) *Param {
	return newParam(name, toolTypes.format(v))
}

// NewWaterType writes a water type by its name.
func NewWaterType(name string, v types.WaterType) *Param {
	return newParam(name, waterTypes.format(v))
}

// NewTerrainType writes a terrain type by its name.
func NewTerrainType(name string, v types.TerrainType) *Param {
	return newParam(name, terrainTypes.format(v))
}

// NewCameraType writes a camera type by its name.
func NewCameraType(name string, v types.CameraType) *Param {
	return newParam(name, cameraTypes.format(v))
}

// NewMissionType writes a mission type by its name.
func NewMissionType(name string, v types.MissionType) *Param {
	return newParam(name, missionTypes.format(v))
}

// NewPyroType writes a pyro type by its name.
func NewPyroType(name string, v types.PyroType) *Param {
	return newParam(name, pyroTypes.format(v))
}

// NewResearchFlag writes a single flag by name and combined masks as integers.
func NewResearchFlag(name string, v types.ResearchFlag) *Param {
	return newParam(name, researchFlags.format(v))
}

// NewBuildFlag writes a single flag by name and combined masks as integers.
func NewBuildFlag(name string, v types.BuildFlag) *Param {
	return newParam(name, buildFlags.format(v))
}

// NewSortType writes a sort type by its name.
func NewSortType(name string, v types.SortType) *Param {
	return newParam(name, sortTypes.format(v))
}

// ObjectTypeName returns the file literal for an object type, or its
// integer text when the type has no literal.
func ObjectTypeName(v types.ObjectType) string {
	return objectTypes.format(v)
}

// ObjectTypeNames lists every object type literal in table order.
func ObjectTypeNames() []string {
	return append([]string(nil), objectTypes.names...)
}
