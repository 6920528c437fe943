//Package config loads the runner configuration from a file and the environment.
//
//Physical values are plain numbers in fixed units: ft/s, grains, inches,
//yards, °F, inHg, mph and degrees. Every value may be overridden by an
//environment variable prefixed with POINTMASS_, e.g. POINTMASS_PROJECTILE_VELOCITY.
package config

import (
	"fmt"
	"strings"

	"github.com/gehtsoft-usa/go_pointmass"
	"github.com/gehtsoft-usa/go_pointmass/bmath/unit"
	"github.com/gehtsoft-usa/go_pointmass/rangetable"
	"github.com/spf13/viper"
)

//EnvPrefix is the prefix of the environment overrides
const EnvPrefix = "POINTMASS"

//ProjectileConfig describes the projectile
type ProjectileConfig struct {
	Velocity             float64 `mapstructure:"velocity"` //ft/s
	Mass                 float64 `mapstructure:"mass"`     //gr
	Caliber              float64 `mapstructure:"caliber"`  //in
	BallisticCoefficient float64 `mapstructure:"bc"`
	DragTable            string  `mapstructure:"dragTable"`
}

//ConditionsConfig describes the atmosphere and the wind
type ConditionsConfig struct {
	Temperature   float64 `mapstructure:"temperature"`   //°F
	Pressure      float64 `mapstructure:"pressure"`      //inHg
	Humidity      float64 `mapstructure:"humidity"`      //0..1
	WindSpeed     float64 `mapstructure:"windSpeed"`     //mph
	WindDirection float64 `mapstructure:"windDirection"` //degrees, the wind blows from
}

//ShooterConfig describes the position of the shooter
type ShooterConfig struct {
	Latitude float64 `mapstructure:"latitude"` //degrees
	Bearing  float64 `mapstructure:"bearing"`  //degrees
	Incline  float64 `mapstructure:"incline"`  //degrees
	Gravity  float64 `mapstructure:"gravity"`  //ft/s²
}

//ScopeConfig describes the sight
type ScopeConfig struct {
	Height float64 `mapstructure:"height"` //in
	Offset float64 `mapstructure:"offset"` //in
	Pitch  float64 `mapstructure:"pitch"`  //MOA
	Yaw    float64 `mapstructure:"yaw"`    //MOA
	Cant   float64 `mapstructure:"cant"`   //degrees
}

//FlagsConfig switches the forces
type FlagsConfig struct {
	Drag     bool `mapstructure:"drag"`
	Gravity  bool `mapstructure:"gravity"`
	Coriolis bool `mapstructure:"coriolis"`
}

//ZeroConfig describes the zeroing pass
type ZeroConfig struct {
	Enabled       bool    `mapstructure:"enabled"`
	Distance      float64 `mapstructure:"distance"`  //yd
	Height        float64 `mapstructure:"height"`    //in
	Offset        float64 `mapstructure:"offset"`    //in
	Tolerance     float64 `mapstructure:"tolerance"` //in
	MaxIterations int     `mapstructure:"maxIterations"`
	//Conditions of the zeroing, the firing conditions are used when absent
	Conditions *ConditionsConfig `mapstructure:"conditions"`
	//Shooter of the zeroing, the firing shooter is used when absent.
	//Zero gravity falls back to the firing gravity.
	Shooter *ShooterConfig `mapstructure:"shooter"`
}

//TableConfig describes the range table
type TableConfig struct {
	Start     float64 `mapstructure:"start"`     //yd
	End       float64 `mapstructure:"end"`       //yd
	Step      float64 `mapstructure:"step"`      //yd
	Tolerance float64 `mapstructure:"tolerance"` //in
}

//MetricsConfig describes the metrics export
type MetricsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Textfile string `mapstructure:"textfile"`
}

//TracingConfig describes the tracing
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"serviceName"`
	Pretty      bool   `mapstructure:"pretty"`
}

//Config is the whole runner configuration
type Config struct {
	LogLevel   string           `mapstructure:"logLevel"`
	LogFormat  string           `mapstructure:"logFormat"`
	TimeStep   float64          `mapstructure:"timeStep"` //s
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Conditions ConditionsConfig `mapstructure:"conditions"`
	Shooter    ShooterConfig    `mapstructure:"shooter"`
	Scope      ScopeConfig      `mapstructure:"scope"`
	Flags      FlagsConfig      `mapstructure:"flags"`
	Zero       ZeroConfig       `mapstructure:"zero"`
	Table      TableConfig      `mapstructure:"table"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("timeStep", 0.00005)

	v.SetDefault("projectile.velocity", 3000.0)
	v.SetDefault("projectile.mass", 220.0)
	v.SetDefault("projectile.caliber", 0.308)
	v.SetDefault("projectile.bc", 0.5)
	v.SetDefault("projectile.dragTable", "G7")

	v.SetDefault("conditions.temperature", 59.0)
	v.SetDefault("conditions.pressure", 29.92)
	v.SetDefault("conditions.humidity", 0.0)
	v.SetDefault("conditions.windSpeed", 0.0)
	v.SetDefault("conditions.windDirection", 0.0)

	v.SetDefault("shooter.latitude", 0.0)
	v.SetDefault("shooter.bearing", 0.0)
	v.SetDefault("shooter.incline", 0.0)
	v.SetDefault("shooter.gravity", 32.174)

	v.SetDefault("scope.height", 1.5)
	v.SetDefault("scope.offset", 0.0)
	v.SetDefault("scope.pitch", 0.0)
	v.SetDefault("scope.yaw", 0.0)
	v.SetDefault("scope.cant", 0.0)

	v.SetDefault("flags.drag", true)
	v.SetDefault("flags.gravity", true)
	v.SetDefault("flags.coriolis", true)

	v.SetDefault("zero.enabled", true)
	v.SetDefault("zero.distance", 100.0)
	v.SetDefault("zero.height", 0.0)
	v.SetDefault("zero.offset", 0.0)
	v.SetDefault("zero.tolerance", 0.001)
	v.SetDefault("zero.maxIterations", 20)

	v.SetDefault("table.start", 0.0)
	v.SetDefault("table.end", 1000.0)
	v.SetDefault("table.step", 100.0)
	v.SetDefault("table.tolerance", 0.005)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "pointmass.prom")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.serviceName", "pointmass")
	v.SetDefault("tracing.pretty", false)
}

//Load reads the configuration file (JSON, YAML or TOML, by the extension)
//and applies the environment overrides.
//
//An empty path loads the defaults and the environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return c, nil
}

func (c Config) projectile() (go_pointmass.Projectile, error) {
	table, err := go_pointmass.ParseDragTable(c.Projectile.DragTable)
	if err != nil {
		return go_pointmass.Projectile{}, err
	}
	return go_pointmass.CreateProjectile(
		unit.MustCreateWeight(c.Projectile.Mass, unit.WeightGrain),
		unit.MustCreateDistance(c.Projectile.Caliber, unit.DistanceInch),
		unit.MustCreateVelocity(c.Projectile.Velocity, unit.VelocityFPS),
		c.Projectile.BallisticCoefficient, table)
}

func (c ConditionsConfig) atmosphere() (go_pointmass.Atmosphere, error) {
	return go_pointmass.CreateAtmosphere(
		unit.MustCreateTemperature(c.Temperature, unit.TemperatureFahrenheit),
		unit.MustCreatePressure(c.Pressure, unit.PressureInHg),
		c.Humidity)
}

func (c ConditionsConfig) wind() go_pointmass.Wind {
	return go_pointmass.CreateWind(
		unit.MustCreateVelocity(c.WindSpeed, unit.VelocityMPH),
		unit.MustCreateAngular(c.WindDirection, unit.AngularDegree))
}

func (c ShooterConfig) geometry() (go_pointmass.ShooterGeometry, error) {
	return go_pointmass.CreateShooterGeometryWithGravity(
		unit.MustCreateAngular(c.Latitude, unit.AngularDegree),
		unit.MustCreateAngular(c.Bearing, unit.AngularDegree),
		unit.MustCreateAngular(c.Incline, unit.AngularDegree),
		unit.MustCreateAcceleration(c.Gravity, unit.AccelerationFPS2))
}

func (c Config) scope() go_pointmass.ScopeGeometry {
	return go_pointmass.CreateScopeGeometryWithAngles(
		unit.MustCreateDistance(c.Scope.Height, unit.DistanceInch),
		unit.MustCreateDistance(c.Scope.Offset, unit.DistanceInch),
		unit.MustCreateAngular(c.Scope.Pitch, unit.AngularMOA),
		unit.MustCreateAngular(c.Scope.Yaw, unit.AngularMOA),
		unit.MustCreateAngular(c.Scope.Cant, unit.AngularDegree))
}

func (c Config) params(conditions ConditionsConfig, shooterConfig ShooterConfig) (go_pointmass.SimulationParams, error) {
	projectile, err := c.projectile()
	if err != nil {
		return go_pointmass.SimulationParams{}, err
	}
	atmosphere, err := conditions.atmosphere()
	if err != nil {
		return go_pointmass.SimulationParams{}, err
	}
	shooter, err := shooterConfig.geometry()
	if err != nil {
		return go_pointmass.SimulationParams{}, err
	}
	return go_pointmass.SimulationParams{
		Projectile: projectile,
		Atmosphere: atmosphere,
		Wind:       conditions.wind(),
		Shooter:    shooter,
		Scope:      c.scope(),
		Flags: go_pointmass.Flags{
			UseDrag:     c.Flags.Drag,
			UseGravity:  c.Flags.Gravity,
			UseCoriolis: c.Flags.Coriolis,
		},
		TimeStep: unit.MustCreateTime(c.TimeStep, unit.TimeSecond),
	}, nil
}

//FiringConfig builds the simulation of the firing pass
func (c Config) FiringConfig() (go_pointmass.SimulationConfig, error) {
	p, err := c.params(c.Conditions, c.Shooter)
	if err != nil {
		return go_pointmass.SimulationConfig{}, err
	}
	return go_pointmass.CreateSimulationConfig(p)
}

//ZeroingConfig builds the simulation of the zeroing pass.
//
//The zero conditions and shooter are used when set, the dialled scope angles are not applied.
func (c Config) ZeroingConfig() (go_pointmass.SimulationConfig, error) {
	conditions := c.Conditions
	if c.Zero.Conditions != nil {
		conditions = *c.Zero.Conditions
	}
	shooter := c.Shooter
	if c.Zero.Shooter != nil {
		shooter = *c.Zero.Shooter
		if shooter.Gravity == 0 {
			shooter.Gravity = c.Shooter.Gravity
		}
	}
	p, err := c.params(conditions, shooter)
	if err != nil {
		return go_pointmass.SimulationConfig{}, err
	}
	p.Scope = p.Scope.WithoutDial()
	return go_pointmass.CreateSimulationConfig(p)
}

//Target builds the zeroing target
func (c Config) Target() (go_pointmass.Target, error) {
	return go_pointmass.CreateTarget(
		unit.MustCreateDistance(c.Zero.Distance, unit.DistanceYard),
		unit.MustCreateDistance(c.Zero.Height, unit.DistanceInch),
		unit.MustCreateDistance(c.Zero.Offset, unit.DistanceInch),
		unit.MustCreateDistance(c.Zero.Tolerance, unit.DistanceInch))
}

//RangeTable builds the range table description
func (c Config) RangeTable() (rangetable.Table, error) {
	return rangetable.CreateTable(
		unit.MustCreateDistance(c.Table.Start, unit.DistanceYard),
		unit.MustCreateDistance(c.Table.End, unit.DistanceYard),
		unit.MustCreateDistance(c.Table.Step, unit.DistanceYard),
		unit.MustCreateDistance(c.Table.Tolerance, unit.DistanceInch))
}
