package simulation

import "flag"

// ConfigFlags binds Config fields to command line flags.
// Values come from the defaults, then the -config file, then flags set explicitly.
type ConfigFlags struct {
	path  string
	value Config
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *flag.FlagSet) *ConfigFlags {
	cf := &ConfigFlags{value: DefaultConfig()}
	v := &cf.value

	fs.StringVar(&cf.path, "config", "", "JSON config file")
	fs.IntVar(&v.BodyCount, "bodies", v.BodyCount, "number of bodies")
	fs.Float64Var(&v.Mass.Min, "mass-min", v.Mass.Min, "minimum body mass")
	fs.Float64Var(&v.Mass.Max, "mass-max", v.Mass.Max, "maximum body mass")
	fs.Float64Var(&v.Speed.Min, "speed-min", v.Speed.Min, "minimum velocity component")
	fs.Float64Var(&v.Speed.Max, "speed-max", v.Speed.Max, "maximum velocity component")
	fs.Float64Var(&v.RadiusScale, "radius-scale", v.RadiusScale, "radius per unit of mass")
	fs.Float64Var(&v.Arena.Width, "width", v.Arena.Width, "arena width")
	fs.Float64Var(&v.Arena.Height, "height", v.Arena.Height, "arena height")
	fs.IntVar(&v.TrajectoryCapacity, "trail", v.TrajectoryCapacity, "trajectory points kept per body")
	fs.Float64Var(&v.ClearanceMargin, "margin", v.ClearanceMargin, "minimum gap between bodies at placement")
	fs.IntVar(&v.MaxPlacementAttempts, "attempts", v.MaxPlacementAttempts, "placement attempts per body")
	fs.Int64Var(&v.Seed, "seed", v.Seed, "random seed (0 = time based)")
	return cf
}

// Resolve returns the config once fs has been parsed.
func (cf *ConfigFlags) Resolve(fs *flag.FlagSet) (Config, error) {
	if cf.path == "" {
		return cf.value, nil
	}

	cfg, err := LoadConfig(cf.path)
	if err != nil {
		return cfg, err
	}

	// Flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bodies":
			cfg.BodyCount = cf.value.BodyCount
		case "mass-min":
			cfg.Mass.Min = cf.value.Mass.Min
		case "mass-max":
			cfg.Mass.Max = cf.value.Mass.Max
		case "speed-min":
			cfg.Speed.Min = cf.value.Speed.Min
		case "speed-max":
			cfg.Speed.Max = cf.value.Speed.Max
		case "radius-scale":
			cfg.RadiusScale = cf.value.RadiusScale
		case "width":
			cfg.Arena.Width = cf.value.Arena.Width
		case "height":
			cfg.Arena.Height = cf.value.Arena.Height
		case "trail":
			cfg.TrajectoryCapacity = cf.value.TrajectoryCapacity
		case "margin":
			cfg.ClearanceMargin = cf.value.ClearanceMargin
		case "attempts":
			cfg.MaxPlacementAttempts = cf.value.MaxPlacementAttempts
		case "seed":
			cfg.Seed = cf.value.Seed
		}
	})
	return cfg, nil
}
