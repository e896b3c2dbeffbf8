package config

// Conf is populated from flags, XPLCONF_* environment variables and the
// optional config file by viper.Unmarshal.
type Conf struct {
	AcfutilsDir string `mapstructure:"acfutils"`
	SdkDir      string `mapstructure:"sdk"`
	Target      string `mapstructure:"target"`
	TargetEnv   string `mapstructure:"target-env"`
	Host        bool   `mapstructure:"host"`
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Package     string `mapstructure:"package"`
	DefsOnly    bool   `mapstructure:"defs-only"`
	LinkerArgs  bool   `mapstructure:"linker-args"`
	Html        bool   `mapstructure:"html"`
	Verbose     bool   `mapstructure:"verbose"`
}
