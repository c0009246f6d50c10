package main

// Config is the configuration of the demo, assembled by viper from flags and WALLEE_DEMO_* environment variables.
type Config struct {
	Format    string `mapstructure:"format" validate:"required,oneof=display alternate debug alternate-debug"`
	Depth     int    `mapstructure:"depth" validate:"gte=0,lte=32"`
	Backtrace bool   `mapstructure:"backtrace"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}
