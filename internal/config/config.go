package config

import (
	"github.com/BurntSushi/toml"
)

// Source kinds.
const (
	SourceScript = "script"
	SourceSerial = "serial"
	SourceMQTT   = "mqtt"
)

// Config is the irsim configuration.
type Config struct {
	Logger LogConf    // Logger - logging settings.
	Source SourceConf // Source - where keypad levels come from.
	MQTT   MQTTConf   // MQTT - broker settings.
	Sim    SimConf    // Sim - simulated carrier settings.
}

// LogConf configures the logger.
type LogConf struct {
	Level string `toml:"log-level"` // Level - logrus level name.
}

// SourceConf selects the keypad level source.
type SourceConf struct {
	Kind   string   `toml:"kind"`   // Kind - script, serial or mqtt.
	Levels []uint16 `toml:"levels"` // Levels - scripted readings, replayed in order.
	Port   string   `toml:"port"`   // Port - serial device streaming ADC readings.
	Baud   uint     `toml:"baud"`   // Baud - serial baud rate.
}

// MQTTConf configures the MQTT client.
type MQTTConf struct {
	Enabled    bool   `toml:"enabled"`     // Enabled - publish frames to the broker.
	ClientID   string `toml:"clientID"`    // ClientID - client name.
	Host       string `toml:"server"`      // Host - MQTT server address.
	Port       string `toml:"port"`        // Port - MQTT server port.
	User       string `toml:"user"`        // User - login.
	Password   string `toml:"password"`    // Password - password.
	Qos        byte   `toml:"qos"`         // Qos - quality of service.
	LevelTopic string `toml:"level-topic"` // LevelTopic - topic carrying keypad levels.
	FrameTopic string `toml:"frame-topic"` // FrameTopic - topic receiving frame reports.
}

// SimConf configures the simulated carrier and loop.
type SimConf struct {
	PollsPerTick int `toml:"polls-per-tick"` // PollsPerTick - busy-wait polls per carrier cycle.
	Iterations   int `toml:"iterations"`     // Iterations - loop passes before exiting, 0 runs until signalled.
}

// Default returns the configuration used for any key the file leaves out.
func Default() Config {
	return Config{
		Logger: LogConf{Level: "info"},
		Source: SourceConf{Kind: SourceScript, Baud: 19200},
		MQTT: MQTTConf{
			ClientID:   "irsim",
			Host:       "localhost",
			Port:       "1883",
			LevelTopic: "irladder/level",
			FrameTopic: "irladder/frame",
		},
		Sim: SimConf{PollsPerTick: 4},
	}
}

// NewConfig reads the TOML file at path over the defaults.
func NewConfig(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return &cfg, err
	}
	return &cfg, nil
}
