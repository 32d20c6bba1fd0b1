package clientmqtt

type MQTTConf struct {
	ClientID   string // ClientID - unique client name for the broker.
	Schema     string // Schema - connection scheme.
	Host       string // Host - MQTT server address.
	Port       string // Port - MQTT server port.
	User       string // User - login.
	Password   string // Password - password.
	Qos        byte   // Qos - quality of service for publish and subscribe.
	LevelTopic string // LevelTopic - topic carrying keypad levels, empty disables.
	FrameTopic string // FrameTopic - topic receiving frame reports.
}

// LevelMessage is the payload expected on the level topic.
type LevelMessage struct {
	Level uint16 `json:"level"`
}
