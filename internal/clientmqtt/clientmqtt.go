package clientmqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sparques/irladder/internal/logger"
	"github.com/sparques/irladder/ladder"
)

// ClientMQTT bridges the simulator to a broker. It publishes frame reports
// and, when a level topic is set, acts as a ladder.LevelReader fed by it.
type ClientMQTT struct {
	ctx       context.Context
	log       logger.Logger
	cfgClient MQTTConf
	client    mqtt.Client
	opts      *mqtt.ClientOptions
	level     uint32
}

// NewClient creates a client; nothing connects until Start.
func NewClient(log logger.Logger, cfgClient MQTTConf) *ClientMQTT {
	if cfgClient.Schema == "" {
		cfgClient.Schema = "tcp"
	}
	return &ClientMQTT{
		log:       log,
		cfgClient: cfgClient,
		level:     ladder.MaxLevel,
	}
}

func (c *ClientMQTT) Start(ctx context.Context) error {
	if c.log.GetLevel() == "debug" {
		mqtt.ERROR = log.New(os.Stdout, "[ERROR] ", 0)
		mqtt.CRITICAL = log.New(os.Stdout, "[CRIT] ", 0)
		mqtt.WARN = log.New(os.Stdout, "[WARN]  ", 0)
	}

	c.ctx = ctx

	c.opts = mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("%s://%s:%s", c.cfgClient.Schema, c.cfgClient.Host, c.cfgClient.Port)).
		SetUsername(c.cfgClient.User).
		SetPassword(c.cfgClient.Password).
		SetOnConnectHandler(c.connectHandler).
		SetConnectionLostHandler(c.connectLostHandler).
		SetClientID(c.cfgClient.ClientID).
		SetOrderMatters(false).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetMaxReconnectInterval(5 * time.Second).
		SetKeepAlive(30 * time.Second)

	c.client = mqtt.NewClient(c.opts)

	token := c.client.Connect()
	select {
	case <-token.Done():
		if token.Error() != nil {
			return fmt.Errorf("mqtt connect: %w", token.Error())
		}
	case <-c.ctx.Done():
		return errors.New("context canceled")
	}

	c.log.Module("mqtt").Infof("Status: %v", c.client.IsConnected())
	return nil
}

func (c *ClientMQTT) Stop() error {
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(500)
	}
	return nil
}

// connectHandler (re)subscribes on every connect so a broker restart does
// not silently drop the level feed.
func (c *ClientMQTT) connectHandler(client mqtt.Client) {
	c.log.Module("mqtt").Info("client connected to server")
	if c.cfgClient.LevelTopic == "" {
		return
	}
	token := client.Subscribe(c.cfgClient.LevelTopic, c.cfgClient.Qos, c.levelHandler)
	go func() {
		select {
		case <-c.ctx.Done():
			return
		case <-token.Done():
		}
		if token.Error() != nil {
			c.log.Module("mqtt").Errorf("topic %s subscription error. %v", c.cfgClient.LevelTopic, token.Error())
			return
		}
		c.log.Module("mqtt").Debugf("topic %s subscribed", c.cfgClient.LevelTopic)
	}()
}

func (c *ClientMQTT) connectLostHandler(_ mqtt.Client, err error) {
	c.log.Module("mqtt").Errorf("server connect lost: %v", err)
}

func (c *ClientMQTT) levelHandler(_ mqtt.Client, msg mqtt.Message) {
	level, err := ParseLevel(msg.Payload())
	if err != nil {
		c.log.Module("mqtt").Errorf("level message could not be parsed (%q): %v", msg.Payload(), err)
		return
	}
	c.log.Module("mqtt").Debugf("level %d from topic %s", level, msg.Topic())
	atomic.StoreUint32(&c.level, uint32(level))
}

// ReadLevel implements ladder.LevelReader with the last level received.
// Before any message arrives the keypad reads as idle.
func (c *ClientMQTT) ReadLevel() uint16 {
	return uint16(atomic.LoadUint32(&c.level))
}

// Publish sends v as JSON to the frame topic without waiting for delivery.
func (c *ClientMQTT) Publish(v interface{}) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	token := c.client.Publish(c.cfgClient.FrameTopic, c.cfgClient.Qos, false, msg)
	go func() {
		select {
		case <-c.ctx.Done():
			return
		case <-token.Done():
		}
		if token.Error() != nil {
			c.log.Module("mqtt").Errorf("error publish topic %s. %v", c.cfgClient.FrameTopic, token.Error())
		}
	}()
	return nil
}

// ParseLevel accepts either a bare decimal level or a LevelMessage.
func ParseLevel(payload []byte) (uint16, error) {
	s := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(s, "{") {
		return ladder.ParseLevel(s)
	}
	var m LevelMessage
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return 0, err
	}
	if m.Level > ladder.MaxLevel {
		return 0, ladder.ErrLevelRange
	}
	return m.Level, nil
}
