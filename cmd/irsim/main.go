//go:build !tinygo

// irsim runs the remote's control loop on the host against a simulated
// carrier. Keypad levels come from a script, a serial-attached ladder or an
// MQTT topic; every frame is logged and optionally published over MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sparques/irladder/driver/sim"
	"github.com/sparques/irladder/internal/clientmqtt"
	"github.com/sparques/irladder/internal/config"
	"github.com/sparques/irladder/internal/emitter"
	"github.com/sparques/irladder/internal/logger"
	"github.com/sparques/irladder/internal/serialladder"
	"github.com/sparques/irladder/ladder"
	"github.com/sparques/irladder/remote"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "configs/irsim.toml", "Path to configuration file")
}

func main() {
	flag.Parse()
	cfg, err := config.NewConfig(configFile)
	if err != nil {
		fmt.Printf("configuration file read error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Printf("failed to create a logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil && err != context.Canceled {
		log.Error("irsim: ", err.Error())
		cancel()
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Log) error {
	var client *clientmqtt.ClientMQTT
	if cfg.MQTT.Enabled || cfg.Source.Kind == config.SourceMQTT {
		client = clientmqtt.NewClient(log, ConvertConfigClientMQTT(cfg.MQTT, cfg.Source.Kind == config.SourceMQTT))
		if err := client.Start(ctx); err != nil {
			return fmt.Errorf("failed to start MQTT service: %w", err)
		}
		defer client.Stop()
	}

	levels, err := newLevels(ctx, cfg, log, client)
	if err != nil {
		return err
	}
	if c, ok := levels.(io.Closer); ok {
		defer c.Close()
	}

	sinks := []emitter.Sink{emitter.LogSink(log)}
	if client != nil && cfg.MQTT.Enabled {
		sinks = append(sinks, emitter.SinkFunc(func(r emitter.Report) error {
			return client.Publish(r)
		}))
	}

	carrier := sim.New()
	carrier.PollsPerTick = cfg.Sim.PollsPerTick

	d := remote.NewDispatcher(remote.Config{
		Levels:      levels,
		Transmitter: emitter.NewRecorder(log, carrier, sinks...),
		Logger:      log.Module("remote"),
	})
	log.With(logger.Fields{"module": "remote", "source": cfg.Source.Kind}).Debug("dispatcher created ok")

	if cfg.Sim.Iterations > 0 {
		for i := 0; i < cfg.Sim.Iterations && ctx.Err() == nil; i++ {
			d.Step()
		}
		return nil
	}
	return d.Run(ctx)
}

func newLevels(ctx context.Context, cfg *config.Config, log *logger.Log, client *clientmqtt.ClientMQTT) (ladder.LevelReader, error) {
	switch cfg.Source.Kind {
	case config.SourceScript:
		return sim.NewScript(cfg.Source.Levels...), nil
	case config.SourceSerial:
		r, err := serialladder.Open(log, cfg.Source.Port, cfg.Source.Baud)
		if err != nil {
			return nil, err
		}
		r.Start(ctx)
		return r, nil
	case config.SourceMQTT:
		return client, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source.Kind)
}

// ConvertConfigClientMQTT maps the file settings onto the client's.
func ConvertConfigClientMQTT(cfg config.MQTTConf, subscribe bool) clientmqtt.MQTTConf {
	out := clientmqtt.MQTTConf{
		ClientID:   cfg.ClientID,
		Schema:     "tcp",
		Host:       cfg.Host,
		Port:       cfg.Port,
		User:       cfg.User,
		Password:   cfg.Password,
		Qos:        cfg.Qos,
		FrameTopic: cfg.FrameTopic,
	}
	if subscribe {
		out.LevelTopic = cfg.LevelTopic
	}
	return out
}
