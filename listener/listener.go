package listener

import (
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Listener holds one long-lived MQTT subscription.
type Listener struct {
	client mqtt.Client
	topic  string
}

// New creates a listener for the given broker URL (tcp://host:port) and
// topic. The client reconnects and resubscribes on its own after a
// connection loss.
func New(brokerURL, topic string) *Listener {
	l := &Listener{topic: topic}
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(fmt.Sprintf("gtfslake-realtime-%d", time.Now().UnixNano())).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(10 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			log.Printf("listener: connected to %s", brokerURL)
			if token := c.Subscribe(topic, 0, l.onMessage); token.Wait() && token.Error() != nil {
				log.Printf("listener: subscribe %s: %v", topic, token.Error())
			}
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			log.Printf("listener: connection lost: %v", err)
		})
	l.client = mqtt.NewClient(opts)
	return l
}

// Start connects asynchronously. Connection failures are retried by the
// client and never returned to the caller.
func (l *Listener) Start() {
	l.client.Connect()
}

// Stop unsubscribes and disconnects.
func (l *Listener) Stop() {
	if l.client.IsConnected() {
		if token := l.client.Unsubscribe(l.topic); token.Wait() && token.Error() != nil {
			log.Printf("listener: unsubscribe %s: %v", l.topic, token.Error())
		}
	}
	l.client.Disconnect(250)
}

// onMessage is the future cache invalidation hook. For now every
// notification is only logged.
func (l *Listener) onMessage(_ mqtt.Client, msg mqtt.Message) {
	log.Printf("listener: message on %s (%d bytes)", msg.Topic(), len(msg.Payload()))
}
