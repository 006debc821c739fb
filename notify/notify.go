// notify.go - Optional MQTT publisher for transaction status events
//
// When MQTT_BROKER is configured, every successful status transition is
// published as a small JSON event so storefronts or dashboards can react
// without polling. Publishing is fire-and-forget: a broker failure is logged
// and never surfaces to the API caller.

package notify

import (
	"encoding/json"
	"log"

	"go-shop-backend/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var (
	client mqtt.Client
	topic  string
)

// Connect dials the broker. An empty broker address disables the notifier
// entirely and is not an error.
func Connect(broker, eventTopic string) error {
	if broker == "" {
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("go-shop-backend").
		SetAutoReconnect(true)

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	client = c
	topic = eventTopic
	return nil
}

// Enabled reports whether a broker connection is active.
func Enabled() bool {
	return client != nil
}

type statusEvent struct {
	TransactionID uint                     `json:"transactionId"`
	Status        models.TransactionStatus `json:"status"`
}

// TransactionStatus publishes a status-change event. No-op when disabled.
func TransactionStatus(transactionID uint, status models.TransactionStatus) {
	if client == nil {
		return
	}

	payload, err := json.Marshal(statusEvent{TransactionID: transactionID, Status: status})
	if err != nil {
		log.Printf("notify: encode status event: %v", err)
		return
	}

	token := client.Publish(topic, 0, false, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.Printf("notify: publish status event: %v", token.Error())
		}
	}()
}
