package configs

import "time"

// Kafka configures delivery of workflow events. Without brokers events are
// only logged.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"unipact.events"`
	// PublishTimeout caps each publish, retries included.
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT" envDefault:"2s"`
	MaxAttempts    int           `env:"MAX_ATTEMPTS" envDefault:"3"`
}

func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }
