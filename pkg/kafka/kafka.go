package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

const (
	LoanTopic   = "biblioteca.loans"
	ReportTopic = "biblioteca.reports"
)

type EventType string

const (
	EventLoanCreated     EventType = "loan.created"
	EventReportGenerated EventType = "report.generated"
)

type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
}

type publisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

// NewPublisher sends events through producer. Once the breaker opens, events
// are dropped with circuit_breaker.ErrOpenCB until it recovers.
func NewPublisher(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Publisher {
	return &publisher{
		producer: producer,
		cb:       cb,
	}
}

func (p *publisher) Publish(ctx context.Context, topic string, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }
