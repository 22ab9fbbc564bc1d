package metric

import "time"

type (
	Metrics interface {
		With(Labels) Metrics
		Increment(name string)
		Duration(name string, d time.Duration)
	}

	Labels map[string]string
)

type stub struct{}

func NewStub() Metrics {
	return stub{}
}

func (s stub) With(Labels) Metrics {
	return s
}

func (s stub) Increment(string) {}

func (s stub) Duration(string, time.Duration) {}
