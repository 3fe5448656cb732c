package neural

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pthm-cable/gridlife/spatial"
)

func TestGenerateValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		b := Generate(rng)

		if err := b.Validate(); err != nil {
			t.Fatalf("brain %d invalid: %v", i, err)
		}
		if b.NeuronCount() < MinNeurons || b.NeuronCount() > MaxNeurons {
			t.Fatalf("brain %d has %d neurons, want [%d,%d]", i, b.NeuronCount(), MinNeurons, MaxNeurons)
		}
		if b.ConnectionCount() > MaxConnections {
			t.Fatalf("brain %d has %d connections", i, b.ConnectionCount())
		}
		if b.SensorCount() < 1 || b.ActorCount() < 1 {
			t.Fatalf("brain %d lacks a sensor or actor", i)
		}
	}
}

func TestGenerateNoDuplicateConnections(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		b := Generate(rng)
		seen := make(map[Connection]bool)
		for _, c := range b.Connections() {
			if seen[c] {
				t.Fatalf("brain %d repeats connection %d->%d", i, c.Source, c.Dest)
			}
			seen[c] = true
		}
	}
}

func TestGenerateCoversNeuronSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	sizes := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		sizes[Generate(rng).NeuronCount()] = true
	}
	if !sizes[MinNeurons] || !sizes[MaxNeurons] {
		t.Errorf("expected both extremes to appear, got %v", sizes)
	}
}

func TestNewBrainRejectsMissingRoles(t *testing.T) {
	_, err := NewBrain([]Neuron{AlwaysActive(), RandomSensor()}, nil)
	if !errors.Is(err, ErrNoActor) {
		t.Errorf("expected ErrNoActor, got %v", err)
	}

	_, err = NewBrain([]Neuron{Actor(Eat())}, nil)
	if !errors.Is(err, ErrNoSensor) {
		t.Errorf("expected ErrNoSensor, got %v", err)
	}
}

func TestNewBrainRejectsBadConnections(t *testing.T) {
	neurons := []Neuron{AlwaysActive(), Actor(Eat())}

	cases := []struct {
		name  string
		conns []Connection
	}{
		{"out of range", []Connection{{Source: 0, Dest: 5}}},
		{"reversed", []Connection{{Source: 1, Dest: 0}}},
		{"duplicate", []Connection{{Source: 0, Dest: 1}, {Source: 0, Dest: 1}}},
	}
	for _, c := range cases {
		if _, err := NewBrain(neurons, c.conns); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestNewBrainCopiesInputs(t *testing.T) {
	neurons := []Neuron{AlwaysActive(), Actor(Eat())}
	conns := []Connection{{Source: 0, Dest: 1}}
	b := MustBrain(neurons, conns)

	neurons[1] = Actor(Move(spatial.Left))
	conns[0] = Connection{Source: 1, Dest: 0}

	if b.Neuron(1).Action != Eat() {
		t.Error("brain should not alias caller's neuron slice")
	}
	if b.Connections()[0] != (Connection{Source: 0, Dest: 1}) {
		t.Error("brain should not alias caller's connection slice")
	}
}

func TestActionCosts(t *testing.T) {
	const initial = 100
	cases := []struct {
		a    Action
		want uint16
	}{
		{Idle(), 1},
		{Rotate(spatial.Clockwise), 2},
		{Eat(), 2},
		{Move(spatial.InFront), 3},
		{CopyBrain(spatial.Left), 10},
		{Reproduce(spatial.Behind), initial + 5},
	}
	for _, c := range cases {
		if got := c.a.Cost(initial); got != c.want {
			t.Errorf("%s: cost %d, want %d", c.a, got, c.want)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(rng)
	}
}
