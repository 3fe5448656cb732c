// Package neural provides the small randomly wired decision networks that drive creatures.
package neural

import (
	"errors"
	"fmt"
	"math/rand"
)

// Brain capacity limits.
const (
	MaxNeurons     = 16
	MinNeurons     = 6
	MaxConnections = 16
)

// Connection feeds the output of neuron Source into the input of neuron Dest.
// Both are indices into the brain's neuron list.
type Connection struct {
	Source uint8
	Dest   uint8
}

// Brain is an immutable network of sensing and acting neurons.
// It is shared by pointer across creatures and never modified after construction.
type Brain struct {
	neurons     []Neuron
	connections []Connection
}

var (
	ErrNoSensor = errors.New("brain has no sensing neuron")
	ErrNoActor  = errors.New("brain has no acting neuron")
)

// NewBrain builds a brain from explicit parts. Connections must run from a
// sensing neuron to an acting neuron and must not repeat.
func NewBrain(neurons []Neuron, connections []Connection) (*Brain, error) {
	b := &Brain{
		neurons:     append([]Neuron(nil), neurons...),
		connections: append([]Connection(nil), connections...),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// MustBrain is like NewBrain but panics on error.
func MustBrain(neurons []Neuron, connections []Connection) *Brain {
	b, err := NewBrain(neurons, connections)
	if err != nil {
		panic(fmt.Sprintf("neural: invalid brain: %v", err))
	}
	return b
}

// Generate creates a random brain. Candidates lacking either a sensing or an
// acting neuron are discarded and generation starts over.
func Generate(rng *rand.Rand) *Brain {
	for {
		if b := generateOnce(rng); b != nil {
			return b
		}
	}
}

func generateOnce(rng *rand.Rand) *Brain {
	count := MinNeurons + rng.Intn(MaxNeurons-MinNeurons+1)
	neurons := make([]Neuron, count)
	for i := range neurons {
		neurons[i] = randomNeuron(rng)
	}

	var sensors, actors []uint8
	for i, n := range neurons {
		if n.IsSensor() {
			sensors = append(sensors, uint8(i))
		} else {
			actors = append(actors, uint8(i))
		}
	}
	if len(sensors) == 0 || len(actors) == 0 {
		return nil
	}

	lo := len(actors)
	hi := min(MaxConnections, 2*len(actors))
	tries := lo + rng.Intn(hi-lo+1)

	seen := make(map[Connection]struct{}, tries)
	connections := make([]Connection, 0, tries)
	for i := 0; i < tries; i++ {
		c := Connection{
			Source: sensors[rng.Intn(len(sensors))],
			Dest:   actors[rng.Intn(len(actors))],
		}
		if c.Source == c.Dest {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		connections = append(connections, c)
	}
	if len(connections) > MaxConnections {
		connections = connections[:MaxConnections]
	}

	return &Brain{neurons: neurons, connections: connections}
}

// Validate checks the structural invariants of the brain.
func (b *Brain) Validate() error {
	n := len(b.neurons)
	if n > MaxNeurons {
		return fmt.Errorf("%d neurons exceeds capacity %d", n, MaxNeurons)
	}
	if len(b.connections) > MaxConnections {
		return fmt.Errorf("%d connections exceeds capacity %d", len(b.connections), MaxConnections)
	}

	var hasSensor, hasActor bool
	for _, nr := range b.neurons {
		if nr.IsSensor() {
			hasSensor = true
		} else {
			hasActor = true
		}
	}
	if !hasSensor {
		return ErrNoSensor
	}
	if !hasActor {
		return ErrNoActor
	}

	seen := make(map[Connection]struct{}, len(b.connections))
	for _, c := range b.connections {
		if int(c.Source) >= n || int(c.Dest) >= n {
			return fmt.Errorf("connection %d->%d out of range for %d neurons", c.Source, c.Dest, n)
		}
		if !b.neurons[c.Source].IsSensor() {
			return fmt.Errorf("connection source %d is not a sensing neuron", c.Source)
		}
		if !b.neurons[c.Dest].IsActor() {
			return fmt.Errorf("connection destination %d is not an acting neuron", c.Dest)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate connection %d->%d", c.Source, c.Dest)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// NeuronCount returns the number of neurons.
func (b *Brain) NeuronCount() int { return len(b.neurons) }

// ConnectionCount returns the number of connections.
func (b *Brain) ConnectionCount() int { return len(b.connections) }

// Neuron returns the i-th neuron.
func (b *Brain) Neuron(i int) Neuron { return b.neurons[i] }

// Connections returns a copy of the connection list.
func (b *Brain) Connections() []Connection {
	return append([]Connection(nil), b.connections...)
}

// SensorCount returns the number of sensing neurons.
func (b *Brain) SensorCount() int {
	n := 0
	for _, nr := range b.neurons {
		if nr.IsSensor() {
			n++
		}
	}
	return n
}

// ActorCount returns the number of acting neurons.
func (b *Brain) ActorCount() int {
	return len(b.neurons) - b.SensorCount()
}
