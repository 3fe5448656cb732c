package game

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gridlife/neural"
	"github.com/pthm-cable/gridlife/spatial"
)

// defaultParallelThreshold is the minimum item count to use the worker pool.
// Below this, single-threaded is faster due to goroutine overhead.
const defaultParallelThreshold = 64

// creatureSnapshot captures read-only state for the decide phase.
type creatureSnapshot struct {
	Entity ecs.Entity
	ID     uint64
	Pos    spatial.Position
	Facing spatial.Cardinal
	Brain  *neural.Brain
}

// spawnCandidate is a randomly initialised creature awaiting placement.
type spawnCandidate struct {
	Pos    spatial.Position
	Facing spatial.Cardinal
	Brain  *neural.Brain
}

type jobKind uint8

const (
	jobDecide jobKind = iota
	jobSpawn
)

// workChunk is a range of items for one worker. Chunk idx selects the
// chunk's private random source.
type workChunk struct {
	kind       jobKind
	idx        int
	start, end int
}

// parallelState holds the worker pool and the per-tick buffers it fills.
type parallelState struct {
	snapshots  []creatureSnapshot
	intents    []neural.Action
	candidates []spawnCandidate
	numWorkers int
	threshold  int

	// One source per chunk, reseeded from the world generator every tick,
	// so results depend on the seed and worker count but not on scheduling.
	rngs []*rand.Rand

	// Worker pool channels
	workChan chan workChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func newParallelState(workers, threshold int) *parallelState {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if threshold <= 0 {
		threshold = defaultParallelThreshold
	}
	rngs := make([]*rand.Rand, workers)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(int64(i)))
	}
	return &parallelState{
		numWorkers: workers,
		threshold:  threshold,
		rngs:       rngs,
		snapshots:  make([]creatureSnapshot, 0, 512),
		intents:    make([]neural.Action, 0, 512),
	}
}

// reseed draws one seed per chunk from src.
func (p *parallelState) reseed(src *rand.Rand) {
	for _, r := range p.rngs {
		r.Seed(src.Int63())
	}
}

// startWorkers launches persistent worker goroutines.
func (p *parallelState) startWorkers(w *World) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(w)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *parallelState) worker(w *World) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			w.runChunk(chunk)
			p.doneChan <- struct{}{}
		}
	}
}

// runJob processes n items of the given kind, inline when n is small and on the
// pool otherwise. It returns once every item is done.
func (w *World) runJob(kind jobKind, n int) {
	p := w.parallel
	if n == 0 {
		return
	}
	if n < p.threshold || p.numWorkers == 1 {
		w.runChunk(workChunk{kind: kind, idx: 0, start: 0, end: n})
		return
	}

	if !p.running {
		p.startWorkers(w)
	}

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers
	dispatched := 0
	for c := 0; c < p.numWorkers; c++ {
		start := c * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}
		p.workChan <- workChunk{kind: kind, idx: c, start: start, end: end}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}
}

func (w *World) runChunk(chunk workChunk) {
	rng := w.parallel.rngs[chunk.idx]
	switch chunk.kind {
	case jobDecide:
		w.decideChunk(chunk.start, chunk.end, rng)
	case jobSpawn:
		w.spawnChunk(chunk.start, chunk.end, rng)
	}
}

// decideChunk runs brains for a range of snapshots. It only reads the grid
// and the occupancy map.
func (w *World) decideChunk(i0, i1 int, rng *rand.Rand) {
	senses := view{w}
	p := w.parallel
	for i := i0; i < i1; i++ {
		snap := &p.snapshots[i]
		p.intents[i] = snap.Brain.Decide(senses, snap.Pos, snap.Facing, rng)
	}
}

// spawnChunk draws random creatures for a range of candidate slots.
func (w *World) spawnChunk(i0, i1 int, rng *rand.Rand) {
	p := w.parallel
	width, height := w.grid.Width(), w.grid.Height()
	for i := i0; i < i1; i++ {
		p.candidates[i] = spawnCandidate{
			Pos:    spatial.RandomPosition(rng, width, height),
			Facing: spatial.RandomCardinal(rng),
			Brain:  neural.Generate(rng),
		}
	}
}
