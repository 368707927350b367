package metrics

import (
	"checkers/game"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Depth      int
	Duration   time.Duration
	Candidates int // Legal moves at the root
	Nodes      int // Positions expanded
	Leaves     int // Moves scored by the evaluator
	Cutoffs    int // Alpha-beta prunes
	Value      int // Value of the chosen move
}

type MoveMetric struct {
	Step int
	Side game.Side
	Move string
	SearchMetric
}

type GameMetric struct {
	GameID       uuid.UUID
	StartingSide game.Side
	Winner       game.Side // None for a game stopped at the turn limit
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

// Collector gathers statistics for one search at a time. It is not safe for
// concurrent use, neither is the search that feeds it.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete(candidates, value int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(candidates, value int) SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Candidates: candidates,
		Nodes:      m.nodes,
		Leaves:     m.leaves,
		Cutoffs:    m.cutoffs,
		Value:      value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int) {}
func (m *dummyCollector) AddNode()        {}
func (m *dummyCollector) AddLeaf()        {}
func (m *dummyCollector) AddCutoff()      {}
func (m *dummyCollector) Complete(candidates, value int) SearchMetric {
	return SearchMetric{Candidates: candidates, Value: value}
}
