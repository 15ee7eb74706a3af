package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Unset is the value of Discovery, Finish and Level before a traversal sets them.
const Unset = -1

// DefaultWeight is the weight given to edges added with AddEdge.
const DefaultWeight = 1.0

// NodeState is the traversal colour of a node.
type NodeState int

const (
	// Unvisited nodes have not been discovered (white).
	Unvisited NodeState = iota
	// Exploring nodes are discovered but not finished (gray).
	Exploring
	// Finished nodes have had every outgoing edge processed (black).
	Finished
)

// String returns a lower-case name for s.
func (s NodeState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Exploring:
		return "exploring"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Node is a vertex of the graph with the metadata traversal engines record.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Label is the display text; it defaults to ID.
	Label string

	// Visited is set once a traversal has reached the node.
	Visited bool

	// Discovery and Finish are DFS timestamps; Level is the BFS depth.
	// All are Unset until a traversal assigns them.
	Discovery int
	Finish    int
	Level     int

	// Parent is the ID of the node this one was discovered from, or "".
	Parent string

	// State is the white/gray/black traversal colour.
	State NodeState
}

func newNode(id, label string) *Node {
	if label == "" {
		label = id
	}
	n := &Node{ID: id, Label: label}
	n.reset()

	return n
}

func (n *Node) reset() {
	n.Visited = false
	n.Discovery = Unset
	n.Finish = Unset
	n.Level = Unset
	n.Parent = ""
	n.State = Unvisited
}

// String returns the node label.
func (n *Node) String() string { return n.Label }

// Edge connects two nodes.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Directed is fixed when the edge is added.
	Directed bool

	// Weight is the edge cost; DefaultWeight unless set via AddWeightedEdge.
	Weight float64

	// Highlighted and Traversed are display flags set by engines.
	Highlighted bool
	Traversed   bool
}

// Connects reports whether e joins a to b. Undirected edges also match (b, a).
func (e *Edge) Connects(a, b string) bool {
	if e.From == a && e.To == b {
		return true
	}
	return !e.Directed && e.From == b && e.To == a
}

// Other returns the endpoint opposite id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// String renders the edge as "A -> B" or "A -- B".
func (e *Edge) String() string {
	if e.Directed {
		return e.From + " -> " + e.To
	}
	return e.From + " -- " + e.To
}

func (e *Edge) reset() {
	e.Highlighted = false
	e.Traversed = false
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of newly added edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithName sets the display name of the graph.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the in-memory graph the traversal engine runs on.
//
// adjacency[from][to] holds the edge reachable from 'from' to 'to'.
// Undirected edges are indexed in both directions.
type Graph struct {
	mu sync.RWMutex

	name     string
	directed bool

	nodes     map[string]*Node
	edges     []*Edge
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph. By default it is undirected and named "Graph".
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		name:      "Graph",
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
