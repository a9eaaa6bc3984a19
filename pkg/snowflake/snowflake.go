package snowflake

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init configures the package-level generator for the given node ID.
// Node IDs must be in [0, 1023]. Safe to call more than once.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("create snowflake node: %w", err)
	}

	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns a new unique, roughly time-ordered int64 ID.
// Panics if Init has not been called.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()

	if n == nil {
		panic("snowflake: Init must be called before NextID")
	}
	return n.Generate().Int64()
}
