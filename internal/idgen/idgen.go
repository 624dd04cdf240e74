package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces unique identifiers for new entities, prefixed by kind
// so ids stay recognizable in logs and exports ("order-…", "inv-…").
type Generator interface {
	NewID(prefix string) string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns a Generator backed by random UUIDs.
func NewUUIDGenerator() Generator { return uuidGenerator{} }

func (uuidGenerator) NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
