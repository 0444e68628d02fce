package automatic

import (
	"encoding/base64"
	"fmt"

	"lukechampine.com/frand"
)

// NewBaseSeed returns a random URL-safe seed for a batch of games.
func NewBaseSeed() string {
	return base64.RawURLEncoding.EncodeToString(frand.Bytes(12))
}

// GameSeed is the seed for one game of a batch. Passing it to the shell
// with --seed deals the same opening hands again.
func GameSeed(base string, gameID int) string {
	return fmt.Sprintf("%s-%d", base, gameID)
}
