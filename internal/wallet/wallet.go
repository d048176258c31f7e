package wallet

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAddress = errors.New("invalid wallet address")

var addressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{26,44}$`)

// Connector stands in for a real wallet-extension bridge. Connect performs a
// shape check on the address and fabricates a transaction id after a short
// simulated network round trip; it always resolves.
type Connector struct {
	Latency time.Duration
}

func NewConnector() *Connector {
	return &Connector{Latency: 50 * time.Millisecond}
}

func (c *Connector) Connect(ctx context.Context, address string) (string, error) {
	if !addressRegex.MatchString(address) {
		return "", ErrInvalidAddress
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(c.Latency):
	}
	return "0x" + uuid.NewString(), nil
}
