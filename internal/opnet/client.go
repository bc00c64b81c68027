package opnet

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
)

// ═══════════════════════════════════════════════════════════════════════════════
// OP_NET RPC GATEWAY - Best-effort chain queries
// ═══════════════════════════════════════════════════════════════════════════════
//
// One JSON-RPC 2.0 POST per call against the configured OP_NET node, with a
// bounded timeout. A transient fault must never abort rendering: every
// failure path (timeout, transport, malformed payload, null result) degrades
// to ok=false and a warning log. No retries, no caching.
//
// ═══════════════════════════════════════════════════════════════════════════════

// DefaultTimeout bounds each RPC call unless overridden.
const DefaultTimeout = 8 * time.Second

// Client issues block-height and balance queries against one OP_NET node.
type Client struct {
	rpc     *rpc.Client
	timeout time.Duration
}

// NewClient connects a gateway to the given JSON-RPC endpoint. A
// non-positive timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c, err := rpc.Dial(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{rpc: c, timeout: timeout}, nil
}

// Close releases the underlying RPC client.
func (c *Client) Close() {
	c.rpc.Close()
}

// BlockHeight fetches the current OP_NET block height. ok is false when the
// node could not be reached or answered unusably.
func (c *Client) BlockHeight(ctx context.Context) (uint64, bool) {
	return c.call(ctx, "btc_blockNumber")
}

// Balance fetches the confirmed balance of an address in sats.
func (c *Client) Balance(ctx context.Context, address string) (uint64, bool) {
	return c.call(ctx, "btc_getBalance", address, true)
}

func (c *Client) call(ctx context.Context, method string, params ...any) (uint64, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var raw json.RawMessage
	if err := c.rpc.CallContext(ctx, &raw, method, params...); err != nil {
		log.Warn().Err(err).Str("method", method).Msg("⚠️ OP_NET RPC call failed")
		return 0, false
	}

	n, err := parseUint(raw)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Msg("⚠️ OP_NET RPC returned unusable result")
		return 0, false
	}
	return n, true
}

// parseUint normalizes the three result encodings the node is known to emit:
// 0x-prefixed hex strings, decimal strings, and native JSON numbers.
func parseUint(raw json.RawMessage) (uint64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errors.New("null result")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.HasPrefix(s, "0x") {
			return hexutil.DecodeUint64(s)
		}
		return strconv.ParseUint(s, 10, 64)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return strconv.ParseUint(n.String(), 10, 64)
}
