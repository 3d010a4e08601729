package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	invgrpc "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/grpc"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/memory"
)

func startLedger(t *testing.T) *application.Ledger {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := application.NewLedger(log, memory.NewRepository())

	lis := bufconn.Listen(1 << 20)
	gs := invgrpc.NewGRPCServer(log)
	invgrpc.Register(gs, invgrpc.NewServer(log, ledger))
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	prev := dial
	dial = func(*cli.Context) (*invgrpc.Client, func() error, error) {
		conn, err := grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		return invgrpc.NewClient(log, conn), conn.Close, nil
	}
	t.Cleanup(func() { dial = prev })
	return ledger
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"backofficectl"}, args...))
	return out.String(), err
}

func TestStockCommands(t *testing.T) {
	ledger := startLedger(t)
	rec, err := ledger.Create(context.Background(), "P", "L", 5, 1)
	require.NoError(t, err)
	_, err = ledger.Reserve(context.Background(), rec.ID, 2, "hold")
	require.NoError(t, err)

	out, err := run(t, "stock", "show", "--product", "P", "--location", "L")
	require.NoError(t, err)
	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, rec.ID, shown["id"])
	assert.EqualValues(t, 3, shown["available"])

	out, err = run(t, "stock", "set-on-hand", "--id", rec.ID, "--amount", "9")
	require.NoError(t, err)
	assert.Contains(t, out, `"on_hand": 9`)

	_, err = run(t, "stock", "set-on-hand", "--id", rec.ID, "--amount", "1")
	assert.ErrorContains(t, err, "insufficient stock")

	out, err = run(t, "stock", "set-threshold", "--id", rec.ID, "--amount", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"reorder_threshold": 4`)

	out, err = run(t, "stock", "check", "--location", "L", "P=7", "Q=1")
	require.NoError(t, err)
	assert.Contains(t, out, "available: false")
	assert.Contains(t, out, "Q: requested 1, available 0")
	assert.NotContains(t, out, "P: requested")

	_, err = run(t, "stock", "show")
	assert.Error(t, err)
}

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"a=1", "b=20"})
	require.NoError(t, err)
	assert.Equal(t, []invgrpc.Item{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 20}}, items)

	for _, bad := range [][]string{nil, {"a"}, {"=3"}, {"a=0"}, {"a=x"}} {
		_, err := parseItems(bad)
		assert.Error(t, err, bad)
	}
}
