package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	invgrpc "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/grpc"
)

func grpcAddrFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "grpc-addr",
		Usage:   "stock ledger gRPC address",
		EnvVars: []string{"GRPC_ADDR"},
		Value:   "localhost:50051",
	}
}

// dial is replaced in tests.
var dial = func(c *cli.Context) (*invgrpc.Client, func() error, error) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, conn, err := invgrpc.Dial(log, c.String("grpc-addr"))
	if err != nil {
		return nil, nil, err
	}
	return client, conn.Close, nil
}

func stockCommand() *cli.Command {
	return &cli.Command{
		Name:  "stock",
		Usage: "inspect and override stock records",
		Flags: []cli.Flag{grpcAddrFlag()},
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show a record by id, or by product and location",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "stock record id"},
					&cli.StringFlag{Name: "product", Usage: "product id"},
					&cli.StringFlag{Name: "location", Usage: "location id"},
				},
				Action: withClient(func(ctx context.Context, c *cli.Context, client *invgrpc.Client) error {
					var (
						rec domain.StockRecord
						err error
					)
					switch {
					case c.String("id") != "":
						rec, err = client.GetStock(ctx, c.String("id"))
					case c.String("product") != "" && c.String("location") != "":
						rec, err = client.LookupStock(ctx, c.String("product"), c.String("location"))
					default:
						return fmt.Errorf("pass --id, or --product and --location")
					}
					if err != nil {
						return err
					}
					return printRecord(c, rec)
				}),
			},
			{
				Name:  "set-on-hand",
				Usage: "override the on-hand count after a stock take",
				Flags: append(recordFlags(), &cli.StringFlag{Name: "reason", Value: "manual count"}),
				Action: withClient(func(ctx context.Context, c *cli.Context, client *invgrpc.Client) error {
					rec, err := client.Adjust(ctx, "SetOnHand", c.String("id"), c.Int64("amount"), c.String("reason"))
					if err != nil {
						return err
					}
					return printRecord(c, rec)
				}),
			},
			{
				Name:  "set-threshold",
				Usage: "change the reorder threshold",
				Flags: recordFlags(),
				Action: withClient(func(ctx context.Context, c *cli.Context, client *invgrpc.Client) error {
					rec, err := client.Adjust(ctx, "SetReorderThreshold", c.String("id"), c.Int64("amount"), "")
					if err != nil {
						return err
					}
					return printRecord(c, rec)
				}),
			},
			{
				Name:      "check",
				Usage:     "check whether items can be fulfilled at a location",
				ArgsUsage: "product=qty...",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "location", Required: true}},
				Action: withClient(func(ctx context.Context, c *cli.Context, client *invgrpc.Client) error {
					items, err := parseItems(c.Args().Slice())
					if err != nil {
						return err
					}
					ok, shortfalls, err := client.CheckAvailability(ctx, c.String("location"), items)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "available: %t\n", ok)
					for _, s := range shortfalls {
						fmt.Fprintf(c.App.Writer, "  %s: requested %d, available %d\n", s.ProductID, s.Requested, s.Available)
					}
					return nil
				}),
			},
		},
	}
}

func recordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "id", Usage: "stock record id", Required: true},
		&cli.Int64Flag{Name: "amount", Usage: "new value", Required: true},
	}
}

func withClient(fn func(ctx context.Context, c *cli.Context, client *invgrpc.Client) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		client, closeFn, err := dial(c)
		if err != nil {
			return err
		}
		defer closeFn()
		ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
		defer cancel()
		return fn(ctx, c, client)
	}
}

func printRecord(c *cli.Context, rec domain.StockRecord) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"id":                rec.ID,
		"product_id":        rec.ProductID,
		"location_id":       rec.LocationID,
		"on_hand":           rec.OnHand,
		"reserved":          rec.Reserved,
		"available":         rec.Available(),
		"reorder_threshold": rec.ReorderThreshold,
		"below_reorder":     rec.IsBelowReorder(),
		"version":           rec.Version,
	})
}

func parseItems(args []string) ([]invgrpc.Item, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one product=qty argument is required")
	}
	items := make([]invgrpc.Item, 0, len(args))
	for _, a := range args {
		product, qty, ok := strings.Cut(a, "=")
		if !ok || product == "" {
			return nil, fmt.Errorf("bad item %q, want product=qty", a)
		}
		n, err := strconv.ParseInt(qty, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad quantity in %q", a)
		}
		items = append(items, invgrpc.Item{ProductID: product, Quantity: n})
	}
	return items, nil
}
