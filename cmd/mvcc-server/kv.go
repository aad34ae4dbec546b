package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tarantool/go-option"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/zap"

	"github.com/tarantool/go-mvcc/client"
	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/operation"
	"github.com/tarantool/go-mvcc/query"
)

// withClient connects to the server for the duration of fn.
func withClient(ctx context.Context, flags *clientFlags, fn func(*client.Client) error) error {
	logger := zap.NewNop()

	if flags.logLevel != "" {
		var err error

		logger, err = newLogger(flags.logLevel)
		if err != nil {
			return err
		}
	}

	etcd, err := clientv3.New(clientv3.Config{ //nolint:exhaustruct
		Endpoints:   flags.endpoints,
		DialTimeout: flags.dialTimeout,
		Logger:      logger,
		Context:     ctx,
	})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	defer func() { _ = etcd.Close() }()

	return fn(client.New(etcd))
}

// rangeFlags select the keys of get and del.
type rangeFlags struct {
	prefix  bool
	fromKey bool
}

// span returns the range selected by the arguments and flags.
func (f *rangeFlags) span(args []string) ([]byte, []byte, error) {
	key := []byte(args[0])

	switch {
	case len(args) > 1 && (f.prefix || f.fromKey):
		return nil, nil, fmt.Errorf("%w: range end cannot be combined with --prefix or --from-key", errConfig)
	case f.prefix && f.fromKey:
		return nil, nil, fmt.Errorf("%w: --prefix and --from-key are exclusive", errConfig)
	case len(args) > 1:
		return key, []byte(args[1]), nil
	case f.prefix:
		return key, []byte(clientv3.GetPrefixRangeEnd(args[0])), nil
	case f.fromKey:
		return key, query.AllKeys, nil
	default:
		return key, nil, nil
	}
}

func parseSortOrder(s string) (query.SortOrder, error) {
	switch strings.ToUpper(s) {
	case "", "NONE":
		return query.SortNone, nil
	case "ASCEND":
		return query.SortAscend, nil
	case "DESCEND":
		return query.SortDescend, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort order %q", errConfig, s)
	}
}

func parseSortTarget(s string) (query.SortTarget, error) {
	switch strings.ToUpper(s) {
	case "", "KEY":
		return query.SortByKey, nil
	case "VERSION":
		return query.SortByVersion, nil
	case "CREATE":
		return query.SortByCreate, nil
	case "MODIFY", "MOD":
		return query.SortByMod, nil
	case "VALUE":
		return query.SortByValue, nil
	default:
		return 0, fmt.Errorf("%w: unknown sort target %q", errConfig, s)
	}
}

func newGetCmd(flags *clientFlags) *cobra.Command {
	var (
		span       = &rangeFlags{prefix: false, fromKey: false}
		rev, limit int64
		order      string
		target     string
		keysOnly   bool
		countOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "get <key> [range_end]",
		Short: "read keys at a revision",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, end, err := span.span(args)
			if err != nil {
				return err
			}

			req := query.Request{ //nolint:exhaustruct
				Key:       key,
				RangeEnd:  end,
				Limit:     limit,
				KeysOnly:  keysOnly,
				CountOnly: countOnly,
			}

			if rev > 0 {
				req.Revision = option.Some(rev)
			}

			if req.SortOrder, err = parseSortOrder(order); err != nil {
				return err
			}

			if req.SortTarget, err = parseSortTarget(target); err != nil {
				return err
			}

			return withClient(cmd.Context(), flags, func(c *client.Client) error {
				res, err := c.Range(cmd.Context(), req)
				if err != nil {
					return err //nolint:wrapcheck
				}

				printRange(cmd.OutOrStdout(), req, res)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&span.prefix, "prefix", false, "select the keys with the given prefix")
	cmd.Flags().BoolVar(&span.fromKey, "from-key", false, "select the keys greater than or equal to the given key")
	cmd.Flags().Int64Var(&rev, "rev", 0, "revision to read at, 0 for the latest")
	cmd.Flags().Int64Var(&limit, "limit", 0, "maximum number of results")
	cmd.Flags().StringVar(&order, "order", "", "sort order: ASCEND or DESCEND")
	cmd.Flags().StringVar(&target, "sort-by", "", "sort target: KEY, VERSION, CREATE, MODIFY or VALUE")
	cmd.Flags().BoolVar(&keysOnly, "keys-only", false, "print only the keys")
	cmd.Flags().BoolVar(&countOnly, "count-only", false, "print only the number of matching keys")

	return cmd
}

func printRange(w io.Writer, req query.Request, res query.Result) {
	if req.CountOnly {
		_, _ = fmt.Fprintln(w, res.Count)
		return
	}

	for _, item := range res.Items {
		_, _ = fmt.Fprintf(w, "%s\n", item.Key)

		if !req.KeysOnly {
			_, _ = fmt.Fprintf(w, "%s\n", item.Value)
		}
	}
}

func printKeyValues(w io.Writer, kvs []kv.KeyValue) {
	for _, item := range kvs {
		_, _ = fmt.Fprintf(w, "%s\n%s\n", item.Key, item.Value)
	}
}

func newPutCmd(flags *clientFlags) *cobra.Command {
	var prevKV bool

	cmd := &cobra.Command{
		Use:   "put <key> <value>",
		Short: "write a key",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []operation.Option
			if prevKV {
				opts = append(opts, operation.WithPrevKV())
			}

			return withClient(cmd.Context(), flags, func(c *client.Client) error {
				resp, err := c.Apply(cmd.Context(), operation.Put([]byte(args[0]), []byte(args[1]), opts...))
				if err != nil {
					return err //nolint:wrapcheck
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "OK")
				printKeyValues(cmd.OutOrStdout(), resp.Results[0].PrevKvs)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&prevKV, "prev-kv", false, "print the previous key-value pair")

	return cmd
}

func newDelCmd(flags *clientFlags) *cobra.Command {
	var (
		span   = &rangeFlags{prefix: false, fromKey: false}
		prevKV bool
	)

	cmd := &cobra.Command{
		Use:   "del <key> [range_end]",
		Short: "delete keys",
		Args:  cobra.RangeArgs(1, 2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			key, end, err := span.span(args)
			if err != nil {
				return err
			}

			var opts []operation.Option
			if end != nil {
				opts = append(opts, operation.WithRangeEnd(end))
			}

			if prevKV {
				opts = append(opts, operation.WithPrevKV())
			}

			return withClient(cmd.Context(), flags, func(c *client.Client) error {
				resp, err := c.Apply(cmd.Context(), operation.Delete(key, opts...))
				if err != nil {
					return err //nolint:wrapcheck
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), resp.Results[0].Deleted)
				printKeyValues(cmd.OutOrStdout(), resp.Results[0].PrevKvs)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&span.prefix, "prefix", false, "delete the keys with the given prefix")
	cmd.Flags().BoolVar(&span.fromKey, "from-key", false, "delete the keys greater than or equal to the given key")
	cmd.Flags().BoolVar(&prevKV, "prev-kv", false, "print the deleted key-value pairs")

	return cmd
}

func newCompactCmd(flags *clientFlags) *cobra.Command {
	var physical bool

	cmd := &cobra.Command{
		Use:   "compact <revision>",
		Short: "discard the history below a revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rev, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: bad revision %q", errConfig, args[0])
			}

			return withClient(cmd.Context(), flags, func(c *client.Client) error {
				if err := c.Compact(cmd.Context(), rev, physical); err != nil {
					return err //nolint:wrapcheck
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "compacted revision", rev)

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&physical, "physical", false, "wait until the history is removed")

	return cmd
}
