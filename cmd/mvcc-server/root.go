package main

import (
	"time"

	"github.com/spf13/cobra"
)

// clientFlags are shared by the subcommands talking to a running server.
type clientFlags struct {
	endpoints   []string
	dialTimeout time.Duration
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &clientFlags{
		endpoints:   nil,
		dialTimeout: defaultDialTimeout,
		logLevel:    "",
	}

	root := &cobra.Command{
		Use:           "mvcc-server",
		Short:         "multi-version key-value store with an etcd compatible KV API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringSliceVar(&flags.endpoints, "endpoints", []string{defaultListen},
		"gRPC endpoints of the server")
	root.PersistentFlags().DurationVar(&flags.dialTimeout, "dial-timeout", defaultDialTimeout,
		"timeout of connecting to the server")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "",
		"log level: debug, info, warn or error")

	root.AddCommand(
		newServeCmd(flags),
		newGetCmd(flags),
		newPutCmd(flags),
		newDelCmd(flags),
		newCompactCmd(flags),
	)

	return root
}
