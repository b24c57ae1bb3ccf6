package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	simulate   bool
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ws2812",
		Short: "Drive a chain of WS2812 LEDs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Lookup("debug").Changed {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newFrameCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "ws2812.yaml", "Configuration file.")
	rootCmd.PersistentFlags().BoolVar(&simulate, "simulate", false, "Use a simulated port regardless of the configuration.")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			showVersion()
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the built in programs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listPrograms(cmd.OutOrStdout())
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [program]",
		Short: "Plays a program until interrupted. The button cycles through the programs.",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			conf := mustConfig()
			if len(args) == 1 {
				conf.Program = args[0]
			}
			if err := runPrograms(conf); err != nil {
				log.Fatal(err)
			}
		},
	}
}

func newFrameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frame <program> [updates]",
		Short: "Prints the frames a program puts on the wire, decoded from a simulated port",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			conf := mustConfig()
			updates := 0
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 0 {
					log.Fatalf("updates must be a positive number, not %q", args[1])
				}
				updates = n
			}
			if err := printFrames(cmd.OutOrStdout(), args[0], conf.Count, updates); err != nil {
				log.Fatal(err)
			}
		},
	}
}

func mustConfig() *Config {
	conf, err := readConfig(configFile)
	if err != nil {
		log.Fatal(fmt.Errorf("invalid configuration %s: %w", configFile, err))
	}
	if simulate {
		conf.Port = portSim
	}
	return conf
}
