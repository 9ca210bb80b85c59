// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/i8008/emulator"
	"github.com/ezrec/i8008/io"
)

type options struct {
	memFile  string
	hexFile  string
	script   string
	ticks    int
	vector   uint8
	noStart  bool
	input    string
	verbose  bool
	traceOut string
}

// load populates the emulator from the image and script options.
func (opt *options) load(emu *emulator.Emulator) (err error) {
	if opt.memFile != "" {
		inf, err := os.Open(opt.memFile)
		if err != nil {
			return err
		}
		defer inf.Close()

		image, err := io.LoadMem(inf)
		if err != nil {
			return err
		}
		if err = emu.Ram.LoadAt(0, image); err != nil {
			return err
		}
	}

	if opt.hexFile != "" {
		inf, err := os.Open(opt.hexFile)
		if err != nil {
			return err
		}
		defer inf.Close()

		image, _, err := io.LoadHex(inf)
		if err != nil {
			return err
		}
		if err = emu.Ram.LoadAt(0, image); err != nil {
			return err
		}
	}

	if opt.script != "" {
		if err = emu.LoadScript(opt.script, nil); err != nil {
			return
		}
	}

	return
}

// execute builds the emulator, runs it, and reports the final state.
func (opt *options) execute() (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = opt.verbose
	emu.Console.Output = os.Stdout

	if opt.input == "-" {
		emu.Console.Input = os.Stdin
	} else if opt.input != "" {
		inf, oerr := os.Open(opt.input)
		if oerr != nil {
			err = oerr
			return
		}
		defer inf.Close()
		emu.Console.Input = inf
	}

	if err = opt.load(emu); err != nil {
		return
	}

	if opt.traceOut != "" {
		ouf, oerr := os.Create(opt.traceOut)
		if oerr != nil {
			err = oerr
			return
		}
		defer ouf.Close()
		emu.Trace = &emulator.Trace{W: ouf}
	}

	if !opt.noStart {
		emu.PowerOn(opt.vector)
	}

	ticks := opt.ticks
	if emu.Stimulus.Ticks > 0 {
		ticks = emu.Stimulus.Ticks
	}

	err = emu.Run(ticks)
	if opt.verbose || err != nil {
		log.Printf("%v", emu.Cpu)
	}

	return
}

func main() {
	opt := &options{}

	rootCmd := &cobra.Command{
		Use:   "i8008",
		Short: "Cycle model of the Intel 8008 processor",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a memory image until HLT or the tick limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opt.execute()
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Run a memory image and write a per-state bus trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.traceOut == "" {
				opt.traceOut = "/dev/stdout"
			}
			return opt.execute()
		},
	}

	for _, cmd := range []*cobra.Command{runCmd, traceCmd} {
		cmd.Flags().StringVarP(&opt.memFile, "mem", "m", "", ".mem image (one hex byte per line)")
		cmd.Flags().StringVarP(&opt.hexFile, "hex", "x", "", "Intel HEX image")
		cmd.Flags().StringVarP(&opt.script, "script", "s", "", "Starlark stimulus script")
		cmd.Flags().IntVarP(&opt.ticks, "ticks", "t", 1000000, "Tick limit")
		cmd.Flags().Uint8Var(&opt.vector, "vector", 0, "Power-on RST vector")
		cmd.Flags().BoolVar(&opt.noStart, "no-start", false, "Do not schedule the power-on interrupt")
		cmd.Flags().StringVarP(&opt.input, "input", "i", "", "Console input file ('-' for stdin)")
		cmd.Flags().BoolVarP(&opt.verbose, "verbose", "v", false, "Verbose mode")
	}
	traceCmd.Flags().StringVarP(&opt.traceOut, "out", "o", "", "Trace output file (default stdout)")

	rootCmd.AddCommand(runCmd, traceCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
