// Command gone runs the DMG core against a flat ROM image.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hejops/gone-dmg/cartridge"
	"github.com/hejops/gone-dmg/cpu"
	"github.com/hejops/gone-dmg/display"
	"github.com/hejops/gone-dmg/mmu"
	"github.com/hejops/gone-dmg/ppu"
	"github.com/hejops/gone-dmg/system"
	"github.com/hejops/gone-dmg/timer"
)

func main() {
	var (
		debugFlag   bool
		displayFlag bool
		serialFlag  bool
	)

	rootCmd := &cobra.Command{
		Use:   "gone [rom]",
		Short: "gone runs a flat Game Boy (DMG) ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], debugFlag, displayFlag, serialFlag)
		},
	}
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "launch the interactive register/memory inspector instead of free-running")
	rootCmd.Flags().BoolVar(&displayFlag, "display", false, "attach an ebiten window as the pixel sink")
	rootCmd.Flags().BoolVar(&serialFlag, "serial", false, "echo serial test-sink bytes to stdout as they arrive")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gone:", err)
		os.Exit(1)
	}
}

func run(romPath string, debug, withDisplay, serial bool) error {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return fmt.Errorf("gone: %w", err)
	}

	bus := mmu.New()
	bus.LoadROM(cart.ROM)
	if serial {
		bus.SetSerialSink(func(b byte) {
			fmt.Fprintf(os.Stdout, "%c", b)
		})
	}

	c := cpu.New(bus)

	if debug {
		if err := c.Debug(); err != nil {
			return fmt.Errorf("gone: %w", err)
		}
		return nil
	}

	t := timer.New(bus)
	bus.SetDivResetSink(t.ResetDivider)
	p := ppu.New(bus)
	driver := system.New(c, t, p)

	var sink ppu.PixelSink
	if withDisplay {
		win := display.New()
		sink = win
		go func() {
			if err := win.Run("gone", 3); err != nil {
				fmt.Fprintln(os.Stderr, "gone: display:", err)
			}
		}()
	}

	if err := driver.Run(sink); err != nil {
		if errors.Is(err, system.ErrHalted) {
			return nil // clean HALT-driven stop: exit code 0
		}
		return fmt.Errorf("gone: %w", err)
	}
	return nil
}
