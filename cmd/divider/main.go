// Command divider prints the output voltages of the sync/video resistor
// network for every combination of logic inputs. Voltages are rounded to
// millivolts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gogpu/glyphsheet/internal/divider"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("divider", flag.ContinueOnError)
	var (
		rv     = fs.Float64("rv", divider.Default.Rv, "video resistor (ohm)")
		rs     = fs.Float64("rs", divider.Default.Rs, "sync resistor (ohm)")
		r0     = fs.Float64("r0", divider.Default.R0, "load resistor (ohm)")
		supply = fs.Float64("supply", divider.Default.Supply, "logic high level (V)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	n := divider.Network{Rv: *rv, Rs: *rs, R0: *r0, Supply: *supply}
	if err := n.Validate(); err != nil {
		return err
	}
	if err := n.WriteTable(stdout); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
