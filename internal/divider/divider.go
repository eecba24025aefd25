// Package divider computes the output of the two-input resistor network
// that mixes the sync (S) and video (V) pins into a composite signal.
//
// Each input drives the output node through its own resistor (Rv, Rs) and
// the node is loaded by R0 to ground. With both inputs being logic levels,
// the network has four possible output voltages. WriteTable rounds them to
// millivolts; Table keeps full precision.
package divider

import (
	"bufio"
	"fmt"
	"io"
)

// Network is a resistor network with resistances in ohms and the logic
// high level in volts.
type Network struct {
	Rv     float64
	Rs     float64
	R0     float64
	Supply float64
}

// Default is the network used on the board: 220/390/180 ohm at 3.3 V.
var Default = Network{Rv: 220, Rs: 390, R0: 180, Supply: 3.3}

// Row is one line of the truth table.
type Row struct {
	V, S int
	Q    float64
}

func parallel(a, b float64) float64 {
	return 1 / (1/a + 1/b)
}

// Output returns the node voltage for logic inputs v and s (0 or 1),
// by superposition of the two sources.
func (n Network) Output(v, s int) float64 {
	rs0 := parallel(n.Rs, n.R0)
	rv0 := parallel(n.Rv, n.R0)
	q := float64(v)*rs0/(rs0+n.Rv) + float64(s)*rv0/(rv0+n.Rs)
	return q * n.Supply
}

// Validate reports whether every resistance is positive.
func (n Network) Validate() error {
	if n.Rv <= 0 || n.Rs <= 0 || n.R0 <= 0 {
		return fmt.Errorf("divider: resistances must be positive: Rv=%g Rs=%g R0=%g", n.Rv, n.Rs, n.R0)
	}
	return nil
}

// Table returns the four rows in the order (0,0), (0,1), (1,0), (1,1).
func (n Network) Table() []Row {
	rows := make([]Row, 0, 4)
	for v := range 2 {
		for s := range 2 {
			rows = append(rows, Row{V: v, S: s, Q: n.Output(v, s)})
		}
	}
	return rows
}

// WriteTable prints the truth table with a "V S Q" header.
func (n Network) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "V S Q")
	for _, r := range n.Table() {
		fmt.Fprintf(bw, "%d %d %.3f\n", r.V, r.S, r.Q)
	}
	return bw.Flush()
}
