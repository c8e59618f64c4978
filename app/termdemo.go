package app

import "sparkgfx/gfx/console"

const termBanner = "\x1b[0m\x1b[1msparkgfx VT100 demo (tinyterm)\x1b[0m\n" +
	"Text drawn through the canvas.\n" +
	"SGR colors, scroll, and cursor-back.\n\n" +
	"\x1b[38;5;39m256-color:\x1b[0m " +
	"\x1b[38;5;196mRED\x1b[0m " +
	"\x1b[38;5;46mGREEN\x1b[0m " +
	"\x1b[38;5;226mYELLOW\x1b[0m " +
	"\x1b[38;5;21mBLUE\x1b[0m\n\n" +
	"spinner: -"

// termDemo prints a banner, then turns a spinner every few ticks and reports
// the tick count now and then.
type termDemo struct {
	con  *console.Console
	tick uint64
	spin int
}

func newTermDemo(con *console.Console) *termDemo {
	_, _ = con.Write([]byte(termBanner))
	return &termDemo{con: con}
}

func (d *termDemo) step() error {
	d.tick++
	if d.tick%2 == 0 {
		spin := []byte{'-', '\\', '|', '/'}
		d.spin++
		_, _ = d.con.Write([]byte{0x1b, '[', 'D', spin[d.spin%len(spin)]})
		if d.spin%20 == 0 {
			d.con.Printf("\nnow tick: %d\nspinner: -", d.tick)
		}
	}
	return d.con.Flush()
}
