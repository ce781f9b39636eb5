package progress

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
)

// Func observes a byte counter. total is -1 when the size is unknown.
type Func func(done, total int64)

// Output is where progress bars are drawn.
var Output io.Writer = os.Stderr

const barTemplate = `{{string . "prefix"}} {{counters . }} {{bar . "[" "=" ">" " " "]"}} {{percent . }} {{speed . }}`

// Bar is a byte progress bar that can be driven through Func.
type Bar struct {
	bar *pb.ProgressBar
}

// NewBar starts a bar labelled with prefix. A total of zero or less renders
// without a percentage until Func reports one.
func NewBar(prefix string) *Bar {
	bar := pb.ProgressBarTemplate(barTemplate).New(0).
		Set(pb.Bytes, true).
		Set("prefix", color.CyanString("i %s", prefix)).
		SetWriter(Output)
	bar.Start()
	return &Bar{bar: bar}
}

// Func returns the observer that feeds this bar.
func (b *Bar) Func() Func {
	return func(done, total int64) {
		if total > 0 && b.bar.Total() != total {
			b.bar.SetTotal(total)
		}
		b.bar.SetCurrent(done)
	}
}

// Finish stops redrawing and leaves the final state on screen.
func (b *Bar) Finish() {
	b.bar.Finish()
}
