package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/trebuchet-org/upgrade-audit/internal/cli/render"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// VerifyProgress reports upgrade audit progress. Verified contracts are
// printed as they pass; interactive sessions also get a spinner while the
// explorer or the node is being queried.
type VerifyProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
}

// NewVerifyProgress creates a new verification progress reporter
func NewVerifyProgress(out io.Writer, interactive bool) *VerifyProgress {
	return &VerifyProgress{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events
func (v *VerifyProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if v.interactive && event.Spinner {
		if v.spinner == nil {
			v.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			v.spinner.Writer = v.out
			_ = v.spinner.Color("cyan", "bold")
		}

		v.spinner.Suffix = " " + event.Message
		if event.Total > 1 {
			v.spinner.Suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
		}
		if !v.spinner.Active() {
			v.spinner.Start()
		}
		return
	}

	v.stopSpinner()

	switch event.Stage {
	case usecase.ProgressVerified:
		if event.Message != "" {
			fmt.Fprintln(v.out, render.FormatSuccess(event.Message))
		}
	case usecase.ProgressFailed, usecase.ProgressDone:
		// Result and error output belong to the caller
	}
}

func (v *VerifyProgress) stopSpinner() {
	if v.spinner != nil && v.spinner.Active() {
		v.spinner.Stop()
	}
}

// Ensure it implements the interface
var _ usecase.ProgressSink = (*VerifyProgress)(nil)
