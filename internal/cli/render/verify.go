package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/upgrade-audit/internal/domain"
	"github.com/trebuchet-org/upgrade-audit/internal/domain/models"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

// VerifyRenderer handles rendering of upgrade audit results
type VerifyRenderer struct {
	out    io.Writer
	errOut io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out, errOut io.Writer) *VerifyRenderer {
	return &VerifyRenderer{
		out:    out,
		errOut: errOut,
	}
}

// RenderResult prints the corrections (once the run has reached them) and the
// final success line
func (r *VerifyRenderer) RenderResult(result *usecase.VerifyUpgradeResult) {
	if result == nil {
		return
	}

	if reachedCorrections(result) {
		r.RenderCorrections(result.Corrections)
	}

	if result.Stage == usecase.StageDone {
		fmt.Fprintln(r.out, FormatSuccess("Verification successful"))
	}
}

// RenderCorrections prints the ETH matched corrections table
func (r *VerifyRenderer) RenderCorrections(corrections []models.Correction) {
	fmt.Fprintln(r.out, "ETH matched corrections:")
	if len(corrections) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"#", "Address", "Amount"})
	for _, c := range corrections {
		t.AppendRow(table.Row{c.DisplayIndex(), c.Address.Hex(), c.Amount.String()})
	}
	fmt.Fprintln(r.out, t.Render())
}

// RenderError prints a failed run in the operator facing format. Mismatches
// are followed by a character diff on the error stream.
func (r *VerifyRenderer) RenderError(err error) {
	if err == nil {
		return
	}

	var (
		mismatch   *domain.MismatchError
		structural *domain.StructuralError
		fetchErr   *domain.FetchError
		invariant  *domain.InvariantError
	)

	red := color.New(color.FgRed)
	switch {
	case errors.As(err, &mismatch):
		red.Fprintf(r.errOut, "❌ Unexpected source file %s found at %s for %s\n",
			mismatch.Path, mismatch.Contract.Address.Hex(), mismatch.Contract.Name)
		WriteCharDiff(r.errOut, mismatch.Expected, mismatch.Actual)

	case errors.As(err, &structural):
		red.Fprintf(r.errOut, "❌ Unexpected source found at %s for %s\n",
			structural.Contract.Address.Hex(), structural.Contract.Name)

	case errors.As(err, &fetchErr):
		red.Fprintln(r.errOut, "❌ Something went wrong getting verified source from etherscan")
		if fetchErr.Payload != "" {
			fmt.Fprintln(r.errOut, fetchErr.Payload)
		} else {
			fmt.Fprintln(r.errOut, fetchErr.Error())
		}

	case errors.As(err, &invariant):
		red.Fprintln(r.errOut, "❌ Upgrade contract is not locked")

	default:
		fmt.Fprintln(r.errOut, FormatError(err))
	}
}

func reachedCorrections(result *usecase.VerifyUpgradeResult) bool {
	switch {
	case result.Stage == usecase.StageDone:
		return true
	case result.FailedAt == usecase.StageReportingCorrections, result.FailedAt == usecase.StageCheckingLock:
		return true
	default:
		return false
	}
}
