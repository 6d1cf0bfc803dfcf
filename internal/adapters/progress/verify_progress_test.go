package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/upgrade-audit/internal/usecase"
)

func TestVerifyProgress_NonInteractive(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	p := NewVerifyProgress(&out, false)
	ctx := context.Background()

	p.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.ProgressVerifying,
		Message: "Verifying RocketNodeDeposit at 0x22",
		Spinner: true,
	})
	p.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.ProgressVerified,
		Message: "Verified contract at 0x22 matches RocketNodeDeposit",
	})
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.ProgressFailed})

	assert.Equal(t, "✔ Verified contract at 0x22 matches RocketNodeDeposit\n", out.String())
	assert.Nil(t, p.spinner)
}

func TestVerifyProgress_DoneStopsSpinner(t *testing.T) {
	var out bytes.Buffer
	p := NewVerifyProgress(&out, true)
	ctx := context.Background()

	p.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.ProgressVerifying,
		Current: 2,
		Total:   3,
		Message: "Verifying RocketNodeStaking at 0x11",
		Spinner: true,
	})
	require.NotNil(t, p.spinner)
	assert.Equal(t, " [2/3] Verifying RocketNodeStaking at 0x11", p.spinner.Suffix)

	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.ProgressDone})
	assert.False(t, p.spinner.Active())
}
