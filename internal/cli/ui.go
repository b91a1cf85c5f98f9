//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner,
// so the progress indicator can be tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressIndicator shows a spinner naming the running stage.
type ProgressIndicator struct {
	spinner Spinner
}

// NewProgressIndicator creates a spinner that writes to out.
func NewProgressIndicator(out io.Writer) *ProgressIndicator {
	return &ProgressIndicator{spinner: newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))}
}

// Start begins the animation.
func (p *ProgressIndicator) Start() {
	p.spinner.UpdateSuffix(" Starting...")
	p.spinner.Start()
}

// StageStarted updates the spinner text. Its signature matches
// orchestration.Runner.OnStageStart.
func (p *ProgressIndicator) StageStarted(stage string) {
	p.spinner.UpdateSuffix(" Computing " + stage + "...")
}

// Stop halts the animation and clears the line.
func (p *ProgressIndicator) Stop() {
	p.spinner.Stop()
}
