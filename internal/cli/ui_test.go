package cli

import (
	"io"
	"testing"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/bigdemo/internal/cli/mocks"
)

// withMockSpinner swaps newSpinner for the duration of the test.
func withMockSpinner(t *testing.T, m Spinner) {
	t.Helper()
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return m }
	t.Cleanup(func() { newSpinner = orig })
}

func TestProgressIndicator_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockSpinner(ctrl)
	withMockSpinner(t, m)

	gomock.InOrder(
		m.EXPECT().UpdateSuffix(" Starting..."),
		m.EXPECT().Start(),
		m.EXPECT().UpdateSuffix(" Computing factorial..."),
		m.EXPECT().UpdateSuffix(" Computing pi..."),
		m.EXPECT().Stop(),
	)

	p := NewProgressIndicator(io.Discard)
	p.Start()
	p.StageStarted("factorial")
	p.StageStarted("pi")
	p.Stop()
}

func TestNewSpinner_Real(t *testing.T) {
	s := newSpinner(spinner.WithWriter(io.Discard))
	rs, ok := s.(*realSpinner)
	if !ok {
		t.Fatalf("newSpinner returned %T, want *realSpinner", s)
	}
	s.UpdateSuffix(" working")
	if rs.s.Suffix != " working" {
		t.Errorf("Suffix = %q, want %q", rs.s.Suffix, " working")
	}
}
