package profile

import (
	"testing"
	"time"

	"github.com/MortenLDK/FriendSync-AI-Friendship-Empire/internal/identity"
)

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	user := identity.User{
		ID:       "u1",
		FullName: "Morten",
		EmailAddresses: []identity.EmailAddress{
			{EmailAddress: "other@b.com"},
			{EmailAddress: "a@b.com", Primary: true},
		},
	}
	p := Default(user, now)

	if p.ClerkUserID != "u1" || p.Name != "Morten" || p.Email != "a@b.com" {
		t.Errorf("profile = %+v", p)
	}
	if p.Role != DefaultRole || p.SuggestionFrequency != DefaultFrequency {
		t.Errorf("defaults = %q / %q", p.Role, p.SuggestionFrequency)
	}
	if p.SetupStep != StepBasics || p.SetupCompleted {
		t.Errorf("wizard state = %q completed=%v", p.SetupStep, p.SetupCompleted)
	}
}

func TestWizardWalksAllSteps(t *testing.T) {
	t.Parallel()

	p := Profile{Name: "Morten", SetupStep: StepBasics}

	want := []SetupStep{StepStrengths, StepGiving, StepOptimization}
	for _, step := range want {
		if err := p.Advance(); err != nil {
			t.Fatalf("advance to %s: %v", step, err)
		}
		if p.SetupStep != step {
			t.Fatalf("step = %q, want %q", p.SetupStep, step)
		}
	}

	// advancing past the final step completes setup
	if err := p.Advance(); err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if !p.SetupCompleted {
		t.Error("setup should be completed")
	}
	if err := p.Advance(); err == nil {
		t.Error("advancing a completed profile should fail")
	}
}

func TestWizardAdvanceRequiresName(t *testing.T) {
	t.Parallel()

	p := Profile{SetupStep: StepBasics}
	if err := p.Advance(); err == nil {
		t.Error("expected error advancing without a name")
	}
}

func TestWizardBackStopsAtFirstStep(t *testing.T) {
	t.Parallel()

	p := Profile{Name: "Morten", SetupStep: StepStrengths}
	p.Back()
	if p.SetupStep != StepBasics {
		t.Fatalf("step = %q", p.SetupStep)
	}
	p.Back()
	if p.SetupStep != StepBasics {
		t.Errorf("step = %q after back on first step", p.SetupStep)
	}
}

func TestReopenResetsWizard(t *testing.T) {
	t.Parallel()

	p := Profile{Name: "Morten", SetupStep: StepOptimization, SetupCompleted: true}
	p.Reopen()
	if p.SetupCompleted || p.SetupStep != StepBasics {
		t.Errorf("profile = %+v", p)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := (Profile{Name: " "}).Validate(); err == nil {
		t.Error("blank name should not validate")
	}
	if err := (Profile{Name: "Morten"}).Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}
