package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("years must be at least 1")
	err := InvalidInput("simulate", "years", root)

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected errors.Is to match ErrInvalidInput")
	}
	if errors.Is(err, ErrOverflow) {
		t.Fatalf("did not expect errors.Is to match ErrOverflow")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Field != "years" {
		t.Fatalf("expected field years, got %q", got.Field)
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("calculate: %w", Overflow("simulate", "portfolio"))

	if !IsKind(err, KindOverflow) {
		t.Fatalf("expected IsKind to see overflow through wrapping")
	}
	if IsKind(err, KindInvalidInput) {
		t.Fatalf("did not expect invalid input kind")
	}
	if IsKind(errors.New("plain"), KindOverflow) {
		t.Fatalf("plain errors carry no kind")
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := InvalidInput("simulate", "years", errors.New("must be at least 1"))
	want := "simulate: invalid_input (field=years): must be at least 1"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestCalculationRequestInput(t *testing.T) {
	in := DefaultRequest().Input()

	if in.AnnualRate != 0.12 || in.ContributionGrowthRate != 0.05 {
		t.Fatalf("expected percentages converted to fractions, got %+v", in)
	}
	if in.Months() != 120 {
		t.Fatalf("expected 120 months, got %d", in.Months())
	}
}
