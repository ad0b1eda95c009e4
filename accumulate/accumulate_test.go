package accumulate_test

import (
	"errors"
	"testing"

	"github.com/pika-lang/pika/accumulate"
)

func TestRunningTotal(t *testing.T) {
	tests := []struct {
		name  string
		bound int
		want  int
	}{
		{
			name:  "zero bound keeps the initial value",
			bound: 0,
			want:  1,
		},
		{
			name:  "bound of one",
			bound: 1,
			want:  2,
		},
		{
			name:  "bound of five",
			bound: 5,
			want:  16,
		},
		{
			name:  "bound of ten",
			bound: 10,
			want:  56,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accumulate.RunningTotal(tt.bound)
			if err != nil {
				t.Fatalf("RunningTotal(%d): %v", tt.bound, err)
			}
			if got != tt.want {
				t.Errorf("RunningTotal(%d) = %d, want %d", tt.bound, got, tt.want)
			}
		})
	}
}

func TestRunningTotal_MatchesClosedForm(t *testing.T) {
	for n := 0; n <= 500; n++ {
		got, err := accumulate.RunningTotal(n)
		if err != nil {
			t.Fatalf("RunningTotal(%d): %v", n, err)
		}

		want := 1 + n*(n+1)/2
		if got != want {
			t.Fatalf("RunningTotal(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRunningTotal_NegativeBound(t *testing.T) {
	_, err := accumulate.RunningTotal(-1)
	if !errors.Is(err, accumulate.ErrNegativeBound) {
		t.Errorf("RunningTotal(-1) error = %v, want ErrNegativeBound", err)
	}
}

func TestRunningTotal_Idempotent(t *testing.T) {
	first, err := accumulate.RunningTotal(42)
	if err != nil {
		t.Fatalf("RunningTotal(42): %v", err)
	}

	second, err := accumulate.RunningTotal(42)
	if err != nil {
		t.Fatalf("RunningTotal(42): %v", err)
	}

	if first != second {
		t.Errorf("RunningTotal(42) = %d then %d, want identical results", first, second)
	}
}
