package result

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestSafe_ErrorBecomesErr(t *testing.T) {
	t.Parallel()
	parse := Safe(strconv.Atoi)
	if r := parse("12"); !Equal(r, Ok(12)) {
		t.Fatalf("expected Ok(12), got: %v", r)
	}
	if r := parse("nope"); !r.IsErr() {
		t.Fatalf("expected Err on parse failure, got: %v", r)
	}
}

func TestSafe_PanicBecomesErr(t *testing.T) {
	t.Parallel()
	head := Safe(func(xs []int) (int, error) {
		return xs[0], nil // panics on empty input
	})
	if r := head([]int{5}); !Equal(r, Ok(5)) {
		t.Fatalf("expected Ok(5), got: %v", r)
	}
	r := head(nil)
	if !r.IsErr() {
		t.Fatalf("expected Err on panic, got: %v", r)
	}
	if !strings.Contains(r.Err().Error(), "index out of range") {
		t.Fatalf("expected the recovered panic as payload, got: %v", r.Err())
	}
}

func TestSafe_NonErrorPanicValue(t *testing.T) {
	t.Parallel()
	blow := Safe(func(int) (int, error) {
		panic("custom failure")
	})
	r := blow(1)
	if !r.IsErr() || !strings.Contains(r.Err().Error(), "custom failure") {
		t.Fatalf("expected wrapped panic message, got: %v", r)
	}
}

func TestSafe2(t *testing.T) {
	t.Parallel()
	div := Safe2(func(a, b int) (int, error) {
		return a / b, nil // panics on b == 0
	})
	if r := div(10, 2); !Equal(r, Ok(5)) {
		t.Fatalf("expected Ok(5), got: %v", r)
	}
	if r := div(10, 0); !r.IsErr() {
		t.Fatalf("expected Err on division panic, got: %v", r)
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()
	if r := Wrap(3, nil); !Equal(r, Ok(3)) {
		t.Fatalf("expected Ok(3), got: %v", r)
	}
	boom := errors.New("boom")
	if r := Wrap(3, boom); !r.IsErr() || !errors.Is(r.Err(), boom) {
		t.Fatalf("expected Err(boom), got: %v", r)
	}
}
