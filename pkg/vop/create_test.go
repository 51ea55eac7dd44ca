package vop

import (
	"fmt"
	"testing"
)

// port knows how to validate itself from a raw int
type port int

func (port) TryValidate(raw int) Outcome[port, string] {
	if raw < 1 || raw > 65535 {
		return Failure[port](fmt.Sprintf("%d is out of range", raw))
	}
	return Success[port, string](port(raw))
}

func TestTryCreate_SuccessIdentity(t *testing.T) {
	t.Parallel()

	direct := port(0).TryValidate(8080)
	tagged := TryCreate("listen_port", port(0).TryValidate, 8080)

	if !tagged.IsSuccess() {
		t.Fatalf("expected success, got error: %v", tagged.Err())
	}
	if tagged.Result() != direct.Result() {
		t.Fatalf("expected %v, got %v", direct.Result(), tagged.Result())
	}
}

func TestTryCreate_TagsFailure(t *testing.T) {
	t.Parallel()

	out := TryCreate("listen_port", port(0).TryValidate, 0)

	if out.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", out.Result())
	}
	tag := out.Err()
	if tag.Label != "listen_port" {
		t.Fatalf("expected label 'listen_port', got %q", tag.Label)
	}
	if tag.Err != "0 is out of range" {
		t.Fatalf("expected the domain error verbatim, got %q", tag.Err)
	}
}

func TestTryCreate_DuplicateLabelsPermitted(t *testing.T) {
	t.Parallel()

	a := TryCreate("port", port(0).TryValidate, -1)
	b := TryCreate("port", port(0).TryValidate, 70000)

	if a.Err().Label != "port" || b.Err().Label != "port" {
		t.Fatalf("expected both tags labelled 'port', got %q and %q", a.Err().Label, b.Err().Label)
	}
}

func TestTryCreateFrom_Validatable(t *testing.T) {
	t.Parallel()

	var v Validatable[int, port, string] = port(0)

	out := TryCreateFrom("listen_port", v, 8080)
	if !out.IsSuccess() || out.Result() != port(8080) {
		t.Fatalf("expected success with 8080, got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}

	out = TryCreateFrom("listen_port", v, 0)
	if out.IsSuccess() || out.Err().Label != "listen_port" {
		t.Fatalf("expected tagged failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestValidatorFunc(t *testing.T) {
	t.Parallel()

	var nonEmpty Validatable[string, string, string] = ValidatorFunc[string, string, string](
		func(raw string) Outcome[string, string] {
			if raw == "" {
				return Failure[string]("must not be empty")
			}
			return Success[string, string](raw)
		})

	out := TryCreateFrom("name", nonEmpty, "")
	if out.IsSuccess() || out.Err().Label != "name" || out.Err().Err != "must not be empty" {
		t.Fatalf("unexpected outcome: success=%v, err=%v", out.IsSuccess(), out.Err())
	}

	out = TryCreateFrom("name", nonEmpty, "ada")
	if !out.IsSuccess() || out.Result() != "ada" {
		t.Fatalf("expected success with 'ada', got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}
}

func TestTryCreateOptional_None(t *testing.T) {
	t.Parallel()

	called := false
	validate := func(raw int) Outcome[port, string] {
		called = true
		return port(0).TryValidate(raw)
	}

	out := TryCreateOptional("listen_port", validate, None[int]())

	if !out.IsSuccess() {
		t.Fatalf("expected success, got error: %v", out.Err())
	}
	if out.Result().IsSome() {
		t.Fatalf("expected None result, got %v", out.Result())
	}
	if called {
		t.Fatalf("validator should not run on absent input")
	}
}

func TestTryCreateOptional_Some(t *testing.T) {
	t.Parallel()

	out := TryCreateOptional("listen_port", port(0).TryValidate, Some(443))
	if !out.IsSuccess() {
		t.Fatalf("expected success, got error: %v", out.Err())
	}
	if v, ok := out.Result().Get(); !ok || v != port(443) {
		t.Fatalf("expected Some(443), got (%v, %v)", v, ok)
	}

	out = TryCreateOptional("listen_port", port(0).TryValidate, Some(0))
	if out.IsSuccess() || out.Err().Label != "listen_port" {
		t.Fatalf("expected tagged failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}
