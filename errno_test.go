package semx

import (
	"errors"
	"testing"
)

func TestErrno(t *testing.T) {
	var err error = ETIMEDOUT
	if !errors.Is(err, ETIMEDOUT) {
		t.Fatal("errors.Is failed for ETIMEDOUT")
	}
	var e Errno
	if !errors.As(err, &e) || e.Code() != 110 {
		t.Fatalf("errors.As = %v, code %d", e, e.Code())
	}
	if !EAGAIN.Timeout() || EINVAL.Timeout() {
		t.Error("Timeout classification wrong")
	}
	if Errno(999).Error() != "errno 999" {
		t.Errorf("unknown errno text = %q", Errno(999).Error())
	}
	if Status(nil) != 0 || Status(EINVAL) != -1 {
		t.Error("Status mapping wrong")
	}
	if publicErr(EOVERFLOW) != EINVAL || publicErr(ETIMEDOUT) != ETIMEDOUT {
		t.Error("publicErr mapping wrong")
	}
}
