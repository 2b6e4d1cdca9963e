package semx

import "strconv"

// Errno is the error code returned by the semaphore operations.
// It mirrors the POSIX error numbers so callers can map it to the
// `-1 + errno` convention with Code.
type Errno uintptr

const (
	ENOENT    Errno = 2
	EAGAIN    Errno = 11
	EEXIST    Errno = 17
	EINVAL    Errno = 22
	EOVERFLOW Errno = 75
	ETIMEDOUT Errno = 110
)

var errnoText = map[Errno]string{
	ENOENT:    "no such semaphore",
	EAGAIN:    "resource temporarily unavailable",
	EEXIST:    "semaphore exists",
	EINVAL:    "invalid argument",
	EOVERFLOW: "value too large",
	ETIMEDOUT: "timed out",
}

func (e Errno) Error() string {
	if s, ok := errnoText[e]; ok {
		return s
	}
	return "errno " + strconv.Itoa(int(e))
}

// Code returns the numeric error code.
func (e Errno) Code() int {
	return int(e)
}

// Timeout reports whether the error means a unit was not available in time.
func (e Errno) Timeout() bool {
	return e == ETIMEDOUT || e == EAGAIN
}

// Status converts err to the C return convention: 0 on success, -1 otherwise.
func Status(err error) int {
	if err != nil {
		return -1
	}
	return 0
}

// publicErr remaps errors that are internal to time conversion.
// Overflow never reaches callers; it is reported as EINVAL.
func publicErr(err error) error {
	if err == EOVERFLOW {
		return EINVAL
	}
	return err
}
