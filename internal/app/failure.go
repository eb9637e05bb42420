package app

import (
    "errors"
    "fmt"
    "syscall"

    "github.com/hyperifyio/cehta/internal/loader"
)

// genericFailure is used for errors that carry no OS error number.
const genericFailure = 1

// FailureCode returns the process exit code for err: the OS error number of
// a load failure, or genericFailure.
func FailureCode(err error) int {
    if err == nil {
        return 0
    }
    var le *loader.Error
    if errors.As(err, &le) {
        return int(le.Code)
    }
    var errno syscall.Errno
    if errors.As(err, &errno) && errno != 0 {
        return int(errno)
    }
    return genericFailure
}

// FailureMessage formats the text shown to the user when a run fails: the
// code, then the system description of it.
func FailureMessage(err error) string {
    if err == nil {
        return ""
    }
    code := FailureCode(err)
    desc := err.Error()
    var le *loader.Error
    if errors.As(err, &le) {
        desc = le.Code.Error()
    } else if code != genericFailure {
        desc = syscall.Errno(code).Error()
    }
    return fmt.Sprintf("cehta failed with 0x%08X\n%s\n", code, desc)
}
