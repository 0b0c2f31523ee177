package sys

import "semihosting/src/shio"

// rawErrno carries a code for targets without an errno table of their own.
type rawErrno int32

func (e rawErrno) Code() int32          { return int32(e) }
func (e rawErrno) Kind() shio.ErrorKind { return shio.Other }
func (e rawErrno) Error() string        { return shio.FormatOS(shio.Other, int32(e)) }
