// Package armcompat implements the Arm-compatible semihosting convention used
// by AArch64, AArch32, RISC-V, LoongArch and Xtensa (OpenOCD flavour).
//
// Every call loads an operation number and a single parameter register; the
// parameter is either a value or a pointer to a block of words.  Failures are
// reported with a sentinel and the errno is fetched with a second trap.
package armcompat

import "fmt"

type OperationNumber uint32

const (
	SYS_OPEN          OperationNumber = 0x01
	SYS_CLOSE         OperationNumber = 0x02
	SYS_WRITEC        OperationNumber = 0x03
	SYS_WRITE0        OperationNumber = 0x04
	SYS_WRITE         OperationNumber = 0x05
	SYS_READ          OperationNumber = 0x06
	SYS_READC         OperationNumber = 0x07
	SYS_ISERROR       OperationNumber = 0x08
	SYS_ISTTY         OperationNumber = 0x09
	SYS_SEEK          OperationNumber = 0x0A
	SYS_FLEN          OperationNumber = 0x0C
	SYS_TMPNAM        OperationNumber = 0x0D // deprecated, tmpnam is not safe on most hosts
	SYS_REMOVE        OperationNumber = 0x0E
	SYS_RENAME        OperationNumber = 0x0F
	SYS_CLOCK         OperationNumber = 0x10
	SYS_TIME          OperationNumber = 0x11
	SYS_SYSTEM        OperationNumber = 0x12
	SYS_ERRNO         OperationNumber = 0x13
	SYS_GET_CMDLINE   OperationNumber = 0x15
	SYS_HEAPINFO      OperationNumber = 0x16
	SYS_EXIT          OperationNumber = 0x18 // was angel_SWIreason_ReportException
	SYS_EXIT_EXTENDED OperationNumber = 0x20
	SYS_ELAPSED       OperationNumber = 0x30
	SYS_TICKFREQ      OperationNumber = 0x31
)

const (
	userDefinedFirst = 0x100
	userDefinedLast  = 0x1FF
)

// UserDefined returns an operation number from the range reserved for the
// application.  Declare results as package-level vars so a bad constant
// panics during init rather than at the call site.
func UserDefined(n uint32) OperationNumber {
	if n < userDefinedFirst || n > userDefinedLast {
		panic(fmt.Sprintf("armcompat: user defined operation number %#x outside 0x100-0x1ff", n))
	}
	return OperationNumber(n)
}

var opNames = map[OperationNumber]string{
	SYS_OPEN: "SYS_OPEN", SYS_CLOSE: "SYS_CLOSE", SYS_WRITEC: "SYS_WRITEC",
	SYS_WRITE0: "SYS_WRITE0", SYS_WRITE: "SYS_WRITE", SYS_READ: "SYS_READ",
	SYS_READC: "SYS_READC", SYS_ISERROR: "SYS_ISERROR", SYS_ISTTY: "SYS_ISTTY",
	SYS_SEEK: "SYS_SEEK", SYS_FLEN: "SYS_FLEN", SYS_TMPNAM: "SYS_TMPNAM",
	SYS_REMOVE: "SYS_REMOVE", SYS_RENAME: "SYS_RENAME", SYS_CLOCK: "SYS_CLOCK",
	SYS_TIME: "SYS_TIME", SYS_SYSTEM: "SYS_SYSTEM", SYS_ERRNO: "SYS_ERRNO",
	SYS_GET_CMDLINE: "SYS_GET_CMDLINE", SYS_HEAPINFO: "SYS_HEAPINFO",
	SYS_EXIT: "SYS_EXIT", SYS_EXIT_EXTENDED: "SYS_EXIT_EXTENDED",
	SYS_ELAPSED: "SYS_ELAPSED", SYS_TICKFREQ: "SYS_TICKFREQ",
}

func (o OperationNumber) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	if o >= userDefinedFirst && o <= userDefinedLast {
		return fmt.Sprintf("SYS_USER(%#x)", uint32(o))
	}
	return fmt.Sprintf("SYS_UNKNOWN(%#x)", uint32(o))
}

type ExitReason uintptr

const (
	// hardware exceptions
	ADP_Stopped_BranchThroughZero ExitReason = 0x20000
	ADP_Stopped_UndefinedInstr    ExitReason = 0x20001
	ADP_Stopped_SoftwareInterrupt ExitReason = 0x20002
	ADP_Stopped_PrefetchAbort     ExitReason = 0x20003
	ADP_Stopped_DataAbort         ExitReason = 0x20004
	ADP_Stopped_AddressException  ExitReason = 0x20005
	ADP_Stopped_IRQ               ExitReason = 0x20006
	ADP_Stopped_FIQ               ExitReason = 0x20007

	// software events
	ADP_Stopped_BreakPoint          ExitReason = 0x20020
	ADP_Stopped_WatchPoint          ExitReason = 0x20021
	ADP_Stopped_StepComplete        ExitReason = 0x20022
	ADP_Stopped_RunTimeErrorUnknown ExitReason = 0x20023
	ADP_Stopped_InternalError       ExitReason = 0x20024
	ADP_Stopped_UserInterruption    ExitReason = 0x20025
	ADP_Stopped_ApplicationExit     ExitReason = 0x20026
	ADP_Stopped_StackOverflow       ExitReason = 0x20027
	ADP_Stopped_DivisionByZero      ExitReason = 0x20028
	ADP_Stopped_OSSpecific          ExitReason = 0x20029
)

// OpenMode is the fopen-style mode SYS_OPEN takes, as numbered by the Arm
// specification and OpenOCD.
type OpenMode uintptr

const (
	RDONLY               OpenMode = 0  // r,   O_RDONLY
	RDONLY_BINARY        OpenMode = 1  // rb,  O_RDONLY|O_BINARY
	RDWR                 OpenMode = 2  // r+,  O_RDWR
	RDWR_BINARY          OpenMode = 3  // r+b, O_RDWR|O_BINARY
	WRONLY_TRUNC         OpenMode = 4  // w,   O_WRONLY|O_CREAT|O_TRUNC
	WRONLY_TRUNC_BINARY  OpenMode = 5  // wb
	RDWR_TRUNC           OpenMode = 6  // w+,  O_RDWR|O_CREAT|O_TRUNC
	RDWR_TRUNC_BINARY    OpenMode = 7  // w+b
	WRONLY_APPEND        OpenMode = 8  // a,   O_WRONLY|O_CREAT|O_APPEND
	WRONLY_APPEND_BINARY OpenMode = 9  // ab
	RDWR_APPEND          OpenMode = 10 // a+,  O_RDWR|O_CREAT|O_APPEND
	RDWR_APPEND_BINARY   OpenMode = 11 // a+b
)

// HeapInfo is filled in by SYS_HEAPINFO.  Zero fields mean the host left the
// decision to the target.
type HeapInfo struct {
	HeapBase   uintptr
	HeapLimit  uintptr
	StackBase  uintptr
	StackLimit uintptr
}

// CommandLine is the SYS_GET_CMDLINE block.  Size is the buffer capacity on
// the way in and the command line length on the way out.
type CommandLine struct {
	Ptr  *byte
	Size uintptr
}
