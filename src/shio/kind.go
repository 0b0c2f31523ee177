package shio

// ErrorKind is the portable classification of a semihosting failure.  The set
// deliberately follows the taxonomy Go programmers already know from io/fs and
// syscall so that code above the trap layer reads naturally.
type ErrorKind uint8

const (
	NotFound ErrorKind = iota
	PermissionDenied
	ConnectionRefused
	ConnectionReset
	HostUnreachable
	NetworkUnreachable
	ConnectionAborted
	NotConnected
	AddrInUse
	AddrNotAvailable
	NetworkDown
	BrokenPipe
	AlreadyExists
	WouldBlock
	NotADirectory
	IsADirectory
	DirectoryNotEmpty
	ReadOnlyFilesystem
	FilesystemLoop
	StaleNetworkFileHandle
	InvalidInput
	InvalidData
	TimedOut
	WriteZero
	StorageFull
	NotSeekable
	QuotaExceeded
	FileTooLarge
	ResourceBusy
	ExecutableFileBusy
	Deadlock
	CrossesDevices
	TooManyLinks
	InvalidFilename
	ArgumentListTooLong
	Interrupted
	Unsupported
	UnexpectedEOF
	OutOfMemory
	InProgress
	Other
)

var kindText = [...]string{
	NotFound:               "entity not found",
	PermissionDenied:       "permission denied",
	ConnectionRefused:      "connection refused",
	ConnectionReset:        "connection reset",
	HostUnreachable:        "host unreachable",
	NetworkUnreachable:     "network unreachable",
	ConnectionAborted:      "connection aborted",
	NotConnected:           "not connected",
	AddrInUse:              "address in use",
	AddrNotAvailable:       "address not available",
	NetworkDown:            "network down",
	BrokenPipe:             "broken pipe",
	AlreadyExists:          "entity already exists",
	WouldBlock:             "operation would block",
	NotADirectory:          "not a directory",
	IsADirectory:           "is a directory",
	DirectoryNotEmpty:      "directory not empty",
	ReadOnlyFilesystem:     "read-only filesystem or storage medium",
	FilesystemLoop:         "filesystem loop or indirection limit (e.g. symlink loop)",
	StaleNetworkFileHandle: "stale network file handle",
	InvalidInput:           "invalid input parameter",
	InvalidData:            "invalid data",
	TimedOut:               "timed out",
	WriteZero:              "write zero",
	StorageFull:            "no storage space",
	NotSeekable:            "seek on unseekable file",
	QuotaExceeded:          "quota exceeded",
	FileTooLarge:           "file too large",
	ResourceBusy:           "resource busy",
	ExecutableFileBusy:     "executable file busy",
	Deadlock:               "deadlock",
	CrossesDevices:         "cross-device link or rename",
	TooManyLinks:           "too many links",
	InvalidFilename:        "invalid filename",
	ArgumentListTooLong:    "argument list too long",
	Interrupted:            "operation interrupted",
	Unsupported:            "unsupported",
	UnexpectedEOF:          "unexpected end of file",
	OutOfMemory:            "out of memory",
	InProgress:             "in progress",
	Other:                  "other error",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}
	return kindText[Other]
}
