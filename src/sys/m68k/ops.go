// Package m68k implements semihosting for m68k/ColdFire targets as served by
// QEMU and picolibc: GDB's File-I/O remote protocol with a block pointer in
// d1 and results written back into the block.
package m68k

import "fmt"

type OperationCode uint32

const (
	HOSTED_EXIT         OperationCode = 0
	HOSTED_INIT_SIM     OperationCode = 1
	HOSTED_OPEN         OperationCode = 2
	HOSTED_CLOSE        OperationCode = 3
	HOSTED_READ         OperationCode = 4
	HOSTED_WRITE        OperationCode = 5
	HOSTED_LSEEK        OperationCode = 6
	HOSTED_RENAME       OperationCode = 7
	HOSTED_UNLINK       OperationCode = 8
	HOSTED_STAT         OperationCode = 9
	HOSTED_FSTAT        OperationCode = 10
	HOSTED_GETTIMEOFDAY OperationCode = 11
	HOSTED_ISATTY       OperationCode = 12
	HOSTED_SYSTEM       OperationCode = 13
)

var opNames = [...]string{
	"HOSTED_EXIT", "HOSTED_INIT_SIM", "HOSTED_OPEN", "HOSTED_CLOSE",
	"HOSTED_READ", "HOSTED_WRITE", "HOSTED_LSEEK", "HOSTED_RENAME",
	"HOSTED_UNLINK", "HOSTED_STAT", "HOSTED_FSTAT", "HOSTED_GETTIMEOFDAY",
	"HOSTED_ISATTY", "HOSTED_SYSTEM",
}

func (o OperationCode) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("HOSTED_UNKNOWN(%d)", uint32(o))
}

// GDB File-I/O open flags
const (
	O_RDONLY = 0x0
	O_WRONLY = 0x1
	O_RDWR   = 0x2
	O_APPEND = 0x8
	O_CREAT  = 0x200
	O_TRUNC  = 0x400
	O_EXCL   = 0x800
)

// GDB File-I/O mode_t values
const (
	S_IFREG = 0o100000
	S_IFCHR = 0o20000
	S_IFDIR = 0o40000
	S_IRUSR = 0o400
	S_IWUSR = 0o200
	S_IXUSR = 0o100
	S_IRGRP = 0o40
	S_IWGRP = 0o20
	S_IXGRP = 0o10
	S_IROTH = 0o4
	S_IWOTH = 0o2
	S_IXOTH = 0o1
)

type Whence int32

const (
	SEEK_SET Whence = 0
	SEEK_CUR Whence = 1
	SEEK_END Whence = 2
)

// Stat is GDB's struct stat: int and mode_t are 32 bits, long is 64 and
// time_t is 32.
type Stat struct {
	Dev     uint32
	Ino     uint32
	Mode    uint32
	Nlink   uint32
	UID     uint32
	GID     uint32
	Rdev    uint32
	Size    uint64
	Blksize uint64
	Blocks  uint64
	Atime   uint32
	Mtime   uint32
	Ctime   uint32
}

type Timeval struct {
	Sec  uint32
	Usec int64
}
