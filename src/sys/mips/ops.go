// Package mips implements the MIPS Unified Hosting Interface (UHI, MD01069).
//
// UHI passes up to four arguments in $4-$7 and returns both the result and
// the errno, so unlike the Arm convention no second trap is needed to learn
// why a call failed.
package mips

import "fmt"

type OperationCode uint32

const (
	UHI_EXIT      OperationCode = 1
	UHI_OPEN      OperationCode = 2
	UHI_CLOSE     OperationCode = 3
	UHI_READ      OperationCode = 4
	UHI_WRITE     OperationCode = 5
	UHI_LSEEK     OperationCode = 6
	UHI_UNLINK    OperationCode = 7
	UHI_FSTAT     OperationCode = 8
	UHI_ARGC      OperationCode = 9
	UHI_ARGNLEN   OperationCode = 10
	UHI_ARGN      OperationCode = 11
	UHI_RAMRANGE  OperationCode = 12 // not implemented by QEMU
	UHI_PLOG      OperationCode = 13
	UHI_ASSERT    OperationCode = 14
	UHI_EXCEPTION OperationCode = 15 // not implemented by QEMU
	UHI_PREAD     OperationCode = 19
	UHI_PWRITE    OperationCode = 20
	UHI_LINK      OperationCode = 22
	UHI_BOOT_FAIL OperationCode = 23 // not implemented by QEMU
)

var opNames = map[OperationCode]string{
	UHI_EXIT: "UHI_exit", UHI_OPEN: "UHI_open", UHI_CLOSE: "UHI_close",
	UHI_READ: "UHI_read", UHI_WRITE: "UHI_write", UHI_LSEEK: "UHI_lseek",
	UHI_UNLINK: "UHI_unlink", UHI_FSTAT: "UHI_fstat", UHI_ARGC: "UHI_argc",
	UHI_ARGNLEN: "UHI_argnlen", UHI_ARGN: "UHI_argn", UHI_RAMRANGE: "UHI_ramrange",
	UHI_PLOG: "UHI_plog", UHI_ASSERT: "UHI_assert", UHI_EXCEPTION: "UHI_exception",
	UHI_PREAD: "UHI_pread", UHI_PWRITE: "UHI_pwrite", UHI_LINK: "UHI_link",
	UHI_BOOT_FAIL: "UHI_boot_fail",
}

func (o OperationCode) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("UHI_unknown(%d)", uint32(o))
}

// open flags
const (
	O_RDONLY = 0x0
	O_WRONLY = 0x1
	O_RDWR   = 0x2
	O_APPEND = 0x8
	O_CREAT  = 0x200
	O_TRUNC  = 0x400
	O_EXCL   = 0x800
)

// mode bits
const (
	S_IXOTH = 0o1
	S_IWOTH = 0o2
	S_IROTH = 0o4
	S_IRWXO = 0o7
	S_IXGRP = 0o10
	S_IWGRP = 0o20
	S_IRGRP = 0o40
	S_IRWXG = 0o70
	S_IXUSR = 0o100
	S_IWUSR = 0o200
	S_IRUSR = 0o400
	S_IRWXU = 0o700

	S_IFCHR = 0x2000
	S_IFDIR = 0x4000
	S_IFREG = 0x8000
)

// Whence uses the Linux numbering.  MD01069 documents 1/2/4 but QEMU, the
// host everybody runs, has always used 0/1/2.
type Whence int32

const (
	SEEK_SET Whence = 0
	SEEK_CUR Whence = 1
	SEEK_END Whence = 2
)

// Stat is struct uhi_stat.
type Stat struct {
	Dev     int16
	Ino     uint16
	Mode    uint32
	Nlink   uint16
	UID     uint16
	GID     uint16
	Rdev    int16
	Size    uint64
	Atime   uint64
	Spare1  uint64
	Mtime   uint64
	Spare2  uint64
	Ctime   uint64
	Spare3  uint64
	Blksize uint64
	Blocks  uint64
	Spare4  [2]uint64
}
