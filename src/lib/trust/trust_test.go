package trust

import (
	"bytes"
	"io"
	"log"
	"testing"

	"semihosting/src/host"
	"semihosting/src/sys/mips"
)

func useHost(t *testing.T) (out, errs *bytes.Buffer) {
	t.Helper()
	out, errs = &bytes.Buffer{}, &bytes.Buffer{}
	h, err := host.New(host.Config{
		Root:    t.TempDir(),
		Console: &host.StreamConsole{Out: out, Err: errs},
		Logger:  log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	prev := Level()
	Use(mips.New(h.MIPS()))
	t.Cleanup(func() {
		SetLevel(prev)
		h.Close()
	})
	return out, errs
}

func TestLevels(t *testing.T) {
	out, errs := useHost(t)
	SetLevel(ErrorMask | InfoMask)
	Errorf("disk %d", 3)
	Warnf("hidden")
	Infof("ready")
	Debugf("hidden")
	Statsf("heap", "%d pages", 4)
	if errs.String() != "ERROR:disk 3\n" {
		t.Errorf("stderr: %q", errs.String())
	}
	if out.String() != " INFO:ready\n" {
		t.Errorf("stdout: %q", out.String())
	}
	if LevelToString() != "error info" {
		t.Errorf("level string: %q", LevelToString())
	}
}

func TestSetLevelReturnsPrevious(t *testing.T) {
	useHost(t)
	SetLevel(DebugMask | StatsMask)
	if prev := SetLevel(WarnMask); prev != DebugMask|StatsMask {
		t.Errorf("expected debug|stats, got %#x", prev)
	}
	if Level() != WarnMask {
		t.Errorf("level: %#x", Level())
	}
}

func TestSetLevelNothingWarns(t *testing.T) {
	out, errs := useHost(t)
	SetLevel(Nothing)
	Errorf("hidden")
	if out.Len() != 0 || errs.String() != " WARN: trust.SetLevel is turning off log messages\n" {
		t.Errorf("got %q and %q", out.String(), errs.String())
	}
}

func TestFatalfIsNotMaskable(t *testing.T) {
	_, errs := useHost(t)
	SetLevel(Nothing)
	errs.Reset()
	st := host.Run(func() { Fatalf(3, "cannot continue: %s", "no heap") })
	if st == nil || st.Code != 3 {
		t.Errorf("exit status: %v", st)
	}
	if errs.String() != "FATAL:cannot continue: no heap\n" {
		t.Errorf("stderr: %q", errs.String())
	}
}
