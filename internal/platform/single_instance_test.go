package platform

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"
)

func uniqueName(t *testing.T) string {
	return fmt.Sprintf("focusboard-test-%s-%d", t.Name(), os.Getpid())
}

func TestPortIsDeterministic(t *testing.T) {
	first := portFromName("FocusBoard")
	if first != portFromName("FocusBoard") {
		t.Fatal("port changed between calls")
	}
	if first < 20000 || first > 39999 {
		t.Fatalf("port %d out of range", first)
	}
}

func TestSecondInstanceHandsOff(t *testing.T) {
	name := uniqueName(t)
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	shown := make(chan struct{}, 1)
	guard.Serve(func() { shown <- struct{}{} })

	_, err = AcquireSingleInstance(name)
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v", err)
	}

	select {
	case <-shown:
	case <-time.After(3 * time.Second):
		t.Fatal("running instance was not asked to show")
	}
}

func TestReleaseFreesPort(t *testing.T) {
	name := uniqueName(t)
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("second release: %v", err)
	}

	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	_ = again.Release()
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	guard.Serve(nil)
	if err := guard.Release(); err != nil {
		t.Fatal(err)
	}
	if guard.Address() != "" {
		t.Fatal("nil guard has an address")
	}
}

func TestConfigDirResolves(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Skipf("no config dir in this environment: %v", err)
	}
	if dir == "" {
		t.Fatal("empty config dir")
	}
}
