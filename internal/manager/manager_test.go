package manager

import (
	"testing"

	"github.com/evremapper/evremapper"
)

func TestHelloEchoes(t *testing.T) {
	m := New()

	if got := m.Hello("ping"); got != "ping" {
		t.Fatalf("expected echo, got %q", got)
	}
}

func TestGetStateUnknownForUnregisteredKey(t *testing.T) {
	m := New()

	if got := m.GetState("nonexistent"); got != evremapper.StateUnknown {
		t.Fatalf("expected StateUnknown, got %v", got)
	}
}

func TestStopInjectUnknownKeyIsNoop(t *testing.T) {
	m := New()

	// Must not panic or block when nothing is registered.
	m.StopInject("nonexistent")
}

func TestInjectWithoutConfigDirFails(t *testing.T) {
	m := New()

	ok, err := m.Inject("some-device", "preset")
	if err == nil {
		t.Fatalf("expected error when config directory is unset")
	}

	if ok {
		t.Fatalf("expected Inject to report false")
	}
}

func TestAutoloadWithoutConfigDirFails(t *testing.T) {
	m := New()

	ok, err := m.Autoload()
	if err == nil {
		t.Fatalf("expected error when config directory is unset")
	}

	if ok {
		t.Fatalf("expected Autoload to report false")
	}
}

func TestFindGroupMissing(t *testing.T) {
	m := New()

	if _, ok := m.findGroup("nonexistent"); ok {
		t.Fatalf("expected findGroup to report absent for an empty cache")
	}
}

func TestRefreshPopulatesRefreshAt(t *testing.T) {
	m := New()

	if !m.refreshAt.IsZero() {
		t.Fatalf("expected zero refreshAt before first refresh")
	}

	if err := m.forceRefresh(); err != nil {
		t.Fatalf("forceRefresh: %v", err)
	}

	if m.refreshAt.IsZero() {
		t.Fatalf("expected refreshAt to be set after forceRefresh")
	}
}

func TestRefreshSkipsWhenFreshAndKeyPresent(t *testing.T) {
	m := New()

	if err := m.forceRefresh(); err != nil {
		t.Fatalf("forceRefresh: %v", err)
	}

	firstRefreshAt := m.refreshAt

	m.groupList = append(m.groupList, evremapper.DeviceGroup{Key: "present-key"})

	if err := m.refresh("present-key"); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if m.refreshAt != firstRefreshAt {
		t.Fatalf("expected refresh to skip re-enumeration for a present, fresh key")
	}
}

func TestRefreshForcesWhenKeyMissing(t *testing.T) {
	m := New()

	if err := m.forceRefresh(); err != nil {
		t.Fatalf("forceRefresh: %v", err)
	}

	firstRefreshAt := m.refreshAt

	if err := m.refresh("absent-key"); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if !m.refreshAt.After(firstRefreshAt) {
		t.Fatalf("expected refresh to re-enumerate when the requested key is absent")
	}
}
