package liveness

import "testing"

type fakeHooks struct {
	bytesReceived      uint64
	resetCalls         int
	receivedConfig     bool
	supportsCommands   bool
	allowCachedConfig  bool
	cacheLoadCalls     int
	restartCalls       int
	reportedMessages   []string
}

func (f *fakeHooks) BytesReceivedSinceTick() uint64     { return f.bytesReceived }
func (f *fakeHooks) ResetBytesReceived()                { f.resetCalls++; f.bytesReceived = 0 }
func (f *fakeHooks) ReceivedConfigurationFrame() bool    { return f.receivedConfig }
func (f *fakeHooks) ParserSupportsCommands() bool        { return f.supportsCommands }
func (f *fakeHooks) AllowCachedConfiguration() bool      { return f.allowCachedConfig }
func (f *fakeHooks) LoadCachedConfiguration()            { f.cacheLoadCalls++ }
func (f *fakeHooks) RestartConnectCycle()                { f.restartCalls++ }
func (f *fakeHooks) ReportMessage(message string)        { f.reportedMessages = append(f.reportedMessages, message) }

func TestTickDisabledByDefault(t *testing.T) {
	hooks := &fakeHooks{bytesReceived: 0, supportsCommands: true}
	monitor := New(0, hooks)

	monitor.Tick()

	if hooks.restartCalls != 0 || hooks.resetCalls != 0 {
		t.Fatalf("expected no hook activity while disabled")
	}
}

func TestTickNoBytesRestartsWhenCommandsSupported(t *testing.T) {
	hooks := &fakeHooks{bytesReceived: 0, supportsCommands: true}
	monitor := New(0, hooks)
	monitor.Enable()

	monitor.Tick()

	if hooks.restartCalls != 1 {
		t.Fatalf("expected exactly 1 restart, got %d", hooks.restartCalls)
	}

	if monitor.Enabled() {
		t.Fatalf("expected monitor to disable itself after triggering a restart")
	}

	if hooks.resetCalls != 1 {
		t.Fatalf("expected bytesReceived to be reset even on the restart path")
	}
}

func TestTickNoBytesNoopWhenCommandsUnsupported(t *testing.T) {
	hooks := &fakeHooks{bytesReceived: 0, supportsCommands: false}
	monitor := New(0, hooks)
	monitor.Enable()

	monitor.Tick()

	if hooks.restartCalls != 0 {
		t.Fatalf("expected no restart when parser does not support commands")
	}
}

func TestTickFirstMissingConfigLoadsCache(t *testing.T) {
	hooks := &fakeHooks{bytesReceived: 10, receivedConfig: false, allowCachedConfig: true, supportsCommands: true}
	monitor := New(0, hooks)
	monitor.Enable()

	monitor.Tick()

	if hooks.cacheLoadCalls != 1 {
		t.Fatalf("expected cached configuration load on first tick, got %d calls", hooks.cacheLoadCalls)
	}

	if !monitor.CachedConfigLoadAttempted() {
		t.Fatalf("expected cachedConfigLoadAttempted to be true after first tick")
	}

	if hooks.restartCalls != 0 {
		t.Fatalf("expected no restart on the first missing-config tick")
	}
}

func TestTickSecondMissingConfigRestarts(t *testing.T) {
	hooks := &fakeHooks{bytesReceived: 10, receivedConfig: false, allowCachedConfig: true, supportsCommands: true}
	monitor := New(0, hooks)
	monitor.Enable()

	monitor.Tick()
	monitor.Tick()

	if hooks.cacheLoadCalls != 1 {
		t.Fatalf("expected cached configuration load exactly once across connection, got %d", hooks.cacheLoadCalls)
	}

	if hooks.restartCalls != 1 {
		t.Fatalf("expected exactly 1 restart on the second missing-config tick, got %d", hooks.restartCalls)
	}
}

func TestEnableResetsLatchForNewConnection(t *testing.T) {
	hooks := &fakeHooks{bytesReceived: 10, receivedConfig: false, allowCachedConfig: true, supportsCommands: true}
	monitor := New(0, hooks)
	monitor.Enable()
	monitor.Tick()

	monitor.Enable()

	if monitor.CachedConfigLoadAttempted() {
		t.Fatalf("expected Enable to reset the cached-config-load latch for a new connection")
	}
}
