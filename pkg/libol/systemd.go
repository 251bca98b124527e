package libol

import (
	"github.com/coreos/go-systemd/v22/daemon"
)

// SdNotify tells systemd the service is ready. It is a no-op when not
// started by systemd.
func SdNotify() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		Warn("SdNotify: %s", err)
		return
	}
	if sent {
		Info("SdNotify: ready")
	}
}

func SdStopping() {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		Warn("SdStopping: %s", err)
	}
}
