package elevate

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"syscall"
)

// StartupRequirements describes the privileged preconditions of a host
// start: the ability to bind the requested port, and an installed,
// trusted serving certificate when HTTPS is requested.
type StartupRequirements struct {
	Port      int
	UseHTTPS  bool
	CertFile  string
	KeyFile   string
	TrustFile string
}

// Check reports whether every precondition holds at the current
// privilege level.
func (r StartupRequirements) Check() bool {
	if !PortBindable(r.Port) {
		return false
	}
	if r.UseHTTPS && !CertInstalled(r.CertFile, r.KeyFile, r.TrustFile) {
		return false
	}
	return true
}

// Install performs the setup steps that require elevation: granting the
// executable the bind capability and installing the serving certificate
// into the system trust anchors.
func (r StartupRequirements) Install(executable string) error {
	if !PortBindable(r.Port) {
		if err := InstallPortCapability(executable); err != nil {
			return err
		}
	}
	if r.UseHTTPS && !CertInstalled(r.CertFile, r.KeyFile, r.TrustFile) {
		if err := InstallCert(r.CertFile, r.KeyFile, r.TrustFile); err != nil {
			return err
		}
	}
	return nil
}

// PortBindable probes whether the current privilege level can bind the
// port. A port that is merely in use is still "bindable" here: that is a
// conflict to surface at listen time, not an elevation problem.
func PortBindable(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err == nil {
		_ = l.Close()
		return true
	}
	return !isPermissionError(err)
}

func isPermissionError(err error) bool {
	return errors.Is(err, syscall.EACCES) || errors.Is(err, os.ErrPermission)
}

// InstallPortCapability grants the executable CAP_NET_BIND_SERVICE so an
// unprivileged process can bind reserved ports. Requires elevation.
func InstallPortCapability(executable string) error {
	out, err := exec.Command("setcap", "cap_net_bind_service=+ep", executable).CombinedOutput()
	if err != nil {
		return fmt.Errorf("setcap %s: %v: %s", executable, err, out)
	}
	return nil
}
