// Package browser hands URLs to the system's default opener.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches url in the user's default browser. The opener command is
// chosen per platform; the call does not wait for the browser to exit.
func Open(url string) error {
	name, args := openerCommand(runtime.GOOS, url)
	if name == "" {
		return fmt.Errorf("no URL opener available on %s", runtime.GOOS)
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	// Detach; a browser that exits non-zero later is not our problem.
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}
	default:
		return "", nil
	}
}
