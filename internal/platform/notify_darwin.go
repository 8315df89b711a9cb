//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify displays a desktop notification using macOS Notification Center.
// Notification Center controls icon and timeout itself.
func Notify(title, body string, opts Options) error {
	_ = opts.timeout()
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, AppName)
	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}
