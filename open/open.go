// Package open launches files with the user's editor or the system default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/xpslvs/stackr/constant"
)

// editorEnv lists the variables consulted for the user's editor, in order.
var editorEnv = []string{"VISUAL", "EDITOR"}

// Run opens input with the default system handler and waits for it to exit.
func Run(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Run()
}

// RunWith opens input with app attached to the terminal and waits for it to exit.
func RunWith(input, app string) error {
	if app == "" {
		return Run(input)
	}
	cmd, ok := commandWith(input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

// Edit opens path in $VISUAL or $EDITOR, falling back to the default handler.
func Edit(path string) error {
	return RunWith(path, Editor())
}

// Editor returns the configured editor command, if any.
func Editor() string {
	for _, env := range editorEnv {
		if editor := strings.TrimSpace(os.Getenv(env)); editor != "" {
			return editor
		}
	}
	return ""
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}

// commandWith runs app directly. Editors are often given with flags, e.g. "code --wait".
func commandWith(input, app string) (*exec.Cmd, bool) {
	fields := strings.Fields(app)
	if len(fields) == 0 {
		return command(input)
	}

	if !constant.Supported(runtime.GOOS) {
		return nil, false
	}
	return exec.Command(fields[0], append(fields[1:], input)...), true
}
