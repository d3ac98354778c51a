// ABOUTME: Platform script launchers: bash and PowerShell adapters
// ABOUTME: Capability-probed via PATH lookup, no OS-name branching

package bootstrap

import (
	"fmt"
	"os/exec"
)

// Launcher describes an interpreter capable of running a platform
// install script.
type Launcher interface {
	// Name identifies the launcher in logs and errors.
	Name() string
	// Available reports whether the interpreter is on PATH.
	Available() bool
	// ScriptName is the install script this launcher expects.
	ScriptName() string
	// Args builds the argv that runs script with the extra arguments
	// forwarded to it.
	Args(script string, extra []string) []string
}

// Launchers returns all adapters in probe order.
func Launchers() []Launcher {
	return []Launcher{bashLauncher{}, powershellLauncher{}}
}

// Detect returns the first available launcher.
func Detect() (Launcher, error) {
	for _, l := range Launchers() {
		if l.Available() {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no script launcher found: need bash or powershell on PATH")
}

type bashLauncher struct{}

func (bashLauncher) Name() string { return "bash" }

func (bashLauncher) ScriptName() string { return "install.sh" }

func (bashLauncher) Available() bool {
	_, err := exec.LookPath("bash")
	return err == nil
}

func (bashLauncher) Args(script string, extra []string) []string {
	return append([]string{"bash", script}, extra...)
}

type powershellLauncher struct{}

func (powershellLauncher) Name() string { return "powershell" }

func (powershellLauncher) ScriptName() string { return "install.ps1" }

func (l powershellLauncher) Available() bool {
	_, err := exec.LookPath(l.exe())
	return err == nil
}

func (l powershellLauncher) Args(script string, extra []string) []string {
	argv := []string{l.exe(), "-ExecutionPolicy", "Bypass", "-File", script}
	return append(argv, extra...)
}

// exe prefers PowerShell Core over Windows PowerShell.
func (powershellLauncher) exe() string {
	if _, err := exec.LookPath("pwsh"); err == nil {
		return "pwsh"
	}
	return "powershell"
}
