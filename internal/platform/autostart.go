package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrAutostartUnsupported indicates launch-at-login is not available here.
var ErrAutostartUnsupported = errors.New("launch at login unsupported")

// SetLaunchAtLogin registers or removes command as a login item for appName.
// command[0] is the executable.
func SetLaunchAtLogin(appName string, command []string, enabled bool) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("launch at login: app name is empty")
	}
	if !enabled {
		if err := disableAutostart(appName); err != nil {
			return fmt.Errorf("disable launch at login: %w", err)
		}
		return nil
	}
	if len(command) == 0 || command[0] == "" {
		return fmt.Errorf("enable launch at login: command is empty")
	}
	if err := enableAutostart(appName, command); err != nil {
		return fmt.Errorf("enable launch at login: %w", err)
	}
	return nil
}

// GUICommand returns the command that opens the desktop timer from the
// running executable.
func GUICommand() ([]string, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return []string{exe, "gui"}, nil
}

func entryName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(name, " ", "-")
}

func launchAgentLabel(appName string) string {
	return "com.studydesk." + entryName(appName)
}

func buildDesktopEntry(appName string, command []string) string {
	args := make([]string, 0, len(command))
	for _, arg := range command {
		if strings.ContainsAny(arg, " \t\"") {
			arg = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
		}
		args = append(args, arg)
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		appName,
		strings.Join(args, " "),
	)
}

func buildLaunchAgentPlist(label string, command []string) string {
	var args strings.Builder
	for _, arg := range command {
		fmt.Fprintf(&args, "\t\t<string>%s</string>\n", xmlEscape(arg))
	}

	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
%s	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`,
		xmlEscape(label),
		args.String(),
	)
}

func windowsRunValue(command []string) string {
	args := make([]string, 0, len(command))
	for i, arg := range command {
		if i == 0 || strings.ContainsAny(arg, " \t") {
			arg = `"` + strings.Trim(arg, `"`) + `"`
		}
		args = append(args, arg)
	}
	return strings.Join(args, " ")
}

func xmlEscape(value string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(value)
}
