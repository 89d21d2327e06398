package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDesktopEntry_QuotesArguments(t *testing.T) {
	entry := buildDesktopEntry("StudyDesk", []string{"/opt/study desk/studydesk", "gui"})

	assert.Contains(t, entry, "Name=StudyDesk\n")
	assert.Contains(t, entry, `Exec="/opt/study desk/studydesk" gui`+"\n")
	assert.Contains(t, entry, "X-GNOME-Autostart-enabled=true")
}

func TestBuildLaunchAgentPlist_ListsEveryArgument(t *testing.T) {
	plist := buildLaunchAgentPlist(launchAgentLabel("Study Desk"), []string{"/Applications/S&D.app/studydesk", "gui"})

	assert.Contains(t, plist, "<string>com.studydesk.study-desk</string>")
	assert.Contains(t, plist, "<string>/Applications/S&amp;D.app/studydesk</string>")
	assert.Contains(t, plist, "<string>gui</string>")
}

func TestWindowsRunValue(t *testing.T) {
	assert.Equal(t, `"C:\Program Files\studydesk.exe" gui`, windowsRunValue([]string{`C:\Program Files\studydesk.exe`, "gui"}))
}

func TestSetLaunchAtLogin_Validates(t *testing.T) {
	assert.Error(t, SetLaunchAtLogin(" ", []string{"x"}, true))
	assert.Error(t, SetLaunchAtLogin("StudyDesk", nil, true))
}
