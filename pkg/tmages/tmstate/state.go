// Package tmstate persists the browser state between runs so the next
// session starts where the previous one left off.
package tmstate

import (
	"os"
	"path/filepath"

	"github.com/manish-ach/Tmages/pkg/fsutils"
)

const defaultSettingsDir = "~/.tmages"
const stateFileName = "tmages-state.json"

var settingsDir = defaultSettingsDir
var settingsDirPath = fsutils.ExpandHome(settingsDir)

// State is the persisted UI state.
type State struct {
	CurrentDir      string `json:"current_dir,omitempty"`
	CurrentDirEntry string `json:"current_dir_entry,omitempty"`
}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

// Writing state is best effort. Failures are routed here so they never
// reach the terminal while tview owns it.
var logErr = func(v ...any) {

}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

// GetState reads the persisted state. A missing state file yields a zero
// State and no error.
func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

// GetCurrentDir returns the directory persisted by the previous session,
// or an empty string.
func GetCurrentDir() string {
	var state State
	filePath := getStateFilePath()
	_ = readJSON(filePath, false, &state)
	return state.CurrentDir
}

// SaveCurrentDir records the directory the browser is showing.
func SaveCurrentDir(currentDir string) {
	saveSettingValue(func(state *State) {
		state.CurrentDir = currentDir
	})
}

// SaveCurrentDirEntry records the name of the selected entry.
func SaveCurrentDirEntry(name string) {
	saveSettingValue(func(state *State) {
		state.CurrentDirEntry = name
	})
}

func saveSettingValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	if err := readJSON(filePath, false, &state); err != nil {
		logErr("saveSettingValue: Error reading state file:", err)
	}

	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("saveSettingValue: Error creating settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("saveSettingValue: Settings path is not a directory")
		return
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("saveSettingValue: Error writing state file:", err)
		return
	}
}
