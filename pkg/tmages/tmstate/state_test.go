package tmstate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestGetStateFilePath(t *testing.T) {
	origSettingsDirPath := settingsDirPath
	settingsDirPath = "/tmp/tmages-test"
	defer func() { settingsDirPath = origSettingsDirPath }()

	assert.Equal(t, filepath.Join("/tmp/tmages-test", stateFileName), getStateFilePath())
}

func TestGetState(t *testing.T) {
	origReadJSON := readJSON
	defer func() { readJSON = origReadJSON }()

	t.Run("success", func(t *testing.T) {
		readJSON = func(filePath string, required bool, o interface{}) error {
			s := o.(*State)
			s.CurrentDir = "/test/dir"
			s.CurrentDirEntry = "cat.png"
			return nil
		}
		state, err := GetState()
		assert.NoError(t, err)
		assert.Equal(t, "/test/dir", state.CurrentDir)
		assert.Equal(t, "cat.png", state.CurrentDirEntry)
	})

	t.Run("error", func(t *testing.T) {
		readJSON = func(filePath string, required bool, o interface{}) error {
			return errors.New("read error")
		}
		_, err := GetState()
		assert.Error(t, err)
	})
}

func TestGetCurrentDir(t *testing.T) {
	origReadJSON := readJSON
	defer func() { readJSON = origReadJSON }()

	t.Run("empty_state", func(t *testing.T) {
		readJSON = func(filePath string, required bool, o interface{}) error {
			return nil
		}
		assert.Equal(t, "", GetCurrentDir())
	})

	t.Run("with_state", func(t *testing.T) {
		readJSON = func(filePath string, required bool, o interface{}) error {
			o.(*State).CurrentDir = "/some/dir"
			return nil
		}
		assert.Equal(t, "/some/dir", GetCurrentDir())
	})
}

func TestSaveCurrentDir(t *testing.T) {
	origSettingsDirPath := settingsDirPath
	origReadJSON := readJSON
	origWriteJSON := writeJSON
	origLogErr := logErr
	defer func() {
		settingsDirPath = origSettingsDirPath
		readJSON = origReadJSON
		writeJSON = origWriteJSON
		logErr = origLogErr
	}()

	t.Run("success", func(t *testing.T) {
		settingsDirPath = t.TempDir()
		readJSON = func(filePath string, required bool, o interface{}) error {
			return nil
		}
		var savedPath string
		var savedState State
		writeJSON = func(filePath string, o interface{}) error {
			savedPath = filePath
			savedState = o.(State)
			return nil
		}
		SaveCurrentDir("/new/dir")
		assert.Equal(t, getStateFilePath(), savedPath)
		assert.Equal(t, "/new/dir", savedState.CurrentDir)
	})

	t.Run("read_error_still_saves", func(t *testing.T) {
		settingsDirPath = t.TempDir()
		readJSON = func(filePath string, required bool, o interface{}) error {
			return errors.New("corrupt state file")
		}
		var logged bool
		logErr = func(v ...any) {
			logged = true
		}
		var savedState State
		writeJSON = func(filePath string, o interface{}) error {
			savedState = o.(State)
			return nil
		}
		SaveCurrentDir("/new/dir")
		assert.True(t, logged)
		assert.Equal(t, "/new/dir", savedState.CurrentDir)
	})

	t.Run("creates_settings_dir", func(t *testing.T) {
		settingsDirPath = filepath.Join(t.TempDir(), "nested", "state")
		readJSON = func(filePath string, required bool, o interface{}) error {
			return nil
		}
		var written bool
		writeJSON = func(filePath string, o interface{}) error {
			written = true
			return nil
		}
		SaveCurrentDir("/new/dir")
		assert.True(t, written)
		info, err := os.Stat(settingsDirPath)
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("not_a_directory", func(t *testing.T) {
		file, err := os.CreateTemp(t.TempDir(), "notadir")
		assert.NoError(t, err)
		assert.NoError(t, file.Close())
		settingsDirPath = file.Name()

		readJSON = func(filePath string, required bool, o interface{}) error {
			return nil
		}
		var logged, written bool
		logErr = func(v ...any) {
			logged = true
		}
		writeJSON = func(filePath string, o interface{}) error {
			written = true
			return nil
		}
		SaveCurrentDir("/new/dir")
		assert.True(t, logged)
		assert.False(t, written)
	})

	t.Run("write_error", func(t *testing.T) {
		settingsDirPath = t.TempDir()
		readJSON = func(filePath string, required bool, o interface{}) error {
			return nil
		}
		var logged bool
		logErr = func(v ...any) {
			logged = true
		}
		writeJSON = func(filePath string, o interface{}) error {
			return errors.New("write error")
		}
		SaveCurrentDir("/new/dir")
		assert.True(t, logged)
	})
}

func TestSaveCurrentDirEntry(t *testing.T) {
	origSettingsDirPath := settingsDirPath
	origReadJSON := readJSON
	origWriteJSON := writeJSON
	defer func() {
		settingsDirPath = origSettingsDirPath
		readJSON = origReadJSON
		writeJSON = origWriteJSON
	}()

	settingsDirPath = t.TempDir()
	readJSON = func(filePath string, required bool, o interface{}) error {
		o.(*State).CurrentDir = "/kept/dir"
		return nil
	}
	var savedState State
	writeJSON = func(filePath string, o interface{}) error {
		savedState = o.(State)
		return nil
	}
	SaveCurrentDirEntry("photo.jpg")
	assert.Equal(t, "photo.jpg", savedState.CurrentDirEntry)
	assert.Equal(t, "/kept/dir", savedState.CurrentDir)
}

func TestStateRoundTrip(t *testing.T) {
	origSettingsDirPath := settingsDirPath
	defer func() { settingsDirPath = origSettingsDirPath }()
	settingsDirPath = t.TempDir()

	SaveCurrentDir("/pics")
	SaveCurrentDirEntry("cat.png")

	state, err := GetState()
	assert.NoError(t, err)
	assert.Equal(t, "/pics", state.CurrentDir)
	assert.Equal(t, "cat.png", state.CurrentDirEntry)
	assert.Equal(t, "/pics", GetCurrentDir())
}
