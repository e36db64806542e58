package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TouchProject returns the files of a firmware project with the touch button
// component fully wired in, keyed by path relative to the project root.
func TouchProject() map[string]string {
	return map[string]string{
		"CMakeLists.txt": "cmake_minimum_required(VERSION 3.16)\n" +
			"include($ENV{IDF_PATH}/tools/cmake/project.cmake)\n" +
			"project(xiaozhi)\n",
		"main/CMakeLists.txt": "idf_component_register(SRCS \"main.cc\")\n",
		"main/idf_component.yml": "dependencies:\n" +
			"  espressif/esp_codec_dev: \"~1.3.2\"\n" +
			"  espressif/touch_button: \"^1.0.0\"\n" +
			"  idf:\n" +
			"    version: \">=5.3\"\n",
		"components/touch_button/idf_component.yml": "version: \"1.0.0\"\n" +
			"dependencies:\n" +
			"  espressif/button: \"^4.0.0\"\n" +
			"  espressif/touch_button_sensor: \"^1.0.0\"\n",
		"components/touch_button/touch_button.h":  "#pragma once\nvoid touch_button_init(void);\n",
		"components/touch_button/touch_button.c":  "#include \"touch_button.h\"\nvoid touch_button_init(void) {}\n",
		"components/touch_button/CMakeLists.txt":  "idf_component_register(SRCS \"touch_button.c\" INCLUDE_DIRS \".\")\n",
		"main/boards/common/touch_button.h":       "#pragma once\nclass TouchButton {};\n",
		"main/boards/common/touch_button.cc":      "#include \"touch_button.h\"\n",
		"main/boards/bread-compact-wifi/config.h": TouchConfigHeader,
		"main/boards/bread-compact-wifi/compact_wifi_board.cc": TouchBoardSource,
	}
}

// TouchConfigHeader is a board config header defining the touch channels.
const TouchConfigHeader = `#ifndef _BOARD_CONFIG_H_
#define _BOARD_CONFIG_H_

#define TOUCH_CHANNEL_HEAD      (3)
#define TOUCH_CHANNEL_HAND      (9)
#define TOUCH_CHANNEL_BELLY     (13)

#endif // _BOARD_CONFIG_H_
`

// TouchBoardSource is a board source integrating three touch buttons.
const TouchBoardSource = `#include "wifi_board.h"
#include "touch_button.h"
#include "config.h"

class CompactWifiBoard : public WifiBoard {
private:
    TouchButton head_touch_button_;
    TouchButton hand_touch_button_;
    TouchButton belly_touch_button_;

    void InitializeTouchSensor() {
        touch_pad_init();
    }

public:
    CompactWifiBoard() :
        head_touch_button_(TOUCH_CHANNEL_HEAD),
        hand_touch_button_(TOUCH_CHANNEL_HAND),
        belly_touch_button_(TOUCH_CHANNEL_BELLY) {
        InitializeTouchSensor();
    }
};
`

// WriteProject writes files into fsys, failing the test on error.
func WriteProject(t testing.TB, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// Without returns a copy of files with the given paths removed.
func Without(files map[string]string, paths ...string) map[string]string {
	out := make(map[string]string, len(files))
	for k, v := range files {
		out[k] = v
	}
	for _, p := range paths {
		delete(out, p)
	}
	return out
}

// With returns a copy of files with path set to content.
func With(files map[string]string, path, content string) map[string]string {
	out := Without(files)
	out[path] = content
	return out
}
