package checklist

import (
	"github.com/vertti/touchcheck/pkg/depcheck"
	"github.com/vertti/touchcheck/pkg/rules"
)

const (
	boardSource = "main/boards/bread-compact-wifi/compact_wifi_board.cc"
	boardConfig = "main/boards/bread-compact-wifi/config.h"
)

// TouchButton returns the checklist for the touch button component on the
// bread-compact-wifi board.
func TouchButton() Checklist {
	return Checklist{
		Title:     "Touch Button Build Configuration Check",
		Component: "touch_button",
		Manifests: []depcheck.Manifest{
			{
				Path: "main/idf_component.yml",
				Rule: rules.Contains("main/idf_component.yml declares espressif/touch_button",
					"espressif/touch_button"),
			},
			{
				Path: "components/touch_button/idf_component.yml",
				Rule: rules.ContainsAll("touch_button component declares espressif/button and espressif/touch_button_sensor",
					"espressif/button", "espressif/touch_button_sensor"),
			},
		},
		Files: []string{
			"components/touch_button/touch_button.h",
			"components/touch_button/touch_button.c",
			"components/touch_button/CMakeLists.txt",
			"main/boards/common/touch_button.h",
			"main/boards/common/touch_button.cc",
			boardSource,
			boardConfig,
		},
		IntegrationFile: boardSource,
		Integration: rules.Table{
			rules.Contains("includes touch_button.h", `#include "touch_button.h"`),
			rules.Contains("TouchButton member declared: head_touch_button_", "TouchButton head_touch_button_"),
			rules.Contains("TouchButton member declared: hand_touch_button_", "TouchButton hand_touch_button_"),
			rules.Contains("TouchButton member declared: belly_touch_button_", "TouchButton belly_touch_button_"),
			rules.Contains("touch sensor initialization", "InitializeTouchSensor"),
			rules.Contains("touch channel constant: TOUCH_CHANNEL_HEAD", "TOUCH_CHANNEL_HEAD"),
			rules.Contains("touch channel constant: TOUCH_CHANNEL_HAND", "TOUCH_CHANNEL_HAND"),
			rules.Contains("touch channel constant: TOUCH_CHANNEL_BELLY", "TOUCH_CHANNEL_BELLY"),
		},
		ConfigFile: boardConfig,
		Config: rules.Table{
			rules.Defines("TOUCH_CHANNEL_HEAD"),
			rules.Defines("TOUCH_CHANNEL_HAND"),
			rules.Defines("TOUCH_CHANNEL_BELLY"),
		},
	}
}
