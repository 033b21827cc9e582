package config

func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"title":  "Flash Window",
		"width":  400,
		"height": 300,

		"trigger":     TriggerClick,
		"trigger_key": "space",
		"rect_x":      150,
		"rect_y":      130,
		"rect_width":  100,
		"rect_height": 40,

		// caption and taskbar, repeated until the window comes to the foreground
		"flash_style":      "all",
		"flash_count":      0,
		"flash_timeout_ms": 0,

		"icon_path":  "",
		"watch_icon": false,

		"log_level": "info",
	}
}
