//go:build !js && !android && !ios
// +build !js,!android,!ios

package main

import (
	"fmt"

	"github.com/ncruces/zenity"
)

// selectSavePath opens a native save dialog defaulting to dungeon.png,
// mirroring the teacher engine's zenity-based file picker.
func selectSavePath() (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Dungeon Map"),
		zenity.Filename("dungeon.png"),
		zenity.FileFilter{
			Name:     "PNG Images",
			Patterns: []string{"*.png"},
			CaseFold: false,
		},
	)
	if err != nil {
		if err == zenity.ErrCanceled {
			return "", nil
		}
		return "", fmt.Errorf("save dialog error: %w", err)
	}
	return filename, nil
}
