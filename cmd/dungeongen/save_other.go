//go:build js || android || ios
// +build js android ios

package main

import "fmt"

// selectSavePath is not available on mobile/WASM platforms; callers must
// pass -output explicitly there.
func selectSavePath() (string, error) {
	return "", fmt.Errorf("native save dialogs are not supported on mobile/WASM platforms; pass -output")
}
