package resources

import (
	_ "embed"
	"sync"

	"fyne.io/fyne/v2"
)

//go:embed icon.svg
var iconData []byte

var (
	iconOnce sync.Once
	icon     fyne.Resource
)

// Icon returns the application icon resource.
func Icon() fyne.Resource {
	iconOnce.Do(func() {
		icon = fyne.NewStaticResource("icon.svg", iconData)
	})
	return icon
}
