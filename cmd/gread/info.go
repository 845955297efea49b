package main

import (
	"fmt"

	"github.com/leovikii/gread"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	prefs, err := deps.Prefs.LoadPreferences(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gread.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "auto-advance:       %s\n", onOff(prefs.AutoAdvance))
	fmt.Fprintf(deps.Stdout, "control:            %s\n", onOff(prefs.ShowControl))
	fmt.Fprintf(deps.Stdout, "reading mode:       %s\n", prefs.ReadingMode)
	fmt.Fprintf(deps.Stdout, "auto-enter single:  %s\n", onOff(prefs.AutoEnterSingle))
	fmt.Fprintf(deps.Stdout, "auto-play:          %s\n", onOff(prefs.AutoPlay))
	fmt.Fprintf(deps.Stdout, "auto-play interval: %s\n", prefs.AutoPlayInterval)

	if c.URL == "" {
		return nil
	}

	gallery, err := gread.NewGallery(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gread.ErrorMessage(err))
		return err
	}

	total, err := deps.Stats.FindTotalPages(deps.Ctx, gallery.Key)
	if gread.ErrorCode(err) == gread.ENOTFOUND {
		fmt.Fprintf(deps.Stdout, "gallery %s: no cached stats\n", gallery.Key)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gread.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "gallery %s: %d pages\n", gallery.Key, total)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
