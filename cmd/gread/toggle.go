package main

import (
	"fmt"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/control"
)

// idleSession satisfies control.Session outside a reading session.
// Toggling from the CLI only touches the persisted preferences; the
// new values apply on the next read.
type idleSession struct{}

func (idleSession) Gallery() *gread.Gallery { return nil }
func (idleSession) CurrentPage() int        { return 0 }
func (idleSession) TotalPages() int         { return 0 }
func (idleSession) SetAutoAdvance(bool)     {}

func toggleControl(deps *Dependencies) (*control.Control, error) {
	return control.New(idleSession{}, deps.Prefs)
}

// Run executes the "toggle auto-advance" command.
func (c *ToggleAutoAdvanceCmd) Run(deps *Dependencies) error {
	ctl, err := toggleControl(deps)
	if err != nil {
		return err
	}
	on, err := ctl.ToggleAutoAdvance(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "auto-advance %s\n", onOff(on))
	return nil
}

// Run executes the "toggle control" command.
func (c *ToggleControlCmd) Run(deps *Dependencies) error {
	ctl, err := toggleControl(deps)
	if err != nil {
		return err
	}
	on, err := ctl.ToggleControlVisibility(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "control %s\n", onOff(on))
	return nil
}

// Run executes the "toggle mode" command.
func (c *ToggleModeCmd) Run(deps *Dependencies) error {
	ctl, err := toggleControl(deps)
	if err != nil {
		return err
	}
	mode, err := ctl.ToggleReadingMode(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "reading mode %s\n", mode)
	return nil
}

// Run executes the "toggle auto-enter" command.
func (c *ToggleAutoEnterCmd) Run(deps *Dependencies) error {
	ctl, err := toggleControl(deps)
	if err != nil {
		return err
	}
	on, err := ctl.ToggleAutoEnterSingle(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "auto-enter single %s\n", onOff(on))
	return nil
}

// Run executes the "toggle auto-play" command.
func (c *ToggleAutoPlayCmd) Run(deps *Dependencies) error {
	ctl, err := toggleControl(deps)
	if err != nil {
		return err
	}
	on, err := ctl.ToggleAutoPlay(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "auto-play %s\n", onOff(on))
	return nil
}

// Run executes the "toggle interval" command.
func (c *SetIntervalCmd) Run(deps *Dependencies) error {
	ctl, err := toggleControl(deps)
	if err != nil {
		return err
	}
	if err := ctl.SetAutoPlayInterval(deps.Ctx, c.Millis); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "auto-play interval %dms\n", c.Millis)
	return nil
}
