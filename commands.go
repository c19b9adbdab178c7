package hypview

// Commands is the facade handed to modules and systems for mutating the App
// itself.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(sched systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(sched)
	return cmd
}

// Quit stops the App after the current tick completes.
func (cmd *Commands) Quit() *Commands {
	cmd.app.quit()
	return cmd
}
