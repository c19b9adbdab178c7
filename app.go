package hypview

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App runs installed systems over a shared resource set. Everything is
// single-threaded and cooperative: one Tick executes every stage in order,
// and each system runs to completion before the next one starts. There is
// exactly one logical actor mutating view state and parameter dicts, so no
// locking exists anywhere in the frame path.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	quitting  bool
}

type Module interface {
	Install(app *App, cmd *Commands)
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// Tick runs one frame: every stage, in order, each with its registered
// systems. Returns false once Quit has been requested.
func (app *App) Tick() bool {
	if app.quitting {
		return false
	}
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
	return !app.quitting
}

// Run ticks until a system calls Quit.
func (app *App) Run() {
	for app.Tick() {
	}
}

func (app *App) quit() {
	app.quitting = true
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// GetResource returns the App's resource of type T, or nil when no such
// resource was installed. Front ends use this to reach the session,
// orchestrator and input resources.
func GetResource[T any](app *App) *T {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return r.(*T)
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystem resolves each parameter of the system function from the
// resource set (or a fresh Commands) and invokes it.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}
