package hypview

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

func TestAppBuilder_DefaultStages(t *testing.T) {
	builder := NewAppBuilder()
	app := builder.Build()

	if len(app.stages) == 0 {
		t.Errorf("Expected default stages to be present")
	}
	if app.stages[0].Name != Prelude.Name {
		t.Errorf("Expected first stage to be Prelude, got %v", app.stages[0].Name)
	}
	if app.stages[len(app.stages)-1].Name != Finale.Name {
		t.Errorf("Expected last stage to be Finale, got %v", app.stages[len(app.stages)-1].Name)
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	builder.Build()

	if !module.installed {
		t.Errorf("Expected Install to be called on the module, but it was not")
	}
}

func TestAppBuilder_Build_WithMultipleModules(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule{}

	builder := NewAppBuilder()
	builder.UseModule(module1)
	builder.UseModule(module2)

	builder.Build()

	if len(builder.modules) != 2 {
		t.Errorf("Expected 2 modules, got %v", len(builder.modules))
	}
	if !module1.installed {
		t.Errorf("Expected Install to be called on the module 1, but it was not")
	}
	if !module2.installed {
		t.Errorf("Expected Install to be called on the module 2, but it was not")
	}
}
