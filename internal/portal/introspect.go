package portal

import (
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
)

// fileChooserVersion is the backend interface version reported through
// the org.freedesktop.DBus.Properties interface.
const fileChooserVersion uint32 = 3

// chooserArgs is the shared in/out argument list of the three file
// chooser methods.
var chooserArgs = []introspect.Arg{
	{Name: "handle", Type: "o", Direction: "in"},
	{Name: "app_id", Type: "s", Direction: "in"},
	{Name: "parent_window", Type: "s", Direction: "in"},
	{Name: "title", Type: "s", Direction: "in"},
	{Name: "options", Type: "a{sv}", Direction: "in"},
	{Name: "response", Type: "u", Direction: "out"},
	{Name: "results", Type: "a{sv}", Direction: "out"},
}

// Node returns the introspection tree served at ObjectPath, so tools
// like busctl and d-feet can discover the portal surface.
func Node() *introspect.Node {
	return &introspect.Node{
		Name: string(ObjectPath),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: FileChooserInterface,
				Methods: []introspect.Method{
					{Name: "OpenFile", Args: chooserArgs},
					{Name: "SaveFile", Args: chooserArgs},
					{Name: "SaveFiles", Args: chooserArgs},
				},
				Properties: []introspect.Property{
					{Name: "version", Type: "u", Access: "read"},
				},
			},
			{
				Name: AppChooserInterface,
				Methods: []introspect.Method{
					{Name: "ChooseApplication", Args: []introspect.Arg{
						{Name: "handle", Type: "o", Direction: "in"},
						{Name: "app_id", Type: "s", Direction: "in"},
						{Name: "parent_window", Type: "s", Direction: "in"},
						{Name: "choices", Type: "as", Direction: "in"},
						{Name: "options", Type: "a{sv}", Direction: "in"},
						{Name: "response", Type: "u", Direction: "out"},
						{Name: "results", Type: "a{sv}", Direction: "out"},
					}},
					{Name: "UpdateChoices", Args: []introspect.Arg{
						{Name: "handle", Type: "o", Direction: "in"},
						{Name: "choices", Type: "as", Direction: "in"},
					}},
				},
			},
		},
	}
}

// Props returns the property table served next to the interfaces.
func Props() map[string]map[string]*prop.Prop {
	return map[string]map[string]*prop.Prop{
		FileChooserInterface: {
			"version": {
				Value:    fileChooserVersion,
				Writable: false,
				Emit:     prop.EmitFalse,
			},
		},
	}
}
