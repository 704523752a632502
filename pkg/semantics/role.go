// Package semantics describes the accessibility tree emitted by widgets.
//
// Widgets declare a Role and contribute a Node during the accessibility pass.
// Bridging the resulting tree to a platform accessibility API is the job of
// the embedder.
package semantics

// Role is the accessibility role a widget reports.
type Role int

const (
	RoleUnknown Role = iota
	RoleWindow
	RoleGenericContainer
	RoleLabel
	RoleButton
	RoleImage
	RoleList
	RoleCheckBox
	RoleTextInput
)

var roleNames = map[Role]string{
	RoleUnknown:          "unknown",
	RoleWindow:           "window",
	RoleGenericContainer: "generic_container",
	RoleLabel:            "label",
	RoleButton:           "button",
	RoleImage:            "image",
	RoleList:             "list",
	RoleCheckBox:         "check_box",
	RoleTextInput:        "text_input",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole returns the role with the given name, or RoleUnknown.
func ParseRole(name string) Role {
	for role, n := range roleNames {
		if n == name {
			return role
		}
	}
	return RoleUnknown
}
