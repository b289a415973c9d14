package domain

// Role enumerates the account types the portal recognises.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePatient      Role = "patient"
)

// Roles lists every valid role in catalog order.
var Roles = []Role{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient}

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient:
		return true
	}
	return false
}

// RoleInfo carries the display metadata for a role.
type RoleInfo struct {
	Value       Role   `json:"value"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// roleCatalog is the fixed display table for the five roles.
var roleCatalog = map[Role]RoleInfo{
	RoleAdmin: {
		Value:       RoleAdmin,
		Label:       "Administrator",
		Icon:        "👨‍💼",
		Color:       "#dc2626",
		Description: "System administration and management",
	},
	RoleDoctor: {
		Value:       RoleDoctor,
		Label:       "Doctor",
		Icon:        "👨‍⚕️",
		Color:       "#2563eb",
		Description: "Medical diagnosis and treatment",
	},
	RoleNurse: {
		Value:       RoleNurse,
		Label:       "Nurse",
		Icon:        "👩‍⚕️",
		Color:       "#059669",
		Description: "Patient care and assistance",
	},
	RoleReceptionist: {
		Value:       RoleReceptionist,
		Label:       "Receptionist",
		Icon:        "👥",
		Color:       "#7c3aed",
		Description: "Front desk and appointments",
	},
	RolePatient: {
		Value:       RolePatient,
		Label:       "Patient",
		Icon:        "🙂",
		Color:       "#6b7280",
		Description: "Medical care recipient",
	},
}

// RoleInfoFor returns the display metadata for a role. Unrecognised values
// fall back to the patient entry.
func RoleInfoFor(r Role) RoleInfo {
	if info, ok := roleCatalog[r]; ok {
		return info
	}
	return roleCatalog[RolePatient]
}

// RoleCatalog returns the display table in catalog order.
func RoleCatalog() []RoleInfo {
	out := make([]RoleInfo, 0, len(Roles))
	for _, r := range Roles {
		out = append(out, roleCatalog[r])
	}
	return out
}

// DisplayName returns the human-readable label for a role, falling back to
// the raw value for unrecognised roles.
func (r Role) DisplayName() string {
	if info, ok := roleCatalog[r]; ok {
		return info.Label
	}
	return string(r)
}
