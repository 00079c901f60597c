package domain

// DefaultMinMatchScore is the threshold used when the user has never set one
// (or has it stored as zero).
const DefaultMinMatchScore = 40

// Preferences is the user's matching profile. It is overwritten wholesale
// from the settings form and re-read on every scoring pass.
type Preferences struct {
	RoleKeywords       []string  `json:"roleKeywords"`
	PreferredLocations []string  `json:"preferredLocations"`
	PreferredMode      []JobMode `json:"preferredMode"`
	ExperienceLevel    string    `json:"experienceLevel"`
	Skills             []string  `json:"skills"`
	MinMatchScore      int       `json:"minMatchScore"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		RoleKeywords:       []string{},
		PreferredLocations: []string{},
		PreferredMode:      []JobMode{},
		Skills:             []string{},
		MinMatchScore:      DefaultMinMatchScore,
	}
}

// WantsMode reports whether the given mode is in the preferred set.
func (p Preferences) WantsMode(m JobMode) bool {
	for _, pm := range p.PreferredMode {
		if pm == m {
			return true
		}
	}
	return false
}
