package portfolio

// Section identifies one of the vertically stacked regions of the page.
type Section int

const (
	SectionHome Section = iota
	SectionAbout
	SectionProjects
	SectionSkills
	SectionContact
)

// Sections lists every section in page order. This is also the priority order used when
// resolving the active section, so the earliest entry wins when intervals overlap.
var Sections = []Section{SectionHome, SectionAbout, SectionProjects, SectionSkills, SectionContact} //nolint:gochecknoglobals

// ID returns the anchor identifier, eg: "projects".
func (s Section) ID() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionAbout:
		return "about"
	case SectionProjects:
		return "projects"
	case SectionSkills:
		return "skills"
	case SectionContact:
		return "contact"
	default:
		return ""
	}
}

// Title is the label shown in navigation.
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionProjects:
		return "Projects"
	case SectionSkills:
		return "Skills"
	case SectionContact:
		return "Contact"
	default:
		return ""
	}
}

func (s Section) String() string {
	return s.ID()
}

// Valid reports whether s is a member of Sections.
func (s Section) Valid() bool {
	return s >= SectionHome && s <= SectionContact
}

// Next returns the following section, wrapping around to the first.
func (s Section) Next() Section {
	if s+1 > SectionContact {
		return SectionHome
	}

	return s + 1
}

// Prev returns the preceding section, wrapping around to the last.
func (s Section) Prev() Section {
	if s-1 < SectionHome {
		return SectionContact
	}

	return s - 1
}

// ParseSection resolves an anchor id back into its Section.
func ParseSection(id string) (Section, bool) {
	for _, section := range Sections {
		if section.ID() == id {
			return section, true
		}
	}

	return SectionHome, false
}
