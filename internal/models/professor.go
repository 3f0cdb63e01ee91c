package models

import "sort"

// Professor teaches sections and may advise students.
type Professor struct {
	ID         string
	Name       string
	Title      string
	Department string

	sections map[SectionID]*Section
}

func NewProfessor(id, name, title, department string) *Professor {
	return &Professor{ID: id, Name: name, Title: title, Department: department, sections: make(map[SectionID]*Section)}
}

// Teach adds section to the taught set.
func (p *Professor) Teach(section *Section) {
	p.sections[section.ID()] = section
}

// Sections returns taught sections ordered by course id, then section number.
func (p *Professor) Sections() []*Section {
	out := make([]*Section, 0, len(p.sections))
	for _, s := range p.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().Less(out[j].ID()) })
	return out
}
