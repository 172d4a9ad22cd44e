package content

// Section returns the section with the given id.
func (g *Graph) Section(id string) (Section, bool) {
	for _, s := range g.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// FirstOfType returns the first section of type t.
func (g *Graph) FirstOfType(t SectionType) (Section, bool) {
	for _, s := range g.Sections {
		if s.Type == t {
			return s, true
		}
	}
	return Section{}, false
}

// RotatingTitles returns the profile header's rotating sub-titles: every
// skill of the first skills section, in declaration order.
func (g *Graph) RotatingTitles() []string {
	s, ok := g.FirstOfType(SectionSkills)
	if !ok {
		return nil
	}
	skills, _ := s.Content.(SkillsContent)
	var titles []string
	for _, cat := range skills.Categories {
		titles = append(titles, cat.Skills...)
	}
	return titles
}

// MediaLists returns every media list in the graph: project media first
// (section order, then project order), then bio media.
func (g *Graph) MediaLists() [][]Media {
	var lists [][]Media
	for _, s := range g.Sections {
		if c, ok := s.Content.(ProjectsContent); ok {
			for _, p := range c.Projects {
				if len(p.Media) > 0 {
					lists = append(lists, p.Media)
				}
			}
		}
	}
	for _, s := range g.Sections {
		if c, ok := s.Content.(BioContent); ok && len(c.Media) > 0 {
			lists = append(lists, c.Media)
		}
	}
	return lists
}

// Tags returns the unique project tags of a projects section in first-seen order.
func (c ProjectsContent) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range c.Projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
